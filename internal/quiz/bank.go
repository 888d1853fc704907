package quiz

import (
	"errors"
	"fmt"
	"sort"
)

// Bank is the process-wide question bank: a fixed ordered sequence of
// questions, validated once at construction and read-only afterwards. A Bank
// requires no synchronization and may be shared freely across sessions.
type Bank struct {
	questions   []Question
	byID        map[string]int
	careerIDs   []string
	careerOrder map[string]int
}

// NewBank validates and freezes a question sequence. It rejects empty banks,
// duplicate question IDs, unknown categories, questions without options and
// weights outside [0.0, 1.0].
func NewBank(questions []Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, errors.New("question bank must contain at least one question")
	}

	b := &Bank{
		questions:   questions,
		byID:        make(map[string]int, len(questions)),
		careerOrder: make(map[string]int),
	}

	valid := make(map[Category]bool, len(Categories()))
	for _, c := range Categories() {
		valid[c] = true
	}

	for i, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("question at position %d has empty id", i)
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		if !valid[q.Category] {
			return nil, fmt.Errorf("question %q has unknown category %q", q.ID, q.Category)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %q has no options", q.ID)
		}
		for oi, opt := range q.Options {
			for careerID, weight := range opt.Weights {
				if weight < 0 || weight > 1 {
					return nil, fmt.Errorf("question %q option %d: weight %f for career %q outside [0,1]",
						q.ID, oi, weight, careerID)
				}
			}
		}
		b.byID[q.ID] = i
	}

	// First-encounter order of career IDs, scanning questions in bank order
	// and options in option order. Iterating a weight map directly would make
	// the order vary between runs, so options are walked through a sorted key
	// view. This order is the ranking tie-break.
	for _, q := range questions {
		for _, opt := range q.Options {
			for _, careerID := range sortedWeightKeys(opt.Weights) {
				if _, seen := b.careerOrder[careerID]; !seen {
					b.careerOrder[careerID] = len(b.careerIDs)
					b.careerIDs = append(b.careerIDs, careerID)
				}
			}
		}
	}

	return b, nil
}

// MustNewBank is NewBank for statically known data; it panics on invalid
// input and is intended for wiring the built-in production bank.
func MustNewBank(questions []Question) *Bank {
	b, err := NewBank(questions)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Question looks up a question by identifier.
func (b *Bank) Question(id string) (Question, bool) {
	i, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i], true
}

// Questions returns the ordered question sequence. The returned slice is a
// copy; the bank itself stays immutable.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// CareerIDs returns every career identifier referenced anywhere in the bank's
// weight maps, in first-encounter order.
func (b *Bank) CareerIDs() []string {
	out := make([]string, len(b.careerIDs))
	copy(out, b.careerIDs)
	return out
}

func (b *Bank) careerRank(careerID string) int {
	return b.careerOrder[careerID]
}

func sortedWeightKeys(weights map[string]float64) []string {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PublicView returns the client-facing question sequence with weight maps
// stripped.
func (b *Bank) PublicView() []QuestionView {
	views := make([]QuestionView, 0, len(b.questions))
	for _, q := range b.questions {
		opts := make([]OptionView, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, OptionView{Text: o.Text})
		}
		views = append(views, QuestionView{
			ID:       q.ID,
			Category: q.Category,
			Text:     q.Text,
			Options:  opts,
		})
	}
	return views
}
