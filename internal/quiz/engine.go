package quiz

import (
	"math"
	"sort"
)

// DefaultMatchLimit is the documented product behavior: top 5 careers.
const DefaultMatchLimit = 5

// Engine computes career matches from a completed answer set. All working
// state is local to a single ComputeMatches call, so one Engine may serve
// arbitrarily many sessions in parallel.
type Engine struct {
	bank    *Bank
	weights CategoryWeights
}

// NewEngine builds a scoring engine over an immutable question bank. The
// category weights are validated once here; scoring itself cannot fail on
// valid input.
func NewEngine(bank *Bank, weights CategoryWeights) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{bank: bank, weights: weights}, nil
}

// Bank returns the question bank the engine scores against.
func (e *Engine) Bank() *Bank {
	return e.bank
}

// ComputeMatches aggregates the answer set into per-category totals per
// career, combines them with the category weights and normalizes against the
// best raw score. Only careers with a positive raw score appear; an empty
// answer set yields an empty list. The result is ordered by match percentage
// descending with first-encounter order as the tie-break.
//
// Validation is fail-closed: any answer referencing an unknown question or an
// out-of-range option rejects the whole submission with ErrInvalidAnswer. A
// duplicated question ID is not an error; only its last selection counts.
func (e *Engine) ComputeMatches(answers []Answer) ([]CareerMatch, error) {
	// At most one answer counts per question. A repeated question ID replaces
	// the earlier selection (last write wins), so a payload that repeats a
	// question can never double-count its weights.
	selected := make(map[string]int, len(answers))
	for _, a := range answers {
		q, ok := e.bank.Question(a.QuestionID)
		if !ok {
			return nil, errUnknownQuestion(a.QuestionID)
		}
		if a.SelectedOption < 0 || a.SelectedOption >= len(q.Options) {
			return nil, errOptionOutOfRange(a.QuestionID, a.SelectedOption, len(q.Options))
		}
		selected[a.QuestionID] = a.SelectedOption
	}

	totals := make(map[string]*CategoryScore)
	for questionID, optionIndex := range selected {
		q, _ := e.bank.Question(questionID)
		opt := q.Options[optionIndex]
		for careerID, weight := range opt.Weights {
			score, ok := totals[careerID]
			if !ok {
				score = &CategoryScore{}
				totals[careerID] = score
			}
			score.add(q.Category, weight)
		}
	}

	type scored struct {
		careerID string
		raw      float64
		score    CategoryScore
	}

	var maxRaw float64
	candidates := make([]scored, 0, len(totals))
	for careerID, score := range totals {
		var raw float64
		for c, w := range e.weights {
			raw += score.get(c) * w
		}
		if raw <= 0 {
			continue
		}
		if raw > maxRaw {
			maxRaw = raw
		}
		candidates = append(candidates, scored{careerID: careerID, raw: raw, score: *score})
	}

	// Degenerate case: no scoring signal at all, nothing to recommend.
	if maxRaw == 0 {
		return []CareerMatch{}, nil
	}

	matches := make([]CareerMatch, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, CareerMatch{
			CareerID:        c.careerID,
			MatchPercentage: int(math.Round(100 * c.raw / maxRaw)),
			Score:           c.score,
		})
	}

	// Stable sort over encounter-ordered input keeps equal percentages in the
	// order careers first appear in the bank, so repeated runs never reorder.
	sort.Slice(matches, func(i, j int) bool {
		return e.bank.careerRank(matches[i].CareerID) < e.bank.careerRank(matches[j].CareerID)
	})
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})

	return matches, nil
}

// Rank truncates an already-scored match list to the top limit entries. A
// limit larger than the list simply returns the whole list; a non-positive
// limit is rejected.
func Rank(matches []CareerMatch, limit int) ([]CareerMatch, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	if limit > len(matches) {
		limit = len(matches)
	}
	out := make([]CareerMatch, limit)
	copy(out, matches[:limit])
	return out, nil
}
