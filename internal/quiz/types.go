package quiz

// Category groups quiz questions into the four weighted dimensions used by the
// scoring engine.
type Category string

const (
	CategoryInterests   Category = "interests"
	CategorySkills      Category = "skills"
	CategoryPreferences Category = "preferences"
	CategoryLifestyle   Category = "lifestyle"
)

// Categories lists all valid categories in their canonical order.
func Categories() []Category {
	return []Category{CategoryInterests, CategorySkills, CategoryPreferences, CategoryLifestyle}
}

// Option is a single selectable answer for a question. Weights maps a career
// identifier to that option's contribution score in [0.0, 1.0]; careers absent
// from the map contribute 0. Weights are independent per-career scores, not a
// distribution.
type Option struct {
	Text    string             `json:"text"`
	Weights map[string]float64 `json:"-"`
}

// Question is an immutable quiz question. Defined once at process start and
// never mutated afterwards.
type Question struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Text     string   `json:"question"`
	Options  []Option `json:"options"`
}

// Answer records the selected option index for one question. At most one
// answer exists per question identifier; a later answer for the same question
// replaces the earlier one.
type Answer struct {
	QuestionID     string `json:"question_id" validate:"required"`
	SelectedOption int    `json:"selected_option" validate:"gte=0"`
}

// CategoryScore is the per-category breakdown reported with each match. The
// values are the career's unnormalized running totals so callers can see where
// the contribution came from.
type CategoryScore struct {
	Interests   float64 `json:"interests"`
	Skills      float64 `json:"skills"`
	Preferences float64 `json:"preferences"`
	Lifestyle   float64 `json:"lifestyle"`
}

func (s CategoryScore) get(c Category) float64 {
	switch c {
	case CategoryInterests:
		return s.Interests
	case CategorySkills:
		return s.Skills
	case CategoryPreferences:
		return s.Preferences
	case CategoryLifestyle:
		return s.Lifestyle
	}
	return 0
}

func (s *CategoryScore) add(c Category, w float64) {
	switch c {
	case CategoryInterests:
		s.Interests += w
	case CategorySkills:
		s.Skills += w
	case CategoryPreferences:
		s.Preferences += w
	case CategoryLifestyle:
		s.Lifestyle += w
	}
}

// CareerMatch is one entry of the ranked quiz result. MatchPercentage is the
// career's raw score normalized against the best-scoring career (0-100,
// rounded), so the top match always reads as 100.
type CareerMatch struct {
	CareerID        string        `json:"career_id"`
	CareerName      string        `json:"career_name"`
	MatchPercentage int           `json:"match_percentage"`
	Score           CategoryScore `json:"score"`
}

// OptionView is the client-facing shape of an option: text only, never the
// weight map.
type OptionView struct {
	Text string `json:"text"`
}

// QuestionView is the read-only question shape exposed to front ends driving
// the quiz flow.
type QuestionView struct {
	ID       string       `json:"id"`
	Category Category     `json:"category"`
	Text     string       `json:"question"`
	Options  []OptionView `json:"options"`
}
