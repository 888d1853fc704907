package quiz

import (
	"fmt"
	"math"
)

// CategoryWeights maps each category to its relative importance multiplier.
// The four values must sum to 1.0.
type CategoryWeights map[Category]float64

// DefaultCategoryWeights returns the production weight distribution, derived
// from the question split: 6 interests, 4 skills, 4 preferences, 3 lifestyle.
func DefaultCategoryWeights() CategoryWeights {
	return CategoryWeights{
		CategoryInterests:   0.40,
		CategorySkills:      0.30,
		CategoryPreferences: 0.20,
		CategoryLifestyle:   0.10,
	}
}

// Sum returns the total of all category weights.
func (w CategoryWeights) Sum() float64 {
	var total float64
	for _, v := range w {
		total += v
	}
	return total
}

// Validate checks that exactly the four known categories are present, no
// weight is negative, and the weights sum to 1.0.
func (w CategoryWeights) Validate() error {
	if len(w) != len(Categories()) {
		return fmt.Errorf("category weights must define exactly %d categories, got %d", len(Categories()), len(w))
	}
	for _, c := range Categories() {
		v, ok := w[c]
		if !ok {
			return fmt.Errorf("missing weight for category %q", c)
		}
		if v < 0 {
			return fmt.Errorf("negative weight %f for category %q", v, c)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("category weights sum to %.4f, must sum to 1.0", sum)
	}
	return nil
}
