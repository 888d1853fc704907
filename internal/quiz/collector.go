package quiz

// Collector accumulates one selected option index per question over a single
// quiz session. Answers may arrive in any order; recording an answer for an
// already-answered question overwrites it (last write wins). A Collector is
// owned by one interactive session and is not safe for concurrent writers.
type Collector struct {
	bank    *Bank
	answers map[string]int
}

// NewCollector creates an empty collector bound to a question bank.
func NewCollector(bank *Bank) *Collector {
	return &Collector{
		bank:    bank,
		answers: make(map[string]int),
	}
}

// Record stores the selected option index for a question. It returns
// ErrInvalidAnswer when the question is unknown or the index is out of range;
// replacing an existing answer is not an error.
func (c *Collector) Record(questionID string, optionIndex int) error {
	q, ok := c.bank.Question(questionID)
	if !ok {
		return errUnknownQuestion(questionID)
	}
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return errOptionOutOfRange(questionID, optionIndex, len(q.Options))
	}
	c.answers[questionID] = optionIndex
	return nil
}

// Answer returns the recorded option index for a question, if any.
func (c *Collector) Answer(questionID string) (int, bool) {
	idx, ok := c.answers[questionID]
	return idx, ok
}

// Answers returns the accumulated answer set in bank question order, ready to
// hand to the scoring engine.
func (c *Collector) Answers() []Answer {
	out := make([]Answer, 0, len(c.answers))
	for _, q := range c.bank.Questions() {
		if idx, ok := c.answers[q.ID]; ok {
			out = append(out, Answer{QuestionID: q.ID, SelectedOption: idx})
		}
	}
	return out
}

// Complete reports whether every question in the bank has been answered. The
// collector itself never enforces completion; submission is the caller's call.
func (c *Collector) Complete() bool {
	return len(c.answers) == c.bank.Len()
}
