package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordAndOverwrite(t *testing.T) {
	c := NewCollector(testBank(t))

	require.NoError(t, c.Record("q-interests", 0))
	idx, ok := c.Answer("q-interests")
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	// Last write wins.
	require.NoError(t, c.Record("q-interests", 1))
	idx, ok = c.Answer("q-interests")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestCollectorRejectsInvalidAnswers(t *testing.T) {
	c := NewCollector(testBank(t))

	assert.ErrorIs(t, c.Record("missing", 0), ErrInvalidAnswer)
	assert.ErrorIs(t, c.Record("q-interests", -1), ErrInvalidAnswer)
	assert.ErrorIs(t, c.Record("q-interests", 2), ErrInvalidAnswer)

	_, ok := c.Answer("q-interests")
	assert.False(t, ok)
}

func TestCollectorAnswersInBankOrder(t *testing.T) {
	c := NewCollector(testBank(t))

	// Record out of bank order.
	require.NoError(t, c.Record("q-skills", 1))
	require.NoError(t, c.Record("q-interests", 0))

	answers := c.Answers()
	require.Len(t, answers, 2)
	assert.Equal(t, Answer{QuestionID: "q-interests", SelectedOption: 0}, answers[0])
	assert.Equal(t, Answer{QuestionID: "q-skills", SelectedOption: 1}, answers[1])
}

func TestCollectorComplete(t *testing.T) {
	c := NewCollector(testBank(t))

	assert.False(t, c.Complete())
	require.NoError(t, c.Record("q-interests", 0))
	assert.False(t, c.Complete())
	require.NoError(t, c.Record("q-skills", 0))
	assert.True(t, c.Complete())
}

func TestCollectorFeedsEngine(t *testing.T) {
	bank := testBank(t)
	engine, err := NewEngine(bank, DefaultCategoryWeights())
	require.NoError(t, err)

	c := NewCollector(bank)
	require.NoError(t, c.Record("q-interests", 0))
	require.NoError(t, c.Record("q-skills", 0))
	require.True(t, c.Complete())

	matches, err := engine.ComputeMatches(c.Answers())
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "career-x", matches[0].CareerID)
}
