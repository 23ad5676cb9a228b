package quality_test

import (
	"strings"
	"testing"

	"github.com/rohmanhakim/queryexcerpt/internal/quality"
	"github.com/rohmanhakim/queryexcerpt/internal/segment"
	"github.com/stretchr/testify/assert"
)

func sentencesOfLengths(lens ...int) []segment.Sentence {
	out := make([]segment.Sentence, len(lens))
	for i, l := range lens {
		out[i] = segment.Sentence{Text: strings.Repeat("a", l)}
	}
	return out
}

func TestEvaluate_EmptyInput(t *testing.T) {
	r := quality.Evaluate(nil, quality.DefaultConfig())
	assert.False(t, r.Passes)
	assert.Equal(t, 1.0, r.FragmentRatio)
	assert.Equal(t, "No sentences found", r.Reason)
}

func TestEvaluate_TooFewSentencesFails(t *testing.T) {
	r := quality.Evaluate(sentencesOfLengths(60, 60, 60), quality.DefaultConfig())
	assert.False(t, r.Passes)
	assert.Equal(t, "Too few sentences", r.Reason)
}

func TestEvaluate_TooFewLongSentencesFails(t *testing.T) {
	r := quality.Evaluate(sentencesOfLengths(40, 40, 40, 40, 40), quality.DefaultConfig())
	assert.False(t, r.Passes)
	assert.Equal(t, "Too few substantial sentences", r.Reason)
}

func TestEvaluate_TooManyFragmentsFails(t *testing.T) {
	lens := []int{60, 60, 60, 10, 10, 10, 10, 10, 10, 10}
	r := quality.Evaluate(sentencesOfLengths(lens...), quality.DefaultConfig())
	assert.False(t, r.Passes)
	assert.Equal(t, "Too many sentence fragments", r.Reason)
}

func TestEvaluate_LowMedianFails(t *testing.T) {
	lens := []int{60, 60, 60, 20, 20, 20, 20, 20}
	r := quality.Evaluate(sentencesOfLengths(lens...), quality.DefaultConfig())
	assert.False(t, r.Passes)
	assert.Equal(t, "Median sentence length too low", r.Reason)
}

func TestEvaluate_Passes(t *testing.T) {
	lens := []int{60, 60, 60, 40, 40, 40, 40}
	r := quality.Evaluate(sentencesOfLengths(lens...), quality.DefaultConfig())
	assert.True(t, r.Passes)
	assert.Empty(t, r.Reason)
}
