package tokenizer_test

import (
	"testing"

	"github.com/rohmanhakim/queryexcerpt/internal/tokenizer"
	"github.com/stretchr/testify/assert"
)

func TestTokenize_CamelCaseSplit(t *testing.T) {
	tokens := tokenizer.Tokenize("createXMLParser", tokenizer.Options{MinLength: 2})
	assert.Equal(t, []string{"create", "xml", "parser"}, tokens)
}

func TestTokenize_PunctuationAndCase(t *testing.T) {
	tokens := tokenizer.Tokenize("Hello, World! It's 2024.", tokenizer.DefaultOptions())
	for _, tok := range tokens {
		assert.NotContains(t, tok, ",")
		assert.NotContains(t, tok, "!")
	}
}

func TestTokenize_StopWordsRemoved(t *testing.T) {
	tokens := tokenizer.Tokenize("the quick brown fox", tokenizer.DefaultOptions())
	assert.NotContains(t, tokens, "the")
}

func TestTokenize_StopWordsKeptWhenDisabled(t *testing.T) {
	opts := tokenizer.DefaultOptions()
	opts.RemoveStopWords = false
	opts.ApplyStemming = false
	tokens := tokenizer.Tokenize("the quick brown fox", opts)
	assert.Contains(t, tokens, "the")
}

func TestTokenize_MinLength(t *testing.T) {
	tokens := tokenizer.Tokenize("a an i go", tokenizer.Options{MinLength: 2, RemoveStopWords: false})
	assert.NotContains(t, tokens, "a")
	assert.NotContains(t, tokens, "i")
}

func TestTokenize_Stemming(t *testing.T) {
	tokens := tokenizer.Tokenize("running runs ran", tokenizer.DefaultOptions())
	assert.Equal(t, 3, len(tokens))
	assert.Equal(t, tokens[0], tokens[1])
}

func TestTokenize_EmptyString(t *testing.T) {
	tokens := tokenizer.Tokenize("", tokenizer.DefaultOptions())
	assert.Empty(t, tokens)
}

func TestBuildTermFrequencyMap(t *testing.T) {
	freq := tokenizer.BuildTermFrequencyMap([]string{"a", "b", "a", "c", "a"})
	assert.Equal(t, 3, freq["a"])
	assert.Equal(t, 1, freq["b"])
	assert.Equal(t, 1, freq["c"])
}

func TestJaccardSimilarity(t *testing.T) {
	assert.Equal(t, 0.5, tokenizer.JaccardSimilarity([]string{"a", "b"}, []string{"b", "c"}))
	assert.Equal(t, 0.0, tokenizer.JaccardSimilarity(nil, nil))
	assert.Equal(t, 1.0, tokenizer.JaccardSimilarity([]string{"a"}, []string{"a"}))
}

func TestTermOverlapRatio(t *testing.T) {
	assert.Equal(t, 0.0, tokenizer.TermOverlapRatio(nil, []string{"a"}))
	assert.InDelta(t, 0.5, tokenizer.TermOverlapRatio([]string{"a", "b"}, []string{"a"}), 1e-9)
	assert.InDelta(t, 1.0/3.0, tokenizer.TermOverlapRatio([]string{"a", "a", "b"}, []string{"a"}), 1e-9)
}
