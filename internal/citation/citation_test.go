package citation_test

import (
	"testing"

	"github.com/rohmanhakim/queryexcerpt/internal/citation"
	"github.com/rohmanhakim/queryexcerpt/internal/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCitation_StrongPatterns(t *testing.T) {
	cases := []string{
		"^ This is a footnote reference.",
		"Retrieved March 4, 2021, from the archive.",
		"Archived from the original on January 1, 2020.",
		"See doi:10.1000/xyz123 for the full paper.",
		"ISBN 978-3-16-148410-0",
		"PMID: 12345678",
		"arXiv:2101.00001",
		"ISSN 1234-5678",
		"[1] Smith, J. Introduction to Widgets.",
	}
	for _, c := range cases {
		assert.True(t, citation.IsCitation(c), "expected citation: %q", c)
	}
}

func TestIsCitation_ShortOnlyPatternsRequireShortLength(t *testing.T) {
	assert.True(t, citation.IsCitation("example.com"))
	longVersion := "This sentence mentions example.com as one of many long-form examples discussed at length."
	assert.False(t, citation.IsCitation(longVersion))
}

func TestIsCitation_OrdinaryProseIsNotCitation(t *testing.T) {
	assert.False(t, citation.IsCitation("The widget factory produces one thousand units per day."))
}

func TestFilter_RemovesOnlyCitations(t *testing.T) {
	sentences := []segment.Sentence{
		{Text: "The widget factory produces units daily.", GlobalIndex: 0},
		{Text: "[1] Smith, J. Widgets Quarterly.", GlobalIndex: 1},
		{Text: "Production continued through the winter months.", GlobalIndex: 2},
	}
	filtered := citation.Filter(sentences)
	require.Len(t, filtered, 2)
	assert.Equal(t, 0, filtered[0].GlobalIndex)
	assert.Equal(t, 2, filtered[1].GlobalIndex)
}
