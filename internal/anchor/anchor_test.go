package anchor_test

import (
	"testing"

	"github.com/rohmanhakim/queryexcerpt/internal/anchor"
	"github.com/rohmanhakim/queryexcerpt/internal/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_RejectsBelowMinScore(t *testing.T) {
	candidates := []rank.Candidate{{GlobalIndex: 0, CombinedScore: 0.1}}
	tokens := func(int) []string { return nil }
	selected := anchor.Select(candidates, tokens, anchor.DefaultConfig())
	assert.Empty(t, selected)
}

func TestSelect_RejectsTooCloseInPosition(t *testing.T) {
	candidates := []rank.Candidate{
		{GlobalIndex: 10, CombinedScore: 0.9},
		{GlobalIndex: 11, CombinedScore: 0.8},
	}
	tokens := func(i int) []string { return []string{"a", "b"} }
	selected := anchor.Select(candidates, tokens, anchor.DefaultConfig())
	require.Len(t, selected, 1)
	assert.Equal(t, 10, selected[0].GlobalIndex)
}

func TestSelect_RejectsTooSimilar(t *testing.T) {
	candidates := []rank.Candidate{
		{GlobalIndex: 0, CombinedScore: 0.9},
		{GlobalIndex: 20, CombinedScore: 0.8},
	}
	tokens := func(i int) []string { return []string{"widget", "factory", "plant"} }
	selected := anchor.Select(candidates, tokens, anchor.DefaultConfig())
	require.Len(t, selected, 1)
}

func TestSelect_AcceptsDiverseFarApartCandidates(t *testing.T) {
	candidates := []rank.Candidate{
		{GlobalIndex: 0, CombinedScore: 0.9},
		{GlobalIndex: 20, CombinedScore: 0.8},
	}
	tokenSets := map[int][]string{
		0:  {"widget", "factory"},
		20: {"gadget", "shop"},
	}
	tokens := func(i int) []string { return tokenSets[i] }
	selected := anchor.Select(candidates, tokens, anchor.DefaultConfig())
	assert.Len(t, selected, 2)
}

func TestSelect_StopsAtMaxAnchors(t *testing.T) {
	var candidates []rank.Candidate
	for i := 0; i < 10; i++ {
		candidates = append(candidates, rank.Candidate{GlobalIndex: i * 10, CombinedScore: 0.9})
	}
	tokenSets := map[int][]string{}
	for i := 0; i < 10; i++ {
		tokenSets[i*10] = []string{"unique" + string(rune('a'+i)), "term" + string(rune('a'+i))}
	}
	tokens := func(i int) []string { return tokenSets[i] }
	selected := anchor.Select(candidates, tokens, anchor.DefaultConfig())
	assert.Len(t, selected, anchor.DefaultConfig().MaxAnchors)
}
