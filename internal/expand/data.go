// Package expand implements spec.md §4.10: growing each anchor sentence
// into a readable chunk of surrounding context, either bounded by the
// heading section it lives in or by a fixed sentence window, and
// rendering that chunk back into display text.
package expand

import "github.com/rohmanhakim/queryexcerpt/internal/segment"

// Mode selects how a chunk's sentence window is chosen around its anchor.
type Mode string

const (
	// ModeSection grows the chunk to the full heading-delimited section
	// the anchor sentence lives in.
	ModeSection Mode = "section"
	// ModeSentenceCount grows the chunk by a fixed number of sentences
	// before and after the anchor, shrinking symmetrically near either
	// end of the document.
	ModeSentenceCount Mode = "sentenceCount"
)

// Config holds the expander's tunables. Defaults match spec.md §4.10.
type Config struct {
	Mode              Mode
	ContextBefore     int
	ContextAfter      int
	MaxChunkChars     int
	IncludeCodeBlocks bool

	// RespectBlockBoundaries is part of spec.md §6's configuration
	// surface. ModeSentenceCount already only ever shrinks a window at
	// sentence granularity and ModeSection is bounded by heading
	// boundaries by construction, so there is no window-growth behavior
	// left for this flag to gate; it is accepted for API compatibility
	// with callers that set every documented key.
	RespectBlockBoundaries bool
}

func DefaultConfig() Config {
	return Config{
		Mode:                   ModeSection,
		ContextBefore:          5,
		ContextAfter:           8,
		MaxChunkChars:          2000,
		IncludeCodeBlocks:      true,
		RespectBlockBoundaries: true,
	}
}

// Chunk is an expanded, renderable excerpt region anchored on one
// high-scoring sentence. HeadingPath is the anchor sentence's heading
// ancestry, carried through so the public API can report source structure
// alongside the excerpt text.
type Chunk struct {
	AnchorGlobalIndex int
	HeadingPath       []string
	Sentences         []segment.Sentence
	Text              string
	CharCount         int
	Score             float64
}
