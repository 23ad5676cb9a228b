// Package segment implements spec.md §4.3: a depth-first walk of the main
// content container into Blocks carrying heading-path ancestry, and a
// sentence splitter that turns paragraph/list blocks into scored Sentence
// units.
package segment

// BlockType is a closed, nine-variant tagged union: six heading levels
// plus paragraph, list item, and preformatted code.
type BlockType string

const (
	BlockH1  BlockType = "h1"
	BlockH2  BlockType = "h2"
	BlockH3  BlockType = "h3"
	BlockH4  BlockType = "h4"
	BlockH5  BlockType = "h5"
	BlockH6  BlockType = "h6"
	BlockP   BlockType = "p"
	BlockLI  BlockType = "li"
	BlockPre BlockType = "pre"
)

// HeadingLevel returns the 1-6 heading level for a heading BlockType, or 0
// for non-heading types.
func (b BlockType) HeadingLevel() int {
	switch b {
	case BlockH1:
		return 1
	case BlockH2:
		return 2
	case BlockH3:
		return 3
	case BlockH4:
		return 4
	case BlockH5:
		return 5
	case BlockH6:
		return 6
	default:
		return 0
	}
}

func (b BlockType) IsHeading() bool { return b.HeadingLevel() > 0 }

// Block is an atomic structural unit of a document, in document order.
type Block struct {
	Type        BlockType
	Text        string
	Index       int
	HeadingPath []string
}

// Sentence is the unit of scoring throughout the rest of the pipeline.
type Sentence struct {
	Text          string
	Tokens        []string
	HeadingPath   []string
	BlockType     BlockType
	BlockIndex    int
	SentenceIndex int
	GlobalIndex   int
	Position      float64
}

// Options controls segmentation. SkipNav mirrors spec.md §4.3's default
// behavior of not descending into <nav> elements.
type Options struct {
	SkipNav bool
}

func DefaultOptions() Options {
	return Options{SkipNav: true}
}
