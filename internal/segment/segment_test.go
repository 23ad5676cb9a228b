package segment_test

import (
	"bytes"
	"testing"

	"github.com/rohmanhakim/queryexcerpt/internal/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t *testing.T, fragment string) *html.Node {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader([]byte("<html><body>" + fragment + "</body></html>")))
	require.NoError(t, err)
	return doc
}

func TestSegment_AbbreviationsDoNotSplitSentences(t *testing.T) {
	doc := parse(t, `<main><p>Dr. Smith works at Example Inc. every day.</p></main>`)
	sentences := segment.Segment(doc, segment.DefaultOptions())
	require.Len(t, sentences, 1)
	assert.Equal(t, "Dr. Smith works at Example Inc. every day.", sentences[0].Text)
}

func TestSegment_GenuineSentenceBoundarySplits(t *testing.T) {
	doc := parse(t, `<main><p>This is one sentence. This is another one.</p></main>`)
	sentences := segment.Segment(doc, segment.DefaultOptions())
	require.Len(t, sentences, 2)
	assert.Equal(t, "This is one sentence.", sentences[0].Text)
	assert.Equal(t, "This is another one.", sentences[1].Text)
}

func TestSegment_HeadingPathAsymmetricTruncation(t *testing.T) {
	doc := parse(t, `<main>
		<h1>Intro</h1>
		<p>Top level paragraph.</p>
		<h2>Setup</h2>
		<p>Setup paragraph.</p>
		<h2>Usage</h2>
		<h3>Advanced</h3>
		<p>Advanced paragraph.</p>
	</main>`)
	sentences := segment.Segment(doc, segment.DefaultOptions())
	require.NotEmpty(t, sentences)

	byText := map[string]segment.Sentence{}
	for _, s := range sentences {
		byText[s.Text] = s
	}

	top, ok := byText["Top level paragraph."]
	require.True(t, ok)
	assert.Equal(t, []string{"Intro"}, top.HeadingPath)

	setupPara, ok := byText["Setup paragraph."]
	require.True(t, ok)
	assert.Equal(t, []string{"Intro", "Setup"}, setupPara.HeadingPath)

	advPara, ok := byText["Advanced paragraph."]
	require.True(t, ok)
	assert.Equal(t, []string{"Intro", "Usage", "Advanced"}, advPara.HeadingPath)
}

func TestSegment_HeadingBlockPathExcludesItself(t *testing.T) {
	doc := parse(t, `<main><h1>Intro</h1><h2>Setup</h2></main>`)
	sentences := segment.Segment(doc, segment.DefaultOptions())
	require.Len(t, sentences, 2)
	assert.Empty(t, sentences[0].HeadingPath, "h1's own path must not include itself")
	assert.Equal(t, []string{"Intro"}, sentences[1].HeadingPath)
}

func TestSegment_CodeBlockStripsTrailingUIText(t *testing.T) {
	doc := parse(t, `<main><pre>console.log("hi")
Copy</pre></main>`)
	sentences := segment.Segment(doc, segment.DefaultOptions())
	require.Len(t, sentences, 1)
	assert.Equal(t, `console.log("hi")`, sentences[0].Text)
}

func TestSegment_CodeBlockJoinsLineSpans(t *testing.T) {
	doc := parse(t, `<main><pre><span class="line">const a = 1;</span><span class="line">const b = 2;</span></pre></main>`)
	sentences := segment.Segment(doc, segment.DefaultOptions())
	require.Len(t, sentences, 1)
	assert.Equal(t, "const a = 1;\nconst b = 2;", sentences[0].Text)
}

func TestSegment_SkipsNavByDefault(t *testing.T) {
	doc := parse(t, `<main><nav><p>menu item</p></nav><p>Real content.</p></main>`)
	sentences := segment.Segment(doc, segment.DefaultOptions())
	for _, s := range sentences {
		assert.NotContains(t, s.Text, "menu item")
	}
}

func TestSegment_DenseGlobalIndex(t *testing.T) {
	doc := parse(t, `<main><p>First sentence. Second sentence.</p><p>Third one.</p></main>`)
	sentences := segment.Segment(doc, segment.DefaultOptions())
	for i, s := range sentences {
		assert.Equal(t, i, s.GlobalIndex)
	}
}

func TestSegment_PositionSpansZeroToOne(t *testing.T) {
	doc := parse(t, `<main><h1>A</h1><p>B.</p><p>C.</p></main>`)
	sentences := segment.Segment(doc, segment.DefaultOptions())
	require.NotEmpty(t, sentences)
	assert.Equal(t, 0.0, sentences[0].Position)
	assert.Equal(t, 1.0, sentences[len(sentences)-1].Position)
}

func TestSegment_EmptyContainerYieldsNoSentences(t *testing.T) {
	doc := parse(t, `<main></main>`)
	sentences := segment.Segment(doc, segment.DefaultOptions())
	assert.Empty(t, sentences)
}

func TestSegment_NilContainer(t *testing.T) {
	assert.Empty(t, segment.Segment(nil, segment.DefaultOptions()))
}
