package preprocess_test

import (
	"testing"

	"github.com/rohmanhakim/queryexcerpt/internal/htmlnode"
	"github.com/rohmanhakim/queryexcerpt/internal/preprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocess_FindsMainElement(t *testing.T) {
	res := preprocess.Preprocess(`<html><body><nav>menu</nav><main><h1>T</h1><p>Body text.</p></main></body></html>`)
	require.NotNil(t, res.Container)
	assert.Equal(t, "main", res.Selector)
}

func TestPreprocess_NavOnlyYieldsNoContainer(t *testing.T) {
	res := preprocess.Preprocess(`<html><body><nav><a href="/">Home</a><a href="/a">A</a></nav></body></html>`)
	assert.Nil(t, res.Container)
}

func TestPreprocess_ProtectsMainFromBoilerplateRemoval(t *testing.T) {
	res := preprocess.Preprocess(`<html><body><main><nav class="nav">in-main nav</nav><p>Real content goes here and is long enough.</p></main></body></html>`)
	require.NotNil(t, res.Container)
	text := htmlnode.TextContent(res.Container)
	assert.Contains(t, text, "in-main nav", "nav inside a protected <main> must survive boilerplate removal")
}

func TestPreprocess_EmptyHTML(t *testing.T) {
	res := preprocess.Preprocess("")
	assert.Nil(t, res.Container)
}

func TestPreprocess_ArticleFallback(t *testing.T) {
	res := preprocess.Preprocess(`<html><body><article><h1>T</h1><p>Some article content here.</p></article></body></html>`)
	require.NotNil(t, res.Container)
	assert.Equal(t, "article", res.Selector)
}

func TestPreprocess_StripsScriptsAndStyles(t *testing.T) {
	res := preprocess.Preprocess(`<html><body><main><script>evil()</script><style>.a{}</style><p>Keep this text.</p></main></body></html>`)
	require.NotNil(t, res.Container)
	text := htmlnode.TextContent(res.Container)
	assert.NotContains(t, text, "evil")
}

func TestPreprocess_RemovesCopyButtonWidget(t *testing.T) {
	res := preprocess.Preprocess(`<html><body><main><pre>code</pre><button class="copy-button">Copy</button><p>Some real paragraph content that is long enough to matter.</p></main></body></html>`)
	require.NotNil(t, res.Container)
	text := htmlnode.TextContent(res.Container)
	assert.NotContains(t, text, "Copy")
}
