// Package preprocess implements spec.md §4.2: stripping non-content
// elements, removing boilerplate with main-content protection, locating the
// main content container, and removing UI widgets inside it.
package preprocess

import "golang.org/x/net/html"

// Result is the preprocessor's output: the (mutated in place) document
// root, the selector string identifying the chosen main container, and a
// reference to that container. Container is nil when no main content could
// be located.
type Result struct {
	Doc       *html.Node
	Selector  string
	Container *html.Node
}

// stripTags are removed unconditionally in stage 1, regardless of content.
var stripTags = map[string]struct{}{
	"script": {}, "style": {}, "link": {}, "img": {}, "iframe": {},
	"audio": {}, "video": {}, "embed": {}, "object": {},
	"input": {}, "select": {}, "textarea": {}, "button": {}, "label": {},
	"fieldset": {}, "legend": {}, "output": {}, "progress": {}, "meter": {},
	"noscript": {}, "svg": {}, "canvas": {}, "map": {}, "area": {},
}

// chromeTags are removed in stage 2 unless protected by a main-content
// ancestor.
var chromeTags = map[string]struct{}{
	"nav": {}, "footer": {}, "aside": {}, "header": {},
}
