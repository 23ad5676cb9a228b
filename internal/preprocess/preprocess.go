package preprocess

import (
	"bytes"

	"golang.org/x/net/html"
)

// Preprocess implements spec.md §4.2 end to end: parse, strip non-content
// tags, remove boilerplate with main-content protection, locate the main
// container, and strip UI widgets inside it.
//
// Malformed HTML is tolerated: golang.org/x/net/html never fails to parse,
// it repairs as it goes. The worst case is a Result with a nil Container.
func Preprocess(rawHTML string) Result {
	doc, err := html.Parse(bytes.NewReader([]byte(rawHTML)))
	if err != nil || doc == nil {
		return Result{}
	}

	stripNonContent(doc)
	removeBoilerplate(doc)

	container, selector := locateMainContainer(doc)
	if container == nil {
		return Result{Doc: doc}
	}

	removeUIWidgets(container)

	return Result{Doc: doc, Selector: selector, Container: container}
}
