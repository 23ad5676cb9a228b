// Package htmlnode collects the small DOM-walk primitives the preprocessor
// and segmenter both need: attribute lookup, id+class matching, node
// removal, deep cloning, and text extraction. The teacher duplicated these
// across internal/extractor/dom.go and internal/sanitizer/remove.go; here
// they live once.
package htmlnode
