package expand

import "github.com/rohmanhakim/queryexcerpt/internal/segment"

// window computes the inclusive [start, end] sentence-slice indices a
// chunk should span for anchorIdx, before code-block bleed adjustment.
// sentences must be sorted by GlobalIndex ascending, which is how package
// segment always produces them.
func window(sentences []segment.Sentence, anchorIdx int, cfg Config) (start, end int) {
	if cfg.Mode == ModeSection {
		return sectionWindow(sentences, anchorIdx, cfg)
	}
	return sentenceCountWindow(sentences, anchorIdx, cfg)
}

// sectionWindow bounds the chunk to the heading-delimited section the
// anchor lives in: every sentence back to (but excluding) the nearest
// preceding heading of level L, and forward to (but excluding) the nearest
// following heading of level ≤ L, where L is that nearest preceding
// heading's level (0, i.e. no ceiling, if the anchor precedes any
// heading). A deeper subsection heading — one with a higher level number —
// stays inside the section rather than ending it. If the whole section
// exceeds MaxChunkChars, it instead centers on the anchor and expands
// outward one sentence at a time, alternating before and after, stopping
// just before the budget would be exceeded.
func sectionWindow(sentences []segment.Sentence, anchorIdx int, cfg Config) (start, end int) {
	sectionStart := anchorIdx
	for sectionStart > 0 && !sentences[sectionStart-1].BlockType.IsHeading() {
		sectionStart--
	}
	level := 0
	if sectionStart > 0 {
		level = sentences[sectionStart-1].BlockType.HeadingLevel()
	}
	sectionEnd := anchorIdx
	for sectionEnd < len(sentences)-1 && !headingAtOrAbove(sentences[sectionEnd+1], level) {
		sectionEnd++
	}

	if rawCharCount(sentences[sectionStart:sectionEnd+1]) <= cfg.MaxChunkChars {
		return sectionStart, sectionEnd
	}

	start, end = anchorIdx, anchorIdx
	expandBefore := true
	for {
		nextStart, nextEnd, grew := start, end, false
		if expandBefore && start > sectionStart {
			nextStart, grew = start-1, true
		} else if !expandBefore && end < sectionEnd {
			nextEnd, grew = end+1, true
		} else if end < sectionEnd {
			nextEnd, grew = end+1, true
		} else if start > sectionStart {
			nextStart, grew = start-1, true
		}
		if !grew {
			break
		}
		if rawCharCount(sentences[nextStart:nextEnd+1]) > cfg.MaxChunkChars {
			break
		}
		start, end = nextStart, nextEnd
		expandBefore = !expandBefore
	}
	return start, end
}

// headingAtOrAbove reports whether s is a heading that terminates a
// section bounded by level: any heading when level is 0 (the anchor
// precedes every heading in the document, so the leading section ends at
// the first one), else only a heading whose level is ≤ level — a deeper
// subsection heading does not end the section it lives inside.
func headingAtOrAbove(s segment.Sentence, level int) bool {
	hl := s.BlockType.HeadingLevel()
	if hl == 0 {
		return false
	}
	if level == 0 {
		return true
	}
	return hl <= level
}

// sentenceCountWindow takes ContextBefore sentences before the anchor and
// ContextAfter after it, clamping each side at the document bounds; a side
// that runs out of sentences is not made up on the other side.
func sentenceCountWindow(sentences []segment.Sentence, anchorIdx int, cfg Config) (start, end int) {
	start = anchorIdx - cfg.ContextBefore
	end = anchorIdx + cfg.ContextAfter

	if start < 0 {
		start = 0
	}
	if lastIdx := len(sentences) - 1; end > lastIdx {
		end = lastIdx
	}
	return start, end
}
