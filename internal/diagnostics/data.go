package diagnostics

import "time"

/*
Events Collected
- Outcome reasons (why a stage returned no content)
- Content fingerprints
- Stage names and actions
- Timestamps

Observability Goals
- Debuggable extraction behavior
- Post-run auditability without altering results

Structured event recording is preferred over ad-hoc logging.

Allowed:
- Primitive values
- Timestamps
- Content digests (as values, not objects with behavior)
- Stage/action identifiers
*/

// ErrorCause is a closed, canonical classification used exclusively for
// observability (diagnostics trails, reporting).
//
// Rules:
//   - ErrorCause is for observability only.
//   - It must never be used to derive ranking, selection, or budget decisions.
//   - Any use of diagnostics.ErrorCause outside reporting is a design violation.
//   - ErrorCause values MUST have stable, package-agnostic semantics.
//   - Pipeline stages MAY map their local outcomes to ErrorCause, but MUST
//     NOT invent new meanings.
//
// If a failure does not clearly match a defined cause, CauseUnknown MUST be
// used.
type ErrorCause int

const (
	// CauseUnknown is a safe fallback for failures that do not map cleanly
	// to any known category.
	CauseUnknown ErrorCause = iota
	// CauseNoMainContent means the preprocessor could not locate a main
	// content container.
	CauseNoMainContent
	// CauseNoSentences means segmentation produced no sentences.
	CauseNoSentences
	// CauseAllCitations means the citation filter removed every sentence.
	CauseAllCitations
	// CauseLowQuality means the quality gate rejected the document.
	CauseLowQuality
	// CauseNotRelevant means the ranker found no relevant sentences for
	// the query.
	CauseNotRelevant
)

// Attribute is a primitive key/value pair attached to an Event.
type Attribute struct {
	Key   AttributeKey
	Value string
}

func NewAttr(key AttributeKey, val string) Attribute {
	return Attribute{Key: key, Value: val}
}

type AttributeKey string

const (
	AttrField   AttributeKey = "field"
	AttrMessage AttributeKey = "message"
	AttrDigest  AttributeKey = "digest"
	AttrQuery   AttributeKey = "query"
)

// Event is a single observability record describing why a stage produced
// a non-ok outcome, or a purely informational fact such as a content digest.
type Event struct {
	ObservedAt time.Time
	Stage      string
	Action     string
	Cause      ErrorCause
	Message    string
	Attrs      []Attribute
}
