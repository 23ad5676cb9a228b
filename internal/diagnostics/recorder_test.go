package diagnostics_test

import (
	"testing"

	"github.com/rohmanhakim/queryexcerpt/internal/diagnostics"
	"github.com/stretchr/testify/assert"
)

func TestSliceRecorder_AccumulatesEvents(t *testing.T) {
	rec := diagnostics.NewSliceRecorder()

	diagnostics.RecordOutcome(rec, "quality", "Evaluate", diagnostics.CauseLowQuality,
		"too few sentences", diagnostics.NewAttr(diagnostics.AttrField, "totalSentences"))

	assert.Len(t, rec.Events, 1)
	assert.Equal(t, diagnostics.CauseLowQuality, rec.Events[0].Cause)
	assert.Equal(t, "quality", rec.Events[0].Stage)
	assert.Equal(t, "totalSentences", rec.Events[0].Attrs[0].Value)
}

func TestNoopRecorder_DiscardsEvents(t *testing.T) {
	var rec diagnostics.NoopRecorder
	// Must not panic, must not accumulate anything observable.
	diagnostics.RecordOutcome(rec, "quality", "Evaluate", diagnostics.CauseLowQuality, "x")
}

func TestRecordOutcome_NilRecorderIsSafe(t *testing.T) {
	var rec diagnostics.Recorder
	assert.NotPanics(t, func() {
		diagnostics.RecordOutcome(rec, "quality", "Evaluate", diagnostics.CauseLowQuality, "x")
	})

	var sr *diagnostics.SliceRecorder
	assert.NotPanics(t, func() {
		sr.Record(diagnostics.Event{})
	})
}
