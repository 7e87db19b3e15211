package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

type countCall struct {
	name string
	tags map[string]string
}

type recordingSink struct {
	counts  []countCall
	timings []countCall
}

func (r *recordingSink) Count(name string, _ int64, tags map[string]string) {
	r.counts = append(r.counts, countCall{name, tags})
}

func (r *recordingSink) Gauge(string, float64, map[string]string) {}

func (r *recordingSink) Timing(name string, _ time.Duration, tags map[string]string) {
	r.timings = append(r.timings, countCall{name, tags})
}

func TestEmitTransition_Success(t *testing.T) {
	sink := &recordingSink{}
	EmitTransition(sink, Transition{Entity: EntityBid, Operation: "accept", Duration: time.Millisecond})

	require.Len(t, sink.counts, 1)
	assert.Equal(t, "bid.transition", sink.counts[0].name)
	assert.Equal(t, map[string]string{"operation": "accept", "result": ResultSuccess}, sink.counts[0].tags)
	require.Len(t, sink.timings, 1)
	assert.Equal(t, "bid.duration", sink.timings[0].name)
}

func TestEmitTransition_ErrorClass(t *testing.T) {
	sink := &recordingSink{}
	EmitTransition(sink, Transition{
		Entity:    EntityJob,
		Operation: "cancel",
		Err:       apperrors.InvalidState("job is in-progress"),
	})

	require.Len(t, sink.counts, 1)
	assert.Equal(t, ResultError, sink.counts[0].tags["result"])
	assert.Equal(t, "invalid_state", sink.counts[0].tags["error_class"])
	assert.Empty(t, sink.timings)
}

func TestEmitTransition_NilSink(t *testing.T) {
	assert.NotPanics(t, func() { EmitTransition(nil, Transition{Entity: EntityBid}) })
}
