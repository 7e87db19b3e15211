// Package metrics emits standardised marketplace lifecycle metrics.
package metrics

import (
	"time"

	obserrors "github.com/hustlehub/hustle-api/internal/observability/errors"
	"github.com/hustlehub/hustle-api/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Entities that go through lifecycle transitions.
const (
	EntityBid = "bid"
	EntityJob = "job"
)

// Transition captures one lifecycle operation for metric emission.
type Transition struct {
	Entity    string // bid or job
	Operation string // place, accept, reject, withdraw, cancel, review
	Duration  time.Duration
	Err       error
}

// EmitTransition emits a "<entity>.transition" counter tagged with the
// operation and result, plus a timing when Duration is set.
func EmitTransition(sink statsd.Sink, in Transition) {
	if sink == nil || in.Entity == "" {
		return
	}

	result := ResultSuccess
	if in.Err != nil {
		result = ResultError
	}
	tags := map[string]string{
		"operation": in.Operation,
		"result":    result,
	}
	if class := obserrors.Classify(in.Err); class != "" {
		tags["error_class"] = class
	}

	sink.Count(in.Entity+".transition", 1, tags)

	if in.Duration > 0 {
		sink.Timing(in.Entity+".duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
