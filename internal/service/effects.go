package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	"github.com/hustlehub/hustle-api/internal/observability/metrics"
	"github.com/hustlehub/hustle-api/internal/observability/statsd"
	"github.com/hustlehub/hustle-api/internal/realtime"
)

// SideEffects groups the post-commit collaborators of the lifecycle services.
// Every field is optional; a nil collaborator turns its effect into a no-op.
// None of them can fail the operation that triggered them.
type SideEffects struct {
	Notifier *NotificationService
	Realtime core.Channel
	JobCache *core.JobCacheService
	Metrics  statsd.Sink
}

// effects runs SideEffects on behalf of one service.
type effects struct {
	SideEffects
	logger *slog.Logger
	now    func() time.Time
}

func newEffects(se SideEffects, logger *slog.Logger) effects {
	if logger == nil {
		logger = slog.Default()
	}
	return effects{SideEffects: se, logger: logger, now: time.Now}
}

func (e effects) notify(ctx context.Context, p NotifyParams) {
	if e.Notifier == nil {
		return
	}
	e.Notifier.Notify(ctx, p)
}

func (e effects) broadcast(ctx context.Context, msgs ...realtime.Message) {
	realtime.Broadcast(ctx, e.Realtime, e.logger, msgs...)
}

func (e effects) invalidate(ctx context.Context, jobIDs ...string) {
	e.JobCache.Invalidate(ctx, jobIDs...)
}

// record emits the transition metric for an operation started at start.
func (e effects) record(entity, operation string, start time.Time, err error) {
	metrics.EmitTransition(e.Metrics, metrics.Transition{
		Entity:    entity,
		Operation: operation,
		Duration:  time.Since(start),
		Err:       err,
	})
}

func (e effects) event(typ, jobID string, data any) model.RealtimeEvent {
	return model.RealtimeEvent{Type: typ, JobID: jobID, Data: data, Timestamp: e.now().UTC()}
}

func toJob(jobID string, ev model.RealtimeEvent) realtime.Message {
	return realtime.Message{Topic: model.JobTopic(jobID), Event: ev}
}

func toUser(userID string, ev model.RealtimeEvent) realtime.Message {
	return realtime.Message{Topic: model.UserTopic(userID), Event: ev}
}
