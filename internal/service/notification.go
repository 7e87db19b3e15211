package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
	"github.com/hustlehub/hustle-api/internal/realtime"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

// NotificationLookups are the read-only stores used to render notifications.
type NotificationLookups struct {
	Jobs     core.JobRepository     // Required: resolves the job title
	Profiles core.ProfileRepository // Optional: resolves the sender display name
}

// NotificationServiceOptions groups dependencies for NotificationService.
type NotificationServiceOptions struct {
	Repo     core.NotificationRepository // Required
	Lookups  NotificationLookups
	Realtime core.Channel // Optional: pushes "notification" events to the recipient
	Logger   *slog.Logger // Optional
}

// NotificationService renders, stores and pushes in-app notifications.
// Delivery is best effort: Notify never fails its caller.
type NotificationService struct {
	repo     core.NotificationRepository
	jobs     core.JobRepository
	profiles core.ProfileRepository
	realtime core.Channel
	logger   *slog.Logger
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	if opts.Repo == nil {
		panic("NotificationRepository is required")
	}
	if opts.Lookups.Jobs == nil {
		panic("JobRepository is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{
		repo:     opts.Repo,
		jobs:     opts.Lookups.Jobs,
		profiles: opts.Lookups.Profiles,
		realtime: opts.Realtime,
		logger:   logger.With("component", "notification_service"),
	}
}

// NotifyParams describes one notification to deliver.
type NotifyParams struct {
	Recipient string
	Sender    string
	JobID     string
	Type      model.NotificationType
	Price     *float64
}

// Notify renders and persists a notification, then pushes it to the
// recipient. Every failure is logged and dropped.
func (s *NotificationService) Notify(ctx context.Context, p NotifyParams) {
	log := s.logger.With("type", p.Type, "recipient", p.Recipient, "job_id", p.JobID)

	job, err := s.jobs.GetByID(ctx, p.JobID)
	if err != nil {
		log.WarnContext(ctx, "notification dropped: job lookup failed", "error", err)
		return
	}

	msg, err := marketplace.RenderNotification(p.Type, s.senderName(ctx, p.Sender), job.Title, p.Price)
	if err != nil {
		log.WarnContext(ctx, "notification dropped: render failed", "error", err)
		return
	}

	n, err := s.repo.Create(ctx, &model.Notification{
		RecipientID: p.Recipient,
		SenderID:    p.Sender,
		JobID:       p.JobID,
		Type:        p.Type,
		Message:     msg,
		Price:       p.Price,
	})
	if err != nil {
		log.WarnContext(ctx, "notification dropped: persist failed", "error", err)
		return
	}

	realtime.Broadcast(ctx, s.realtime, log, toUser(p.Recipient, model.RealtimeEvent{
		Type:      model.EventNotification,
		JobID:     p.JobID,
		Data:      n,
		Timestamp: n.CreatedAt,
	}))
	log.DebugContext(ctx, "notification delivered", "id", n.ID)
}

// senderName resolves a display name, falling back to the raw id when the
// profile store has no record of the sender.
func (s *NotificationService) senderName(ctx context.Context, senderID string) string {
	if s.profiles == nil {
		return senderID
	}
	p, err := s.profiles.GetByID(ctx, senderID)
	if err != nil || p.DisplayName == "" {
		if err != nil && !apperrors.IsNotFound(err) {
			s.logger.WarnContext(ctx, "sender lookup failed", "sender", senderID, "error", err)
		}
		return senderID
	}
	return p.DisplayName
}

// NotificationPage is one page of a user's inbox.
type NotificationPage struct {
	Notifications []*model.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

// List returns the recipient's notifications, newest first.
func (s *NotificationService) List(
	ctx context.Context,
	opts model.NotificationListOptions,
) (*NotificationPage, error) {
	if opts.RecipientID == "" {
		return nil, apperrors.ValidationField("recipient_id", "recipient is required")
	}
	opts.Limit = clampLimit(opts.Limit, defaultNotificationLimit, maxNotificationLimit)
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	items, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	unread, err := s.repo.CountUnread(ctx, opts.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("count unread: %w", err)
	}
	if items == nil {
		items = []*model.Notification{}
	}
	return &NotificationPage{Notifications: items, Unread: unread}, nil
}

// UnreadCount returns the number of unread notifications for recipient.
func (s *NotificationService) UnreadCount(ctx context.Context, recipient string) (int, error) {
	n, err := s.repo.CountUnread(ctx, recipient)
	if err != nil {
		return 0, fmt.Errorf("count unread: %w", err)
	}
	return n, nil
}

// MarkRead marks a notification read. Only its recipient may do so; marking
// an already read notification succeeds without change.
func (s *NotificationService) MarkRead(ctx context.Context, id, actor string) (*model.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	if n.RecipientID != actor {
		return nil, apperrors.Forbidden("notification belongs to another user")
	}
	if _, err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	n.Read = true
	return n, nil
}

func clampLimit(limit, def, maxLimit int) int {
	switch {
	case limit <= 0:
		return def
	case limit > maxLimit:
		return maxLimit
	default:
		return limit
	}
}
