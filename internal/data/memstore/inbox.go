package memstore

import (
	"context"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// NotificationRepo implements core.NotificationRepository.
type NotificationRepo struct{ s *Store }

var _ core.NotificationRepository = (*NotificationRepo)(nil)

// Create stores a notification.
func (r *NotificationRepo) Create(_ context.Context, n *model.Notification) (*model.Notification, error) {
	if n.Type.PriceBearing() && n.Price == nil {
		return nil, apperrors.ValidationField("price", "price is required for "+string(n.Type))
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *n
	stored.ID = newID()
	stored.Read = false
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.s.clock.Now()
	}
	if n.Price != nil {
		price := *n.Price
		stored.Price = &price
	}
	r.s.notifications[stored.ID] = &stored
	r.s.notifOrder = append(r.s.notifOrder, stored.ID)

	out := stored
	return &out, nil
}

// GetByID returns a notification by id.
func (r *NotificationRepo) GetByID(_ context.Context, id string) (*model.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.notifications[id]
	if !ok {
		return nil, apperrors.NotFound("notification not found")
	}
	out := *n
	return &out, nil
}

// List returns a recipient's notifications, newest first.
func (r *NotificationRepo) List(_ context.Context, opts model.NotificationListOptions) ([]*model.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := []*model.Notification{}
	for i := len(r.s.notifOrder) - 1; i >= 0; i-- {
		n := r.s.notifications[r.s.notifOrder[i]]
		if n.RecipientID != opts.RecipientID || (opts.UnreadOnly && n.Read) {
			continue
		}
		out := *n
		matched = append(matched, &out)
	}
	return page(matched, opts.Limit, opts.Offset), nil
}

// CountUnread returns the number of unread notifications for a recipient.
func (r *NotificationRepo) CountUnread(_ context.Context, recipientID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	for _, n := range r.s.notifications {
		if n.RecipientID == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead sets the read flag and reports whether it changed.
func (r *NotificationRepo) MarkRead(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, ok := r.s.notifications[id]
	if !ok {
		return false, apperrors.NotFound("notification not found")
	}
	if n.Read {
		return false, nil
	}
	n.Read = true
	return true, nil
}

// MessageRepo implements core.MessageRepository.
type MessageRepo struct{ s *Store }

var _ core.MessageRepository = (*MessageRepo)(nil)

// Create stores a message if the chat gate is open for the sender.
func (r *MessageRepo) Create(_ context.Context, m *model.Message) (*model.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !marketplace.CanMessage(r.s.jobs[m.JobID], m.SenderID) {
		return nil, apperrors.Forbidden("chat is not open for this user")
	}
	stored := *m
	stored.ID = newID()
	stored.CreatedAt = r.s.clock.Now()
	r.s.messages[m.JobID] = append(r.s.messages[m.JobID], &stored)

	out := stored
	return &out, nil
}

// ListByJob returns a job's messages in send order.
func (r *MessageRepo) ListByJob(_ context.Context, jobID string, limit, offset int) ([]*model.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := r.s.messages[jobID]
	out := make([]*model.Message, len(all))
	for i, m := range all {
		copied := *m
		out[i] = &copied
	}
	return page(out, limit, offset), nil
}

// ProfileRepo implements core.ProfileRepository.
type ProfileRepo struct{ s *Store }

var _ core.ProfileRepository = (*ProfileRepo)(nil)

// GetByID returns a profile by user id.
func (r *ProfileRepo) GetByID(_ context.Context, userID string) (*model.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.profiles[userID]
	if !ok {
		return nil, apperrors.NotFound("profile not found")
	}
	return cloneProfile(p), nil
}

// Upsert creates or updates identity fields. Rating aggregates are preserved.
func (r *ProfileRepo) Upsert(_ context.Context, p *model.Profile) error {
	if p == nil || p.UserID == "" {
		return apperrors.ValidationField("user_id", "user id is required")
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.profiles[p.UserID]
	if !ok {
		r.s.profiles[p.UserID] = cloneProfile(p)
		r.s.profiles[p.UserID].AverageRating = 0
		r.s.profiles[p.UserID].ReviewCount = 0
		return nil
	}
	existing.DisplayName = p.DisplayName
	existing.Role = p.Role
	existing.Skills = append([]string{}, p.Skills...)
	return nil
}
