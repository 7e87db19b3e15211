package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
	"github.com/hustlehub/hustle-api/internal/mocks"
)

type notificationMocks struct {
	repo     *mocks.MockNotificationRepository
	jobs     *mocks.MockJobRepository
	profiles *mocks.MockProfileRepository
	channel  *mocks.MockChannel
}

func newNotificationServiceWithMocks(t *testing.T) (*NotificationService, notificationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := notificationMocks{
		repo:     mocks.NewMockNotificationRepository(ctrl),
		jobs:     mocks.NewMockJobRepository(ctrl),
		profiles: mocks.NewMockProfileRepository(ctrl),
		channel:  mocks.NewMockChannel(ctrl),
	}
	svc := NewNotificationService(NotificationServiceOptions{
		Repo:     m.repo,
		Lookups:  NotificationLookups{Jobs: m.jobs, Profiles: m.profiles},
		Realtime: m.channel,
	})
	return svc, m
}

func TestNotificationService_Notify(t *testing.T) {
	ctx := context.Background()
	price := 750.0

	t.Run("persists and pushes to the recipient", func(t *testing.T) {
		svc, m := newNotificationServiceWithMocks(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(&model.Job{ID: "job-1", Title: "Paint fence"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "hustler-1").Return(&model.Profile{DisplayName: "Rahim"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.Notification) (*model.Notification, error) {
				assert.Equal(t, "giver-1", n.RecipientID)
				assert.Equal(t, `Rahim placed a bid of BDT 750 on "Paint fence".`, n.Message)
				require.NotNil(t, n.Price)
				assert.InDelta(t, price, *n.Price, 0)
				out := *n
				out.ID = "n-1"
				out.CreatedAt = time.Now()
				return &out, nil
			})
		m.channel.EXPECT().Publish(gomock.Any(), model.UserTopic("giver-1"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, ev model.RealtimeEvent) error {
				assert.Equal(t, model.EventNotification, ev.Type)
				assert.Equal(t, "job-1", ev.JobID)
				return nil
			})

		svc.Notify(ctx, NotifyParams{
			Recipient: "giver-1",
			Sender:    "hustler-1",
			JobID:     "job-1",
			Type:      model.NotificationBidPlaced,
			Price:     &price,
		})
	})

	t.Run("unknown sender falls back to id", func(t *testing.T) {
		svc, m := newNotificationServiceWithMocks(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(&model.Job{ID: "job-1", Title: "Paint fence"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "hustler-9").Return(nil, apperrors.NotFound("profile not found"))
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.Notification) (*model.Notification, error) {
				assert.Equal(t, `hustler-9 applied to your job "Paint fence".`, n.Message)
				return n, nil
			})
		m.channel.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		svc.Notify(ctx, NotifyParams{
			Recipient: "giver-1",
			Sender:    "hustler-9",
			JobID:     "job-1",
			Type:      model.NotificationJobApplication,
		})
	})

	t.Run("job lookup failure drops the notification", func(t *testing.T) {
		svc, m := newNotificationServiceWithMocks(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(nil, errors.New("db down"))

		svc.Notify(ctx, NotifyParams{Recipient: "giver-1", Sender: "hustler-1", JobID: "job-1", Type: model.NotificationBidPlaced, Price: &price})
	})

	t.Run("missing price is never persisted", func(t *testing.T) {
		svc, m := newNotificationServiceWithMocks(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(&model.Job{ID: "job-1", Title: "Paint fence"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&model.Profile{DisplayName: "Rahim"}, nil)

		svc.Notify(ctx, NotifyParams{Recipient: "hustler-1", Sender: "giver-1", JobID: "job-1", Type: model.NotificationBidAccepted})
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		svc, m := newNotificationServiceWithMocks(t)
		m.jobs.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&model.Job{ID: "job-1", Title: "Paint fence"}, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(&model.Profile{DisplayName: "Karim"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.Notification) (*model.Notification, error) { return n, nil })
		m.channel.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker gone"))

		assert.NotPanics(t, func() {
			svc.Notify(ctx, NotifyParams{Recipient: "hustler-1", Sender: "giver-1", JobID: "job-1", Type: model.NotificationBidRejected, Price: &price})
		})
	})
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("clamps the limit and counts unread", func(t *testing.T) {
		svc, m := newNotificationServiceWithMocks(t)
		m.repo.EXPECT().List(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, opts model.NotificationListOptions) ([]*model.Notification, error) {
				assert.Equal(t, maxNotificationLimit, opts.Limit)
				return nil, nil
			})
		m.repo.EXPECT().CountUnread(ctx, "giver-1").Return(3, nil)

		page, err := svc.List(ctx, model.NotificationListOptions{RecipientID: "giver-1", Limit: 1000})
		require.NoError(t, err)
		assert.NotNil(t, page.Notifications)
		assert.Equal(t, 3, page.Unread)
	})

	t.Run("recipient is required", func(t *testing.T) {
		svc, _ := newNotificationServiceWithMocks(t)
		_, err := svc.List(ctx, model.NotificationListOptions{})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("recipient marks read", func(t *testing.T) {
		svc, m := newNotificationServiceWithMocks(t)
		m.repo.EXPECT().GetByID(ctx, "n-1").Return(&model.Notification{ID: "n-1", RecipientID: "hustler-1"}, nil)
		m.repo.EXPECT().MarkRead(ctx, "n-1").Return(true, nil)

		n, err := svc.MarkRead(ctx, "n-1", "hustler-1")
		require.NoError(t, err)
		assert.True(t, n.Read)
	})

	t.Run("other users are forbidden", func(t *testing.T) {
		svc, m := newNotificationServiceWithMocks(t)
		m.repo.EXPECT().GetByID(ctx, "n-1").Return(&model.Notification{ID: "n-1", RecipientID: "hustler-1"}, nil)

		_, err := svc.MarkRead(ctx, "n-1", "hustler-2")
		assert.True(t, apperrors.IsForbidden(err))
	})
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, clampLimit(0, 20, 100))
	assert.Equal(t, 20, clampLimit(-5, 20, 100))
	assert.Equal(t, 100, clampLimit(101, 20, 100))
	assert.Equal(t, 42, clampLimit(42, 20, 100))
}
