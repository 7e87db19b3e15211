package data

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/data/database"
	"github.com/hustlehub/hustle-api/internal/data/pgxutil"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// NotificationRepo provides database operations for in-app notifications.
type NotificationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
	logger       *slog.Logger
}

var _ core.NotificationRepository = (*NotificationRepo)(nil)

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(db *sql.DB, cfg RepoConfig) *NotificationRepo {
	return &NotificationRepo{
		DB:           db,
		timeProvider: cfg.clock(),
		logger:       cfg.log("notification_repo"),
	}
}

// notificationColumns are plain identifiers so they pass the list builder's
// quoting. pgx scans uuid into string and numeric into float64 directly.
var notificationColumns = []string{
	"id", "recipient_id", "sender_id", "job_id", "type", "message", "read", "price", "created_at",
}

// Create persists a rendered notification.
func (r *NotificationRepo) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	if n.Type.PriceBearing() && n.Price == nil {
		return nil, apperrors.ValidationField("price", "price is required for "+string(n.Type))
	}
	createdAt := n.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.timeProvider.Now()
	}

	var created *model.Notification
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var scanErr error
		created, scanErr = scanNotification(conn.QueryRow(ctx, `
			INSERT INTO notifications (recipient_id, sender_id, job_id, type, message, read, price, created_at)
			VALUES ($1, $2, $3::uuid, $4, $5, false, $6, $7)
			RETURNING `+notificationSelect,
			n.RecipientID, n.SenderID, n.JobID, string(n.Type), n.Message, n.Price, createdAt))
		return scanErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return created, nil
}

// GetByID returns a notification by id.
func (r *NotificationRepo) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NotFound("notification not found")
	}
	var n *model.Notification
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var scanErr error
		n, scanErr = scanNotification(conn.QueryRow(ctx,
			`SELECT `+notificationSelect+` FROM notifications WHERE id = $1::uuid`, id))
		return scanErr
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("notification not found")
	}
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return n, nil
}

// List returns a recipient's notifications, newest first.
func (r *NotificationRepo) List(ctx context.Context, opts model.NotificationListOptions) ([]*model.Notification, error) {
	listOpts := []database.ListQueryOption{
		database.WithColumns(notificationColumns...),
		database.WithCondition(database.WhereCond("recipient_id", database.Equal, opts.RecipientID)),
	}
	if opts.UnreadOnly {
		listOpts = append(listOpts, database.WithCondition(database.WhereCond("read", database.Equal, false)))
	}
	listOpts = append(listOpts,
		database.WithOrderBy("created_at", "DESC"),
		database.WithOrderBy("id", "DESC"),
		database.WithLimit(opts.Limit),
		database.WithOffset(opts.Offset),
	)
	query, args := database.BuildListQuery(database.NewListQueryOptions("notifications", listOpts...))

	out := []*model.Notification{}
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			n, scanErr := scanNotification(rows)
			if scanErr != nil {
				return scanErr
			}
			out = append(out, n)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// CountUnread returns the number of unread notifications for a recipient.
func (r *NotificationRepo) CountUnread(ctx context.Context, recipientID string) (int, error) {
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND NOT read`,
			recipientID).Scan(&count)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return count, nil
}

// MarkRead flips the read flag. It reports false when the notification was
// already read.
func (r *NotificationRepo) MarkRead(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, apperrors.NotFound("notification not found")
	}
	var changed bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1::uuid AND NOT read`, id)
		if err != nil {
			return err
		}
		changed = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, apperrors.MapDBError(err)
	}
	return changed, nil
}

var notificationSelect = strings.Join(notificationColumns, ", ")

func scanNotification(scanner rowScanner) (*model.Notification, error) {
	n := &model.Notification{}
	if err := scanner.Scan(
		&n.ID,
		&n.RecipientID,
		&n.SenderID,
		&n.JobID,
		&n.Type,
		&n.Message,
		&n.Read,
		&n.Price,
		&n.CreatedAt,
	); err != nil {
		return nil, err
	}
	return n, nil
}
