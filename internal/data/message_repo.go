package data

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/data/pgxutil"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// MessageRepo stores chat messages scoped to a job.
type MessageRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
	logger       *slog.Logger
}

var _ core.MessageRepository = (*MessageRepo)(nil)

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(db *sql.DB, cfg RepoConfig) *MessageRepo {
	return &MessageRepo{
		DB:           db,
		timeProvider: cfg.clock(),
		logger:       cfg.log("message_repo"),
	}
}

const messageColumns = `id::text, job_id::text, sender_id, body, created_at`

// Create stores a message if the chat gate is open for the sender. The job row
// is share-locked so a message cannot land after finalization purged the chat.
func (r *MessageRepo) Create(ctx context.Context, m *model.Message) (*model.Message, error) {
	now := r.timeProvider.Now()
	var created *model.Message

	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			job, err := lockJob(ctx, tx, m.JobID, lockForShare)
			if err != nil {
				return err
			}
			if !marketplace.CanMessage(job, m.SenderID) {
				return apperrors.Forbidden("chat is not open for this user")
			}
			created, err = scanMessage(tx.QueryRow(ctx, `
				INSERT INTO messages (job_id, sender_id, body, created_at)
				VALUES ($1::uuid, $2, $3, $4)
				RETURNING `+messageColumns,
				m.JobID, m.SenderID, m.Body, now))
			if err != nil {
				return fmt.Errorf("insert message: %w", err)
			}
			return nil
		},
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return created, nil
}

// ListByJob returns a job's messages in send order.
func (r *MessageRepo) ListByJob(ctx context.Context, jobID string, limit, offset int) ([]*model.Message, error) {
	messages := []*model.Message{}
	if _, err := uuid.Parse(jobID); err != nil {
		return messages, nil
	}
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+messageColumns+`
			FROM messages
			WHERE job_id = $1::uuid
			ORDER BY created_at, id
			LIMIT $2 OFFSET $3`, jobID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			msg, scanErr := scanMessage(rows)
			if scanErr != nil {
				return scanErr
			}
			messages = append(messages, msg)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return messages, nil
}

func scanMessage(scanner rowScanner) (*model.Message, error) {
	m := &model.Message{}
	if err := scanner.Scan(&m.ID, &m.JobID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
		return nil, err
	}
	return m, nil
}
