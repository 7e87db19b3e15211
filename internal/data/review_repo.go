package data

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/data/pgxutil"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// ReviewRepo provides database operations for reviews and job finalization.
type ReviewRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
	logger       *slog.Logger
}

var _ core.ReviewRepository = (*ReviewRepo)(nil)

// NewReviewRepo creates a new ReviewRepo.
func NewReviewRepo(db *sql.DB, cfg RepoConfig) *ReviewRepo {
	return &ReviewRepo{
		DB:           db,
		timeProvider: cfg.clock(),
		logger:       cfg.log("review_repo"),
	}
}

const reviewColumns = `id::text, job_id::text, job_giver_id, hustler_id, rating, comment, created_at`

// Finalize records the owner's review of the assigned hustler. In one
// transaction it completes the job, deletes the job's chat history and
// recomputes the hustler's average rating.
func (r *ReviewRepo) Finalize(ctx context.Context, params core.FinalizeParams) (*core.FinalizeResult, error) {
	now := r.timeProvider.Now()
	result := &core.FinalizeResult{}

	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			job, err := lockJob(ctx, tx, params.JobID, lockForUpdate)
			if err != nil {
				return err
			}
			if checkErr := marketplace.CheckReview(job, params.Actor); checkErr != nil {
				return checkErr
			}

			result.Review, err = scanReview(tx.QueryRow(ctx, `
				INSERT INTO reviews (job_id, job_giver_id, hustler_id, rating, comment, created_at)
				VALUES ($1::uuid, $2, $3, $4, $5, $6)
				RETURNING `+reviewColumns,
				job.ID, job.CreatedBy, *job.AssignedTo, params.Rating, params.Comment, now))
			if err != nil {
				return fmt.Errorf("insert review: %w", err)
			}

			tag, err := tx.Exec(ctx, `
				UPDATE jobs SET status = 'completed', is_reviewed = true, updated_at = $2
				WHERE id = $1::uuid AND status = 'in-progress' AND NOT is_reviewed`,
				job.ID, now)
			if err != nil {
				return fmt.Errorf("complete job: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return apperrors.Conflict("job is no longer in progress")
			}

			purged, err := tx.Exec(ctx, `DELETE FROM messages WHERE job_id = $1::uuid`, job.ID)
			if err != nil {
				return fmt.Errorf("purge chat: %w", err)
			}
			result.MessagesPurged = int(purged.RowsAffected())

			result.Profile, err = recomputeRatingInTx(ctx, tx, *job.AssignedTo, now)
			if err != nil {
				return err
			}

			result.Job, err = loadJob(ctx, tx, job.ID)
			return err
		},
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	r.logger.InfoContext(ctx, "job finalized",
		"job_id", params.JobID,
		"rating", params.Rating,
		"messages_purged", result.MessagesPurged)
	return result, nil
}

// ListByHustler returns the reviews a hustler received, newest first.
func (r *ReviewRepo) ListByHustler(ctx context.Context, hustlerID string, limit, offset int) ([]*model.Review, error) {
	reviews := []*model.Review{}
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+reviewColumns+`
			FROM reviews
			WHERE hustler_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3`, hustlerID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			review, scanErr := scanReview(rows)
			if scanErr != nil {
				return scanErr
			}
			reviews = append(reviews, review)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return reviews, nil
}

func scanReview(scanner rowScanner) (*model.Review, error) {
	review := &model.Review{}
	if err := scanner.Scan(
		&review.ID,
		&review.JobID,
		&review.JobGiverID,
		&review.HustlerID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
	); err != nil {
		return nil, err
	}
	return review, nil
}
