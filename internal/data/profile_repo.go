package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/data/pgxutil"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// ProfileRepo reads and writes the marketplace's copy of user profiles.
type ProfileRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
	logger       *slog.Logger
}

var _ core.ProfileRepository = (*ProfileRepo)(nil)

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *sql.DB, cfg RepoConfig) *ProfileRepo {
	return &ProfileRepo{
		DB:           db,
		timeProvider: cfg.clock(),
		logger:       cfg.log("profile_repo"),
	}
}

const profileColumns = `user_id, display_name, role, average_rating::float8, review_count, skills`

// GetByID returns a profile by user id.
func (r *ProfileRepo) GetByID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile *model.Profile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var scanErr error
		profile, scanErr = scanProfile(conn.QueryRow(ctx,
			`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID))
		return scanErr
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFound("profile not found")
	}
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return profile, nil
}

// Upsert creates or updates the identity fields of a profile. Rating
// aggregates are owned by review finalization and are left untouched.
func (r *ProfileRepo) Upsert(ctx context.Context, p *model.Profile) error {
	if p == nil || p.UserID == "" {
		return apperrors.ValidationField("user_id", "user id is required")
	}
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO profiles (user_id, display_name, role, skills, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id) DO UPDATE
			SET display_name = EXCLUDED.display_name,
			    role = EXCLUDED.role,
			    skills = EXCLUDED.skills,
			    updated_at = EXCLUDED.updated_at`,
			p.UserID, p.DisplayName, p.Role, nonNilStrings(p.Skills), r.timeProvider.Now())
		return execErr
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}

// recomputeRatingInTx sets the hustler's average rating and review count from
// the reviews table. It must run in the transaction that inserted the review.
func recomputeRatingInTx(ctx context.Context, tx pgx.Tx, hustlerID string, at time.Time) (*model.Profile, error) {
	profile, err := scanProfile(tx.QueryRow(ctx, `
		INSERT INTO profiles (user_id, average_rating, review_count, updated_at)
		SELECT $1, COALESCE(AVG(rating), 0), COUNT(*), $2
		FROM reviews
		WHERE hustler_id = $1
		ON CONFLICT (user_id) DO UPDATE
		SET average_rating = EXCLUDED.average_rating,
		    review_count = EXCLUDED.review_count,
		    updated_at = EXCLUDED.updated_at
		RETURNING `+profileColumns, hustlerID, at))
	if err != nil {
		return nil, fmt.Errorf("recompute rating: %w", err)
	}
	return profile, nil
}

func scanProfile(row pgx.Row) (*model.Profile, error) {
	p := &model.Profile{}
	if err := row.Scan(&p.UserID, &p.DisplayName, &p.Role, &p.AverageRating, &p.ReviewCount, &p.Skills); err != nil {
		return nil, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}
