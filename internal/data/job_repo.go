package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/data/database"
	"github.com/hustlehub/hustle-api/internal/data/pgxutil"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// RepoConfig holds configuration options shared by the marketplace repositories.
type RepoConfig struct {
	Logger       *slog.Logger
	TimeProvider TimeProvider
}

func (c RepoConfig) clock() TimeProvider {
	if c.TimeProvider == nil {
		return &RealTimeProvider{}
	}
	return c.TimeProvider
}

func (c RepoConfig) log(component string) *slog.Logger {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}

// querier is satisfied by both *pgx.Conn and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// JobRepo provides database operations for job postings.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
	logger       *slog.Logger
}

var _ core.JobRepository = (*JobRepo)(nil)

// NewJobRepo creates a new JobRepo instance with the given database connection and configuration.
func NewJobRepo(db *sql.DB, cfg RepoConfig) *JobRepo {
	return &JobRepo{
		DB:           db,
		timeProvider: cfg.clock(),
		logger:       cfg.log("job_repo"),
	}
}

const jobListingTable = "job_listings"

var jobListingColumns = []string{
	"id",
	"title",
	"description",
	"job_type",
	"division",
	"district",
	"upazila",
	"area",
	"address",
	"schedule_date",
	"start_time",
	"duration_minutes",
	"payment_method",
	"payment_amount",
	"payment_rate",
	"payment_platform",
	"hiring_type",
	"skills_required",
	"status",
	"created_by",
	"assigned_to",
	"is_reviewed",
	"created_at",
	"updated_at",
	"bid_ids",
	"applicant_ids",
}

const insertJobSQL = `
	INSERT INTO jobs (
		title, description, job_type,
		division, district, upazila, area, address,
		schedule_date, start_time, duration_minutes,
		payment_method, payment_amount, payment_rate, payment_platform,
		hiring_type, skills_required, status, created_by, created_at, updated_at
	)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,'open',$18,$19,$19)
	RETURNING id::text`

// Create inserts a new open job owned by owner. The request must already be
// normalized and validated.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest, owner string) (*model.Job, error) {
	if req == nil {
		return nil, errors.New("create job request is required")
	}

	now := r.timeProvider.Now()
	var job *model.Job
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			var id string
			if err := tx.QueryRow(ctx, insertJobSQL,
				req.Title,
				req.Description,
				req.JobType,
				req.Location.Division,
				req.Location.District,
				req.Location.Upazila,
				req.Location.Area,
				req.Location.Address,
				req.Schedule.Date,
				req.Schedule.StartTime,
				req.Schedule.DurationMinutes,
				req.Payment.Method,
				nullableAmount(req.Payment.Method == model.PaymentFixed, req.Payment.Amount),
				nullableAmount(req.Payment.Method == model.PaymentHourly, req.Payment.Rate),
				req.Payment.Platform,
				req.HiringType,
				nonNilStrings(req.SkillsRequired),
				owner,
				now,
			).Scan(&id); err != nil {
				return fmt.Errorf("insert job: %w", err)
			}

			var loadErr error
			job, loadErr = loadJob(ctx, tx, id)
			return loadErr
		},
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return job, nil
}

// GetByID returns a job with its ordered bid set.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	var job *model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var loadErr error
		job, loadErr = loadJob(ctx, conn, id)
		return loadErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	if job == nil {
		return nil, apperrors.NotFound("job not found")
	}
	return job, nil
}

// List returns a filtered, sorted page of jobs and the total match count.
func (r *JobRepo) List(ctx context.Context, opts *model.JobListOptions) (*model.JobListResult, error) {
	if opts == nil {
		opts = &model.JobListOptions{}
	}
	conds := jobListConditions(opts.Filters)

	countQuery, countArgs := database.BuildListQuery(database.NewListQueryOptions(jobListingTable,
		database.WithCountOnly(),
		database.WithConditions(conds...),
	))

	listOpts := []database.ListQueryOption{
		database.WithColumns(jobListingColumns...),
		database.WithConditions(conds...),
	}
	listOpts = append(listOpts, jobListOrdering(opts.Sort)...)
	listOpts = append(listOpts, database.WithLimit(opts.Limit), database.WithOffset(opts.Offset()))
	listQuery, listArgs := database.BuildListQuery(database.NewListQueryOptions(jobListingTable, listOpts...))

	result := &model.JobListResult{}
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if err := conn.QueryRow(ctx, countQuery, countArgs...).Scan(&result.Total); err != nil {
			return fmt.Errorf("count jobs: %w", err)
		}
		jobs, err := queryJobs(ctx, conn, listQuery, listArgs...)
		if err != nil {
			return fmt.Errorf("list jobs: %w", err)
		}
		result.Jobs = jobs
		return nil
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return result, nil
}

// ListActiveForUser returns in-progress jobs where userID is a participant.
func (r *JobRepo) ListActiveForUser(ctx context.Context, userID string) ([]*model.Job, error) {
	query, args := database.BuildListQuery(database.NewListQueryOptions(jobListingTable,
		database.WithColumns(jobListingColumns...),
		database.WithCondition(database.WhereCond("status", database.Equal, string(model.JobStatusInProgress))),
		database.WithCondition(database.WhereRawCond("(created_by = $1 OR assigned_to = $1)", userID)),
		database.WithOrderBy("updated_at", "DESC"),
		database.WithOrderBy("id", "DESC"),
	))

	var jobs []*model.Job
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var queryErr error
		jobs, queryErr = queryJobs(ctx, conn, query, args...)
		return queryErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return jobs, nil
}

func jobListConditions(f model.JobFilters) []database.Condition {
	status := model.JobStatusOpen
	if f.Status != nil && *f.Status != "" {
		status = *f.Status
	}
	conds := []database.Condition{database.WhereCond("status", database.Equal, string(status))}

	addEq := func(field string, v *string) {
		if v != nil && *v != "" {
			conds = append(conds, database.WhereCond(field, database.Equal, *v))
		}
	}
	addEq("job_type", f.JobType)
	addEq("division", f.Division)
	addEq("district", f.District)
	addEq("upazila", f.Upazila)
	addEq("created_by", f.CreatedBy)
	if f.HiringType != nil && *f.HiringType != "" {
		conds = append(conds, database.WhereCond("hiring_type", database.Equal, string(*f.HiringType)))
	}
	if f.PaymentMethod != nil && *f.PaymentMethod != "" {
		conds = append(conds, database.WhereCond("payment_method", database.Equal, string(*f.PaymentMethod)))
	}
	if f.MinPay != nil {
		conds = append(conds, database.WhereCond("pay_value", database.GreaterThanOrEqual, *f.MinPay))
	}
	if f.MaxPay != nil {
		conds = append(conds, database.WhereCond("pay_value", database.LessThanOrEqual, *f.MaxPay))
	}
	if f.Search != nil && *f.Search != "" {
		conds = append(conds, database.WhereRawCond(
			"(title ILIKE $1 OR description ILIKE $1)",
			"%"+escapeLike(*f.Search)+"%",
		))
	}
	return conds
}

func jobListOrdering(sort model.JobSort) []database.ListQueryOption {
	switch sort {
	case model.JobSortOldest:
		return []database.ListQueryOption{
			database.WithOrderBy("created_at", "ASC"),
			database.WithOrderBy("id", "ASC"),
		}
	case model.JobSortPayHigh:
		return []database.ListQueryOption{
			database.WithOrderBy("pay_value", "DESC"),
			database.WithOrderBy("created_at", "DESC"),
		}
	case model.JobSortPayLow:
		return []database.ListQueryOption{
			database.WithOrderBy("pay_value", "ASC"),
			database.WithOrderBy("created_at", "DESC"),
		}
	case model.JobSortSoonest:
		return []database.ListQueryOption{
			database.WithOrderBy("starts_at", "ASC"),
			database.WithOrderBy("id", "ASC"),
		}
	default:
		return []database.ListQueryOption{
			database.WithOrderBy("created_at", "DESC"),
			database.WithOrderBy("id", "DESC"),
		}
	}
}

var jobByIDQuery = "SELECT " + strings.Join(jobListingColumns, ", ") + " FROM " + jobListingTable + " WHERE id = $1"

// loadJob reads a job from the listing view. It returns nil, nil when absent.
func loadJob(ctx context.Context, q querier, id string) (*model.Job, error) {
	jobs, err := queryJobs(ctx, q, jobByIDQuery, id)
	if err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	if len(jobs) == 0 {
		return nil, nil
	}
	return jobs[0], nil
}

type rowLock string

const (
	lockForUpdate rowLock = "FOR UPDATE"
	lockForShare  rowLock = "FOR SHARE"
)

// lockJob takes a row lock on the job and returns its current state. It
// returns nil, nil when absent or when id is not a UUID.
func lockJob(ctx context.Context, tx pgx.Tx, id string, lock rowLock) (*model.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	var lockedID string
	err := tx.QueryRow(ctx, `SELECT id::text FROM jobs WHERE id = $1::uuid `+string(lock), id).Scan(&lockedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock job: %w", err)
	}
	return loadJob(ctx, tx, lockedID)
}

func queryJobs(ctx context.Context, q querier, query string, args ...any) ([]*model.Job, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*model.Job
	for rows.Next() {
		job, scanErr := scanJob(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		jobs = append(jobs, job)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, rowsErr
	}
	return jobs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(scanner rowScanner) (*model.Job, error) {
	job := &model.Job{}
	var (
		assignedTo   *string
		scheduleDate time.Time
	)
	if err := scanner.Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.JobType,
		&job.Location.Division,
		&job.Location.District,
		&job.Location.Upazila,
		&job.Location.Area,
		&job.Location.Address,
		&scheduleDate,
		&job.Schedule.StartTime,
		&job.Schedule.DurationMinutes,
		&job.Payment.Method,
		&job.Payment.Amount,
		&job.Payment.Rate,
		&job.Payment.Platform,
		&job.HiringType,
		&job.SkillsRequired,
		&job.Status,
		&job.CreatedBy,
		&assignedTo,
		&job.IsReviewed,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.Bids,
		&job.ApplicantIDs,
	); err != nil {
		return nil, fmt.Errorf("scan job: %w", err)
	}
	job.Schedule.Date = scheduleDate.UTC()
	job.AssignedTo = assignedTo
	return job, nil
}

func nullableAmount(applies bool, v float64) *float64 {
	if !applies {
		return nil
	}
	return &v
}

// escapeLike escapes LIKE wildcards in user-supplied search text.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
