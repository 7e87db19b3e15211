package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hustlehub/hustle-api/internal/core"
	"github.com/hustlehub/hustle-api/internal/data/pgxutil"
	"github.com/hustlehub/hustle-api/internal/domain/marketplace"
	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// BidRepo provides database operations for bids and their status history.
type BidRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
	logger       *slog.Logger
}

var _ core.BidRepository = (*BidRepo)(nil)

// NewBidRepo creates a new BidRepo.
func NewBidRepo(db *sql.DB, cfg RepoConfig) *BidRepo {
	return &BidRepo{
		DB:           db,
		timeProvider: cfg.clock(),
		logger:       cfg.log("bid_repo"),
	}
}

const bidColumns = `id::text, job_id::text, hustler_id, price::float8, notes, status, can_withdraw, created_at, last_status_change`

const insertBidSQL = `
	INSERT INTO bids (job_id, hustler_id, price, notes, status, can_withdraw, created_at, last_status_change)
	VALUES ($1::uuid, $2, $3, $4, 'pending', true, $5, $5)
	RETURNING ` + bidColumns

// Place creates a pending bid. The job row is share-locked so placement cannot
// interleave with an accept or cancel cascade on the same job.
func (r *BidRepo) Place(ctx context.Context, params core.PlaceBidParams) (*core.PlaceBidResult, error) {
	now := r.timeProvider.Now()
	result := &core.PlaceBidResult{}

	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			job, err := lockJob(ctx, tx, params.JobID, lockForShare)
			if err != nil {
				return err
			}
			if checkErr := marketplace.CheckPlaceBid(job, params.HustlerID); checkErr != nil {
				return checkErr
			}

			bid, err := scanBid(tx.QueryRow(ctx, insertBidSQL,
				params.JobID, params.HustlerID, params.Price, params.Notes, now))
			if err != nil {
				return fmt.Errorf("insert bid: %w", err)
			}
			entry := model.StatusChange{
				Status:    model.BidStatusPending,
				Timestamp: now,
				Actor:     params.HustlerID,
				Reason:    model.ReasonInitialApplication,
			}
			if err := appendHistory(ctx, tx, bid.ID, entry); err != nil {
				return err
			}
			bid.StatusHistory.Append(entry)
			result.Bid = bid

			result.Job, err = loadJob(ctx, tx, params.JobID)
			return err
		},
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return result, nil
}

// GetByID returns a bid with its full status history.
func (r *BidRepo) GetByID(ctx context.Context, id string) (*model.Bid, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NotFound("bid not found")
	}

	var bids []*model.Bid
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var queryErr error
		bids, queryErr = queryBids(ctx, conn, `SELECT `+bidColumns+` FROM bids WHERE id = $1::uuid`, id)
		return queryErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	if len(bids) == 0 {
		return nil, apperrors.NotFound("bid not found")
	}
	return bids[0], nil
}

// ListByJob returns the bids on a job in creation order.
func (r *BidRepo) ListByJob(ctx context.Context, jobID string) ([]*model.Bid, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return []*model.Bid{}, nil
	}
	return r.list(ctx, `SELECT `+bidColumns+` FROM bids WHERE job_id = $1::uuid ORDER BY created_at, id`, jobID)
}

// ListByHustler returns a hustler's bids, newest first.
func (r *BidRepo) ListByHustler(ctx context.Context, hustlerID string) ([]*model.Bid, error) {
	return r.list(ctx, `SELECT `+bidColumns+` FROM bids WHERE hustler_id = $1 ORDER BY created_at DESC, id DESC`, hustlerID)
}

func (r *BidRepo) list(ctx context.Context, query string, arg any) ([]*model.Bid, error) {
	var bids []*model.Bid
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		var queryErr error
		bids, queryErr = queryBids(ctx, conn, query, arg)
		return queryErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	if bids == nil {
		bids = []*model.Bid{}
	}
	return bids, nil
}

// Withdraw moves a pending bid to withdrawn if the policy allows it at the
// repository clock's current time.
func (r *BidRepo) Withdraw(ctx context.Context, params core.WithdrawBidParams) (*model.Bid, error) {
	now := r.timeProvider.Now()
	var bid *model.Bid

	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			locked, err := lockBid(ctx, tx, params.BidID)
			if err != nil {
				return err
			}
			if locked == nil {
				return apperrors.NotFound("bid not found")
			}
			if checkErr := params.Policy.Check(locked, params.Actor, now); checkErr != nil {
				return checkErr
			}
			bid, err = transitionBidInTx(ctx, tx, core.BidTransition{
				BidID:  locked.ID,
				From:   model.BidStatusPending,
				To:     model.BidStatusWithdrawn,
				Actor:  params.Actor,
				Reason: model.ReasonWithdrawn,
			}, now)
			return err
		},
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return bid, nil
}

// lockBid row-locks a bid and returns it with history. It returns nil, nil
// when absent or when id is not a UUID.
func lockBid(ctx context.Context, tx pgx.Tx, id string) (*model.Bid, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	bids, err := queryBids(ctx, tx, `SELECT `+bidColumns+` FROM bids WHERE id = $1::uuid FOR UPDATE`, id)
	if err != nil {
		return nil, fmt.Errorf("lock bid: %w", err)
	}
	if len(bids) == 0 {
		return nil, nil
	}
	return bids[0], nil
}

const transitionBidSQL = `
	UPDATE bids
	SET status = $3,
	    can_withdraw = can_withdraw AND $3 = 'pending',
	    last_status_change = $4
	WHERE id = $1::uuid AND status = $2
	RETURNING ` + bidColumns

// transitionBidInTx is the one place bid status changes are written. It
// compare-and-swaps on the expected prior status, clears can_withdraw when the
// bid leaves pending and appends the history entry.
func transitionBidInTx(ctx context.Context, tx pgx.Tx, t core.BidTransition, at time.Time) (*model.Bid, error) {
	if !t.To.Valid() {
		return nil, apperrors.Validationf("unknown bid status %q", t.To)
	}

	bid, err := scanBid(tx.QueryRow(ctx, transitionBidSQL, t.BidID, string(t.From), string(t.To), at))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.Conflictf("bid is no longer %s", t.From)
	}
	if err != nil {
		return nil, fmt.Errorf("transition bid: %w", err)
	}

	if err := loadHistory(ctx, tx, []*model.Bid{bid}); err != nil {
		return nil, err
	}
	entry := model.StatusChange{Status: t.To, Timestamp: at, Actor: t.Actor, Reason: t.Reason}
	if err := appendHistory(ctx, tx, bid.ID, entry); err != nil {
		return nil, err
	}
	bid.StatusHistory.Append(entry)
	return bid, nil
}

// rejectPendingInTx demotes every pending bid on jobID except keepBidID.
func rejectPendingInTx(ctx context.Context, tx pgx.Tx, p rejectPendingParams) ([]*model.Bid, error) {
	pending, err := queryBids(ctx, tx, `
		SELECT `+bidColumns+`
		FROM bids
		WHERE job_id = $1::uuid AND status = 'pending' AND id::text <> $2
		ORDER BY created_at, id
		FOR UPDATE`, p.JobID, p.KeepBidID)
	if err != nil {
		return nil, fmt.Errorf("lock pending bids: %w", err)
	}

	rejected := make([]*model.Bid, 0, len(pending))
	for _, b := range pending {
		bid, transErr := transitionBidInTx(ctx, tx, core.BidTransition{
			BidID:  b.ID,
			From:   model.BidStatusPending,
			To:     model.BidStatusRejected,
			Actor:  p.Actor,
			Reason: p.Reason,
		}, p.At)
		if transErr != nil {
			return nil, transErr
		}
		rejected = append(rejected, bid)
	}
	return rejected, nil
}

type rejectPendingParams struct {
	JobID     string
	KeepBidID string
	Actor     string
	Reason    string
	At        time.Time
}

func appendHistory(ctx context.Context, q querier, bidID string, e model.StatusChange) error {
	if _, err := q.Exec(ctx, `
		INSERT INTO bid_status_history (bid_id, status, actor, reason, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5)`,
		bidID, string(e.Status), e.Actor, e.Reason, e.Timestamp,
	); err != nil {
		return fmt.Errorf("append bid history: %w", err)
	}
	return nil
}

// queryBids runs a bid query and attaches each bid's history.
func queryBids(ctx context.Context, q querier, query string, args ...any) ([]*model.Bid, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	var bids []*model.Bid
	for rows.Next() {
		bid, scanErr := scanBid(rows)
		if scanErr != nil {
			rows.Close()
			return nil, scanErr
		}
		bids = append(bids, bid)
	}
	rows.Close()
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, rowsErr
	}

	if err := loadHistory(ctx, q, bids); err != nil {
		return nil, err
	}
	return bids, nil
}

func loadHistory(ctx context.Context, q querier, bids []*model.Bid) error {
	if len(bids) == 0 {
		return nil
	}
	ids := make([]string, len(bids))
	byID := make(map[string]*model.Bid, len(bids))
	for i, b := range bids {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	rows, err := q.Query(ctx, `
		SELECT bid_id::text, status, actor, reason, created_at
		FROM bid_status_history
		WHERE bid_id = ANY($1::uuid[])
		ORDER BY bid_id, id`, ids)
	if err != nil {
		return fmt.Errorf("load bid history: %w", err)
	}
	defer rows.Close()

	entries := make(map[string][]model.StatusChange, len(bids))
	for rows.Next() {
		var (
			bidID string
			e     model.StatusChange
		)
		if scanErr := rows.Scan(&bidID, &e.Status, &e.Actor, &e.Reason, &e.Timestamp); scanErr != nil {
			return fmt.Errorf("scan bid history: %w", scanErr)
		}
		entries[bidID] = append(entries[bidID], e)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return fmt.Errorf("iterate bid history: %w", rowsErr)
	}

	for id, es := range entries {
		if b, ok := byID[id]; ok {
			b.StatusHistory = model.NewStatusHistory(es...)
		}
	}
	return nil
}

func scanBid(scanner rowScanner) (*model.Bid, error) {
	bid := &model.Bid{}
	if err := scanner.Scan(
		&bid.ID,
		&bid.JobID,
		&bid.HustlerID,
		&bid.Price,
		&bid.Notes,
		&bid.Status,
		&bid.CanWithdraw,
		&bid.CreatedAt,
		&bid.LastStatusChange,
	); err != nil {
		return nil, err
	}
	return bid, nil
}
