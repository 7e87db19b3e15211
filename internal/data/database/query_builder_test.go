package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery(t *testing.T) {
	tests := []struct {
		name      string
		opts      *ListQueryOptions
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "select all",
			opts:      NewListQueryOptions("job_listings"),
			wantQuery: `SELECT * FROM "job_listings"`,
		},
		{
			name:      "qualified columns",
			opts:      NewListQueryOptions("bids", WithColumns("id", "bids.price")),
			wantQuery: `SELECT "id", "bids"."price" FROM "bids"`,
		},
		{
			name: "count only ignores pagination",
			opts: NewListQueryOptions("job_listings",
				WithCountOnly(),
				WithCondition(WhereCond("status", Equal, "open")),
				WithOrderBy("created_at", "DESC"),
				WithLimit(10),
			),
			wantQuery: `SELECT COUNT(*) FROM "job_listings" WHERE "status" = $1`,
			wantArgs:  []any{"open"},
		},
		{
			name: "range filters",
			opts: NewListQueryOptions("job_listings",
				WithCondition(WhereCond("pay_value", GreaterThanOrEqual, 100.0)),
				WithCondition(WhereCond("pay_value", LessThanOrEqual, 900.0)),
			),
			wantQuery: `SELECT * FROM "job_listings" WHERE "pay_value" >= $1 AND "pay_value" <= $2`,
			wantArgs:  []any{100.0, 900.0},
		},
		{
			name: "ilike and skipped terms",
			opts: NewListQueryOptions("job_listings",
				WithCondition(WhereCond("title", ILike, "%cook%")),
				WithCondition(WhereCond("", Equal, "ignored")),
				WithCondition(WhereRawCond("  ")),
			),
			wantQuery: `SELECT * FROM "job_listings" WHERE "title" ILIKE $1`,
			wantArgs:  []any{"%cook%"},
		},
		{
			name: "out of range raw placeholder is left alone",
			opts: NewListQueryOptions("job_listings",
				WithCondition(WhereRawCond("starts_at <= $1 + $2::interval", "2026-01-01")),
			),
			wantQuery: `SELECT * FROM "job_listings" WHERE starts_at <= $1 + $2::interval`,
			wantArgs:  []any{"2026-01-01"},
		},
		{
			name: "raw condition with repeated placeholder",
			opts: NewListQueryOptions("job_listings",
				WithCondition(WhereCond("status", Equal, "open")),
				WithCondition(WhereRawCond("(title ILIKE $1 OR description ILIKE $1)", "%sink%")),
			),
			wantQuery: `SELECT * FROM "job_listings" WHERE "status" = $1 AND (title ILIKE $2 OR description ILIKE $2)`,
			wantArgs:  []any{"open", "%sink%"},
		},
		{
			name: "raw condition with multiple params",
			opts: NewListQueryOptions("job_listings",
				WithCondition(WhereRawCond("(created_by = $1 OR assigned_to = $2)", "u1", "u2")),
			),
			wantQuery: `SELECT * FROM "job_listings" WHERE (created_by = $1 OR assigned_to = $2)`,
			wantArgs:  []any{"u1", "u2"},
		},
		{
			name: "ordering with tie breaker and pagination",
			opts: NewListQueryOptions("job_listings",
				WithCondition(WhereCond("status", Equal, "open")),
				WithOrderBy("pay_value", "desc"),
				WithOrderBy("id", "DESC"),
				WithLimit(10),
				WithOffset(20),
			),
			wantQuery: `SELECT * FROM "job_listings" WHERE "status" = $1 ORDER BY "pay_value" DESC, "id" DESC LIMIT $2 OFFSET $3`,
			wantArgs:  []any{"open", 10, 20},
		},
		{
			name:      "invalid direction is dropped",
			opts:      NewListQueryOptions("job_listings", WithOrderBy("created_at", "sideways")),
			wantQuery: `SELECT * FROM "job_listings" ORDER BY "created_at"`,
		},
		{
			name:      "zero limit is honoured",
			opts:      NewListQueryOptions("job_listings", WithLimit(0)),
			wantQuery: `SELECT * FROM "job_listings" LIMIT $1`,
			wantArgs:  []any{0},
		},
		{
			name:      "identifiers are quoted",
			opts:      NewListQueryOptions("jobs; DROP TABLE jobs;--"),
			wantQuery: `SELECT * FROM "jobs; DROP TABLE jobs;--"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := BuildListQuery(tt.opts)
			assert.Equal(t, tt.wantQuery, query)
			if len(tt.wantArgs) == 0 {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildListQuery_Nil(t *testing.T) {
	query, args := BuildListQuery(nil)
	assert.Empty(t, query)
	assert.Nil(t, args)
}

func TestWhereCond_CustomPanics(t *testing.T) {
	assert.Panics(t, func() { WhereCond("x", Custom, 1) })
}
