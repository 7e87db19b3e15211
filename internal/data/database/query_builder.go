// Package database builds parameterized SELECT statements for the listing
// endpoints. Identifiers are quoted with pgx; values are always bound.
package database

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ConditionType is the comparison a Condition renders.
type ConditionType string

const (
	Equal              ConditionType = "="
	GreaterThanOrEqual ConditionType = ">="
	LessThanOrEqual    ConditionType = "<="
	ILike              ConditionType = "ILIKE"
	Custom             ConditionType = "CUSTOM"

	unset = -1
)

var placeholderRegex = regexp.MustCompile(`\$(\d+)`)

// Condition is one WHERE term. Conditions are joined with AND.
type Condition struct {
	Field string
	Type  ConditionType
	Value any

	raw    string
	params []any
}

// WhereCond compares a column against a bound value.
func WhereCond(field string, condType ConditionType, value any) Condition {
	if condType == Custom {
		//nolint:forbidigo // raw SQL must come through WhereRawCond.
		panic("Use WhereRawCond for Custom type")
	}
	return Condition{Field: field, Type: condType, Value: value}
}

// WhereRawCond embeds a SQL fragment whose placeholders are numbered from $1
// relative to params. They are renumbered to fit the surrounding query, and a
// placeholder repeated in the fragment binds its parameter once.
func WhereRawCond(rawQuery string, params ...any) Condition {
	return Condition{Type: Custom, raw: rawQuery, params: params}
}

// render returns the SQL fragment, its arguments, and the next free
// placeholder number. An empty fragment means the condition is skipped.
func (c Condition) render(next int) (string, []any, int) {
	switch c.Type {
	case Custom:
		return renumber(c.raw, c.params, next)
	case Equal, GreaterThanOrEqual, LessThanOrEqual, ILike:
		if c.Field == "" {
			return "", nil, next
		}
		return fmt.Sprintf("%s %s $%d", quote(c.Field), c.Type, next), []any{c.Value}, next + 1
	default:
		return "", nil, next
	}
}

func renumber(raw string, params []any, next int) (string, []any, int) {
	if strings.TrimSpace(raw) == "" {
		return "", nil, next
	}
	var args []any
	assigned := make(map[int]int)
	sql := placeholderRegex.ReplaceAllStringFunc(raw, func(m string) string {
		n, err := strconv.Atoi(m[1:])
		if err != nil || n < 1 || n > len(params) {
			return m
		}
		if _, ok := assigned[n]; !ok {
			assigned[n] = next
			args = append(args, params[n-1])
			next++
		}
		return "$" + strconv.Itoa(assigned[n])
	})
	return sql, args, next
}

// OrderTerm is one ORDER BY column with its direction.
type OrderTerm struct {
	Column    string
	Direction string
}

// ListQueryOptions describes a single-table SELECT.
type ListQueryOptions struct {
	Table      string
	Columns    []string
	CountOnly  bool
	Conditions []Condition
	OrderBy    []OrderTerm
	Limit      int
	Offset     int
}

// ListQueryOption mutates ListQueryOptions.
type ListQueryOption func(*ListQueryOptions)

// NewListQueryOptions applies opts over an unpaginated SELECT * of table.
func NewListQueryOptions(table string, opts ...ListQueryOption) *ListQueryOptions {
	options := &ListQueryOptions{Table: table, Limit: unset, Offset: unset}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithColumns sets the columns to select.
func WithColumns(cols ...string) ListQueryOption {
	return func(o *ListQueryOptions) { o.Columns = cols }
}

// WithCondition adds a single condition.
func WithCondition(cond Condition) ListQueryOption {
	return func(o *ListQueryOptions) { o.Conditions = append(o.Conditions, cond) }
}

// WithConditions appends conditions.
func WithConditions(conds ...Condition) ListQueryOption {
	return func(o *ListQueryOptions) { o.Conditions = append(o.Conditions, conds...) }
}

// WithOrderBy appends an ordering column. Repeated calls add tie-breakers in
// call order.
func WithOrderBy(column, direction string) ListQueryOption {
	return func(o *ListQueryOptions) {
		if column != "" {
			o.OrderBy = append(o.OrderBy, OrderTerm{Column: column, Direction: direction})
		}
	}
}

// WithLimit sets the limit. Accepts 0.
func WithLimit(limit int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if limit >= 0 {
			o.Limit = limit
		}
	}
}

// WithOffset sets the offset. Accepts 0.
func WithOffset(offset int) ListQueryOption {
	return func(o *ListQueryOptions) {
		if offset >= 0 {
			o.Offset = offset
		}
	}
}

// WithCountOnly selects COUNT(*) and drops ordering and pagination.
func WithCountOnly() ListQueryOption {
	return func(o *ListQueryOptions) { o.CountOnly = true }
}

// BuildListQuery renders options into SQL and its bound arguments.
//
//	query, args := BuildListQuery(NewListQueryOptions("job_listings",
//		WithColumns("id", "title"),
//		WithCondition(WhereCond("division", Equal, "Dhaka")),
//		WithCondition(WhereRawCond("(title ILIKE $1 OR description ILIKE $1)", "%plumb%")),
//		WithOrderBy("pay_value", "DESC"),
//		WithLimit(10),
//	))
func BuildListQuery(options *ListQueryOptions) (string, []any) {
	if options == nil {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	switch {
	case options.CountOnly:
		b.WriteString("COUNT(*)")
	case len(options.Columns) == 0:
		b.WriteString("*")
	default:
		cols := make([]string, len(options.Columns))
		for i, col := range options.Columns {
			cols[i] = quote(col)
		}
		b.WriteString(strings.Join(cols, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(quote(options.Table))

	args := []any{}
	next := 1
	terms := make([]string, 0, len(options.Conditions))
	for _, cond := range options.Conditions {
		sql, condArgs, n := cond.render(next)
		if sql == "" {
			continue
		}
		terms = append(terms, sql)
		args = append(args, condArgs...)
		next = n
	}
	if len(terms) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(terms, " AND "))
	}

	if options.CountOnly {
		return b.String(), args
	}

	for i, term := range options.OrderBy {
		if i == 0 {
			b.WriteString(" ORDER BY ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(quote(term.Column))
		if dir := strings.ToUpper(term.Direction); dir == "ASC" || dir == "DESC" {
			b.WriteString(" " + dir)
		}
	}
	if options.Limit != unset {
		fmt.Fprintf(&b, " LIMIT $%d", next)
		args = append(args, options.Limit)
		next++
	}
	if options.Offset != unset {
		fmt.Fprintf(&b, " OFFSET $%d", next)
		args = append(args, options.Offset)
	}
	return b.String(), args
}

// quote sanitizes a possibly qualified identifier such as "jobs.id".
func quote(ident string) string {
	return pgx.Identifier(strings.Split(ident, ".")).Sanitize()
}
