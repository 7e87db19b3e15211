package httpx

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hustlehub/hustle-api/internal/domain/model"
	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

func TestParseJobListOptions(t *testing.T) {
	q := url.Values{}
	q.Set("sort", "PAY_HIGH")
	q.Set("page", "2")
	q.Set("limit", "25")
	q.Set("status", "in-progress")
	q.Set("division", "Dhaka")
	q.Set("hiring_type", "instant")
	q.Set("payment_method", "hourly")
	q.Set("min_pay", "100")
	q.Set("max_pay", "500.5")
	q.Set("q", "  paint ")

	opts, err := ParseJobListOptions(q)
	require.NoError(t, err)
	assert.Equal(t, model.JobSortPayHigh, opts.Sort)
	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 25, opts.Limit)
	require.NotNil(t, opts.Filters.Status)
	assert.Equal(t, model.JobStatusInProgress, *opts.Filters.Status)
	assert.Equal(t, "Dhaka", *opts.Filters.Division)
	assert.Equal(t, model.HiringInstant, *opts.Filters.HiringType)
	assert.Equal(t, model.PaymentHourly, *opts.Filters.PaymentMethod)
	assert.InDelta(t, 100, *opts.Filters.MinPay, 0)
	assert.InDelta(t, 500.5, *opts.Filters.MaxPay, 0)
	assert.Equal(t, "paint", *opts.Filters.Search)
	assert.Nil(t, opts.Filters.District)
	assert.Nil(t, opts.Filters.JobType)
}

func TestParseJobListOptions_Empty(t *testing.T) {
	opts, err := ParseJobListOptions(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, model.JobListOptions{}, opts)
}

func TestParseJobListOptions_Rejects(t *testing.T) {
	tests := []struct {
		key, value, field string
	}{
		{"page", "two", "page"},
		{"limit", "1.5", "limit"},
		{"hiring_type", "auction", "hiring_type"},
		{"payment_method", "barter", "payment_method"},
		{"min_pay", "-1", "min_pay"},
		{"max_pay", "lots", "max_pay"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, err := ParseJobListOptions(url.Values{tt.key: []string{tt.value}})
			require.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tt.field, apperrors.GetField(err))
		})
	}
}
