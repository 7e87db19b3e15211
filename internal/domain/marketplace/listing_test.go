package marketplace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hustlehub/hustle-api/internal/domain/model"
)

func TestStandardizePayment(t *testing.T) {
	fixed := StandardizePayment(model.Payment{Method: model.PaymentFixed, Amount: 500, Platform: "bkash"})
	assert.Equal(t, "BDT 500", fixed.Display)
	assert.Equal(t, model.PaymentFixed, fixed.Type)
	assert.Equal(t, "bkash", fixed.Platform)

	hourly := StandardizePayment(model.Payment{Method: model.PaymentHourly, Rate: 200})
	assert.Equal(t, "BDT 200/hr", hourly.Display)

	fractional := StandardizePayment(model.Payment{Method: model.PaymentFixed, Amount: 250.5})
	assert.Equal(t, "BDT 250.5", fractional.Display)
}

func TestDeriveTags(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	rules := DefaultTagRules()

	job := &model.Job{
		Schedule: model.Schedule{
			Date:            time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			StartTime:       "10:00",
			DurationMinutes: 180,
		},
	}
	assert.Equal(t, []string{TagNoSkillNeeded, TagStudentFriendly, TagUrgent}, rules.DeriveTags(job, now))

	job.SkillsRequired = []string{"plumbing"}
	job.Schedule.DurationMinutes = 241
	job.Schedule.Date = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, rules.DeriveTags(job, now))

	t.Run("urgent boundary is inclusive", func(t *testing.T) {
		j := &model.Job{
			SkillsRequired: []string{"x"},
			Schedule: model.Schedule{
				Date:            time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
				StartTime:       "09:00",
				DurationMinutes: 600,
			},
		}
		assert.Equal(t, []string{TagUrgent}, rules.DeriveTags(j, now))
		assert.Empty(t, rules.DeriveTags(j, now.Add(-time.Minute)))
	})

	t.Run("past schedule is not urgent", func(t *testing.T) {
		j := &model.Job{
			SkillsRequired: []string{"x"},
			Schedule:       model.Schedule{Date: now.AddDate(0, 0, -1), StartTime: "09:00", DurationMinutes: 600},
		}
		assert.Empty(t, rules.DeriveTags(j, now))
	})
}

func TestToListing(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	job := &model.Job{
		ID:           "j1",
		Payment:      model.Payment{Method: model.PaymentFixed, Amount: 500},
		Schedule:     model.Schedule{Date: now.AddDate(0, 1, 0), StartTime: "09:00", DurationMinutes: 600},
		Bids:         []string{"b1", "b2"},
		ApplicantIDs: []string{"h1", "h2"},
	}

	listing := DefaultTagRules().ToListing(job, "h2", now)
	require.NotNil(t, listing)
	assert.True(t, listing.UserHasApplied)
	assert.Equal(t, 2, listing.BidCount)
	assert.Equal(t, "BDT 500", listing.StandardPayment.Display)

	assert.False(t, DefaultTagRules().ToListing(job, "h3", now).UserHasApplied)
	assert.False(t, DefaultTagRules().ToListing(job, "", now).UserHasApplied)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 10))
	assert.Equal(t, 1, PageCount(10, 10))
	assert.Equal(t, 2, PageCount(11, 10))
	assert.Equal(t, 0, PageCount(5, 0))
}
