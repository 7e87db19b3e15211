package marketplace

import (
	"strconv"
	"time"

	"github.com/hustlehub/hustle-api/internal/domain/model"
)

// Listing tags.
const (
	TagNoSkillNeeded   = "no-skill-needed"
	TagStudentFriendly = "student-friendly"
	TagUrgent          = "urgent"
)

// Currency is prefixed to every displayed amount.
const Currency = "BDT"

// TagRules configures how listing tags are derived.
type TagRules struct {
	StudentFriendlyMax time.Duration
	UrgentWithin       time.Duration
}

// DefaultTagRules returns the standard thresholds: jobs of four hours or less
// are student friendly and jobs starting within 48 hours are urgent.
func DefaultTagRules() TagRules {
	return TagRules{
		StudentFriendlyMax: 4 * time.Hour,
		UrgentWithin:       48 * time.Hour,
	}
}

// FormatAmount renders an amount with the currency prefix, e.g. "BDT 500".
func FormatAmount(v float64) string {
	return Currency + " " + strconv.FormatFloat(v, 'f', -1, 64)
}

// StandardizePayment converts a payment into its display form.
func StandardizePayment(p model.Payment) model.StandardPayment {
	display := FormatAmount(p.Value())
	if p.Method == model.PaymentHourly {
		display += "/hr"
	}
	return model.StandardPayment{
		Type:     p.Method,
		Display:  display,
		Platform: p.Platform,
	}
}

// StartsAt combines the schedule date with its HH:MM start time in the date's
// location. A malformed start time falls back to the date itself.
func StartsAt(s model.Schedule) time.Time {
	clock, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return s.Date
	}
	y, m, d := s.Date.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, s.Date.Location())
}

// DeriveTags returns the listing tags for job at now.
func (r TagRules) DeriveTags(job *model.Job, now time.Time) []string {
	tags := make([]string, 0, 3)
	if len(job.SkillsRequired) == 0 {
		tags = append(tags, TagNoSkillNeeded)
	}
	if d := job.Schedule.Duration(); d > 0 && d <= r.StudentFriendlyMax {
		tags = append(tags, TagStudentFriendly)
	}
	if until := StartsAt(job.Schedule).Sub(now); until >= 0 && until <= r.UrgentWithin {
		tags = append(tags, TagUrgent)
	}
	return tags
}

// ToListing transforms job for requester. An empty requester never has applied.
func (r TagRules) ToListing(job *model.Job, requester string, now time.Time) *model.JobListing {
	return &model.JobListing{
		Job:             job,
		StandardPayment: StandardizePayment(job.Payment),
		Tags:            r.DeriveTags(job, now),
		BidCount:        len(job.Bids),
		UserHasApplied:  requester != "" && job.HasApplicant(requester),
	}
}

// PageCount returns the number of pages needed for total items.
func PageCount(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
