package testutil

import (
	"time"

	"github.com/hustlehub/hustle-api/internal/domain/model"
)

// JobRequestBuilder provides a fluent interface for building CreateJobRequest objects for testing.
type JobRequestBuilder struct {
	req *model.CreateJobRequest
}

// NewJobRequest creates a builder for a valid fixed-price bidding job in Dhaka.
func NewJobRequest() *JobRequestBuilder {
	return &JobRequestBuilder{
		req: &model.CreateJobRequest{
			Title:       "Move furniture",
			Description: "Help carry a sofa and two beds to the third floor.",
			JobType:     "moving",
			Location: model.Location{
				Division: "Dhaka",
				District: "Dhaka",
				Upazila:  "Dhanmondi",
				Area:     "Road 27",
			},
			Schedule: model.Schedule{
				Date:            TestTime().AddDate(0, 0, 7).Truncate(24 * time.Hour),
				StartTime:       "10:00",
				DurationMinutes: 180,
			},
			Payment: model.Payment{
				Method:   model.PaymentFixed,
				Amount:   1500,
				Platform: "bkash",
			},
			HiringType: model.HiringBidding,
		},
	}
}

// WithTitle sets the title.
func (b *JobRequestBuilder) WithTitle(title string) *JobRequestBuilder {
	b.req.Title = title
	return b
}

// WithJobType sets the job type.
func (b *JobRequestBuilder) WithJobType(jobType string) *JobRequestBuilder {
	b.req.JobType = jobType
	return b
}

// WithHiringType sets the hiring type.
func (b *JobRequestBuilder) WithHiringType(h model.HiringType) *JobRequestBuilder {
	b.req.HiringType = h
	return b
}

// WithFixedPay switches to a fixed payment of amount.
func (b *JobRequestBuilder) WithFixedPay(amount float64) *JobRequestBuilder {
	b.req.Payment.Method = model.PaymentFixed
	b.req.Payment.Amount = amount
	b.req.Payment.Rate = 0
	return b
}

// WithHourlyPay switches to an hourly payment at rate.
func (b *JobRequestBuilder) WithHourlyPay(rate float64) *JobRequestBuilder {
	b.req.Payment.Method = model.PaymentHourly
	b.req.Payment.Rate = rate
	b.req.Payment.Amount = 0
	return b
}

// WithSchedule sets the date, start time and duration.
func (b *JobRequestBuilder) WithSchedule(date time.Time, start string, duration time.Duration) *JobRequestBuilder {
	b.req.Schedule = model.Schedule{
		Date:            date,
		StartTime:       start,
		DurationMinutes: int(duration / time.Minute),
	}
	return b
}

// WithLocation sets the location triple.
func (b *JobRequestBuilder) WithLocation(division, district, upazila string) *JobRequestBuilder {
	b.req.Location.Division = division
	b.req.Location.District = district
	b.req.Location.Upazila = upazila
	return b
}

// WithSkills sets the required skills.
func (b *JobRequestBuilder) WithSkills(skills ...string) *JobRequestBuilder {
	b.req.SkillsRequired = skills
	return b
}

// Build returns a copy of the request.
func (b *JobRequestBuilder) Build() *model.CreateJobRequest {
	req := *b.req
	req.SkillsRequired = append([]string(nil), b.req.SkillsRequired...)
	return &req
}
