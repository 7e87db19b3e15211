// Package model defines the core data types shared by the marketplace services and repositories.
package model

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

// JobStatus represents the lifecycle status of a job.
type JobStatus string

// PaymentMethod describes how a job pays.
type PaymentMethod string

// HiringType describes how a hustler is chosen for a job.
type HiringType string

const (
	// JobStatusOpen accepts bids.
	JobStatusOpen JobStatus = "open"
	// JobStatusInProgress has exactly one assigned hustler.
	JobStatusInProgress JobStatus = "in-progress"
	// JobStatusCompleted is terminal; the job has been reviewed.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusCancelled is terminal; the owner withdrew the posting before assignment.
	JobStatusCancelled JobStatus = "cancelled"

	PaymentFixed  PaymentMethod = "fixed"
	PaymentHourly PaymentMethod = "hourly"

	HiringBidding HiringType = "bidding"
	HiringInstant HiringType = "instant"
)

// Valid returns true if the JobStatus is valid.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further lifecycle transition is possible.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// Valid returns true if the PaymentMethod is valid.
func (m PaymentMethod) Valid() bool { return m == PaymentFixed || m == PaymentHourly }

// Valid returns true if the HiringType is valid.
func (h HiringType) Valid() bool { return h == HiringBidding || h == HiringInstant }

// Location is where a job takes place. The division/district/upazila triple is
// checked against the location reference dataset.
type Location struct {
	Division string `json:"division"`
	District string `json:"district"`
	Upazila  string `json:"upazila"`
	Area     string `json:"area,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Schedule is when a job takes place.
type Schedule struct {
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"` // HH:MM, 24h
	// DurationMinutes is the expected length of the job.
	DurationMinutes int `json:"duration_minutes"`
}

// Duration returns the schedule length as a time.Duration.
func (s Schedule) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// Payment holds the payment terms of a job. Amount is used for fixed
// payments, Rate for hourly ones.
type Payment struct {
	Method   PaymentMethod `json:"method"`
	Amount   float64       `json:"amount,omitempty"`
	Rate     float64       `json:"rate,omitempty"`
	Platform string        `json:"platform"`
}

// Value returns the amount or the hourly rate depending on the method.
func (p Payment) Value() float64 {
	if p.Method == PaymentHourly {
		return p.Rate
	}
	return p.Amount
}

// Job represents a posted task.
type Job struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	JobType        string     `json:"job_type"`
	Location       Location   `json:"location"`
	Schedule       Schedule   `json:"schedule"`
	Payment        Payment    `json:"payment"`
	HiringType     HiringType `json:"hiring_type"`
	SkillsRequired []string   `json:"skills_required"`
	Status         JobStatus  `json:"status"`
	CreatedBy      string     `json:"created_by"`
	AssignedTo     *string    `json:"assigned_to,omitempty"`
	// Bids holds bid ids in creation order.
	Bids       []string  `json:"bids"`
	IsReviewed bool      `json:"is_reviewed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// ApplicantIDs mirrors Bids with the hustler id of each bid.
	ApplicantIDs []string `json:"-"`
}

// IsParticipant reports whether userID is the owner or the assigned hustler.
func (j *Job) IsParticipant(userID string) bool {
	if userID == "" {
		return false
	}
	if j.CreatedBy == userID {
		return true
	}
	return j.AssignedTo != nil && *j.AssignedTo == userID
}

// HasApplicant reports whether userID has a bid on the job, scanning the bid set.
func (j *Job) HasApplicant(userID string) bool {
	for _, id := range j.ApplicantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// CreateJobRequest represents a request to post a new job.
type CreateJobRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	JobType        string     `json:"job_type"`
	Location       Location   `json:"location"`
	Schedule       Schedule   `json:"schedule"`
	Payment        Payment    `json:"payment"`
	HiringType     HiringType `json:"hiring_type"`
	SkillsRequired []string   `json:"skills_required,omitempty"`
}

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// Normalize trims whitespace from free-text fields.
func (r *CreateJobRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.JobType = strings.ToLower(strings.TrimSpace(r.JobType))
	r.Location.Division = strings.TrimSpace(r.Location.Division)
	r.Location.District = strings.TrimSpace(r.Location.District)
	r.Location.Upazila = strings.TrimSpace(r.Location.Upazila)
	r.Location.Area = strings.TrimSpace(r.Location.Area)
	r.Location.Address = strings.TrimSpace(r.Location.Address)
	r.Payment.Platform = strings.TrimSpace(r.Payment.Platform)
	if r.HiringType == "" {
		r.HiringType = HiringBidding
	}
	skills := r.SkillsRequired[:0]
	for _, s := range r.SkillsRequired {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	r.SkillsRequired = skills
}

// Validate checks required fields. The location triple is validated separately
// against the reference dataset.
func (r *CreateJobRequest) Validate() error {
	switch {
	case r.Title == "":
		return apperrors.ValidationField("title", "title is required")
	case len(r.Title) > maxTitleLength:
		return apperrors.ValidationField("title", fmt.Sprintf("title must be at most %d characters", maxTitleLength))
	case r.Description == "":
		return apperrors.ValidationField("description", "description is required")
	case len(r.Description) > maxDescriptionLength:
		return apperrors.ValidationField(
			"description",
			fmt.Sprintf("description must be at most %d characters", maxDescriptionLength),
		)
	case r.JobType == "":
		return apperrors.ValidationField("job_type", "job type is required")
	case r.Location.Division == "" || r.Location.District == "" || r.Location.Upazila == "":
		return apperrors.ValidationField("location", "division, district and upazila are required")
	case r.Schedule.Date.IsZero():
		return apperrors.ValidationField("schedule.date", "schedule date is required")
	case !validClock(r.Schedule.StartTime):
		return apperrors.ValidationField("schedule.start_time", "start time must be HH:MM")
	case r.Schedule.DurationMinutes <= 0:
		return apperrors.ValidationField("schedule.duration_minutes", "duration must be positive")
	case !r.HiringType.Valid():
		return apperrors.ValidationField("hiring_type", "hiring type must be bidding or instant")
	}
	return r.validatePayment()
}

func (r *CreateJobRequest) validatePayment() error {
	p := r.Payment
	switch p.Method {
	case PaymentFixed:
		if p.Amount <= 0 {
			return apperrors.ValidationField("payment.amount", "fixed payment requires a positive amount")
		}
	case PaymentHourly:
		if p.Rate <= 0 {
			return apperrors.ValidationField("payment.rate", "hourly payment requires a positive rate")
		}
	default:
		return apperrors.ValidationField("payment.method", "payment method must be fixed or hourly")
	}
	if p.Platform == "" {
		return apperrors.ValidationField("payment.platform", "payment platform is required")
	}
	return nil
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
