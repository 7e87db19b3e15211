package model

import (
	"strings"
	"time"

	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

const (
	MinRating = 1
	MaxRating = 5

	maxCommentLength = 2000
)

// Review is the one-time rating that finalizes a job.
type Review struct {
	ID         string    `json:"id"`
	JobID      string    `json:"job_id"`
	JobGiverID string    `json:"job_giver_id"`
	HustlerID  string    `json:"hustler_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// SubmitReviewRequest is the body of a review submission.
type SubmitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate checks the rating range and comment length.
func (r *SubmitReviewRequest) Validate() error {
	r.Comment = strings.TrimSpace(r.Comment)
	if r.Rating < MinRating || r.Rating > MaxRating {
		return apperrors.ValidationField("rating", "rating must be between 1 and 5")
	}
	if len(r.Comment) > maxCommentLength {
		return apperrors.ValidationField("comment", "comment is too long")
	}
	return nil
}

// Profile is the subset of a user profile the marketplace reads.
type Profile struct {
	UserID        string   `json:"user_id"`
	DisplayName   string   `json:"display_name"`
	Role          string   `json:"role"`
	AverageRating float64  `json:"average_rating"`
	ReviewCount   int      `json:"review_count"`
	Skills        []string `json:"skills"`
}

// Message is a chat message scoped to a job.
type Message struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// SendMessageRequest is the body of a chat message.
type SendMessageRequest struct {
	Body string `json:"body"`
}

// Validate checks the message body.
func (r *SendMessageRequest) Validate() error {
	r.Body = strings.TrimSpace(r.Body)
	if r.Body == "" {
		return apperrors.ValidationField("body", "message body is required")
	}
	if len(r.Body) > maxCommentLength {
		return apperrors.ValidationField("body", "message is too long")
	}
	return nil
}
