package model

import (
	"fmt"
	"time"
)

// Realtime event types.
const (
	EventNotification = "notification"
	EventBidAccepted  = "bid_accepted"
	EventBidRejected  = "bid_rejected"
	EventBidPlaced    = "bid_placed"
	EventBidWithdrawn = "bid_withdrawn"
	EventJobAssigned  = "job_assigned"
	EventJobCancelled = "job_cancelled"
	EventJobCompleted = "job_completed"
	EventChatClosed   = "chat_closed"
	EventMessage      = "message"
)

// RealtimeEvent is an advisory push to subscribers of a topic. Clients treat
// persisted state as authoritative and re-fetch on receipt.
type RealtimeEvent struct {
	Type      string    `json:"type"`
	JobID     string    `json:"job_id,omitempty"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// JobTopic returns the realtime topic for a job.
func JobTopic(jobID string) string { return fmt.Sprintf("job:%s", jobID) }

// UserTopic returns the realtime topic for a user.
func UserTopic(userID string) string { return fmt.Sprintf("user:%s", userID) }
