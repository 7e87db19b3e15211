package model

import "time"

// NotificationType identifies the template a notification was rendered from.
type NotificationType string

const (
	NotificationJobApplication NotificationType = "job_application"
	NotificationBidPlaced      NotificationType = "bid_placed"
	NotificationBidAccepted    NotificationType = "bid_accepted"
	NotificationBidRejected    NotificationType = "bid_rejected"
)

// Valid returns true if the type is known.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationJobApplication, NotificationBidPlaced, NotificationBidAccepted, NotificationBidRejected:
		return true
	}
	return false
}

// PriceBearing reports whether notifications of this type must carry a price.
func (t NotificationType) PriceBearing() bool {
	return t == NotificationBidPlaced || t == NotificationBidAccepted || t == NotificationBidRejected
}

// Notification is an in-app message to a user. Only Read ever changes.
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	SenderID    string           `json:"sender_id"`
	JobID       string           `json:"job_id"`
	Type        NotificationType `json:"type"`
	Message     string           `json:"message"`
	Read        bool             `json:"read"`
	Price       *float64         `json:"price,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NotificationListOptions groups parameters for listing a user's notifications.
type NotificationListOptions struct {
	RecipientID string
	UnreadOnly  bool
	Limit       int
	Offset      int
}
