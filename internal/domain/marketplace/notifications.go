package marketplace

import (
	"errors"
	"fmt"

	"github.com/hustlehub/hustle-api/internal/domain/model"
)

var (
	// ErrUnknownNotificationType indicates a type with no template.
	ErrUnknownNotificationType = errors.New("unknown notification type")
	// ErrPriceRequired indicates a price-bearing notification was requested without a price.
	ErrPriceRequired = errors.New("price is required for this notification type")
)

// RenderNotification renders the message text for a notification.
func RenderNotification(typ model.NotificationType, senderName, jobTitle string, price *float64) (string, error) {
	if !typ.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownNotificationType, typ)
	}
	if typ.PriceBearing() && price == nil {
		return "", fmt.Errorf("%w: %s", ErrPriceRequired, typ)
	}

	switch typ {
	case model.NotificationJobApplication:
		return fmt.Sprintf("%s applied to your job %q.", senderName, jobTitle), nil
	case model.NotificationBidPlaced:
		return fmt.Sprintf("%s placed a bid of %s on %q.", senderName, FormatAmount(*price), jobTitle), nil
	case model.NotificationBidAccepted:
		return fmt.Sprintf("Your bid of %s on %q was accepted.", FormatAmount(*price), jobTitle), nil
	default:
		return fmt.Sprintf("Your bid of %s on %q was not selected.", FormatAmount(*price), jobTitle), nil
	}
}
