package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hustlehub/hustle-api/internal/domain/model"
)

func TestRenderNotification(t *testing.T) {
	price := 500.0

	tests := []struct {
		name string
		typ  model.NotificationType
		want string
	}{
		{"job application", model.NotificationJobApplication, `Rahim applied to your job "Fix sink".`},
		{"bid placed", model.NotificationBidPlaced, `Rahim placed a bid of BDT 500 on "Fix sink".`},
		{"bid accepted", model.NotificationBidAccepted, `Your bid of BDT 500 on "Fix sink" was accepted.`},
		{"bid rejected", model.NotificationBidRejected, `Your bid of BDT 500 on "Fix sink" was not selected.`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := RenderNotification(tt.typ, "Rahim", "Fix sink", &price)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)
		})
	}

	t.Run("job application needs no price", func(t *testing.T) {
		_, err := RenderNotification(model.NotificationJobApplication, "Rahim", "Fix sink", nil)
		assert.NoError(t, err)
	})

	t.Run("price bearing without price", func(t *testing.T) {
		_, err := RenderNotification(model.NotificationBidAccepted, "Rahim", "Fix sink", nil)
		assert.ErrorIs(t, err, ErrPriceRequired)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := RenderNotification("bogus", "Rahim", "Fix sink", &price)
		assert.ErrorIs(t, err, ErrUnknownNotificationType)
	})
}
