package errors

import (
	"context"
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/hustlehub/hustle-api/internal/errors"
)

type customErr struct{}

func (customErr) Error() string { return "custom" }

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Classify(nil))
	assert.Equal(t, "conflict", Classify(fmt.Errorf("accept bid: %w", apperrors.Conflict("job has already been assigned"))))
	assert.Equal(t, "invalid_state", Classify(apperrors.InvalidState("bid is withdrawn")))
	assert.Equal(t, "errors_customerr", Classify(fmt.Errorf("wrap: %w", customErr{})))
	assert.Equal(t, "errors_errorstring", Classify(goerrors.New("plain")))
	assert.Equal(t, "timeout", Classify(fmt.Errorf("list jobs: %w", context.DeadlineExceeded)))
	assert.Equal(t, "canceled", Classify(context.Canceled))
}
