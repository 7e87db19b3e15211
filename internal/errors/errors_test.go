package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "job not found",
			},
			want: "job not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "failed to accept bid",
				Cause:   errors.New("underlying error"),
			},
			want: "failed to accept bid: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestConstructors_SetCode(t *testing.T) {
	tests := []struct {
		name  string
		err   *AppError
		code  ErrorCode
		check func(error) bool
	}{
		{"validation", Validation("bad input"), ErrCodeValidation, IsValidation},
		{"validationf", Validationf("bad %s", "price"), ErrCodeValidation, IsValidation},
		{"forbidden", Forbidden("not yours"), ErrCodeForbidden, IsForbidden},
		{"not found", NotFound("missing"), ErrCodeNotFound, IsNotFound},
		{"not foundf", NotFoundf("job %s not found", "j1"), ErrCodeNotFound, IsNotFound},
		{"invalid state", InvalidState("not pending"), ErrCodeInvalidState, IsInvalidState},
		{"invalid statef", InvalidStatef("bid is %s", "accepted"), ErrCodeInvalidState, IsInvalidState},
		{"duplicate", Duplicate("already reviewed"), ErrCodeDuplicate, IsDuplicate},
		{"conflict", Conflict("already assigned"), ErrCodeConflict, IsConflict},
		{"conflictf", Conflictf("job %s already assigned", "j1"), ErrCodeConflict, IsConflict},
		{"internal", Internal("boom"), ErrCodeInternal, IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.code)
			}
			if !tt.check(tt.err) {
				t.Errorf("predicate returned false for %v", tt.err)
			}
		})
	}
}

func TestFormattedMessages(t *testing.T) {
	if got := NotFoundf("job %s not found", "j1").Message; got != "job j1 not found" {
		t.Errorf("NotFoundf().Message = %q", got)
	}
	literal := "discount of 10%s off %d jobs"
	for name, ctor := range map[string]func(string) *AppError{
		"Validation":   Validation,
		"Unauthorized": Unauthorized,
		"Forbidden":    Forbidden,
		"NotFound":     NotFound,
		"InvalidState": InvalidState,
		"Duplicate":    Duplicate,
		"Conflict":     Conflict,
		"Internal":     Internal,
	} {
		if got := ctor(literal).Message; got != literal {
			t.Errorf("%s() must keep its message verbatim, got %q", name, got)
		}
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("price", "price must be positive")
	if err.Field != "price" {
		t.Errorf("Field = %q, want price", err.Field)
	}
	if GetField(err) != "price" {
		t.Errorf("GetField() = %q, want price", GetField(err))
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "msg") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, ErrCodeInternal, "msg %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	cause := errors.New("db down")
	err := Wrapf(cause, ErrCodeInternal, "load job %s", "j1")
	if err.Message != "load job j1" {
		t.Errorf("Message = %q", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match cause")
	}
}

func TestPredicates_ThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("accept bid: %w", Conflict("job already assigned"))
	if !IsConflict(err) {
		t.Error("IsConflict should see through fmt.Errorf wrapping")
	}
	if IsInvalidState(err) {
		t.Error("IsInvalidState should be false for a conflict")
	}
	if GetCode(err) != ErrCodeConflict {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if GetCode(errors.New("plain")) != "" {
		t.Error("GetCode() of a plain error should be empty")
	}
}
