package api

import (
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/recapcrew/recap/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("speaker", "required"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "required",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "finalized meeting maps to 409",
			err:        services.ErrMeetingFinalized,
			expectCode: http.StatusConflict,
			expectMsg:  "meeting is finalized",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}
