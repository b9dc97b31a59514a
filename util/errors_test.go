package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOfMapsKinds(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{MissingField("x"), http.StatusBadRequest},
		{InvalidDate("x"), http.StatusBadRequest},
		{InvalidRange("x"), http.StatusBadRequest},
		{NotFound("x"), http.StatusNotFound},
		{Forbidden("x"), http.StatusForbidden},
		{Unauthorized("x"), http.StatusUnauthorized},
		{DuplicateBooking("x"), http.StatusConflict},
		{SlotUnavailable("x"), http.StatusConflict},
		{InvalidTransition("x"), http.StatusBadRequest},
		{AlreadyFinal("x"), http.StatusBadRequest},
		{TooManyRequests("x"), http.StatusTooManyRequests},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusOf(tt.err), tt.err.Error())
	}
}

func TestStatusOfUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("saving booking: %w", SlotUnavailable(SLOT_ALREADY_BOOKED))
	assert.Equal(t, http.StatusConflict, StatusOf(wrapped))
	assert.Equal(t, KindSlotUnavailable, KindOf(wrapped))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, "", KindOf(errors.New("boom")))
}
