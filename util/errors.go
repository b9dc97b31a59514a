package util

import (
	"errors"
	"net/http"
)

// Error kinds surfaced by the services. Controllers map them to HTTP
// status codes through StatusOf.
const (
	KindMissingRequiredField    = "MissingRequiredField"
	KindInvalidDate             = "InvalidDate"
	KindInvalidRange            = "InvalidRange"
	KindNotFound                = "NotFound"
	KindForbidden               = "Forbidden"
	KindDuplicateBooking        = "DuplicateBooking"
	KindSlotUnavailable         = "SlotUnavailable"
	KindInvalidStatusTransition = "InvalidStatusTransition"
	KindAlreadyFinal            = "AlreadyFinal"
	KindUnauthorized            = "Unauthorized"
	KindBadRequest              = "BadRequest"
	KindTooManyRequests         = "TooManyRequests"
)

type ApiError struct {
	Status  int    `json:"-"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(status int, kind, message string) *ApiError {
	return &ApiError{Status: status, Kind: kind, Message: message}
}

func MissingField(msg string) *ApiError {
	return NewApiError(http.StatusBadRequest, KindMissingRequiredField, msg)
}

func InvalidDate(msg string) *ApiError {
	return NewApiError(http.StatusBadRequest, KindInvalidDate, msg)
}

func InvalidRange(msg string) *ApiError {
	return NewApiError(http.StatusBadRequest, KindInvalidRange, msg)
}

func NotFound(msg string) *ApiError {
	return NewApiError(http.StatusNotFound, KindNotFound, msg)
}

func Forbidden(msg string) *ApiError {
	return NewApiError(http.StatusForbidden, KindForbidden, msg)
}

func BadRequest(msg string) *ApiError {
	return NewApiError(http.StatusBadRequest, KindBadRequest, msg)
}

func Unauthorized(msg string) *ApiError {
	return NewApiError(http.StatusUnauthorized, KindUnauthorized, msg)
}

func DuplicateBooking(msg string) *ApiError {
	return NewApiError(http.StatusConflict, KindDuplicateBooking, msg)
}

func SlotUnavailable(msg string) *ApiError {
	return NewApiError(http.StatusConflict, KindSlotUnavailable, msg)
}

func InvalidTransition(msg string) *ApiError {
	return NewApiError(http.StatusBadRequest, KindInvalidStatusTransition, msg)
}

func AlreadyFinal(msg string) *ApiError {
	return NewApiError(http.StatusBadRequest, KindAlreadyFinal, msg)
}

func TooManyRequests(msg string) *ApiError {
	return NewApiError(http.StatusTooManyRequests, KindTooManyRequests, msg)
}

// StatusOf returns the HTTP status for an error. Anything that is not an
// ApiError is treated as an unexpected server failure.
func StatusOf(err error) int {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// KindOf reports the taxonomy kind of an error, or empty for plain errors.
func KindOf(err error) string {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}
