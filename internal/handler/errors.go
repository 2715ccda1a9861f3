package handler

import (
	"errors"
	"fmt"

	"github.com/osse101/LevelInfo_Go/internal/domain"
)

// User-facing failure messages. These strings are part of the API contract.
const (
	// Player info failures
	ErrMsgAPIServerError      = "API Server Error"
	ErrMsgEmptyData           = "Empty Data received from API"
	ErrMsgAPITimeoutFormat    = "API Timeout (%s exceeded)"
	ErrMsgUnexpectedFormat    = "Unexpected Error: %s"
	ErrMsgUnexpectedUnknown   = "Unexpected Error"
	ErrMsgInvalidUID          = "Invalid UID"
	ErrMsgProgressUnavailable = "Could not calculate level progress"

	// Level lookup failures
	ErrMsgLevelOutOfRange    = "Level must be between 1 and 100"
	ErrMsgInvalidLevelNumber = "Invalid level number"

	// Catch-all failures
	ErrMsgInternalFormat   = "Error: %v"
	ErrMsgEncodeFailed     = "Failed to encode response"
	ErrMsgNotFound         = "Not found"
	ErrMsgMethodNotAllowed = "Method not allowed"
)

// Success and description messages
const (
	MsgServiceDescription = "Free Fire Level Info API"

	EndpointDescPlayerLevel = "Get level progress for player"
	EndpointDescAllLevels   = "Get all level EXP requirements"
	EndpointDescLevelExp    = "Get EXP required for a specific level"
)

// mapFetchErrorToMessage maps player info errors to the message returned to callers
func mapFetchErrorToMessage(err error) string {
	var timeoutErr *domain.UpstreamTimeoutError
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.As(err, &timeoutErr):
		return fmt.Sprintf(ErrMsgAPITimeoutFormat, timeoutErr.Timeout)
	case errors.Is(err, domain.ErrUpstreamTimeout):
		return fmt.Sprintf(ErrMsgAPITimeoutFormat, "request")
	case errors.Is(err, domain.ErrUpstreamStatus):
		return ErrMsgAPIServerError
	case errors.Is(err, domain.ErrUpstreamEmpty):
		return ErrMsgEmptyData
	case errors.As(err, &upstreamErr) && upstreamErr.Err != nil:
		return fmt.Sprintf(ErrMsgUnexpectedFormat, upstreamErr.Err.Error())
	case err != nil:
		return fmt.Sprintf(ErrMsgUnexpectedFormat, err.Error())
	}
	return ErrMsgUnexpectedUnknown
}
