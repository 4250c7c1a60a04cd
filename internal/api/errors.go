package api

import (
	"errors"
	"net/http"

	"github.com/sjnakib/portfolio/internal/api/shared"
	"github.com/sjnakib/portfolio/internal/content"
	"github.com/sjnakib/portfolio/internal/domain"
	"github.com/sjnakib/portfolio/internal/service"
	"github.com/sjnakib/portfolio/internal/store"
)

// User-facing messages for server-side failures.
const (
	MsgContactSent      = "Your email has been sent successfully! I will get back to you soon."
	MsgSendFailed       = "Failed to send your message. Please try again later."
	MsgResumeFailed     = "Failed to retrieve resume data"
	MsgInvalidRequest   = "Invalid request format"
	MsgBodyTooLarge     = "Request body too large"
	MsgProjectNotFound  = "Project not found"
	MsgUnexpectedError  = "An unexpected error occurred"
	msgInvalidParameter = "Invalid query parameter"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, shared.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, content.ErrProjectNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err. Validation
// errors carry their own safe message; everything else maps to a fixed text.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpectedError
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Message != "" {
		return verr.Message
	}

	switch {
	case errors.Is(err, shared.ErrBodyTooLarge):
		return MsgBodyTooLarge
	case errors.Is(err, content.ErrProjectNotFound):
		return MsgProjectNotFound
	case errors.Is(err, service.ErrDeliveryFailed):
		return MsgSendFailed
	case errors.Is(err, service.ErrResumeUnavailable):
		return MsgResumeFailed
	default:
		return MsgUnexpectedError
	}
}

// HandleAPIError writes the error response for err. fallback replaces the
// generic message for unmapped 500s.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if fallback != "" && message == MsgUnexpectedError {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
