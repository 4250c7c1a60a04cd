package api

import (
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/sjnakib/portfolio/internal/api/shared"
	"github.com/sjnakib/portfolio/internal/platform/logger"
	"github.com/sjnakib/portfolio/internal/service"
)

// ContactHandler handles contact form submissions from the JSON API.
type ContactHandler struct {
	contacts service.ContactService
	logger   *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contacts service.ContactService, logger *slog.Logger) *ContactHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactHandler{
		contacts: contacts,
		logger:   logger.With(slog.String("component", "contact_handler")),
	}
}

// SendContact handles POST /api/contact.
func (h *ContactHandler) SendContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ContactRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		if errors.Is(err, shared.ErrBodyTooLarge) {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	if err := h.contacts.Submit(r.Context(), req.ContactMessage()); err != nil {
		HandleAPIError(w, r, err, MsgSendFailed)
		return
	}

	log.Info("contact request handled", slog.Int("subject_length", utf8.RuneCountInString(req.Subject)))
	shared.RespondWithJSON(w, r, http.StatusOK, ContactResponse{
		Success: true,
		Message: MsgContactSent,
	})
}
