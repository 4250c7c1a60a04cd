package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sjnakib/portfolio/internal/api/shared"
	"github.com/sjnakib/portfolio/internal/content"
	"github.com/sjnakib/portfolio/internal/domain"
	"github.com/sjnakib/portfolio/internal/service"
	"github.com/sjnakib/portfolio/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError(domain.FieldEmail, domain.MsgInvalidEmail, domain.ErrValidation), http.StatusBadRequest},
		{"invalid entity", fmt.Errorf("wrapped: %w", store.ErrInvalidEntity), http.StatusBadRequest},
		{"body too large", shared.ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
		{"project not found", fmt.Errorf("%w: x", content.ErrProjectNotFound), http.StatusNotFound},
		{"store not found", store.ErrNotFound, http.StatusNotFound},
		{"delivery failure", fmt.Errorf("%w: %w", service.ErrDeliveryFailed, errors.New("boom")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, MsgUnexpectedError},
		{"validation message", domain.NewValidationError(domain.FieldSubject, domain.MsgSubjectLength, domain.ErrValidation), domain.MsgSubjectLength},
		{"body too large", shared.ErrBodyTooLarge, MsgBodyTooLarge},
		{"project not found", content.ErrProjectNotFound, MsgProjectNotFound},
		{"delivery failure", fmt.Errorf("%w: %w", service.ErrDeliveryFailed, errors.New("smtp.example.com down")), MsgSendFailed},
		{"resume", service.ErrResumeUnavailable, MsgResumeFailed},
		{"internal detail", errors.New("pq: relation does not exist"), MsgUnexpectedError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}
