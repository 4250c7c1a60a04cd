package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionStatus is the delivery state of an archived contact submission.
type SubmissionStatus string

// Possible submission status values
const (
	SubmissionStatusReceived SubmissionStatus = "received"
	SubmissionStatusSent     SubmissionStatus = "sent"
	SubmissionStatusFailed   SubmissionStatus = "failed"
)

// ContactSubmission is an archived copy of a ContactMessage together with
// its delivery outcome.
type ContactSubmission struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name,omitempty"`
	Email     string           `json:"email"`
	Subject   string           `json:"subject"`
	Message   string           `json:"message"`
	Status    SubmissionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewContactSubmission creates a received submission for msg.
// Returns the message's validation error if it is not acceptable.
func NewContactSubmission(msg ContactMessage) (*ContactSubmission, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &ContactSubmission{
		ID:        uuid.New(),
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Status:    SubmissionStatusReceived,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate checks the submission's identity and status, then the message
// fields.
func (s *ContactSubmission) Validate() error {
	if s.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if !IsValidSubmissionStatus(s.Status) {
		return ErrInvalidSubmissionStatus
	}

	return s.contactMessage().Validate()
}

// UpdateStatus sets the status and bumps UpdatedAt.
func (s *ContactSubmission) UpdateStatus(status SubmissionStatus) error {
	if !IsValidSubmissionStatus(status) {
		return ErrInvalidSubmissionStatus
	}

	s.Status = status
	s.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *ContactSubmission) contactMessage() ContactMessage {
	return ContactMessage{
		Name:    s.Name,
		Email:   s.Email,
		Subject: s.Subject,
		Message: s.Message,
	}
}

// IsValidSubmissionStatus reports whether status is one of the known values.
func IsValidSubmissionStatus(status SubmissionStatus) bool {
	switch status {
	case SubmissionStatusReceived, SubmissionStatusSent, SubmissionStatusFailed:
		return true
	default:
		return false
	}
}
