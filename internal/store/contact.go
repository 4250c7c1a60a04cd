package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/sjnakib/portfolio/internal/domain"
)

// ContactStore archives contact-form submissions and their delivery outcome.
type ContactStore interface {
	// Create saves a new submission.
	// Returns validation errors from the domain submission if data is invalid.
	Create(ctx context.Context, submission *domain.ContactSubmission) error

	// UpdateStatus records the delivery outcome of a submission.
	// Returns ErrSubmissionNotFound if the submission does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus) error

	// ListRecent returns up to limit submissions, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.ContactSubmission, error)
}
