package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sjnakib/portfolio/internal/domain"
	"github.com/sjnakib/portfolio/internal/platform/logger"
	"github.com/sjnakib/portfolio/internal/store"
)

// MaxListLimit caps ListRecent.
const MaxListLimit = 100

// PostgresContactStore implements store.ContactStore on PostgreSQL.
type PostgresContactStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.ContactStore = (*PostgresContactStore)(nil)

// NewPostgresContactStore creates a contact archive over db, which may be a
// *sql.DB or a *sql.Tx. If logger is nil, a default logger will be used.
func NewPostgresContactStore(db store.DBTX, logger *slog.Logger) *PostgresContactStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresContactStore{
		db:     db,
		logger: logger.With(slog.String("component", "contact_store")),
	}
}

// Create implements store.ContactStore.Create.
func (s *PostgresContactStore) Create(ctx context.Context, submission *domain.ContactSubmission) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := submission.Validate(); err != nil {
		log.Warn("contact submission validation failed during create",
			slog.String("error", err.Error()),
			slog.String("submission_id", submission.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO contact_submissions (id, name, email, subject, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		submission.ID,
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Message,
		string(submission.Status),
		submission.CreatedAt,
		submission.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create contact submission",
			slog.String("error", err.Error()),
			slog.String("submission_id", submission.ID.String()))
		return store.NewStoreError("contact_submission", "create", "insert failed", MapError(err))
	}

	log.Debug("contact submission archived",
		slog.String("submission_id", submission.ID.String()),
		slog.String("status", string(submission.Status)))
	return nil
}

// UpdateStatus implements store.ContactStore.UpdateStatus.
func (s *PostgresContactStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SubmissionStatus) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.IsValidSubmissionStatus(status) {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrInvalidSubmissionStatus)
	}

	query := `
		UPDATE contact_submissions
		SET status = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, string(status), time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update contact submission status",
			slog.String("error", err.Error()),
			slog.String("submission_id", id.String()))
		return store.NewStoreError("contact_submission", "update", "update failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrSubmissionNotFound); err != nil {
		log.Debug("contact submission not found for status update",
			slog.String("submission_id", id.String()))
		return err
	}

	log.Debug("contact submission status updated",
		slog.String("submission_id", id.String()),
		slog.String("status", string(status)))
	return nil
}

// ListRecent implements store.ContactStore.ListRecent.
func (s *PostgresContactStore) ListRecent(ctx context.Context, limit int) ([]*domain.ContactSubmission, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}

	query := `
		SELECT id, name, email, subject, message, status, created_at, updated_at
		FROM contact_submissions
		ORDER BY created_at DESC, id
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		log.Error("failed to list contact submissions", slog.String("error", err.Error()))
		return nil, store.NewStoreError("contact_submission", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	submissions := make([]*domain.ContactSubmission, 0, limit)
	for rows.Next() {
		var (
			sub    domain.ContactSubmission
			status string
		)
		if err := rows.Scan(
			&sub.ID,
			&sub.Name,
			&sub.Email,
			&sub.Subject,
			&sub.Message,
			&status,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		); err != nil {
			return nil, store.NewStoreError("contact_submission", "list", "scan failed", err)
		}
		sub.Status = domain.SubmissionStatus(status)
		submissions = append(submissions, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("contact_submission", "list", "row iteration failed", err)
	}

	return submissions, nil
}
