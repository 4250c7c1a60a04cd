package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/sjnakib/portfolio/internal/domain"
	"github.com/sjnakib/portfolio/internal/platform/logger"
	"github.com/sjnakib/portfolio/internal/redact"
	"github.com/sjnakib/portfolio/internal/store"
)

// Mailer sends one contact message. Implemented by mail.SMTPSender.
type Mailer interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}

// ContactService accepts contact-form submissions.
type ContactService interface {
	// Submit validates msg and sends it. Validation failures are returned as
	// *domain.ValidationError; send failures wrap ErrDeliveryFailed.
	Submit(ctx context.Context, msg domain.ContactMessage) error
}

type contactServiceImpl struct {
	mailer        Mailer
	archive       store.ContactStore
	newSubmission func(domain.ContactMessage) (*domain.ContactSubmission, error)
	logger        *slog.Logger
}

// NewContactService creates a ContactService. archive may be nil, in which
// case submissions are not persisted.
func NewContactService(mailer Mailer, archive store.ContactStore, logger *slog.Logger) (ContactService, error) {
	if mailer == nil {
		return nil, errors.New("mailer cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &contactServiceImpl{
		mailer:        mailer,
		archive:       archive,
		newSubmission: domain.NewContactSubmission,
		logger:        logger.With(slog.String("component", "contact_service")),
	}, nil
}

// Submit runs validate, archive, send, record outcome. There is no retry: a
// failed send is reported and the visitor resubmits.
func (s *contactServiceImpl) Submit(ctx context.Context, msg domain.ContactMessage) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := msg.Validate(); err != nil {
		log.Debug("contact submission rejected", slog.String("error", err.Error()))
		return err
	}

	submission := s.archiveReceived(ctx, log, msg)

	log.Info("contact form submission received",
		slog.Int("subject_length", utf8.RuneCountInString(msg.Subject)),
		slog.Int("message_length", utf8.RuneCountInString(msg.Message)),
		slog.Time("received_at", time.Now().UTC()))

	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error("failed to send contact email",
			slog.String("error", redact.Error(err)))
		s.recordOutcome(ctx, log, submission, domain.SubmissionStatusFailed)
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	s.recordOutcome(ctx, log, submission, domain.SubmissionStatusSent)
	return nil
}

// archiveReceived stores the submission when an archive is configured.
// Archive failures are logged and never block delivery.
func (s *contactServiceImpl) archiveReceived(
	ctx context.Context,
	log *slog.Logger,
	msg domain.ContactMessage,
) *domain.ContactSubmission {
	if s.archive == nil {
		return nil
	}

	submission, err := s.newSubmission(msg)
	if err != nil {
		log.Warn("failed to build contact submission for archive",
			slog.String("error", redact.Error(err)))
		return nil
	}

	if err := s.archive.Create(ctx, submission); err != nil {
		log.Warn("failed to archive contact submission",
			slog.String("error", redact.Error(err)))
		return nil
	}
	return submission
}

func (s *contactServiceImpl) recordOutcome(
	ctx context.Context,
	log *slog.Logger,
	submission *domain.ContactSubmission,
	status domain.SubmissionStatus,
) {
	if submission == nil {
		return
	}

	if err := s.archive.UpdateStatus(ctx, submission.ID, status); err != nil {
		log.Warn("failed to record contact submission outcome",
			slog.String("submission_id", submission.ID.String()),
			slog.String("status", string(status)),
			slog.String("error", redact.Error(err)))
	}
}
