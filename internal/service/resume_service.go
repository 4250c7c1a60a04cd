package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sjnakib/portfolio/internal/domain"
)

// ResumeSource supplies the resume built from the current content.
// Implemented by content.Repository.
type ResumeSource interface {
	Resume() domain.Resume
}

// ResumeService serves the machine-readable resume.
type ResumeService interface {
	Resume(ctx context.Context) (*domain.Resume, error)
}

type resumeServiceImpl struct {
	source ResumeSource
	logger *slog.Logger
}

// NewResumeService creates a ResumeService over source.
func NewResumeService(source ResumeSource, logger *slog.Logger) (ResumeService, error) {
	if source == nil {
		return nil, errors.New("resume source cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &resumeServiceImpl{
		source: source,
		logger: logger.With(slog.String("component", "resume_service")),
	}, nil
}

// Resume returns the resume assembled from the current content snapshot.
func (s *resumeServiceImpl) Resume(ctx context.Context) (*domain.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResumeUnavailable, err)
	}

	resume := s.source.Resume()
	s.logger.DebugContext(ctx, "resume assembled",
		slog.Int("experience", len(resume.Experience)),
		slog.Int("education", len(resume.Education)))
	return &resume, nil
}
