package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	gomail "github.com/wneessen/go-mail"

	"github.com/sjnakib/portfolio/internal/domain"
)

// ErrInvalidPayload is returned when a message is missing a required field or
// has a malformed recipient address.
var ErrInvalidPayload = errors.New("invalid email payload")

const dialTimeout = 30 * time.Second

// Sender delivers one contact message.
type Sender interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}

// SiteProvider supplies the current site settings for the signature.
type SiteProvider interface {
	Site() domain.SiteSettings
}

// deliverFunc hands a composed message to the SMTP server.
type deliverFunc func(ctx context.Context, cfg Config, m *gomail.Msg) error

// SMTPSender sends contact messages through an SMTP server configured by
// environment variables.
type SMTPSender struct {
	site    SiteProvider
	getenv  func(string) string
	deliver deliverFunc
	logger  *slog.Logger
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates a sender that reads SMTP settings from the process
// environment on every send.
func NewSMTPSender(site SiteProvider, logger *slog.Logger) *SMTPSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMTPSender{
		site:    site,
		getenv:  os.Getenv,
		deliver: dialAndSend,
		logger:  logger.With(slog.String("component", "smtp_sender")),
	}
}

// Send composes and sends the contact email. All errors are prefixed with
// "email service error".
func (s *SMTPSender) Send(ctx context.Context, msg domain.ContactMessage) error {
	if err := s.send(ctx, msg); err != nil {
		return fmt.Errorf("email service error: %w", err)
	}
	return nil
}

func (s *SMTPSender) send(ctx context.Context, msg domain.ContactMessage) error {
	if err := checkPayload(msg); err != nil {
		return err
	}

	cfg, err := LoadConfig(s.getenv)
	if err != nil {
		return err
	}

	email, err := Compose(msg, s.site.Site(), cfg.From)
	if err != nil {
		return err
	}

	m, err := email.Message()
	if err != nil {
		return err
	}

	start := time.Now()
	if err := s.deliver(ctx, cfg, m); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "contact email sent",
		slog.Int("subject_length", utf8.RuneCountInString(msg.Subject)),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func checkPayload(msg domain.ContactMessage) error {
	if strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Subject) == "" ||
		strings.TrimSpace(msg.Message) == "" {
		return fmt.Errorf("%w: missing required email fields: recipient, subject, message", ErrInvalidPayload)
	}
	if !domain.ValidEmail(msg.Email) {
		return fmt.Errorf("%w: invalid email address provided", ErrInvalidPayload)
	}
	return nil
}

func dialAndSend(ctx context.Context, cfg Config, m *gomail.Msg) error {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.User),
		gomail.WithPassword(cfg.Password),
		gomail.WithTimeout(dialTimeout),
	}
	if cfg.Secure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
