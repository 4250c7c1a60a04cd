package mail

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	gomail "github.com/wneessen/go-mail"

	"github.com/sjnakib/portfolio/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	textTemplate = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/contact.txt.tmpl"))
	htmlTemplate = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/contact.html.tmpl"))
)

const defaultFromName = "Portfolio Contact"

// Email is a composed contact message, independent of the SMTP client.
type Email struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Cc       string
	Subject  string
	Text     string
	HTML     string
}

type bodyData struct {
	Name    string
	Message string
	Owner   domain.Owner
	Social  []domain.SocialLink
}

// Compose renders the contact email for msg. from is the configured sender
// address, which is also the owner's copy and reply address.
func Compose(msg domain.ContactMessage, site domain.SiteSettings, from string) (*Email, error) {
	data := bodyData{
		Name:    strings.TrimSpace(msg.Name),
		Message: msg.Message,
		Owner:   site.Owner,
		Social:  site.Social,
	}

	var text bytes.Buffer
	if err := textTemplate.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to render text body: %w", err)
	}

	var html bytes.Buffer
	if err := htmlTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render html body: %w", err)
	}

	fromName := site.Owner.Name
	if fromName == "" {
		fromName = defaultFromName
	}

	return &Email{
		FromName: fromName,
		From:     from,
		To:       strings.TrimSpace(msg.Email),
		ReplyTo:  from,
		Cc:       from,
		Subject:  SubjectLine(site.Owner.Name, msg.Subject),
		Text:     strings.TrimSpace(text.String()),
		HTML:     html.String(),
	}, nil
}

// SubjectLine prefixes subject with the owner's first name, for example
// "[Shafaat's Portfolio] Hello".
func SubjectLine(ownerName, subject string) string {
	first := strings.Fields(ownerName)
	if len(first) == 0 {
		return "[Portfolio] " + subject
	}
	return fmt.Sprintf("[%s's Portfolio] %s", first[0], subject)
}

// Message converts e into a go-mail message with a plain-text body and an
// HTML alternative.
func (e *Email) Message() (*gomail.Msg, error) {
	m := gomail.NewMsg()

	if err := m.FromFormat(e.FromName, e.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(e.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	if err := m.ReplyTo(e.ReplyTo); err != nil {
		return nil, fmt.Errorf("invalid reply-to address: %w", err)
	}
	if err := m.Cc(e.Cc); err != nil {
		return nil, fmt.Errorf("invalid cc address: %w", err)
	}

	m.Subject(e.Subject)
	m.SetDate()
	m.SetMessageID()
	m.SetBodyString(gomail.TypeTextPlain, e.Text)
	m.AddAlternativeString(gomail.TypeTextHTML, e.HTML)

	return m, nil
}
