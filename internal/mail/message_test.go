package mail

import (
	"testing"

	gomail "github.com/wneessen/go-mail"

	"github.com/sjnakib/portfolio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite() domain.SiteSettings {
	return domain.SiteSettings{
		Owner: domain.Owner{
			Name:     "Shafaat Jamil Nakib",
			Title:    "Software Engineer",
			Email:    "hello@sjnakib.com",
			Location: "Dhaka, Bangladesh",
			Website:  "https://sjnakib.com",
		},
		Social: []domain.SocialLink{
			{Platform: "GitHub", URL: "https://github.com/sjnakib"},
			{Platform: "LinkedIn", URL: "https://www.linkedin.com/in/sjnakib"},
		},
	}
}

func testMessage() domain.ContactMessage {
	return domain.ContactMessage{
		Email:   "visitor@example.org",
		Subject: "Hi there",
		Message: "This is a test message.",
	}
}

func TestSubjectLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		owner string
		want  string
	}{
		{"Shafaat Jamil Nakib", "[Shafaat's Portfolio] Hello"},
		{"Ada", "[Ada's Portfolio] Hello"},
		{"  ", "[Portfolio] Hello"},
		{"", "[Portfolio] Hello"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, SubjectLine(tc.owner, "Hello"))
	}
}

func TestCompose_Addressing(t *testing.T) {
	t.Parallel()

	email, err := Compose(testMessage(), testSite(), "contact@sjnakib.com")
	require.NoError(t, err)

	assert.Equal(t, "Shafaat Jamil Nakib", email.FromName)
	assert.Equal(t, "contact@sjnakib.com", email.From)
	assert.Equal(t, "visitor@example.org", email.To)
	assert.Equal(t, "contact@sjnakib.com", email.ReplyTo)
	assert.Equal(t, "contact@sjnakib.com", email.Cc)
	assert.Equal(t, "[Shafaat's Portfolio] Hi there", email.Subject)
}

func TestCompose_DefaultFromName(t *testing.T) {
	t.Parallel()

	email, err := Compose(testMessage(), domain.SiteSettings{}, "contact@sjnakib.com")
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Contact", email.FromName)
	assert.Equal(t, "[Portfolio] Hi there", email.Subject)
}

func TestCompose_TextBody(t *testing.T) {
	t.Parallel()

	msg := testMessage()
	msg.Name = "Grace"
	email, err := Compose(msg, testSite(), "contact@sjnakib.com")
	require.NoError(t, err)

	assert.True(t, len(email.Text) > 0 && email.Text[0] == 'H')
	assert.Contains(t, email.Text, "Hello Grace!")
	assert.Contains(t, email.Text, "Message:\nThis is a test message.")
	assert.Contains(t, email.Text, "Regards,\nShafaat Jamil Nakib\nSoftware Engineer\nDhaka, Bangladesh")
	assert.Contains(t, email.Text, "Website: https://sjnakib.com")
	assert.Contains(t, email.Text, "GitHub: https://github.com/sjnakib\nLinkedIn: https://www.linkedin.com/in/sjnakib")
}

func TestCompose_HTMLEscapesUserText(t *testing.T) {
	t.Parallel()

	msg := testMessage()
	msg.Name = `<b>Mallory</b>`
	msg.Message = `<script>alert("x")</script> & more`

	email, err := Compose(msg, testSite(), "contact@sjnakib.com")
	require.NoError(t, err)

	assert.NotContains(t, email.HTML, "<script>")
	assert.NotContains(t, email.HTML, "<b>Mallory</b>")
	assert.Contains(t, email.HTML, "&lt;script&gt;")
	assert.Contains(t, email.HTML, "&amp; more")
	assert.Contains(t, email.HTML, `href="https://github.com/sjnakib"`)
	assert.Contains(t, email.HTML, "<strong>Shafaat Jamil Nakib</strong>")

	// The plain-text part is not HTML and carries the text verbatim.
	assert.Contains(t, email.Text, msg.Message)
}

func TestEmail_Message(t *testing.T) {
	t.Parallel()

	email, err := Compose(testMessage(), testSite(), "contact@sjnakib.com")
	require.NoError(t, err)

	m, err := email.Message()
	require.NoError(t, err)

	recipients, err := m.GetRecipients()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"visitor@example.org", "contact@sjnakib.com"}, recipients)
	assert.Equal(t, []string{"[Shafaat's Portfolio] Hi there"}, m.GetGenHeader(gomail.HeaderSubject))
}

func TestEmail_MessageRejectsBadAddress(t *testing.T) {
	t.Parallel()

	email, err := Compose(testMessage(), testSite(), "not an address")
	require.NoError(t, err)

	_, err = email.Message()
	assert.ErrorContains(t, err, "invalid from address")
}
