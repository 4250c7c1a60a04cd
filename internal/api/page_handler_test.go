package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func postForm(t *testing.T, srv *testServer, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	return srv.do(t, http.MethodPost, "/contact", values.Encode(), "application/x-www-form-urlencoded")
}

func TestPages_RenderLayout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path       string
		wantActive string
		wantTitle  string
	}{
		{path: "/", wantActive: "Home", wantTitle: "Shafaat Jamil Nakib"},
		{path: "/about", wantActive: "About", wantTitle: "About | Shafaat Jamil Nakib"},
		{path: "/academic", wantActive: "Academic", wantTitle: "Academic | Shafaat Jamil Nakib"},
		{path: "/experiences", wantActive: "Experience", wantTitle: "Experience | Shafaat Jamil Nakib"},
		{path: "/projects", wantActive: "Projects", wantTitle: "Projects | Shafaat Jamil Nakib"},
		{path: "/contact", wantActive: "Contact", wantTitle: "Contact | Shafaat Jamil Nakib"},
	}

	srv := newTestServer(t, nil)
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			rec := srv.get(t, tc.path)
			require.Equal(t, http.StatusOK, rec.Code)

			doc := parseHTML(t, rec)
			assert.Equal(t, tc.wantTitle, doc.Find("title").Text())
			assert.Equal(t, tc.wantActive, doc.Find(".site-nav a.active").Text())
			assert.Equal(t, 6, doc.Find(".site-nav li").Length())
			assert.Equal(t, 2, doc.Find(".social-links li").Length())
		})
	}
}

func TestHomePage(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	doc := parseHTML(t, srv.get(t, "/"))

	assert.Equal(t, "Shafaat Jamil Nakib", doc.Find(".hero h1").Text())

	var featured []string
	doc.Find(".featured-projects .project-card h3 a").Each(func(_ int, s *goquery.Selection) {
		featured = append(featured, s.Text())
	})
	assert.Len(t, featured, 2)

	assert.Equal(t, 2, doc.Find(".recent-experience li").Length())
	assert.Contains(t, doc.Find(".academic-highlights").Text(), "Bangladesh University of Engineering and Technology")
}

func TestProjectsPage_Filters(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)

	t.Run("technology filter", func(t *testing.T) {
		rec := srv.get(t, "/projects?tech=Go")
		require.Equal(t, http.StatusOK, rec.Code)

		doc := parseHTML(t, rec)
		assert.Equal(t, 1, doc.Find(".project-list .project-card").Length())
		assert.Equal(t, "/projects/reading-log-cli", doc.Find(".project-list h2 a").AttrOr("href", ""))

		_, checked := doc.Find(`input[name="tech"][value="Go"]`).Attr("checked")
		assert.True(t, checked)
		assert.Equal(t, 1, doc.Find(`input[name="tech"][checked]`).Length())
	})

	t.Run("type filter", func(t *testing.T) {
		doc := parseHTML(t, srv.get(t, "/projects?type=client-website"))
		assert.Equal(t, 1, doc.Find(".project-list .project-card").Length())
		assert.Equal(t, "client-website", doc.Find(`input[name="type"][checked]`).AttrOr("value", ""))
	})

	t.Run("no matches", func(t *testing.T) {
		doc := parseHTML(t, srv.get(t, "/projects?type=ui-mockup&tech=Go"))
		assert.Equal(t, 0, doc.Find(".project-list .project-card").Length())
		assert.Equal(t, 1, doc.Find(".project-list .empty").Length())
	})

	t.Run("invalid filter shows everything", func(t *testing.T) {
		rec := srv.get(t, "/projects?type=bogus")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 3, parseHTML(t, rec).Find(".project-list .project-card").Length())
	})
}

func TestProjectPage(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)

	rec := srv.get(t, "/projects/clinic-booking-platform")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := parseHTML(t, rec)
	assert.NotEmpty(t, doc.Find(".project-detail h1").Text())
	assert.Contains(t, doc.Find(".project-detail .tags").Text(), "PostgreSQL")

	rec = srv.get(t, "/projects/missing")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, parseHTML(t, rec).Find(".not-found").Text(), MsgProjectNotFound)
}

func TestUnknownPage(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, nil)
	rec := srv.get(t, "/nowhere")

	require.Equal(t, http.StatusNotFound, rec.Code)
	doc := parseHTML(t, rec)
	assert.Equal(t, "Page not found", doc.Find(".not-found h1").Text())
}

func TestSubmitContactForm(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, nil)
		rec := postForm(t, srv, url.Values{
			"email":   {"a@b.com"},
			"subject": {"Hi there"},
			"message": {"This is a test message."},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		doc := parseHTML(t, rec)
		assert.Equal(t, MsgContactSent, doc.Find(".notice.success").Text())
		assert.Equal(t, 0, doc.Find("form.contact-form").Length())
		assert.Equal(t, 1, srv.mailer.count())
	})

	t.Run("field errors", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, nil)
		rec := postForm(t, srv, url.Values{
			"email":   {"not-an-email"},
			"subject": {"Hi"},
			"message": {"short <b>"},
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		doc := parseHTML(t, rec)
		assert.Equal(t, "Please enter a valid email address", doc.Find("#email-error").Text())
		assert.Equal(t, "Subject should be at least 3 characters", doc.Find("#subject-error").Text())
		assert.Equal(t, "Message should be at least 10 characters", doc.Find("#message-error").Text())
		assert.Equal(t, "not-an-email", doc.Find("#email").AttrOr("value", ""))
		assert.Equal(t, "short <b>", doc.Find("#message").Text())
		assert.Zero(t, srv.mailer.count())
	})

	t.Run("delivery failure", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, &recordingMailer{err: errors.New("smtp auth rejected for mailer account")})
		rec := postForm(t, srv, url.Values{
			"email":   {"a@b.com"},
			"subject": {"Hi there"},
			"message": {"This is a test message."},
		})

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		doc := parseHTML(t, rec)
		assert.Equal(t, MsgSendFailed, doc.Find(".notice.error").Text())
		assert.Equal(t, "Hi there", doc.Find("#subject").AttrOr("value", ""))
		assert.NotContains(t, rec.Body.String(), "mailer account")
	})

	t.Run("oversized body", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, nil)
		body := "message=" + strings.Repeat("x", 2*(64<<10))
		rec := srv.do(t, http.MethodPost, "/contact", body, "application/x-www-form-urlencoded")

		require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, MsgBodyTooLarge, parseHTML(t, rec).Find(".notice.error").Text())
	})
}
