package api

import (
	"context"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/sjnakib/portfolio/internal/api/middleware"
	"github.com/sjnakib/portfolio/internal/api/shared"
	"github.com/sjnakib/portfolio/internal/content"
	"github.com/sjnakib/portfolio/internal/domain"
	"github.com/sjnakib/portfolio/internal/service"
	"github.com/sjnakib/portfolio/internal/web"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []domain.ContactMessage
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg domain.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type failingResumeService struct {
	err error
}

func (s failingResumeService) Resume(context.Context) (*domain.Resume, error) {
	return nil, s.err
}

// bundledContentWith copies the content bundled with the site into memory and
// replaces the named files.
func bundledContentWith(t *testing.T, overrides map[string]string) fstest.MapFS {
	t.Helper()

	const dir = "../../data"
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	fsys := fstest.MapFS{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)
		fsys[entry.Name()] = &fstest.MapFile{Data: data}
	}
	for name, data := range overrides {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

// newTestRepository loads fsys, or the content bundled with the site when
// fsys is nil.
func newTestRepository(t *testing.T, fsys fs.FS) *content.Repository {
	t.Helper()
	if fsys == nil {
		fsys = os.DirFS("../../data")
	}
	repo, err := content.NewRepository(fsys, nil)
	require.NoError(t, err)
	return repo
}

type testServer struct {
	handler http.Handler
	mailer  *recordingMailer
	repo    *content.Repository
}

type testOption func(*testServerDeps)

type testServerDeps struct {
	resumes service.ResumeService
	content fs.FS
}

func withResumeService(svc service.ResumeService) testOption {
	return func(d *testServerDeps) { d.resumes = svc }
}

func withContent(fsys fs.FS) testOption {
	return func(d *testServerDeps) { d.content = fsys }
}

// newTestServer wires the handlers into a chi router the same way the server
// binary does.
func newTestServer(t *testing.T, mailer *recordingMailer, opts ...testOption) *testServer {
	t.Helper()

	if mailer == nil {
		mailer = &recordingMailer{}
	}
	deps := testServerDeps{}
	for _, opt := range opts {
		opt(&deps)
	}
	repo := newTestRepository(t, deps.content)

	contacts, err := service.NewContactService(mailer, nil, nil)
	require.NoError(t, err)

	if deps.resumes == nil {
		deps.resumes, err = service.NewResumeService(repo, nil)
		require.NoError(t, err)
	}

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	contentHandler := NewContentHandler(repo)
	pages := NewPageHandler(repo, contacts, renderer, nil)

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(nil))
	r.NotFound(pages.NotFound)

	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", NewContactHandler(contacts, nil).SendContact)
		r.Get("/resume", NewResumeHandler(deps.resumes).GetResume)
		r.Get("/projects", contentHandler.ListProjects)
		r.Get("/projects/{slug}", contentHandler.GetProject)
		r.Get("/site", contentHandler.GetSite)
		r.Get("/technologies", contentHandler.ListTechnologies)
	})

	r.Get("/", pages.Home)
	r.Get("/about", pages.About)
	r.Get("/academic", pages.Academic)
	r.Get("/experiences", pages.Experiences)
	r.Get("/projects", pages.Projects)
	r.Get("/projects/{slug}", pages.Project)
	r.Get("/contact", pages.Contact)
	r.Post("/contact", pages.SubmitContact)

	return &testServer{handler: r, mailer: mailer, repo: repo}
}

func (s *testServer) do(t *testing.T, method, target, body, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) postJSON(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, http.MethodPost, target, body, "application/json")
}

func (s *testServer) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, http.MethodGet, target, "", "")
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
