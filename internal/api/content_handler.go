package api

import (
	"net/http"

	"github.com/sjnakib/portfolio/internal/api/shared"
	"github.com/sjnakib/portfolio/internal/content"
	"github.com/sjnakib/portfolio/internal/domain"
)

// ContentReader is the read side of the content repository used by the
// JSON and HTML handlers.
type ContentReader interface {
	Site() domain.SiteSettings
	Projects() []domain.Project
	ProjectBySlug(slug string) (*domain.Project, error)
	FeaturedProjects(n int) []domain.Project
	FilterProjects(filter content.ProjectFilter) []domain.Project
	ProjectTechnologies() []string
	Academic() domain.AcademicData
	Experience() []domain.Experience
	ExperienceData() domain.ExperienceData
	Technologies() []domain.Technology
}

var _ ContentReader = (*content.Repository)(nil)

// ContentHandler serves read-only JSON views of the site content.
type ContentHandler struct {
	content ContentReader
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(content ContentReader) *ContentHandler {
	return &ContentHandler{content: content}
}

// ListProjects handles GET /api/projects, optionally filtered by ?type= and
// ?tech=.
func (h *ContentHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	query := parseProjectQuery(r)
	if err := shared.ValidateRequest(query); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidParameter, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProjectListResponse{
		Projects: h.content.FilterProjects(query.filter()),
	})
}

// GetProject handles GET /api/projects/{slug}.
func (h *ContentHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug, err := getPathSlug(r, "slug")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	project, err := h.content.ProjectBySlug(slug)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, project)
}

// GetSite handles GET /api/site.
func (h *ContentHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.content.Site())
}

// ListTechnologies handles GET /api/technologies.
func (h *ContentHandler) ListTechnologies(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, TechnologyListResponse{
		Technologies: h.content.Technologies(),
	})
}
