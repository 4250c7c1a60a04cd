package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sjnakib/portfolio/internal/api/shared"
	"github.com/sjnakib/portfolio/internal/domain"
	"github.com/sjnakib/portfolio/internal/platform/logger"
	"github.com/sjnakib/portfolio/internal/redact"
	"github.com/sjnakib/portfolio/internal/service"
	"github.com/sjnakib/portfolio/internal/web"
)

const (
	homeFeaturedCount   = 3
	homeExperienceCount = 3
	msgPageNotFound     = "Not found"
)

type homeContent struct {
	FeaturedProjects []domain.Project
	RecentExperience []domain.Experience
	Education        []domain.Education
}

type aboutContent struct {
	Skills         domain.Skills
	Certifications []domain.Certification
	Technologies   []domain.Technology
}

type experiencesContent struct {
	Experiences    []domain.Experience
	Certifications []domain.Certification
}

type typeOption struct {
	Value string
	Label string
}

var projectTypes = []typeOption{
	{Value: string(domain.ProjectTypeClientWebsite), Label: "Client websites"},
	{Value: string(domain.ProjectTypePersonalProject), Label: "Personal projects"},
	{Value: string(domain.ProjectTypeUIMockup), Label: "UI mockups"},
}

type projectsContent struct {
	Projects        []domain.Project
	Types           []typeOption
	Type            string
	AllTechnologies []string
	Selected        []string
}

type projectContent struct {
	Project *domain.Project
}

type contactContent struct {
	Form      ContactRequest
	Errors    map[string]string
	FormError string
	Sent      bool
	Notice    string
}

type notFoundContent struct {
	Message string
}

// PageHandler serves the server-rendered HTML pages.
type PageHandler struct {
	content  ContentReader
	contacts service.ContactService
	renderer *web.Renderer
	logger   *slog.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(
	content ContentReader,
	contacts service.ContactService,
	renderer *web.Renderer,
	logger *slog.Logger,
) *PageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		content:  content,
		contacts: contacts,
		renderer: renderer,
		logger:   logger.With(slog.String("component", "page_handler")),
	}
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	experience := h.content.Experience()
	if len(experience) > homeExperienceCount {
		experience = experience[:homeExperienceCount]
	}

	h.render(w, r, http.StatusOK, web.PageHome, "", homeContent{
		FeaturedProjects: h.content.FeaturedProjects(homeFeaturedCount),
		RecentExperience: experience,
		Education:        h.content.Academic().Education,
	})
}

// About handles GET /about.
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	data := h.content.ExperienceData()
	h.render(w, r, http.StatusOK, web.PageAbout, "About", aboutContent{
		Skills:         data.Skills,
		Certifications: data.Certifications,
		Technologies:   h.content.Technologies(),
	})
}

// Academic handles GET /academic.
func (h *PageHandler) Academic(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageAcademic, "Academic", h.content.Academic())
}

// Experiences handles GET /experiences.
func (h *PageHandler) Experiences(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageExperiences, "Experience", experiencesContent{
		Experiences:    h.content.Experience(),
		Certifications: h.content.ExperienceData().Certifications,
	})
}

// Projects handles GET /projects. Invalid filters are dropped and the full
// list is rendered with a 400 status.
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	query := parseProjectQuery(r)
	if err := shared.ValidateRequest(query); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Debug("ignoring invalid project filter", slog.String("error", err.Error()))
		status = http.StatusBadRequest
		query = ProjectQuery{}
	}

	h.render(w, r, status, web.PageProjects, "Projects", projectsContent{
		Projects:        h.content.FilterProjects(query.filter()),
		Types:           projectTypes,
		Type:            query.Type,
		AllTechnologies: h.content.ProjectTechnologies(),
		Selected:        query.Technologies,
	})
}

// Project handles GET /projects/{slug}.
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	slug, err := getPathSlug(r, "slug")
	if err != nil {
		h.notFound(w, r, MsgProjectNotFound)
		return
	}

	project, err := h.content.ProjectBySlug(slug)
	if err != nil {
		h.notFound(w, r, MsgProjectNotFound)
		return
	}

	h.render(w, r, http.StatusOK, web.PageProject, project.Title, projectContent{Project: project})
}

// Contact handles GET /contact.
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, web.PageContact, "Contact", contactContent{})
}

// SubmitContact handles POST /contact, the form fallback for the JSON
// endpoint. Field errors are rendered next to their inputs.
func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	r.Body = http.MaxBytesReader(w, r.Body, shared.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		status, message := http.StatusBadRequest, MsgInvalidRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status, message = http.StatusRequestEntityTooLarge, MsgBodyTooLarge
		}
		log.Debug("failed to parse contact form", slog.String("error", err.Error()))
		h.render(w, r, status, web.PageContact, "Contact", contactContent{FormError: message})
		return
	}

	form := ContactRequest{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}
	msg := form.ContactMessage()

	if errs := msg.FieldErrors(); len(errs) > 0 {
		h.render(w, r, http.StatusBadRequest, web.PageContact, "Contact", contactContent{
			Form:   form,
			Errors: errs,
		})
		return
	}

	if err := h.contacts.Submit(r.Context(), msg); err != nil {
		message := GetSafeErrorMessage(err)
		if message == MsgUnexpectedError {
			message = MsgSendFailed
		}
		log.Error("contact form submission failed", slog.String("error", redact.Error(err)))
		h.render(w, r, MapErrorToStatusCode(err), web.PageContact, "Contact", contactContent{
			Form:      form,
			FormError: message,
		})
		return
	}

	h.render(w, r, http.StatusOK, web.PageContact, "Contact", contactContent{
		Sent:   true,
		Notice: MsgContactSent,
	})
}

// NotFound renders the 404 page, or a JSON error for paths under /api/.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		shared.RespondWithError(w, r, http.StatusNotFound, msgPageNotFound)
		return
	}
	h.notFound(w, r, "")
}

func (h *PageHandler) notFound(w http.ResponseWriter, r *http.Request, message string) {
	h.render(w, r, http.StatusNotFound, web.PageNotFound, "Not found", notFoundContent{Message: message})
}

func (h *PageHandler) render(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	page string,
	title string,
	content any,
) {
	data := web.PageData{
		Site:    h.content.Site(),
		Title:   title,
		Path:    r.URL.Path,
		TraceID: shared.GetTraceID(r.Context()),
		Content: content,
	}

	if err := h.renderer.Render(w, status, page, data); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to render page",
			slog.String("page", page),
			slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
