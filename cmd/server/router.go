package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sjnakib/portfolio/internal/api"
	apiMiddleware "github.com/sjnakib/portfolio/internal/api/middleware"
	"github.com/sjnakib/portfolio/internal/web"
)

// setupRouter creates the router with every page, API route and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	contentHandler := api.NewContentHandler(app.content)
	contactHandler := api.NewContactHandler(app.contactService, app.logger)
	resumeHandler := api.NewResumeHandler(app.resumeService)
	pages := api.NewPageHandler(app.content, app.contactService, app.renderer, app.logger)

	r.NotFound(pages.NotFound)

	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", contactHandler.SendContact)
		r.Get("/resume", resumeHandler.GetResume)

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

	r.Handle("/static/*", web.StaticHandler())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
