package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sjnakib/portfolio/internal/content"
	"github.com/sjnakib/portfolio/internal/domain"
)

// getPathSlug extracts a non-empty path parameter.
func getPathSlug(r *http.Request, paramName string) (string, error) {
	slug := strings.TrimSpace(chi.URLParam(r, paramName))
	if slug == "" {
		return "", domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}
	return slug, nil
}

// parseProjectQuery reads ?type= and repeated ?tech= parameters. A
// comma-separated tech list is accepted as well.
func parseProjectQuery(r *http.Request) ProjectQuery {
	q := r.URL.Query()

	var techs []string
	for _, raw := range q["tech"] {
		for _, tech := range strings.Split(raw, ",") {
			if tech = strings.TrimSpace(tech); tech != "" {
				techs = append(techs, tech)
			}
		}
	}

	return ProjectQuery{
		Type:         strings.TrimSpace(q.Get("type")),
		Technologies: techs,
	}
}

// filter converts the query into a repository filter.
func (q ProjectQuery) filter() content.ProjectFilter {
	return content.ProjectFilter{
		Type:         domain.ProjectType(q.Type),
		Technologies: q.Technologies,
	}
}
