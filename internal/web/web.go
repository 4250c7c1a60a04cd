package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/sjnakib/portfolio/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageHome        = "home"
	PageAbout       = "about"
	PageAcademic    = "academic"
	PageExperiences = "experiences"
	PageProjects    = "projects"
	PageProject     = "project"
	PageContact     = "contact"
	PageNotFound    = "not_found"
)

var pages = []string{
	PageHome, PageAbout, PageAcademic, PageExperiences,
	PageProjects, PageProject, PageContact, PageNotFound,
}

// PageData is passed to every page template.
type PageData struct {
	Site    domain.SiteSettings
	Title   string
	Path    string
	TraceID string
	Year    int
	Content any
}

// Renderer executes the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer() (*Renderer, error) {
	layout, err := template.New("layout.html").Funcs(Funcs()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.Must(layout.Clone()).ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page with the given status. The page is rendered to a buffer
// first so a template error never produces a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	if data.Year == 0 {
		data.Year = time.Now().Year()
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render page %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded CSS and images under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

// Funcs returns the template helpers.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"monthYear": MonthYear,
		"dateRange": DateRange,
		"endDate":   endDate,
		"join":      strings.Join,
		"firstName": firstName,
		"isActive":  isActive,
		"hasTech":   hasTech,
	}
}

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// MonthYear formats a content date as "Jan 2006". Empty values and
// "Present" render as "Present"; a bare year stays a year; anything
// unparseable is returned unchanged.
func MonthYear(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "present") {
		return "Present"
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if layout == "2006" {
			return t.Format("2006")
		}
		return t.Format("Jan 2006")
	}
	return value
}

// DateRange formats "start - end" with MonthYear.
func DateRange(start, end string) string {
	if strings.TrimSpace(start) == "" {
		return MonthYear(end)
	}
	return MonthYear(start) + " - " + MonthYear(end)
}

func endDate(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// isActive reports whether a navigation href matches the current path.
func isActive(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

func hasTech(selected []string, tech string) bool {
	for _, s := range selected {
		if strings.EqualFold(s, tech) {
			return true
		}
	}
	return false
}
