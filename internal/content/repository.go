package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/sjnakib/portfolio/internal/domain"
)

// Repository serves content from the most recently loaded Snapshot.
// It is safe for concurrent use; Reload swaps snapshots atomically so
// readers never observe a partially loaded state.
type Repository struct {
	fsys    fs.FS
	logger  *slog.Logger
	current atomic.Pointer[Snapshot]
}

// NewRepository loads the content in fsys and returns a repository serving it.
// If logger is nil, a default logger will be used.
func NewRepository(fsys fs.FS, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Repository{
		fsys:   fsys,
		logger: logger.With(slog.String("component", "content_repository")),
	}

	snap, err := Load(fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	r.current.Store(snap)

	r.logger.Info("content loaded",
		slog.Int("projects", len(snap.Projects)),
		slog.Int("experiences", len(snap.Experience.Normalize())))

	return r, nil
}

// Reload re-reads the content files. On failure the previous snapshot stays
// in place and the error is returned.
func (r *Repository) Reload() error {
	snap, err := Load(r.fsys)
	if err != nil {
		r.logger.Error("content reload failed, keeping previous content",
			slog.String("error", err.Error()))
		return err
	}

	r.current.Store(snap)
	r.logger.Info("content reloaded", slog.Int("projects", len(snap.Projects)))
	return nil
}

// Snapshot returns the current content snapshot.
func (r *Repository) Snapshot() *Snapshot {
	return r.current.Load()
}

// Projects returns every project in file order.
func (r *Repository) Projects() []domain.Project {
	return r.Snapshot().Projects
}

// ProjectBySlug returns the project with the given slug.
func (r *Repository) ProjectBySlug(slug string) (*domain.Project, error) {
	projects := r.Snapshot().Projects
	for i := range projects {
		if projects[i].Slug == slug {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}

// FeaturedProjects returns up to n projects flagged as featured. When no
// project is flagged the first n projects are used instead. A negative n is
// treated as zero.
func (r *Repository) FeaturedProjects(n int) []domain.Project {
	n = max(n, 0)
	projects := r.Snapshot().Projects

	featured := make([]domain.Project, 0, n)
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	if len(featured) == 0 {
		featured = projects
	}

	if len(featured) > n {
		featured = featured[:n]
	}
	return featured
}

// ProjectFilter narrows the project list. Zero values match everything.
type ProjectFilter struct {
	Type domain.ProjectType
	// Technologies matches projects using any of the listed technologies,
	// compared case-insensitively.
	Technologies []string
}

// FilterProjects returns the projects matching filter, in file order.
func (r *Repository) FilterProjects(filter ProjectFilter) []domain.Project {
	out := make([]domain.Project, 0)
	for _, p := range r.Snapshot().Projects {
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if len(filter.Technologies) > 0 && !usesAny(p, filter.Technologies) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func usesAny(p domain.Project, techs []string) bool {
	for _, want := range techs {
		for _, have := range p.Technologies {
			if strings.EqualFold(want, have) {
				return true
			}
		}
	}
	return false
}

// ProjectTechnologies returns the sorted set of technologies used across all
// projects.
func (r *Repository) ProjectTechnologies() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range r.Snapshot().Projects {
		for _, tech := range p.Technologies {
			if !seen[tech] {
				seen[tech] = true
				out = append(out, tech)
			}
		}
	}
	slices.Sort(out)
	return out
}

// Academic returns the academic record.
func (r *Repository) Academic() domain.AcademicData {
	return r.Snapshot().Academic
}

// Experience returns the normalized experience history.
func (r *Repository) Experience() []domain.Experience {
	return r.Snapshot().Experience.Normalize()
}

// ExperienceData returns experience.json as loaded.
func (r *Repository) ExperienceData() domain.ExperienceData {
	return r.Snapshot().Experience
}

// Site returns the site settings.
func (r *Repository) Site() domain.SiteSettings {
	return r.Snapshot().Site
}

// Technologies returns technologies.json entries.
func (r *Repository) Technologies() []domain.Technology {
	return r.Snapshot().Technologies
}

// Resume assembles the resume from the current snapshot.
func (r *Repository) Resume() domain.Resume {
	snap := r.Snapshot()
	return domain.NewResume(snap.Site, snap.Academic, snap.Experience)
}
