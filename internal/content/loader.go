package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/sjnakib/portfolio/internal/domain"
)

// Content file names, relative to the content directory.
const (
	ProjectsFile     = "projects.json"
	AcademicFile     = "academic.json"
	ExperienceFile   = "experience.json"
	SiteSettingsFile = "siteSettings.json"
	TechnologiesFile = "technologies.json"
)

// Snapshot is one consistent, read-only view of every content file.
type Snapshot struct {
	Projects     []domain.Project
	Academic     domain.AcademicData
	Experience   domain.ExperienceData
	Site         domain.SiteSettings
	Technologies []domain.Technology
	LoadedAt     time.Time
}

type contentFile struct {
	name     string
	required bool
	target   any
}

// Load reads and validates every content file in fsys.
// technologies.json is optional; the other files are required.
func Load(fsys fs.FS) (*Snapshot, error) {
	snap, errs := load(fsys, false)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return snap, nil
}

// Check validates every content file in fsys and reports all problems at
// once instead of stopping at the first.
func Check(fsys fs.FS) error {
	_, errs := load(fsys, true)
	return errors.Join(errs...)
}

func load(fsys fs.FS, collect bool) (*Snapshot, []error) {
	var (
		projects     domain.ProjectList
		technologies domain.TechnologyList
		snap         = &Snapshot{}
		errs         []error
	)

	files := []contentFile{
		{ProjectsFile, true, &projects},
		{AcademicFile, true, &snap.Academic},
		{ExperienceFile, true, &snap.Experience},
		{SiteSettingsFile, true, &snap.Site},
		{TechnologiesFile, false, &technologies},
	}

	for _, f := range files {
		if err := loadFile(fsys, f); err != nil {
			errs = append(errs, err)
			if !collect {
				return nil, errs
			}
		}
	}

	if err := checkUniqueSlugs(projects.Projects); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	snap.Projects = projects.Projects
	if snap.Projects == nil {
		snap.Projects = []domain.Project{}
	}
	snap.Technologies = technologies.Technologies
	if snap.Technologies == nil {
		snap.Technologies = []domain.Technology{}
	}
	snap.LoadedAt = time.Now().UTC()

	return snap, nil
}

func loadFile(fsys fs.FS, f contentFile) error {
	data, err := fs.ReadFile(fsys, f.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !f.required {
				return nil
			}
			return fmt.Errorf("%w: %s", ErrMissingContent, f.name)
		}
		return fmt.Errorf("failed to read %s: %w", f.name, err)
	}

	if err := validateDocument(f.name, data); err != nil {
		return err
	}

	if err := json.Unmarshal(data, f.target); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidContent, f.name, err)
	}

	return nil
}

func checkUniqueSlugs(projects []domain.Project) error {
	seen := make(map[string]bool, len(projects))
	for _, p := range projects {
		if seen[p.Slug] {
			return fmt.Errorf("%w: %s: duplicate project slug %q", ErrInvalidContent, ProjectsFile, p.Slug)
		}
		seen[p.Slug] = true
	}
	return nil
}
