package content

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const fixtureProjects = `{
  "projects": [
    {
      "id": "1",
      "title": "Alpha Site",
      "slug": "alpha-site",
      "shortDescription": "Client site",
      "type": "client-website",
      "technologies": ["Go", "PostgreSQL"],
      "images": [{"src": "/a.png", "alt": "A"}]
    },
    {
      "id": "2",
      "title": "Beta Tool",
      "slug": "beta-tool",
      "shortDescription": "Side project",
      "type": "personal-project",
      "technologies": ["TypeScript", "go"],
      "featured": true
    },
    {
      "id": "3",
      "title": "Gamma Mockup",
      "slug": "gamma-mockup",
      "shortDescription": "Mockup",
      "type": "ui-mockup",
      "technologies": ["Figma"]
    }
  ]
}`

const fixtureAcademic = `{
  "education": [
    {"institution": "Test University", "degree": "B.Sc.", "startDate": "2018", "endDate": null}
  ],
  "publications": [{"title": "A Paper", "authors": ["A. Author"]}],
  "researchProjects": [{"title": "Research"}]
}`

const fixtureExperience = `{
  "companies": [
    {
      "name": "Acme",
      "location": "Dhaka",
      "roles": [
        {"title": "Engineer", "startDate": "2023-01", "endDate": "Present"},
        {"title": "Intern", "startDate": "2022-06", "endDate": "2022-08", "location": "Remote"}
      ]
    }
  ],
  "skills": {"Languages": ["Go"]}
}`

const fixtureFlatExperience = `{
  "experiences": [
    {"company": "Globex", "position": "Developer", "location": "Chittagong", "startDate": "2020-01", "endDate": "2021-12"},
    {"company": "Initech", "position": "Analyst", "startDate": "2018-05", "endDate": "2019-12"}
  ],
  "skills": {"Languages": ["Go"]}
}`

const fixtureSite = `{
  "owner": {"name": "Test Owner", "title": "Engineer", "email": "owner@example.com", "location": "Dhaka"},
  "social": [{"platform": "GitHub", "url": "https://github.com/test"}],
  "navigation": [{"label": "Home", "href": "/"}]
}`

const fixtureTechnologies = `{
  "technologies": [{"name": "Go", "slug": "go", "category": "language"}]
}`

// fixtureFS returns a complete, valid content set.
func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		ProjectsFile:     {Data: []byte(fixtureProjects)},
		AcademicFile:     {Data: []byte(fixtureAcademic)},
		ExperienceFile:   {Data: []byte(fixtureExperience)},
		SiteSettingsFile: {Data: []byte(fixtureSite)},
		TechnologiesFile: {Data: []byte(fixtureTechnologies)},
	}
}

// flatFixtureFS is fixtureFS with experience.json in the flat shape.
func flatFixtureFS() fstest.MapFS {
	fsys := fixtureFS()
	fsys[ExperienceFile] = &fstest.MapFile{Data: []byte(fixtureFlatExperience)}
	return fsys
}

// writeFixtureDir writes fixtureFS into a temporary directory.
func writeFixtureDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for name, file := range fixtureFS() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), file.Data, 0o644))
	}
	return dir
}
