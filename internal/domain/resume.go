package domain

// PersonalInfo is the header block of the resume.
type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// Resume is the machine-readable resume served by GET /api/resume.
type Resume struct {
	PersonalInfo   PersonalInfo      `json:"personalInfo"`
	Education      []Education       `json:"education"`
	Experience     []Experience      `json:"experience"`
	Skills         Skills            `json:"skills"`
	Certifications []Certification   `json:"certifications"`
	Publications   []Publication     `json:"publications"`
	Research       []ResearchProject `json:"research"`
}

// NewResume assembles a Resume from the content records. Every list and the
// skills map are non-nil so each key is always present in the JSON output,
// whichever experience shape backs the data.
func NewResume(site SiteSettings, academic AcademicData, experience ExperienceData) Resume {
	skills := experience.Skills
	if skills == nil {
		skills = Skills{}
	}

	return Resume{
		PersonalInfo: PersonalInfo{
			Name:     site.Owner.Name,
			Title:    site.Owner.Title,
			Email:    site.Owner.Email,
			Location: site.Owner.Location,
			Summary:  site.Owner.Summary,
		},
		Education:      nonNil(academic.Education),
		Experience:     experience.Normalize(),
		Skills:         skills,
		Certifications: nonNil(experience.Certifications),
		Publications:   nonNil(academic.Publications),
		Research:       nonNil(academic.ResearchProjects),
	}
}
