package domain

// Experience is one position in the flat experience.json shape.
type Experience struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Responsibilities []string `json:"responsibilities"`
	Technologies     []string `json:"technologies"`
}

// Role is one position held at a Company in the nested shape.
type Role struct {
	Title            string   `json:"title"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Location         string   `json:"location,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	Technologies     []string `json:"technologies"`
}

// Company groups the roles held at one employer.
type Company struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	URL      string `json:"url,omitempty"`
	Logo     string `json:"logo,omitempty"`
	Roles    []Role `json:"roles"`
}

// Certification is a professional certificate.
type Certification struct {
	Name    string `json:"name"`
	Issuer  string `json:"issuer"`
	Date    string `json:"date"`
	Expires string `json:"expires,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Skills maps a category ("Frontend", "Design", ...) to skill names.
type Skills map[string][]string

// ExperienceData mirrors experience.json. Files in the wild use either the
// flat Experiences list or the nested Companies/Roles list.
type ExperienceData struct {
	Experiences    []Experience    `json:"experiences,omitempty"`
	Companies      []Company       `json:"companies,omitempty"`
	Skills         Skills          `json:"skills"`
	Certifications []Certification `json:"certifications"`
}

// Normalize returns the experience history as a flat list. Flat entries come
// first, followed by one entry per nested role in file order. A role without
// a location inherits its company's. The result is never nil.
func (d ExperienceData) Normalize() []Experience {
	out := make([]Experience, 0, len(d.Experiences)+d.roleCount())
	out = append(out, d.Experiences...)

	for _, company := range d.Companies {
		for _, role := range company.Roles {
			location := role.Location
			if location == "" {
				location = company.Location
			}
			out = append(out, Experience{
				Company:          company.Name,
				Position:         role.Title,
				Location:         location,
				StartDate:        role.StartDate,
				EndDate:          role.EndDate,
				Responsibilities: nonNil(role.Responsibilities),
				Technologies:     nonNil(role.Technologies),
			})
		}
	}

	return out
}

func (d ExperienceData) roleCount() int {
	n := 0
	for _, c := range d.Companies {
		n += len(c.Roles)
	}
	return n
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
