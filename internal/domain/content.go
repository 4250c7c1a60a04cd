package domain

// ProjectType classifies a portfolio project.
type ProjectType string

const (
	ProjectTypeClientWebsite   ProjectType = "client-website"
	ProjectTypePersonalProject ProjectType = "personal-project"
	ProjectTypeUIMockup        ProjectType = "ui-mockup"
)

// ProjectImage is one entry of a project's gallery.
type ProjectImage struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

// Project is a portfolio project as stored in projects.json.
type Project struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	ShortDescription string         `json:"shortDescription"`
	FullDescription  string         `json:"fullDescription"`
	Type             ProjectType    `json:"type"`
	StartDate        string         `json:"startDate"`
	EndDate          string         `json:"endDate"`
	Technologies     []string       `json:"technologies"`
	Roles            []string       `json:"roles"`
	Features         []string       `json:"features"`
	Challenges       []string       `json:"challenges"`
	Outcomes         []string       `json:"outcomes"`
	Images           []ProjectImage `json:"images"`
	LiveURL          string         `json:"liveUrl,omitempty"`
	SourceURL        string         `json:"sourceUrl,omitempty"`
	Date             string         `json:"date"`
	Featured         bool           `json:"featured,omitempty"`
}

// ProjectList wraps the array of projects.
type ProjectList struct {
	Projects []Project `json:"projects"`
}

// Education is one degree or programme.
type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Logo        string   `json:"logo"`
	Location    string   `json:"location"`
	URL         string   `json:"url"`
	GPA         string   `json:"gpa"`
	StartDate   string   `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Highlights  []string `json:"highlights"`
}

// Achievement is an award, scholarship or similar recognition.
type Achievement struct {
	Title        string  `json:"title"`
	Organization string  `json:"organization"`
	Date         string  `json:"date"`
	EndDate      *string `json:"endDate"`
	Description  string  `json:"description"`
}

// Publication is a paper or article.
type Publication struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Journal  string   `json:"journal"`
	Date     string   `json:"date"`
	Link     string   `json:"link"`
	Abstract string   `json:"abstract"`
}

// ResearchProject is a research effort with its outcomes.
type ResearchProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Outcomes     []string `json:"outcomes"`
}

// AcademicData mirrors academic.json.
type AcademicData struct {
	Education        []Education       `json:"education"`
	Achievements     []Achievement     `json:"achievements"`
	Publications     []Publication     `json:"publications"`
	ResearchProjects []ResearchProject `json:"researchProjects"`
}

// Owner is the person the site is about.
type Owner struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Summary  string `json:"summary,omitempty"`
	Website  string `json:"website,omitempty"`
}

// SocialLink points at one of the owner's profiles.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon,omitempty"`
}

// NavItem is one entry of the header navigation.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// SiteSettings mirrors siteSettings.json.
type SiteSettings struct {
	Owner      Owner        `json:"owner"`
	Social     []SocialLink `json:"social"`
	Navigation []NavItem    `json:"navigation"`
}

// Technology is an entry of technologies.json used for badges.
type Technology struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
	Icon     string `json:"icon,omitempty"`
	URL      string `json:"url,omitempty"`
}

// TechnologyList wraps the array of technologies.
type TechnologyList struct {
	Technologies []Technology `json:"technologies"`
}
