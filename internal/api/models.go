package api

import "github.com/sjnakib/portfolio/internal/domain"

// ContactRequest is the body of POST /api/contact. Name is optional.
type ContactRequest struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactMessage converts the request into the domain message.
func (r ContactRequest) ContactMessage() domain.ContactMessage {
	return domain.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// ContactResponse is the success body of POST /api/contact.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProjectQuery holds the /api/projects filters.
type ProjectQuery struct {
	Type         string   `validate:"omitempty,oneof=client-website personal-project ui-mockup"`
	Technologies []string `validate:"max=20,dive,min=1,max=50"`
}

// ProjectListResponse wraps the project list.
type ProjectListResponse struct {
	Projects []domain.Project `json:"projects"`
}

// TechnologyListResponse wraps the technology list.
type TechnologyListResponse struct {
	Technologies []domain.Technology `json:"technologies"`
}
