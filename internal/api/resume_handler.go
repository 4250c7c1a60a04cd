package api

import (
	"net/http"

	"github.com/sjnakib/portfolio/internal/api/shared"
	"github.com/sjnakib/portfolio/internal/service"
)

// ResumeHandler serves the machine-readable resume.
type ResumeHandler struct {
	resumes service.ResumeService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumes service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

// GetResume handles GET /api/resume. Any failure is reported with the same
// fixed message.
func (h *ResumeHandler) GetResume(w http.ResponseWriter, r *http.Request) {
	resume, err := h.resumes.Resume(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgResumeFailed, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resume)
}
