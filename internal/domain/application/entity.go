package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusReviewed Status = "REVIEWED"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// ParseStatus accepts only the four known states. Transitions between them
// are deliberately unrestricted: the owning company may move an application
// to any state from any state.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return Status(s), true
	default:
		return "", false
	}
}

type Application struct {
	ID          uuid.UUID `json:"id"`
	ResumeURL   string    `json:"resume_url"`
	CoverLetter string    `json:"cover_letter"`
	Status      Status    `json:"status"`
	JobID       uuid.UUID `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// JobRef and ApplicantRef are the denormalized slices attached to
// application reads for the two dashboard views.
type JobRef struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	CompanyName string    `json:"company_name"`
}

type ApplicantRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type Detail struct {
	Application
	Job       JobRef        `json:"job"`
	Applicant *ApplicantRef `json:"applicant,omitempty"`
}
