package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	UserID      uuid.UUID `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// Summary is the public listing shape, annotated with the job count.
type Summary struct {
	Company
	JobCount int `json:"job_count"`
}

type ProfileUpdate struct {
	Name        string
	Description string
	Website     string
}

// DashboardStats aggregates a company's hiring activity.
type DashboardStats struct {
	TotalJobs         int `json:"total_jobs"`
	TotalApplications int `json:"total_applications"`
}
