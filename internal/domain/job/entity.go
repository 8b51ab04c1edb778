package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Salary      *string   `json:"salary,omitempty"`
	Type        *string   `json:"type,omitempty"`
	CompanyID   uuid.UUID `json:"company_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// CompanyRef is the slice of the owning company embedded in job reads.
type CompanyRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Website string    `json:"website"`
}

// Listing is a job row as served by public reads: the posting, its owning
// company and how many applications it has drawn.
type Listing struct {
	Job
	Company          CompanyRef `json:"company"`
	ApplicationCount int        `json:"application_count"`
}

// ListFilter composes optional case-insensitive substring filters with AND.
// Zero-value fields impose no constraint.
type ListFilter struct {
	Search   string
	Location string
	Category string
	Limit    int
	Offset   int
}

type Draft struct {
	Title       string
	Description string
	Location    string
	Category    string
	Salary      *string
	Type        *string
}
