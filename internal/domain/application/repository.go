package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("application not found")

	// ErrDuplicate is surfaced when the (job_id, applicant_id) unique
	// constraint rejects a second insert for the same pair.
	ErrDuplicate = errors.New("application already exists")
)

type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)

	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]Detail, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Detail, error)
	ListRecentByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]Detail, error)

	// UpdateStatusOwned updates the status only when the application's job
	// belongs to companyID; zero rows affected reports ErrNotFound.
	UpdateStatusOwned(ctx context.Context, id, companyID uuid.UUID, status Status) (Detail, error)
}
