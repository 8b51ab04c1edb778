package company

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("company not found")

type Repository interface {
	Create(ctx context.Context, c Company) error
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (Company, error)
	Update(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (Company, error)
	ListWithJobCounts(ctx context.Context) ([]Summary, error)
	Stats(ctx context.Context, id uuid.UUID) (DashboardStats, error)
}
