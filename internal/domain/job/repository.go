package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Listing, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// List returns one page of listings plus the total count over the
	// same filter predicate.
	List(ctx context.Context, f ListFilter) ([]Listing, int, error)

	// UpdateOwned and DeleteOwned scope the mutation by owning company;
	// zero rows affected reports ErrNotFound so a foreign company's job
	// is indistinguishable from a missing one.
	UpdateOwned(ctx context.Context, id, companyID uuid.UUID, d Draft) (Listing, error)
	DeleteOwned(ctx context.Context, id, companyID uuid.UUID) error
}
