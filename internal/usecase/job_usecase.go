package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"jobport/internal/domain/company"
	"jobport/internal/domain/job"

	"github.com/google/uuid"
)

// ErrCompanyProfileRequired marks a COMPANY-role request whose user has no
// company profile to act on behalf of.
var ErrCompanyProfileRequired = errors.New("company profile required")

type JobListParams struct {
	Search   string
	Location string
	Category string
	Page     int
	Limit    int
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type JobUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]job.Listing, Pagination, error)
	GetJob(ctx context.Context, id uuid.UUID) (job.Listing, error)
	CreateJob(ctx context.Context, actorUserID uuid.UUID, d job.Draft) (job.Listing, error)
	UpdateJob(ctx context.Context, actorUserID, jobID uuid.UUID, d job.Draft) (job.Listing, error)
	DeleteJob(ctx context.Context, actorUserID, jobID uuid.UUID) error
}

// ListingCache is the best-effort cache in front of the public job listing.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type Jobs struct {
	jobs      job.Repository
	companies company.Repository
	cache     ListingCache
	logger    *log.Logger
}

func NewJobUsecase(jobs job.Repository, companies company.Repository, cache ListingCache, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, companies: companies, cache: cache, logger: logger}
}

type cachedJobPage struct {
	Items      []job.Listing `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

func (u *Jobs) ListJobs(ctx context.Context, params JobListParams) ([]job.Listing, Pagination, error) {
	page := params.Page
	if page <= 0 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 50 {
		return nil, Pagination{}, ErrInvalidInput
	}

	key := jobListCacheKey(params.Search, params.Location, params.Category, page, limit)
	if u.cache != nil {
		var cached cachedJobPage
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", key)
			}
			return cached.Items, cached.Pagination, nil
		}
	}

	items, total, err := u.jobs.List(ctx, job.ListFilter{
		Search:   params.Search,
		Location: params.Location,
		Category: params.Category,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return nil, Pagination{}, ErrInternal
	}

	p := Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, cachedJobPage{Items: items, Pagination: p}, 0)
	}
	return items, p, nil
}

func (u *Jobs) GetJob(ctx context.Context, id uuid.UUID) (job.Listing, error) {
	l, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Listing{}, ErrNotFound
		}
		return job.Listing{}, ErrInternal
	}
	return l, nil
}

func (u *Jobs) CreateJob(ctx context.Context, actorUserID uuid.UUID, d job.Draft) (job.Listing, error) {
	if err := validateDraft(d); err != nil {
		return job.Listing{}, err
	}

	comp, err := u.ownCompany(ctx, actorUserID)
	if err != nil {
		return job.Listing{}, err
	}

	j := job.Job{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Location:    strings.TrimSpace(d.Location),
		Category:    strings.TrimSpace(d.Category),
		Salary:      d.Salary,
		Type:        d.Type,
		CompanyID:   comp.ID,
	}
	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Listing{}, ErrInternal
	}

	u.invalidateListings(ctx)

	created, err := u.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return job.Listing{}, ErrInternal
	}
	return created, nil
}

func (u *Jobs) UpdateJob(ctx context.Context, actorUserID, jobID uuid.UUID, d job.Draft) (job.Listing, error) {
	if err := validateDraft(d); err != nil {
		return job.Listing{}, err
	}

	comp, err := u.ownCompany(ctx, actorUserID)
	if err != nil {
		return job.Listing{}, err
	}

	// Ownership re-verified at the storage layer: the update is scoped to
	// the actor's company and zero affected rows means not found.
	updated, err := u.jobs.UpdateOwned(ctx, jobID, comp.ID, d)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Listing{}, ErrNotFound
		}
		return job.Listing{}, ErrInternal
	}

	u.invalidateListings(ctx)
	return updated, nil
}

func (u *Jobs) DeleteJob(ctx context.Context, actorUserID, jobID uuid.UUID) error {
	comp, err := u.ownCompany(ctx, actorUserID)
	if err != nil {
		return err
	}

	if err := u.jobs.DeleteOwned(ctx, jobID, comp.ID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.invalidateListings(ctx)
	return nil
}

func (u *Jobs) ownCompany(ctx context.Context, actorUserID uuid.UUID) (company.Company, error) {
	comp, err := u.companies.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, ErrCompanyProfileRequired
		}
		return company.Company{}, ErrInternal
	}
	return comp, nil
}

func (u *Jobs) invalidateListings(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, "jobs:list:*"); err != nil && u.logger != nil {
		u.logger.Printf("[Jobs] Cache invalidation error: %v", err)
	}
}

func validateDraft(d job.Draft) error {
	if strings.TrimSpace(d.Title) == "" ||
		strings.TrimSpace(d.Description) == "" ||
		strings.TrimSpace(d.Location) == "" ||
		strings.TrimSpace(d.Category) == "" {
		return ErrInvalidInput
	}
	return nil
}

func jobListCacheKey(search, location, category string, page, limit int) string {
	norm := func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return fmt.Sprintf("jobs:list:%s|%s|%s|%d|%d", norm(search), norm(location), norm(category), page, limit)
}
