package usecase

import (
	"context"
	"errors"
	"strings"

	"jobport/internal/domain/application"
	"jobport/internal/domain/company"
	"jobport/internal/domain/job"

	"github.com/google/uuid"
)

type CompanyProfile struct {
	company.Company
	Jobs []job.Listing `json:"jobs"`
}

type CompanyStats struct {
	company.DashboardStats
	RecentApplications []application.Detail `json:"recent_applications"`
}

type CompanyUsecase interface {
	ListCompanies(ctx context.Context) ([]company.Summary, error)
	GetCompany(ctx context.Context, id uuid.UUID) (CompanyProfile, error)
	UpdateProfile(ctx context.Context, actorUserID uuid.UUID, upd company.ProfileUpdate) (company.Company, error)
	DashboardStats(ctx context.Context, actorUserID uuid.UUID) (CompanyStats, error)
}

type Companies struct {
	companies    companyJobsLister
	applications application.Repository
}

// companyJobsLister extends the company repository with the job slice needed
// by the public profile view.
type companyJobsLister interface {
	company.Repository
	ListJobsByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Listing, error)
}

func NewCompanyUsecase(companies companyJobsLister, applications application.Repository) *Companies {
	return &Companies{companies: companies, applications: applications}
}

func (u *Companies) ListCompanies(ctx context.Context) ([]company.Summary, error) {
	out, err := u.companies.ListWithJobCounts(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Companies) GetCompany(ctx context.Context, id uuid.UUID) (CompanyProfile, error) {
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return CompanyProfile{}, ErrNotFound
		}
		return CompanyProfile{}, ErrInternal
	}

	jobs, err := u.companies.ListJobsByCompany(ctx, id)
	if err != nil {
		return CompanyProfile{}, ErrInternal
	}
	return CompanyProfile{Company: c, Jobs: jobs}, nil
}

func (u *Companies) UpdateProfile(ctx context.Context, actorUserID uuid.UUID, upd company.ProfileUpdate) (company.Company, error) {
	if strings.TrimSpace(upd.Name) == "" {
		return company.Company{}, ErrInvalidInput
	}

	// The profile to mutate is resolved from the authenticated user, never
	// from a client-supplied company id.
	own, err := u.companies.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, ErrCompanyProfileRequired
		}
		return company.Company{}, ErrInternal
	}

	updated, err := u.companies.Update(ctx, own.ID, upd)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, ErrNotFound
		}
		return company.Company{}, ErrInternal
	}
	return updated, nil
}

func (u *Companies) DashboardStats(ctx context.Context, actorUserID uuid.UUID) (CompanyStats, error) {
	own, err := u.companies.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return CompanyStats{}, ErrCompanyProfileRequired
		}
		return CompanyStats{}, ErrInternal
	}

	stats, err := u.companies.Stats(ctx, own.ID)
	if err != nil {
		return CompanyStats{}, ErrInternal
	}

	recent, err := u.applications.ListRecentByCompany(ctx, own.ID, 5)
	if err != nil {
		return CompanyStats{}, ErrInternal
	}

	return CompanyStats{DashboardStats: stats, RecentApplications: recent}, nil
}
