package usecase

import (
	"context"
	"errors"
	"log"

	"jobport/internal/domain/application"
	"jobport/internal/domain/company"
	"jobport/internal/domain/job"
	"jobport/internal/storage"
	"jobport/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrAlreadyApplied = errors.New("already applied")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrResumeRequired = errors.New("resume file required")
)

type ApplyInput struct {
	JobID       uuid.UUID
	CoverLetter string
	Resume      storage.Upload
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID uuid.UUID, in ApplyInput) (application.Detail, error)
	MyApplications(ctx context.Context, applicantID uuid.UUID) ([]application.Detail, error)
	CompanyApplications(ctx context.Context, actorUserID uuid.UUID) ([]application.Detail, error)
	SetStatus(ctx context.Context, actorUserID, applicationID uuid.UUID, rawStatus string) (application.Detail, error)
}

type Applications struct {
	applications application.Repository
	jobs         job.Repository
	companies    company.Repository
	files        storage.FileStore
	notifier     *ws.Notifier
	logger       *log.Logger
}

func NewApplicationUsecase(
	applications application.Repository,
	jobs job.Repository,
	companies company.Repository,
	files storage.FileStore,
	notifier *ws.Notifier,
	logger *log.Logger,
) *Applications {
	return &Applications{
		applications: applications,
		jobs:         jobs,
		companies:    companies,
		files:        files,
		notifier:     notifier,
		logger:       logger,
	}
}

// Apply creates a PENDING application for (job, applicant). The resume is
// validated and stored before any record is written; the duplicate pre-check
// is advisory only — the unique constraint on (job_id, applicant_id) is the
// authority under concurrent submissions.
func (u *Applications) Apply(ctx context.Context, applicantID uuid.UUID, in ApplyInput) (application.Detail, error) {
	if in.Resume.Reader == nil {
		return application.Detail{}, ErrResumeRequired
	}

	target, err := u.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Detail{}, ErrJobNotFound
		}
		return application.Detail{}, ErrInternal
	}

	exists, err := u.applications.ExistsByJobAndApplicant(ctx, in.JobID, applicantID)
	if err != nil {
		return application.Detail{}, ErrInternal
	}
	if exists {
		return application.Detail{}, ErrAlreadyApplied
	}

	locator, err := u.files.Store(ctx, in.Resume)
	if err != nil {
		if errors.Is(err, storage.ErrTooLarge) || errors.Is(err, storage.ErrBadType) {
			return application.Detail{}, err
		}
		return application.Detail{}, ErrInternal
	}

	a := application.Application{
		ID:          uuid.New(),
		ResumeURL:   locator,
		CoverLetter: in.CoverLetter,
		Status:      application.StatusPending,
		JobID:       in.JobID,
		ApplicantID: applicantID,
	}
	if err := u.applications.Create(ctx, a); err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Detail{}, ErrAlreadyApplied
		}
		return application.Detail{}, ErrInternal
	}

	u.notifier.NotifyApplication(
		target.CompanyID, ws.EventApplicationReceived,
		a.ID, target.ID, target.Title, string(a.Status),
	)

	return application.Detail{
		Application: a,
		Job: application.JobRef{
			ID:          target.ID,
			Title:       target.Title,
			CompanyName: target.Company.Name,
		},
	}, nil
}

func (u *Applications) MyApplications(ctx context.Context, applicantID uuid.UUID) ([]application.Detail, error) {
	out, err := u.applications.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Applications) CompanyApplications(ctx context.Context, actorUserID uuid.UUID) ([]application.Detail, error) {
	own, err := u.ownCompany(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	out, err := u.applications.ListByCompany(ctx, own.ID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// SetStatus moves an application to any of the four states. Ownership is
// enforced inside the update itself: the row is matched against the actor's
// company, and a miss is reported as not-found so another company's
// application is indistinguishable from a missing one.
func (u *Applications) SetStatus(ctx context.Context, actorUserID, applicationID uuid.UUID, rawStatus string) (application.Detail, error) {
	status, ok := application.ParseStatus(rawStatus)
	if !ok {
		return application.Detail{}, ErrInvalidStatus
	}

	own, err := u.ownCompany(ctx, actorUserID)
	if err != nil {
		return application.Detail{}, err
	}

	updated, err := u.applications.UpdateStatusOwned(ctx, applicationID, own.ID, status)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Detail{}, ErrNotFound
		}
		return application.Detail{}, ErrInternal
	}

	u.notifier.NotifyApplication(
		own.ID, ws.EventApplicationStatusChanged,
		updated.ID, updated.JobID, updated.Job.Title, string(updated.Status),
	)

	return updated, nil
}

func (u *Applications) ownCompany(ctx context.Context, actorUserID uuid.UUID) (company.Company, error) {
	own, err := u.companies.GetByUserID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, ErrCompanyProfileRequired
		}
		return company.Company{}, ErrInternal
	}
	return own, nil
}
