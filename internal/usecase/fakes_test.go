package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"jobport/internal/domain/application"
	"jobport/internal/domain/company"
	"jobport/internal/domain/job"

	"github.com/google/uuid"
)

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[uuid.UUID]company.Company
	jobs      *fakeJobRepo
}

func newFakeCompanyRepo(jobs *fakeJobRepo) *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[uuid.UUID]company.Company{}, jobs: jobs}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c company.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) GetByUserID(_ context.Context, userID uuid.UUID) (company.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.companies {
		if c.UserID == userID {
			return c, nil
		}
	}
	return company.Company{}, company.ErrNotFound
}

func (f *fakeCompanyRepo) Update(_ context.Context, id uuid.UUID, upd company.ProfileUpdate) (company.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	c.Name = upd.Name
	c.Description = upd.Description
	c.Website = upd.Website
	f.companies[id] = c
	return c, nil
}

func (f *fakeCompanyRepo) ListWithJobCounts(ctx context.Context) ([]company.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]company.Summary, 0, len(f.companies))
	for _, c := range f.companies {
		s := company.Summary{Company: c}
		if f.jobs != nil {
			s.JobCount = f.jobs.countByCompany(c.ID)
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeCompanyRepo) ListJobsByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Listing, error) {
	if f.jobs == nil {
		return nil, nil
	}
	return f.jobs.listByCompany(companyID), nil
}

func (f *fakeCompanyRepo) Stats(_ context.Context, id uuid.UUID) (company.DashboardStats, error) {
	st := company.DashboardStats{}
	if f.jobs != nil {
		st.TotalJobs = f.jobs.countByCompany(id)
	}
	return st, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]job.Listing
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uuid.UUID]job.Listing{}}
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	f.jobs[j.ID] = job.Listing{Job: j, Company: job.CompanyRef{ID: j.CompanyID}}
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.jobs[id]
	if !ok {
		return job.Listing{}, job.ErrNotFound
	}
	return l, nil
}

func (f *fakeJobRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.jobs[id]
	return ok, nil
}

func (f *fakeJobRepo) List(_ context.Context, filter job.ListFilter) ([]job.Listing, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	contains := func(haystack, needle string) bool {
		needle = strings.TrimSpace(needle)
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	matched := make([]job.Listing, 0)
	for _, l := range f.jobs {
		if contains(l.Title, filter.Search) &&
			contains(l.Location, filter.Location) &&
			contains(l.Category, filter.Category) {
			matched = append(matched, l)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := filter.Offset
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if filter.Limit <= 0 || end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (f *fakeJobRepo) UpdateOwned(_ context.Context, id, companyID uuid.UUID, d job.Draft) (job.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.jobs[id]
	if !ok || l.CompanyID != companyID {
		return job.Listing{}, job.ErrNotFound
	}
	l.Title = d.Title
	l.Description = d.Description
	l.Location = d.Location
	l.Category = d.Category
	l.Salary = d.Salary
	l.Type = d.Type
	f.jobs[id] = l
	return l, nil
}

func (f *fakeJobRepo) DeleteOwned(_ context.Context, id, companyID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.jobs[id]
	if !ok || l.CompanyID != companyID {
		return job.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) countByCompany(companyID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, l := range f.jobs {
		if l.CompanyID == companyID {
			n++
		}
	}
	return n
}

func (f *fakeJobRepo) listByCompany(companyID uuid.UUID) []job.Listing {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]job.Listing, 0)
	for _, l := range f.jobs {
		if l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	return out
}

// fakeApplicationRepo mirrors the storage-level unique constraint on
// (job_id, applicant_id): Create fails with ErrDuplicate regardless of
// whether the caller pre-checked.
type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[uuid.UUID]application.Application
	jobs         *fakeJobRepo

	// hideFromExists simulates the check-then-act race: the pre-check sees
	// nothing, but the insert still trips the constraint.
	hideFromExists bool
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[uuid.UUID]application.Application{}, jobs: jobs}
}

func (f *fakeApplicationRepo) Create(_ context.Context, a application.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.applications {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return application.ErrDuplicate
		}
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	f.applications[a.ID] = a
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.applications[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (f *fakeApplicationRepo) ExistsByJobAndApplicant(_ context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hideFromExists {
		return false, nil
	}
	for _, a := range f.applications {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantID uuid.UUID) ([]application.Detail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]application.Detail, 0)
	for _, a := range f.applications {
		if a.ApplicantID == applicantID {
			out = append(out, f.detailLocked(a, false))
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]application.Detail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]application.Detail, 0)
	for _, a := range f.applications {
		if f.jobCompanyLocked(a.JobID) == companyID {
			out = append(out, f.detailLocked(a, true))
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListRecentByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]application.Detail, error) {
	out, err := f.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatusOwned(_ context.Context, id, companyID uuid.UUID, status application.Status) (application.Detail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.applications[id]
	if !ok || f.jobCompanyLocked(a.JobID) != companyID {
		return application.Detail{}, application.ErrNotFound
	}
	a.Status = status
	f.applications[id] = a
	return f.detailLocked(a, true), nil
}

func (f *fakeApplicationRepo) jobCompanyLocked(jobID uuid.UUID) uuid.UUID {
	if f.jobs == nil {
		return uuid.Nil
	}
	f.jobs.mu.Lock()
	defer f.jobs.mu.Unlock()
	l, ok := f.jobs.jobs[jobID]
	if !ok {
		return uuid.Nil
	}
	return l.CompanyID
}

func (f *fakeApplicationRepo) detailLocked(a application.Application, withApplicant bool) application.Detail {
	d := application.Detail{Application: a}
	if f.jobs != nil {
		f.jobs.mu.Lock()
		if l, ok := f.jobs.jobs[a.JobID]; ok {
			d.Job = application.JobRef{ID: l.ID, Title: l.Title, CompanyName: l.Company.Name}
		}
		f.jobs.mu.Unlock()
	}
	if withApplicant {
		d.Applicant = &application.ApplicantRef{ID: a.ApplicantID}
	}
	return d
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	f.hits++
	return true, json.Unmarshal(b, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = b
	f.sets++
	return nil
}

func (f *fakeCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	f.mu.Lock()
	defer f.mu.Unlock()
	for k := range f.entries {
		if strings.HasPrefix(k, prefix) {
			delete(f.entries, k)
		}
	}
	return nil
}
