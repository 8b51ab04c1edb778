package repository

import (
	"context"

	"jobport/internal/database"
	"jobport/internal/domain/application"

	"github.com/google/uuid"
)

const applicationDetailColumns = `a.id, a.resume_url, a.cover_letter, a.status, a.job_id, a.applicant_id,
	a.created_at, a.updated_at,
	j.id, j.title, c.name`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, resume_url, cover_letter, status, job_id, applicant_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.ResumeURL, a.CoverLetter, a.Status, a.JobID, a.ApplicantID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return application.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, resume_url, cover_letter, status, job_id, applicant_id, created_at, updated_at
		 FROM applications WHERE id = $1`,
		id,
	)
	var a application.Application
	if err := row.Scan(&a.ID, &a.ResumeURL, &a.CoverLetter, &a.Status, &a.JobID, &a.ApplicantID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if isNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, applicantID,
	)
	if err := row.Scan(&exists); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.Detail, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationDetailColumns+`
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN companies c ON c.id = j.company_id
		 WHERE a.applicant_id = $1
		 ORDER BY a.created_at DESC`,
		applicantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDetails(rows, false)
}

func (r *PostgresApplicationRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]application.Detail, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationDetailColumns+`, u.id, u.name, u.email
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN companies c ON c.id = j.company_id
		 JOIN users u ON u.id = a.applicant_id
		 WHERE j.company_id = $1
		 ORDER BY a.created_at DESC`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDetails(rows, true)
}

func (r *PostgresApplicationRepository) ListRecentByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]application.Detail, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationDetailColumns+`, u.id, u.name, u.email
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN companies c ON c.id = j.company_id
		 JOIN users u ON u.id = a.applicant_id
		 WHERE j.company_id = $1
		 ORDER BY a.created_at DESC
		 LIMIT $2`,
		companyID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDetails(rows, true)
}

func (r *PostgresApplicationRepository) UpdateStatusOwned(ctx context.Context, id, companyID uuid.UUID, status application.Status) (application.Detail, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE applications a
		 SET status = $3, updated_at = now()
		 FROM jobs j
		 WHERE a.id = $1 AND a.job_id = j.id AND j.company_id = $2`,
		id, companyID, status,
	)
	if err != nil {
		return application.Detail{}, err
	}
	if affected == 0 {
		return application.Detail{}, application.ErrNotFound
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+applicationDetailColumns+`, u.id, u.name, u.email
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN companies c ON c.id = j.company_id
		 JOIN users u ON u.id = a.applicant_id
		 WHERE a.id = $1`,
		id,
	)
	return scanDetail(row, true)
}

func collectDetails(rows database.Rows, withApplicant bool) ([]application.Detail, error) {
	out := make([]application.Detail, 0)
	for rows.Next() {
		d, err := scanDetail(rows, withApplicant)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanDetail(row database.Row, withApplicant bool) (application.Detail, error) {
	var d application.Detail
	dest := []any{
		&d.ID, &d.ResumeURL, &d.CoverLetter, &d.Status, &d.JobID, &d.ApplicantID,
		&d.CreatedAt, &d.UpdatedAt,
		&d.Job.ID, &d.Job.Title, &d.Job.CompanyName,
	}
	if withApplicant {
		d.Applicant = &application.ApplicantRef{}
		dest = append(dest, &d.Applicant.ID, &d.Applicant.Name, &d.Applicant.Email)
	}
	if err := row.Scan(dest...); err != nil {
		if isNoRows(err) {
			return application.Detail{}, application.ErrNotFound
		}
		return application.Detail{}, err
	}
	return d, nil
}
