package repository

import (
	"context"

	"jobport/internal/database"
	"jobport/internal/domain/company"
	"jobport/internal/domain/job"

	"github.com/google/uuid"
)

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, name, description, website, user_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Description, c.Website, c.UserID,
	)
	return err
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, description, website, user_id, created_at, updated_at
		 FROM companies WHERE id = $1`,
		id,
	)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, description, website, user_id, created_at, updated_at
		 FROM companies WHERE user_id = $1`,
		userID,
	)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, id uuid.UUID, upd company.ProfileUpdate) (company.Company, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE companies
		 SET name = $2, description = $3, website = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING id, name, description, website, user_id, created_at, updated_at`,
		id, upd.Name, upd.Description, upd.Website,
	)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) ListWithJobCounts(ctx context.Context) ([]company.Summary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.name, c.description, c.website, c.user_id, c.created_at, c.updated_at,
		        COUNT(j.id)
		 FROM companies c
		 LEFT JOIN jobs j ON j.company_id = c.id
		 GROUP BY c.id
		 ORDER BY c.created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]company.Summary, 0)
	for rows.Next() {
		var s company.Summary
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Description, &s.Website, &s.UserID,
			&s.CreatedAt, &s.UpdatedAt, &s.JobCount,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) ListJobsByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Listing, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobListingColumns+`
		 FROM jobs j
		 JOIN companies c ON c.id = j.company_id
		 WHERE j.company_id = $1
		 ORDER BY j.created_at DESC`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Listing, 0)
	for rows.Next() {
		l, err := scanJobListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) Stats(ctx context.Context, id uuid.UUID) (company.DashboardStats, error) {
	var st company.DashboardStats
	row := r.db.QueryRow(ctx,
		`SELECT
		   (SELECT COUNT(*) FROM jobs WHERE company_id = $1),
		   (SELECT COUNT(*) FROM applications a JOIN jobs j ON a.job_id = j.id WHERE j.company_id = $1)`,
		id,
	)
	if err := row.Scan(&st.TotalJobs, &st.TotalApplications); err != nil {
		return company.DashboardStats{}, err
	}
	return st, nil
}

func scanCompany(row database.Row) (company.Company, error) {
	var c company.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.UserID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if isNoRows(err) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}
