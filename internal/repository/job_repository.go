package repository

import (
	"context"
	"fmt"
	"strings"

	"jobport/internal/database"
	"jobport/internal/domain/job"

	"github.com/google/uuid"
)

const jobListingColumns = `j.id, j.title, j.description, j.location, j.category, j.salary, j.type,
	j.company_id, j.created_at, j.updated_at,
	c.id, c.name, c.website,
	(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, description, location, category, salary, type, company_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		j.ID, j.Title, j.Description, j.Location, j.Category, j.Salary, j.Type, j.CompanyID,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Listing, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobListingColumns+`
		 FROM jobs j
		 JOIN companies c ON c.id = j.company_id
		 WHERE j.id = $1`,
		id,
	)
	return scanJobListing(row)
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) List(ctx context.Context, f job.ListFilter) ([]job.Listing, int, error) {
	where, args := buildJobListWhere(f)

	var total int
	countRow := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j`+where, args...)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	pageArgs := append(args, limit, offset)
	rows, err := r.db.Query(ctx,
		`SELECT `+jobListingColumns+`
		 FROM jobs j
		 JOIN companies c ON c.id = j.company_id`+where+`
		 ORDER BY j.created_at DESC
		 LIMIT $`+fmt.Sprint(len(args)+1)+` OFFSET $`+fmt.Sprint(len(args)+2),
		pageArgs...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]job.Listing, 0)
	for rows.Next() {
		l, err := scanJobListing(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) UpdateOwned(ctx context.Context, id, companyID uuid.UUID, d job.Draft) (job.Listing, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $3, description = $4, location = $5, category = $6, salary = $7, type = $8, updated_at = now()
		 WHERE id = $1 AND company_id = $2`,
		id, companyID, d.Title, d.Description, d.Location, d.Category, d.Salary, d.Type,
	)
	if err != nil {
		return job.Listing{}, err
	}
	if affected == 0 {
		return job.Listing{}, job.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresJobRepository) DeleteOwned(ctx context.Context, id, companyID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND company_id = $2`,
		id, companyID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

// buildJobListWhere composes the optional ILIKE filters with AND. The same
// clause feeds both the count and the page query so they share one predicate.
func buildJobListWhere(f job.ListFilter) (string, []any) {
	clauses := make([]string, 0, 3)
	args := make([]any, 0, 3)

	add := func(column, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("j.%s ILIKE '%%' || $%d || '%%'", column, len(args)))
	}

	add("title", f.Search)
	add("location", f.Location)
	add("category", f.Category)

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanJobListing(row database.Row) (job.Listing, error) {
	var l job.Listing
	if err := row.Scan(
		&l.ID, &l.Title, &l.Description, &l.Location, &l.Category, &l.Salary, &l.Type,
		&l.CompanyID, &l.CreatedAt, &l.UpdatedAt,
		&l.Company.ID, &l.Company.Name, &l.Company.Website,
		&l.ApplicationCount,
	); err != nil {
		if isNoRows(err) {
			return job.Listing{}, job.ErrNotFound
		}
		return job.Listing{}, err
	}
	return l, nil
}
