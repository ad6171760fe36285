package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing resource records.
// Delete is unconditional: removing an unknown id is not an error.
type Repository interface {
	Create(ctx context.Context, res *Resource) error
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context) ([]*Resource, error)
	Update(ctx context.Context, res *Resource) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by PostgreSQL.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, res *Resource) error {
	const query = `
		INSERT INTO public.resources
			(id, name, type, description, is_active, min_lead_time_hours, icon, color, specs, form_fields)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	err := r.pool.QueryRow(ctx, query,
		res.ID, res.Name, res.Type, res.Description, res.IsActive,
		res.MinLeadTimeHours, res.Icon, res.Color, res.Specs, res.FormFields,
	).Scan(&res.CreatedAt)
	if err != nil {
		return fmt.Errorf("create resource failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Resource, error) {
	const query = `
		SELECT id, name, type, description, is_active, min_lead_time_hours,
		       icon, color, specs, form_fields, created_at
		FROM public.resources
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var res Resource
	if err := scanResource(row, &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resource failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Resource, error) {
	const query = `
		SELECT id, name, type, description, is_active, min_lead_time_hours,
		       icon, color, specs, form_fields, created_at
		FROM public.resources
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list resources failed: %w", err)
	}
	defer rows.Close()

	var result []*Resource
	for rows.Next() {
		var res Resource
		if err := scanResource(rows, &res); err != nil {
			return nil, fmt.Errorf("scan resource failed: %w", err)
		}
		result = append(result, &res)
	}
	return result, nil
}

func (r *pgxRepository) Update(ctx context.Context, res *Resource) error {
	const query = `
		UPDATE public.resources
		SET name = $1, type = $2, description = $3, is_active = $4,
		    min_lead_time_hours = $5, icon = $6, color = $7, specs = $8, form_fields = $9
		WHERE id = $10
	`
	ct, err := r.pool.Exec(ctx, query,
		res.Name, res.Type, res.Description, res.IsActive,
		res.MinLeadTimeHours, res.Icon, res.Color, res.Specs, res.FormFields, res.ID,
	)
	if err != nil {
		return fmt.Errorf("update resource failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.resources WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete resource failed: %w", err)
	}
	return nil
}

func scanResource(row pgx.Row, res *Resource) error {
	return row.Scan(
		&res.ID, &res.Name, &res.Type, &res.Description, &res.IsActive,
		&res.MinLeadTimeHours, &res.Icon, &res.Color, &res.Specs, &res.FormFields,
		&res.CreatedAt,
	)
}
