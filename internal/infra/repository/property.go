package repository

import (
	"context"
	"errors"
	"time"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/property"
	"github.com/GRAMAPHENIA/resio-sub000/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `id, name, description, location, price_per_night, images,
	owner_id, available, bedrooms, bathrooms, area, slug, created_at, updated_at`

type PropertyRepository struct {
	db *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	row := r.db.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id)
	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}
	return p, nil
}

func (r *PropertyRepository) FindBySlug(ctx context.Context, slug string) (*property.Property, error) {
	row := r.db.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE slug = $1`, slug)
	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by slug", err)
	}
	return p, nil
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*property.Property, error) {
	rows, err := r.db.Query(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}
	return scanProperties(rows)
}

func (r *PropertyRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*property.Property, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find properties by owner", err)
	}
	return scanProperties(rows)
}

func (r *PropertyRepository) FindAvailable(ctx context.Context) ([]*property.Property, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE available ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available properties", err)
	}
	return scanProperties(rows)
}

func (r *PropertyRepository) Save(ctx context.Context, p *property.Property) (*property.Property, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO properties (id, name, description, location, price_per_night, images,
			owner_id, available, bedrooms, bathrooms, area, slug)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING `+propertyColumns,
		p.ID(), p.Name(), p.Description(), p.Location(), p.PricePerNight(), p.Images(),
		p.OwnerID(), p.Available(), p.Bedrooms(), p.Bathrooms(), p.Area(), p.Slug())

	saved, err := scanProperty(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save property", err)
	}
	return saved, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *property.Property) (*property.Property, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE properties
		 SET name = $2, description = $3, location = $4, price_per_night = $5, images = $6,
		     available = $7, bedrooms = $8, bathrooms = $9, area = $10, slug = $11,
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+propertyColumns,
		p.ID(), p.Name(), p.Description(), p.Location(), p.PricePerNight(), p.Images(),
		p.Available(), p.Bedrooms(), p.Bathrooms(), p.Area(), p.Slug())

	updated, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update property", err)
	}
	return updated, nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete property", err)
	}
	if cmd.RowsAffected() == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM properties WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check property existence", err)
	}
	return exists, nil
}

type propertyRow struct {
	ID            uuid.UUID
	Name          string
	Description   string
	Location      string
	PricePerNight int64
	Images        []string
	OwnerID       uuid.UUID
	Available     bool
	Bedrooms      int
	Bathrooms     int
	Area          float64
	Slug          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func scanProperty(row pgx.Row) (*property.Property, error) {
	var r propertyRow
	if err := row.Scan(
		&r.ID, &r.Name, &r.Description, &r.Location, &r.PricePerNight, &r.Images,
		&r.OwnerID, &r.Available, &r.Bedrooms, &r.Bathrooms, &r.Area, &r.Slug,
		&r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return r.toDomain()
}

func scanProperties(rows pgx.Rows) ([]*property.Property, error) {
	defer rows.Close()

	var result []*property.Property
	for rows.Next() {
		var r propertyRow
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Description, &r.Location, &r.PricePerNight, &r.Images,
			&r.OwnerID, &r.Available, &r.Bedrooms, &r.Bathrooms, &r.Area, &r.Slug,
			&r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan property row", err)
		}
		p, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate property rows", err)
	}
	return result, nil
}

func (r propertyRow) toDomain() (*property.Property, error) {
	p, err := property.NewProperty(property.NewPropertyParams{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Location:      r.Location,
		PricePerNight: r.PricePerNight,
		Images:        r.Images,
		OwnerID:       r.OwnerID,
		Available:     r.Available,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		Area:          r.Area,
		Slug:          r.Slug,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("stored property is invalid", err)
	}
	return p, nil
}
