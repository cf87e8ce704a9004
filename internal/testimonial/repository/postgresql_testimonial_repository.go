// Package repository provides data persistence implementations for testimonials.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/database"
	apperrors "github.com/portalaudio/cms/internal/errors"
	"github.com/portalaudio/cms/internal/testimonial/domain"
)

const testimonialColumns = `id, customer_name, company, content, rating, product_id,
			  featured, created_at, updated_at`

// PostgreSQLTestimonialRepository handles testimonial persistence for PostgreSQL.
type PostgreSQLTestimonialRepository struct {
	db *sql.DB
}

// NewPostgreSQLTestimonialRepository creates a new PostgreSQLTestimonialRepository.
func NewPostgreSQLTestimonialRepository(db *sql.DB) *PostgreSQLTestimonialRepository {
	return &PostgreSQLTestimonialRepository{
		db: db,
	}
}

// Create inserts a new testimonial.
func (r *PostgreSQLTestimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO testimonials (id, customer_name, company, content, rating,
			  product_id, featured, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		testimonial.ID, testimonial.CustomerName, testimonial.Company, testimonial.Content,
		testimonial.Rating, testimonial.ProductID, testimonial.Featured)
	if err != nil {
		return apperrors.Wrap(err, "failed to create testimonial")
	}
	return nil
}

// Update modifies an existing testimonial.
func (r *PostgreSQLTestimonialRepository) Update(ctx context.Context, testimonial *domain.Testimonial) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE testimonials
			  SET customer_name = $1, company = $2, content = $3, rating = $4,
			  product_id = $5, featured = $6, updated_at = NOW()
			  WHERE id = $7`

	result, err := querier.ExecContext(ctx, query,
		testimonial.CustomerName, testimonial.Company, testimonial.Content, testimonial.Rating,
		testimonial.ProductID, testimonial.Featured, testimonial.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update testimonial")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrTestimonialNotFound
	}

	return nil
}

// GetByID retrieves a testimonial by ID.
func (r *PostgreSQLTestimonialRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`

	testimonial, err := scanPostgreSQLTestimonial(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTestimonialNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get testimonial")
	}
	return testimonial, nil
}

// List retrieves testimonials matching the filter, newest first.
func (r *PostgreSQLTestimonialRepository) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Testimonial, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	args := []any{}

	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		query += fmt.Sprintf(" WHERE featured = $%d", len(args))
	}

	args = append(args, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC OFFSET $%d", len(args))
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list testimonials")
	}
	defer rows.Close()

	testimonials := []*domain.Testimonial{}
	for rows.Next() {
		testimonial, err := scanPostgreSQLTestimonial(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan testimonial")
		}
		testimonials = append(testimonials, testimonial)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate testimonials")
	}

	return testimonials, nil
}

// Delete removes a testimonial by ID.
func (r *PostgreSQLTestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM testimonials WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete testimonial")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrTestimonialNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgreSQLTestimonial(row rowScanner) (*domain.Testimonial, error) {
	var testimonial domain.Testimonial
	var productID sql.NullString

	err := row.Scan(
		&testimonial.ID, &testimonial.CustomerName, &testimonial.Company, &testimonial.Content,
		&testimonial.Rating, &productID, &testimonial.Featured,
		&testimonial.CreatedAt, &testimonial.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if productID.Valid {
		id, err := uuid.Parse(productID.String)
		if err != nil {
			return nil, err
		}
		testimonial.ProductID = &id
	}

	return &testimonial, nil
}
