package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/database"
	apperrors "github.com/portalaudio/cms/internal/errors"
	"github.com/portalaudio/cms/internal/testimonial/domain"
)

// MySQLTestimonialRepository handles testimonial persistence for MySQL.
type MySQLTestimonialRepository struct {
	db *sql.DB
}

// NewMySQLTestimonialRepository creates a new MySQLTestimonialRepository.
func NewMySQLTestimonialRepository(db *sql.DB) *MySQLTestimonialRepository {
	return &MySQLTestimonialRepository{
		db: db,
	}
}

// Create inserts a new testimonial.
func (r *MySQLTestimonialRepository) Create(ctx context.Context, testimonial *domain.Testimonial) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO testimonials (id, customer_name, company, content, rating,
			  product_id, featured, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := testimonial.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	productIDBytes, err := marshalOptionalUUID(testimonial.ProductID)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		uuidBytes, testimonial.CustomerName, testimonial.Company, testimonial.Content,
		testimonial.Rating, productIDBytes, testimonial.Featured)
	if err != nil {
		return apperrors.Wrap(err, "failed to create testimonial")
	}
	return nil
}

// Update modifies an existing testimonial.
func (r *MySQLTestimonialRepository) Update(ctx context.Context, testimonial *domain.Testimonial) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE testimonials
			  SET customer_name = ?, company = ?, content = ?, rating = ?,
			  product_id = ?, featured = ?, updated_at = NOW()
			  WHERE id = ?`

	uuidBytes, err := testimonial.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	productIDBytes, err := marshalOptionalUUID(testimonial.ProductID)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product UUID")
	}

	result, err := querier.ExecContext(ctx, query,
		testimonial.CustomerName, testimonial.Company, testimonial.Content, testimonial.Rating,
		productIDBytes, testimonial.Featured, uuidBytes)
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
func (r *MySQLTestimonialRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Testimonial, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	testimonial, err := scanMySQLTestimonial(querier.QueryRowContext(ctx, query, uuidBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTestimonialNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get testimonial")
	}
	return testimonial, nil
}

// List retrieves testimonials matching the filter, newest first.
func (r *MySQLTestimonialRepository) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Testimonial, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + testimonialColumns + ` FROM testimonials`
	args := []any{}

	if filter.Featured != nil {
		query += " WHERE featured = ?"
		args = append(args, *filter.Featured)
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list testimonials")
	}
	defer rows.Close()

	testimonials := []*domain.Testimonial{}
	for rows.Next() {
		testimonial, err := scanMySQLTestimonial(rows)
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
func (r *MySQLTestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM testimonials WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
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

// marshalOptionalUUID converts a nullable UUID to a driver value for BINARY(16)
// columns, keeping NULL for nil.
func marshalOptionalUUID(id *uuid.UUID) (any, error) {
	if id == nil {
		return nil, nil
	}
	return id.MarshalBinary()
}

func scanMySQLTestimonial(row rowScanner) (*domain.Testimonial, error) {
	var testimonial domain.Testimonial
	var idBytes []byte
	var productIDBytes []byte

	err := row.Scan(
		&idBytes, &testimonial.CustomerName, &testimonial.Company, &testimonial.Content,
		&testimonial.Rating, &productIDBytes, &testimonial.Featured,
		&testimonial.CreatedAt, &testimonial.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := testimonial.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	if len(productIDBytes) > 0 {
		var productID uuid.UUID
		if err := productID.UnmarshalBinary(productIDBytes); err != nil {
			return nil, err
		}
		testimonial.ProductID = &productID
	}

	return &testimonial, nil
}
