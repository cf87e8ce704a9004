// Package repository provides data persistence implementations for inquiries.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/database"
	apperrors "github.com/portalaudio/cms/internal/errors"
	"github.com/portalaudio/cms/internal/inquiry/domain"
)

const inquiryColumns = `id, name, email, phone, message, product_id, status,
			  created_at, updated_at`

// PostgreSQLInquiryRepository handles inquiry persistence for PostgreSQL.
type PostgreSQLInquiryRepository struct {
	db *sql.DB
}

// NewPostgreSQLInquiryRepository creates a new PostgreSQLInquiryRepository.
func NewPostgreSQLInquiryRepository(db *sql.DB) *PostgreSQLInquiryRepository {
	return &PostgreSQLInquiryRepository{
		db: db,
	}
}

// Create inserts a new inquiry.
func (r *PostgreSQLInquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO inquiries (id, name, email, phone, message, product_id, status,
			  created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message,
		inquiry.ProductID, string(inquiry.Status))
	if err != nil {
		return apperrors.Wrap(err, "failed to create inquiry")
	}
	return nil
}

// UpdateStatus changes the handling state of an inquiry. Status is the only
// mutable inquiry field.
func (r *PostgreSQLInquiryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE inquiries SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update inquiry status")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrInquiryNotFound
	}

	return nil
}

// GetByID retrieves an inquiry by ID.
func (r *PostgreSQLInquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`

	inquiry, err := scanPostgreSQLInquiry(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get inquiry")
	}
	return inquiry, nil
}

// List retrieves inquiries matching the filter, newest first.
func (r *PostgreSQLInquiryRepository) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Inquiry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + inquiryColumns + ` FROM inquiries`
	args := []any{}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
	}

	args = append(args, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC OFFSET $%d", len(args))
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list inquiries")
	}
	defer rows.Close()

	inquiries := []*domain.Inquiry{}
	for rows.Next() {
		inquiry, err := scanPostgreSQLInquiry(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan inquiry")
		}
		inquiries = append(inquiries, inquiry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate inquiries")
	}

	return inquiries, nil
}

// Delete removes an inquiry by ID.
func (r *PostgreSQLInquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM inquiries WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete inquiry")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrInquiryNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPostgreSQLInquiry(row rowScanner) (*domain.Inquiry, error) {
	var inquiry domain.Inquiry
	var productID sql.NullString
	var status string

	err := row.Scan(
		&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.Message,
		&productID, &status, &inquiry.CreatedAt, &inquiry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if productID.Valid {
		id, err := uuid.Parse(productID.String)
		if err != nil {
			return nil, err
		}
		inquiry.ProductID = &id
	}
	inquiry.Status = domain.Status(status)

	return &inquiry, nil
}
