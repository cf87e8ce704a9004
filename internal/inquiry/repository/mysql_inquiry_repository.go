package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/database"
	apperrors "github.com/portalaudio/cms/internal/errors"
	"github.com/portalaudio/cms/internal/inquiry/domain"
)

// MySQLInquiryRepository handles inquiry persistence for MySQL.
type MySQLInquiryRepository struct {
	db *sql.DB
}

// NewMySQLInquiryRepository creates a new MySQLInquiryRepository.
func NewMySQLInquiryRepository(db *sql.DB) *MySQLInquiryRepository {
	return &MySQLInquiryRepository{
		db: db,
	}
}

// Create inserts a new inquiry.
func (r *MySQLInquiryRepository) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO inquiries (id, name, email, phone, message, product_id, status,
			  created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := inquiry.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	productIDBytes, err := marshalOptionalUUID(inquiry.ProductID)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product UUID")
	}

	_, err = querier.ExecContext(ctx, query,
		uuidBytes, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message,
		productIDBytes, string(inquiry.Status))
	if err != nil {
		return apperrors.Wrap(err, "failed to create inquiry")
	}
	return nil
}

// UpdateStatus changes the handling state of an inquiry. Status is the only
// mutable inquiry field.
func (r *MySQLInquiryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE inquiries SET status = ?, updated_at = NOW() WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, string(status), uuidBytes)
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
func (r *MySQLInquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	inquiry, err := scanMySQLInquiry(querier.QueryRowContext(ctx, query, uuidBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInquiryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get inquiry")
	}
	return inquiry, nil
}

// List retrieves inquiries matching the filter, newest first.
func (r *MySQLInquiryRepository) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Inquiry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + inquiryColumns + ` FROM inquiries`
	args := []any{}

	if filter.Status != "" {
		query += " WHERE status = ?"
		args = append(args, string(filter.Status))
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list inquiries")
	}
	defer rows.Close()

	inquiries := []*domain.Inquiry{}
	for rows.Next() {
		inquiry, err := scanMySQLInquiry(rows)
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
func (r *MySQLInquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM inquiries WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
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

// marshalOptionalUUID converts a nullable UUID to a driver value for BINARY(16)
// columns, keeping NULL for nil.
func marshalOptionalUUID(id *uuid.UUID) (any, error) {
	if id == nil {
		return nil, nil
	}
	return id.MarshalBinary()
}

func scanMySQLInquiry(row rowScanner) (*domain.Inquiry, error) {
	var inquiry domain.Inquiry
	var idBytes []byte
	var productIDBytes []byte
	var status string

	err := row.Scan(
		&idBytes, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.Message,
		&productIDBytes, &status, &inquiry.CreatedAt, &inquiry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := inquiry.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, err
	}
	if len(productIDBytes) > 0 {
		var productID uuid.UUID
		if err := productID.UnmarshalBinary(productIDBytes); err != nil {
			return nil, err
		}
		inquiry.ProductID = &productID
	}
	inquiry.Status = domain.Status(status)

	return &inquiry, nil
}
