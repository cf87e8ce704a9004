// Package repository provides data persistence implementations for dealers.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/portalaudio/cms/internal/database"
	"github.com/portalaudio/cms/internal/dealer/domain"
	apperrors "github.com/portalaudio/cms/internal/errors"
)

const dealerColumns = `id, name, address, city, region, phone, email,
			  latitude, longitude, status, created_at, updated_at`

// PostgreSQLDealerRepository handles dealer persistence for PostgreSQL.
type PostgreSQLDealerRepository struct {
	db *sql.DB
}

// NewPostgreSQLDealerRepository creates a new PostgreSQLDealerRepository.
func NewPostgreSQLDealerRepository(db *sql.DB) *PostgreSQLDealerRepository {
	return &PostgreSQLDealerRepository{
		db: db,
	}
}

// Create inserts a new dealer.
func (r *PostgreSQLDealerRepository) Create(ctx context.Context, dealer *domain.Dealer) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO dealers (id, name, address, city, region, phone, email,
			  latitude, longitude, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		dealer.ID, dealer.Name, dealer.Address, dealer.City, dealer.Region,
		dealer.Phone, dealer.Email, dealer.Latitude, dealer.Longitude, string(dealer.Status))
	if err != nil {
		return apperrors.Wrap(err, "failed to create dealer")
	}
	return nil
}

// Update modifies an existing dealer.
func (r *PostgreSQLDealerRepository) Update(ctx context.Context, dealer *domain.Dealer) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE dealers
			  SET name = $1, address = $2, city = $3, region = $4, phone = $5,
			  email = $6, latitude = $7, longitude = $8, status = $9, updated_at = NOW()
			  WHERE id = $10`

	result, err := querier.ExecContext(ctx, query,
		dealer.Name, dealer.Address, dealer.City, dealer.Region, dealer.Phone,
		dealer.Email, dealer.Latitude, dealer.Longitude, string(dealer.Status), dealer.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update dealer")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrDealerNotFound
	}

	return nil
}

// GetByID retrieves a dealer by ID.
func (r *PostgreSQLDealerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dealer, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + dealerColumns + ` FROM dealers WHERE id = $1`

	var dealer domain.Dealer
	var status string
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&dealer.ID, &dealer.Name, &dealer.Address, &dealer.City, &dealer.Region,
		&dealer.Phone, &dealer.Email, &dealer.Latitude, &dealer.Longitude,
		&status, &dealer.CreatedAt, &dealer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDealerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get dealer")
	}
	dealer.Status = domain.Status(status)

	return &dealer, nil
}

// List retrieves dealers matching the filter, ordered by city.
func (r *PostgreSQLDealerRepository) List(
	ctx context.Context,
	filter domain.Filter,
	offset, limit int,
) ([]*domain.Dealer, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + dealerColumns + ` FROM dealers`
	conditions := []string{}
	args := []any{}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Region != "" {
		args = append(args, filter.Region)
		conditions = append(conditions, fmt.Sprintf("region = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, offset)
	query += fmt.Sprintf(" ORDER BY city ASC OFFSET $%d", len(args))
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list dealers")
	}
	defer rows.Close()

	dealers := []*domain.Dealer{}
	for rows.Next() {
		var dealer domain.Dealer
		var status string
		if err := rows.Scan(
			&dealer.ID, &dealer.Name, &dealer.Address, &dealer.City, &dealer.Region,
			&dealer.Phone, &dealer.Email, &dealer.Latitude, &dealer.Longitude,
			&status, &dealer.CreatedAt, &dealer.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan dealer")
		}
		dealer.Status = domain.Status(status)
		dealers = append(dealers, &dealer)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate dealers")
	}

	return dealers, nil
}

// Delete removes a dealer by ID.
func (r *PostgreSQLDealerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM dealers WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete dealer")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrDealerNotFound
	}

	return nil
}
