package repository

import (
	"context"
	"database/sql"
	"fmt"

	"viveiro/internal/domain"
	"viveiro/internal/errors"
)

type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

func (r *MySQLUserRepository) FindSummaryByID(ctx context.Context, id uint) (*domain.UserSummary, error) {
	query := `SELECT id, name FROM Users WHERE id = ?`

	var user domain.UserSummary
	err := r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Name)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}

	return &user, nil
}
