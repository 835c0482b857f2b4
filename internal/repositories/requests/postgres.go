package requests

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcorbu/shelterdesk/internal/common"
	"github.com/mcorbu/shelterdesk/internal/dbx"
	"github.com/mcorbu/shelterdesk/internal/models"
)

// PostgresRepository implements Repository over a PostgreSQL store.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, req *models.AdoptionRequest) error {
	query := `INSERT INTO adoption_requests (user_email, animal_id, path) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, req.UserEmail, req.AnimalID, req.DocumentPath); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, email string, animalID int64) error {
	query := `DELETE FROM adoption_requests WHERE user_email = $1 AND animal_id = $2`

	res, err := r.db.ExecContext(ctx, query, email, animalID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) FindPath(ctx context.Context, email string, animalID int64) (string, error) {
	query := `SELECT path FROM adoption_requests WHERE user_email = $1 AND animal_id = $2`

	var path string
	err := r.db.QueryRowContext(ctx, query, email, animalID).Scan(&path)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return path, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, email string, animalID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM adoption_requests WHERE user_email = $1 AND animal_id = $2`

	var n int
	if err := r.db.QueryRowContext(ctx, query, email, animalID).Scan(&n); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.AdoptionRequest, error) {
	query := `SELECT user_email, animal_id, path FROM adoption_requests ORDER BY user_email, animal_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.AdoptionRequest
	for rows.Next() {
		var item models.AdoptionRequest
		if err := rows.Scan(&item.UserEmail, &item.AnimalID, &item.DocumentPath); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
