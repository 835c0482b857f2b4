package animals

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

const postgresColumns = `id, animal_code, species, breed, age, gender, size, description, image_path`

func (r *PostgresRepository) GetAll(ctx context.Context) ([]models.Animal, error) {
	query := `SELECT ` + postgresColumns + ` FROM animals ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Animal
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Animal, error) {
	query := `SELECT ` + postgresColumns + ` FROM animals WHERE id = $1`

	a, err := scanAnimal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) GetByCode(ctx context.Context, code string) (*models.Animal, error) {
	query := `SELECT ` + postgresColumns + ` FROM animals WHERE animal_code = $1`

	a, err := scanAnimal(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, animal *models.Animal) error {
	query := `INSERT INTO animals (animal_code, species, breed, age, gender, size, description, image_path)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		animal.Code, animal.Species, animal.Breed, animal.Age,
		animal.Gender, animal.Size, animal.Description, animal.ImagePath).Scan(&animal.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, animal *models.Animal) error {
	query := `UPDATE animals SET animal_code = $1, species = $2, breed = $3, age = $4, gender = $5,
		 size = $6, description = $7, image_path = $8 WHERE id = $9`

	res, err := r.db.ExecContext(ctx, query,
		animal.Code, animal.Species, animal.Breed, animal.Age,
		animal.Gender, animal.Size, animal.Description, animal.ImagePath, animal.ID)
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

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM animals WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
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
