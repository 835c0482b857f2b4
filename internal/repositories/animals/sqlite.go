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

// SQLiteRepository implements Repository over the SQLite store.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const sqliteColumns = `id, animal_code, species, breed, age, gender, size, description, image_path`

func scanAnimal(row interface{ Scan(dest ...any) error }) (*models.Animal, error) {
	a := &models.Animal{}
	var imagePath sql.NullString
	if err := row.Scan(&a.ID, &a.Code, &a.Species, &a.Breed, &a.Age, &a.Gender, &a.Size, &a.Description, &imagePath); err != nil {
		return nil, err
	}
	a.ImagePath = imagePath.String
	return a, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Animal, error) {
	query := `SELECT ` + sqliteColumns + ` FROM animals ORDER BY id`

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

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Animal, error) {
	query := `SELECT ` + sqliteColumns + ` FROM animals WHERE id = ?`

	a, err := scanAnimal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *SQLiteRepository) GetByCode(ctx context.Context, code string) (*models.Animal, error) {
	query := `SELECT ` + sqliteColumns + ` FROM animals WHERE animal_code = ?`

	a, err := scanAnimal(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, animal *models.Animal) error {
	query := `INSERT INTO animals (animal_code, species, breed, age, gender, size, description, image_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		animal.Code, animal.Species, animal.Breed, animal.Age,
		animal.Gender, animal.Size, animal.Description, animal.ImagePath).Scan(&animal.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Update(ctx context.Context, animal *models.Animal) error {
	query := `UPDATE animals SET animal_code = ?, species = ?, breed = ?, age = ?, gender = ?,
		 size = ?, description = ?, image_path = ? WHERE id = ?`

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

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM animals WHERE id = ?`

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
