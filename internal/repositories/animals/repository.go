// Package animals provides catalog storage for adoptable animals.
package animals

import (
	"context"

	"github.com/mcorbu/shelterdesk/internal/models"
)

// Repository is the storage contract consumed by the catalog service.
type Repository interface {
	GetAll(ctx context.Context) ([]models.Animal, error)
	GetByID(ctx context.Context, id int64) (*models.Animal, error)
	GetByCode(ctx context.Context, code string) (*models.Animal, error)
	Insert(ctx context.Context, animal *models.Animal) error
	Update(ctx context.Context, animal *models.Animal) error
	Delete(ctx context.Context, id int64) error
}
