// Package requests provides storage for adoption-request rows. A row is the
// canonical reference to its generated document; the store itself enforces no
// uniqueness on (user_email, animal_id) — that check belongs to the service
// layer.
package requests

import (
	"context"

	"github.com/mcorbu/shelterdesk/internal/models"
)

// Repository is the storage contract consumed by the adoption service.
type Repository interface {
	Insert(ctx context.Context, req *models.AdoptionRequest) error
	Delete(ctx context.Context, email string, animalID int64) error
	FindPath(ctx context.Context, email string, animalID int64) (string, error)
	Exists(ctx context.Context, email string, animalID int64) (bool, error)
	GetAll(ctx context.Context) ([]models.AdoptionRequest, error)
}
