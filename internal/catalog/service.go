// Package catalog exposes the adoptable-animal roster to the rest of the
// application.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcorbu/shelterdesk/internal/common"
	"github.com/mcorbu/shelterdesk/internal/models"
	"github.com/mcorbu/shelterdesk/internal/repositories/animals"
)

// Service is plain CRUD over the animal roster. Animal codes are unique;
// everything else is free-form.
type Service struct {
	repo animals.Repository
}

func NewService(repo animals.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]models.Animal, error) {
	out, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*models.Animal, error) {
	animal, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return animal, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (*models.Animal, error) {
	animal, err := s.repo.GetByCode(ctx, code)
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return animal, nil
}

// Add registers a new animal. The code must be unused and the age
// non-negative.
func (s *Service) Add(ctx context.Context, animal *models.Animal) error {
	if animal.Code == "" {
		return fmt.Errorf("animal code is required")
	}
	if animal.Age < 0 {
		return fmt.Errorf("animal age must not be negative")
	}

	_, err := s.repo.GetByCode(ctx, animal.Code)
	if err == nil {
		return common.ErrDuplicateAnimalCode
	}
	if !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	if err := s.repo.Insert(ctx, animal); err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, animal *models.Animal) error {
	if animal.Age < 0 {
		return fmt.Errorf("animal age must not be negative")
	}
	err := s.repo.Update(ctx, animal)
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}
