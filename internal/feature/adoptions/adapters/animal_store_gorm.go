package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petmatch_backend/internal/domain/entity"
	"petmatch_backend/internal/feature/adoptions/usecase"
)

// animalStoreGorm is the slice of animal persistence the adoption
// lifecycle needs, mapped to this feature's sentinel errors.
type animalStoreGorm struct {
	db *gorm.DB
}

var _ usecase.AnimalStore = (*animalStoreGorm)(nil)

// NewAnimalStore creates the adoptions-side animal store.
func NewAnimalStore(db *gorm.DB) *animalStoreGorm {
	return &animalStoreGorm{db: db}
}

func (s *animalStoreGorm) FindByID(ctx context.Context, id uint) (*entity.Animal, error) {
	var a entity.Animal
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAnimalNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *animalStoreGorm) UpdateStatus(ctx context.Context, id uint, status string) error {
	return s.db.WithContext(ctx).
		Model(&entity.Animal{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (s *animalStoreGorm) CountAvailable(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.Animal{}).
		Where("status = ?", entity.StatusAvailable).
		Count(&count).Error
	return count, err
}
