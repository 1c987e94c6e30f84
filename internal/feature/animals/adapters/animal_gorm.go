// Package adapters provides the gorm-backed repository for the animals feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petmatch_backend/internal/domain/entity"
	"petmatch_backend/internal/feature/animals/usecase"
)

// AnimalGorm is the gorm implementation of usecase.AnimalRepository.
type AnimalGorm struct {
	db *gorm.DB
}

var _ usecase.AnimalRepository = (*AnimalGorm)(nil)

// NewAnimalRepository creates the animal repository over the given connection.
func NewAnimalRepository(db *gorm.DB) *AnimalGorm {
	return &AnimalGorm{db: db}
}

func (r *AnimalGorm) FindAll(ctx context.Context) ([]entity.Animal, error) {
	var animals []entity.Animal
	if err := r.db.WithContext(ctx).Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *AnimalGorm) FindByID(ctx context.Context, id uint) (*entity.Animal, error) {
	var a entity.Animal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAnimalNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AnimalGorm) FindByStatus(ctx context.Context, status string) ([]entity.Animal, error) {
	var animals []entity.Animal
	if err := r.db.WithContext(ctx).Where("status = ?", status).Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

// SearchBySpecies folds both sides to lower case so the substring match
// behaves the same on Postgres and on the SQLite used in tests.
func (r *AnimalGorm) SearchBySpecies(ctx context.Context, especie string) ([]entity.Animal, error) {
	var animals []entity.Animal
	err := r.db.WithContext(ctx).
		Where("LOWER(especie) LIKE LOWER(?)", "%"+especie+"%").
		Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *AnimalGorm) Create(ctx context.Context, a *entity.Animal) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AnimalGorm) Save(ctx context.Context, a *entity.Animal) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AnimalGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Animal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAnimalNotFound
	}
	return nil
}
