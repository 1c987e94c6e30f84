// Package adapters provides the gorm-backed repositories for the adoptions feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"petmatch_backend/internal/domain/entity"
	"petmatch_backend/internal/feature/adoptions/usecase"
)

type adoptionGorm struct {
	db *gorm.DB
}

var _ usecase.AdoptionRepository = (*adoptionGorm)(nil)

// NewAdoptionRepository creates the adoption-record repository over the
// given connection.
func NewAdoptionRepository(db *gorm.DB) *adoptionGorm {
	return &adoptionGorm{db: db}
}

func (r *adoptionGorm) FindAll(ctx context.Context) ([]entity.AdoptionRecord, error) {
	var recs []entity.AdoptionRecord
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Animal").
		Order("data_resgate DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *adoptionGorm) FindByID(ctx context.Context, id uint) (*entity.AdoptionRecord, error) {
	var rec entity.AdoptionRecord
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Animal").
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *adoptionGorm) FindByUser(ctx context.Context, userID uint) ([]entity.AdoptionRecord, error) {
	var recs []entity.AdoptionRecord
	err := r.db.WithContext(ctx).
		Preload("Animal").
		Where("id_usuario = ?", userID).
		Order("data_resgate DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *adoptionGorm) Create(ctx context.Context, rec *entity.AdoptionRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// MarkAdopted performs the adoption as one conditional UPDATE guarded
// by data_adocao IS NULL. The rows-affected check distinguishes a
// concluded record from a missing one.
func (r *adoptionGorm) MarkAdopted(ctx context.Context, id uint, date time.Time, observacoes *string, userID uint) error {
	updates := map[string]any{
		"data_adocao": date,
		"id_usuario":  userID,
	}
	if observacoes != nil {
		updates["observacoes"] = *observacoes
	}

	res := r.db.WithContext(ctx).
		Model(&entity.AdoptionRecord{}).
		Where("id = ? AND data_adocao IS NULL", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&entity.AdoptionRecord{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return usecase.ErrRecordNotFound
		}
		return usecase.ErrAlreadyAdopted
	}
	return nil
}

func (r *adoptionGorm) UpdateNotes(ctx context.Context, id uint, observacoes string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.AdoptionRecord{}).
		Where("id = ?", id).
		Update("observacoes", observacoes)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrRecordNotFound
	}
	return nil
}

func (r *adoptionGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.AdoptionRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrRecordNotFound
	}
	return nil
}

func (r *adoptionGorm) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.AdoptionRecord{}).Count(&count).Error
	return count, err
}

func (r *adoptionGorm) CountConcluded(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.AdoptionRecord{}).
		Where("data_adocao IS NOT NULL").
		Count(&count).Error
	return count, err
}
