// Package adapters provides the gorm-backed repository for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"petmatch_backend/internal/domain/entity"
	"petmatch_backend/internal/feature/auth/usecase"
)

// userGorm is the gorm implementation of usecase.UserRepository.
type userGorm struct {
	db *gorm.DB
}

// compile-time check that userGorm satisfies the repository interface
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates the auth user repository over the given connection.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. Unique-index violations on email or CPF are
// mapped to usecase.ErrEmailOrCPFTaken.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailOrCPFTaken
		}
		return err
	}
	return nil
}

// FindByEmail fetches a user by email, returning usecase.ErrUserNotFound
// when no row matches.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID fetches a user by primary key, returning usecase.ErrUserNotFound
// when no row matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ExistsByEmailOrCPF reports whether the email or CPF is already registered.
func (r *userGorm) ExistsByEmailOrCPF(ctx context.Context, email, cpf string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ? OR \"CPF\" = ?", email, cpf).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasProfile reports whether the user is linked to the named profile
// through the USUARIO_PERFIL join table.
func (r *userGorm) HasProfile(ctx context.Context, userID uint, nome string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.UserProfile{}).
		Joins("JOIN \"PERFIL\" ON \"PERFIL\".id = \"USUARIO_PERFIL\".id_perfil").
		Where("\"USUARIO_PERFIL\".id_usuario = ? AND \"PERFIL\".nome = ?", userID, nome).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
