package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"petmatch_backend/internal/domain/entity"
)

// UserRepository abstracts user persistence for the users feature.
type UserRepository interface {
	FindAll(ctx context.Context) ([]entity.User, error)
	// FindByID returns ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	// Create returns ErrEmailOrCPFTaken on a unique-index violation.
	Create(ctx context.Context, user *entity.User) error
	// Save persists all fields of an existing user, with the same
	// duplicate mapping as Create.
	Save(ctx context.Context, user *entity.User) error
	// Delete removes the user, returning ErrUserNotFound when absent.
	Delete(ctx context.Context, id uint) error
	// ExistsOther reports whether a different user holds the email or CPF.
	ExistsOther(ctx context.Context, email, cpf string, excludeID uint) (bool, error)
}

// Patch is the explicit update payload: every field optional, applied
// only when present. Unknown JSON fields are rejected at the transport
// layer, never silently dropped.
type Patch struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email"`
	CPF   *string `json:"CPF"`
	Senha *string `json:"senha"`
}

// Empty reports whether the patch carries no fields.
func (p Patch) Empty() bool {
	return p.Nome == nil && p.Email == nil && p.CPF == nil && p.Senha == nil
}

// UsersUsecase implements user CRUD.
type UsersUsecase struct {
	users UserRepository
	cost  int
}

// NewUsersUsecase wires the users business logic. cost is the bcrypt
// cost factor from configuration.
func NewUsersUsecase(users UserRepository, cost int) *UsersUsecase {
	return &UsersUsecase{users: users, cost: cost}
}

// List returns all users.
func (u *UsersUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// Get returns one user by ID.
func (u *UsersUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Create registers a user with a hashed password.
func (u *UsersUsecase) Create(ctx context.Context, nome, email, cpf, senha string) (*entity.User, error) {
	taken, err := u.users.ExistsOther(ctx, email, cpf, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check uniqueness: %w", err)
	}
	if taken {
		return nil, ErrEmailOrCPFTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), u.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Nome: nome, Email: email, CPF: cpf, Senha: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a patch to an existing user. A password in the patch
// is re-hashed before storage; plaintext never reaches the repository.
func (u *UsersUsecase) Update(ctx context.Context, id uint, patch Patch) (*entity.User, error) {
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil || patch.CPF != nil {
		email, cpf := user.Email, user.CPF
		if patch.Email != nil {
			email = *patch.Email
		}
		if patch.CPF != nil {
			cpf = *patch.CPF
		}
		taken, err := u.users.ExistsOther(ctx, email, cpf, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check uniqueness: %w", err)
		}
		if taken {
			return nil, ErrEmailOrCPFTaken
		}
	}

	if patch.Nome != nil {
		user.Nome = *patch.Nome
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.CPF != nil {
		user.CPF = *patch.CPF
	}
	if patch.Senha != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Senha), u.cost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Senha = string(hashed)
	}

	if err := u.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user permanently.
func (u *UsersUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}
