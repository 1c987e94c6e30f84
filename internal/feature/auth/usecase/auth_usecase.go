package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"petmatch_backend/internal/domain/entity"
	jwtmw "petmatch_backend/internal/platform/jwt"
)

// UserRepository abstracts user persistence for the auth feature.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailOrCPFTaken when a
	// user with the same email or CPF already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user with the given email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns the user with the given ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// ExistsByEmailOrCPF reports whether any user holds the email or the CPF.
	ExistsByEmailOrCPF(ctx context.Context, email, cpf string) (bool, error)

	// HasProfile reports whether the user is linked to the named profile.
	HasProfile(ctx context.Context, userID uint, nome string) (bool, error)
}

// AuthUsecase implements registration, login and identity lookups.
type AuthUsecase struct {
	users  UserRepository
	tokens jwtmw.TokenService
	cost   int
}

// NewAuthUsecase wires the auth business logic with its dependencies.
// cost is the bcrypt cost factor from configuration.
func NewAuthUsecase(users UserRepository, tokens jwtmw.TokenService, cost int) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens, cost: cost}
}

// Register creates a user with a hashed password and issues a token.
// The email/CPF uniqueness check runs before the insert, and the insert
// itself maps duplicate-key failures to the same error, so a concurrent
// duplicate cannot slip through.
func (u *AuthUsecase) Register(ctx context.Context, nome, email, cpf, senha string) (*entity.User, string, error) {
	taken, err := u.users.ExistsByEmailOrCPF(ctx, email, cpf)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check registration: %w", err)
	}
	if taken {
		return nil, "", ErrEmailOrCPFTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), u.cost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Nome: nome, Email: email, CPF: cpf, Senha: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(jwtmw.Identity{ID: user.ID, Email: user.Email, Nome: user.Nome})
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// dummyHash keeps bcrypt comparison running when the user does not
// exist, so login timing does not leak account existence.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates a user and issues a token carrying the admin flag.
func (u *AuthUsecase) Login(ctx context.Context, email, senha string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Senha
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(senha))

	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if compareErr != nil {
		return nil, "", ErrWrongPassword
	}

	isAdmin, err := u.users.HasProfile(ctx, user.ID, entity.AdminProfile)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check admin profile: %w", err)
	}

	token, err := u.tokens.Issue(jwtmw.Identity{ID: user.ID, Email: user.Email, Nome: user.Nome, IsAdmin: isAdmin})
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Profile loads the authenticated user's row.
func (u *AuthUsecase) Profile(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// CheckAdmin loads the user and reports whether the admin profile is
// linked to it. Admin status is a profile membership, not a fixed email.
func (u *AuthUsecase) CheckAdmin(ctx context.Context, id uint) (*entity.User, bool, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	isAdmin, err := u.users.HasProfile(ctx, user.ID, entity.AdminProfile)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check admin profile: %w", err)
	}
	return user, isAdmin, nil
}
