package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"petmatch_backend/internal/domain/entity"
	"petmatch_backend/internal/feature/users/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func seedUser(t *testing.T, repo *userGorm, nome, email, cpf string) *entity.User {
	t.Helper()
	u := &entity.User{Nome: nome, Email: email, CPF: cpf, Senha: "hashed_password"}
	require.NoError(t, repo.Create(context.Background(), u), "failed to seed user")
	return u
}

func TestUserGorm_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	t.Run("empty table returns empty slice", func(t *testing.T) {
		users, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("returns all rows", func(t *testing.T) {
		seedUser(t, repo, "Maria", "maria@example.com", "111.111.111-11")
		seedUser(t, repo, "Ana", "ana@example.com", "222.222.222-22")

		users, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestUserGorm_Save(t *testing.T) {
	t.Run("persists changed fields", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		user := seedUser(t, repo, "Maria", "maria@example.com", "111.111.111-11")
		user.Nome = "Maria Silva"
		require.NoError(t, repo.Save(context.Background(), user))

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", found.Nome)
	})

	t.Run("duplicate email maps to ErrEmailOrCPFTaken", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		seedUser(t, repo, "Maria", "maria@example.com", "111.111.111-11")
		other := seedUser(t, repo, "Ana", "ana@example.com", "222.222.222-22")

		other.Email = "maria@example.com"
		err := repo.Save(context.Background(), other)

		assert.ErrorIs(t, err, usecase.ErrEmailOrCPFTaken)
	})
}

func TestUserGorm_Delete(t *testing.T) {
	t.Run("deletes an existing row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		user := seedUser(t, repo, "Maria", "maria@example.com", "111.111.111-11")
		err := repo.Delete(context.Background(), user.ID)

		assert.NoError(t, err)
		_, err = repo.FindByID(context.Background(), user.ID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("missing row returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserRepository(db)

		err := repo.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserGorm_ExistsOther(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	maria := seedUser(t, repo, "Maria", "maria@example.com", "111.111.111-11")
	seedUser(t, repo, "Ana", "ana@example.com", "222.222.222-22")

	tests := []struct {
		name      string
		email     string
		cpf       string
		excludeID uint
		want      bool
	}{
		{name: "own row is excluded", email: "maria@example.com", cpf: "111.111.111-11", excludeID: maria.ID, want: false},
		{name: "another user's email", email: "ana@example.com", cpf: "111.111.111-11", excludeID: maria.ID, want: true},
		{name: "another user's cpf", email: "maria@example.com", cpf: "222.222.222-22", excludeID: maria.ID, want: true},
		{name: "free values", email: "novo@example.com", cpf: "999.999.999-99", excludeID: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taken, err := repo.ExistsOther(context.Background(), tt.email, tt.cpf, tt.excludeID)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, taken)
		})
	}
}
