package usecase

import (
	"context"
	"strings"
	"time"

	"petmatch_backend/internal/domain/entity"
)

// AnimalRepository abstracts animal persistence. The same gorm adapter
// also backs the adoptions feature's animal store.
type AnimalRepository interface {
	FindAll(ctx context.Context) ([]entity.Animal, error)
	// FindByID returns ErrAnimalNotFound when no row matches.
	FindByID(ctx context.Context, id uint) (*entity.Animal, error)
	// FindByStatus returns animals whose status matches exactly.
	FindByStatus(ctx context.Context, status string) ([]entity.Animal, error)
	// SearchBySpecies matches especie case-insensitively by substring.
	SearchBySpecies(ctx context.Context, especie string) ([]entity.Animal, error)
	Create(ctx context.Context, animal *entity.Animal) error
	Save(ctx context.Context, animal *entity.Animal) error
	// Delete removes the animal, returning ErrAnimalNotFound when absent.
	Delete(ctx context.Context, id uint) error
}

// NewAnimal carries the fields of an animal registration.
type NewAnimal struct {
	Nome       string
	Especie    string
	Faca       string
	Sexo       string
	Nascimento time.Time
	Porte      string
	Saude      string
	Status     string
	Foto       string
}

// Patch is the explicit update payload for an animal.
type Patch struct {
	Nome       *string
	Especie    *string
	Faca       *string
	Sexo       *string
	Nascimento *time.Time
	Porte      *string
	Saude      *string
	Status     *string
	Foto       *string
}

// Empty reports whether the patch carries no fields.
func (p Patch) Empty() bool {
	return p.Nome == nil && p.Especie == nil && p.Faca == nil && p.Sexo == nil &&
		p.Nascimento == nil && p.Porte == nil && p.Saude == nil && p.Status == nil && p.Foto == nil
}

// AnimalsUsecase implements animal CRUD and the filter lookups.
type AnimalsUsecase struct {
	animals AnimalRepository
}

// NewAnimalsUsecase wires the animals business logic.
func NewAnimalsUsecase(animals AnimalRepository) *AnimalsUsecase {
	return &AnimalsUsecase{animals: animals}
}

// validPhoto accepts an empty photo or a base64 data URL.
func validPhoto(foto string) bool {
	return foto == "" || strings.HasPrefix(foto, "data:image/")
}

// List returns all animals.
func (u *AnimalsUsecase) List(ctx context.Context) ([]entity.Animal, error) {
	return u.animals.FindAll(ctx)
}

// ListAvailable returns the animals currently up for adoption.
func (u *AnimalsUsecase) ListAvailable(ctx context.Context) ([]entity.Animal, error) {
	return u.animals.FindByStatus(ctx, entity.StatusAvailable)
}

// ListByStatus returns the animals with exactly the given status.
func (u *AnimalsUsecase) ListByStatus(ctx context.Context, status string) ([]entity.Animal, error) {
	return u.animals.FindByStatus(ctx, status)
}

// SearchBySpecies returns animals whose especie contains the given
// term, case-insensitively.
func (u *AnimalsUsecase) SearchBySpecies(ctx context.Context, especie string) ([]entity.Animal, error) {
	return u.animals.SearchBySpecies(ctx, especie)
}

// Get returns one animal by ID.
func (u *AnimalsUsecase) Get(ctx context.Context, id uint) (*entity.Animal, error) {
	return u.animals.FindByID(ctx, id)
}

// Create registers a new animal. Status defaults to available.
func (u *AnimalsUsecase) Create(ctx context.Context, in NewAnimal) (*entity.Animal, error) {
	if !validPhoto(in.Foto) {
		return nil, ErrInvalidPhoto
	}
	if in.Status == "" {
		in.Status = entity.StatusAvailable
	}

	animal := &entity.Animal{
		Nome:       in.Nome,
		Especie:    in.Especie,
		Faca:       in.Faca,
		Sexo:       in.Sexo,
		Nascimento: in.Nascimento,
		Porte:      in.Porte,
		Saude:      in.Saude,
		Status:     in.Status,
		Foto:       in.Foto,
	}
	if err := u.animals.Create(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// Update applies a patch to an existing animal.
func (u *AnimalsUsecase) Update(ctx context.Context, id uint, patch Patch) (*entity.Animal, error) {
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}
	if patch.Foto != nil && !validPhoto(*patch.Foto) {
		return nil, ErrInvalidPhoto
	}

	animal, err := u.animals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Nome != nil {
		animal.Nome = *patch.Nome
	}
	if patch.Especie != nil {
		animal.Especie = *patch.Especie
	}
	if patch.Faca != nil {
		animal.Faca = *patch.Faca
	}
	if patch.Sexo != nil {
		animal.Sexo = *patch.Sexo
	}
	if patch.Nascimento != nil {
		animal.Nascimento = *patch.Nascimento
	}
	if patch.Porte != nil {
		animal.Porte = *patch.Porte
	}
	if patch.Saude != nil {
		animal.Saude = *patch.Saude
	}
	if patch.Status != nil {
		animal.Status = *patch.Status
	}
	if patch.Foto != nil {
		animal.Foto = *patch.Foto
	}

	if err := u.animals.Save(ctx, animal); err != nil {
		return nil, err
	}
	return animal, nil
}

// Delete removes an animal and returns the deleted row.
func (u *AnimalsUsecase) Delete(ctx context.Context, id uint) (*entity.Animal, error) {
	animal, err := u.animals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.animals.Delete(ctx, id); err != nil {
		return nil, err
	}
	return animal, nil
}
