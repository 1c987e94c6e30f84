package usecase

import (
	"context"
	"fmt"
	"time"

	"petmatch_backend/internal/domain/entity"
)

// AdoptionRepository abstracts adoption-record persistence.
type AdoptionRepository interface {
	// FindAll returns every record with user and animal preloaded,
	// newest rescue first.
	FindAll(ctx context.Context) ([]entity.AdoptionRecord, error)
	// FindByID returns one record with user and animal preloaded, or
	// ErrRecordNotFound.
	FindByID(ctx context.Context, id uint) (*entity.AdoptionRecord, error)
	// FindByUser returns a user's records with the animal preloaded,
	// newest rescue first.
	FindByUser(ctx context.Context, userID uint) ([]entity.AdoptionRecord, error)
	Create(ctx context.Context, rec *entity.AdoptionRecord) error
	// MarkAdopted sets the adoption date, acting user and optionally the
	// notes in a single conditional update guarded by data_adocao being
	// null. Returns ErrAlreadyAdopted when the guard fails on an
	// existing row and ErrRecordNotFound when the row is absent, so two
	// concurrent adoptions can never both succeed.
	MarkAdopted(ctx context.Context, id uint, date time.Time, observacoes *string, userID uint) error
	// UpdateNotes replaces the record's notes, or ErrRecordNotFound.
	UpdateNotes(ctx context.Context, id uint, observacoes string) error
	// Delete removes the record, or ErrRecordNotFound.
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	// CountConcluded counts records whose adoption date is set.
	CountConcluded(ctx context.Context) (int64, error)
}

// AnimalStore is the slice of animal persistence the adoption lifecycle
// needs: existence checks, status transitions and the availability count.
type AnimalStore interface {
	// FindByID returns ErrAnimalNotFound when no row matches.
	FindByID(ctx context.Context, id uint) (*entity.Animal, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	CountAvailable(ctx context.Context) (int64, error)
}

// RescueInput carries the fields of a rescue registration. UserID is
// the authenticated identity recorded as the responsible user.
type RescueInput struct {
	UserID      uint
	AnimalID    uint
	DataResgate time.Time
	Observacoes string
}

// AdoptionInput carries the fields of an adoption registration.
// Observacoes is optional; nil keeps the notes written at rescue time.
type AdoptionInput struct {
	UserID      uint
	RecordID    uint
	DataAdocao  time.Time
	Observacoes *string
}

// Statistics summarizes the adoption history.
type Statistics struct {
	TotalAdocoes       int64  `json:"totalAdocoes"`
	AdocoesConcluidas  int64  `json:"adocoesConcluidas"`
	AnimaisDisponiveis int64  `json:"animaisDisponiveis"`
	TaxaAdocao         string `json:"taxaAdocao"`
}

// AdoptionsUsecase implements the rescue-to-adoption lifecycle.
type AdoptionsUsecase struct {
	records AdoptionRepository
	animals AnimalStore
}

// NewAdoptionsUsecase wires the adoptions business logic.
func NewAdoptionsUsecase(records AdoptionRepository, animals AnimalStore) *AdoptionsUsecase {
	return &AdoptionsUsecase{records: records, animals: animals}
}

// List returns the full adoption history.
func (u *AdoptionsUsecase) List(ctx context.Context) ([]entity.AdoptionRecord, error) {
	return u.records.FindAll(ctx)
}

// Get returns one adoption record.
func (u *AdoptionsUsecase) Get(ctx context.Context, id uint) (*entity.AdoptionRecord, error) {
	return u.records.FindByID(ctx, id)
}

// ListByUser returns the records a user is responsible for.
func (u *AdoptionsUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.AdoptionRecord, error) {
	return u.records.FindByUser(ctx, userID)
}

// RegisterRescue creates an adoption record for an existing animal and
// marks the animal available for adoption.
func (u *AdoptionsUsecase) RegisterRescue(ctx context.Context, in RescueInput) (*entity.AdoptionRecord, error) {
	if _, err := u.animals.FindByID(ctx, in.AnimalID); err != nil {
		return nil, err
	}

	rec := &entity.AdoptionRecord{
		DataResgate: in.DataResgate,
		Observacoes: in.Observacoes,
		UserID:      in.UserID,
		AnimalID:    in.AnimalID,
	}
	if err := u.records.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create rescue record: %w", err)
	}

	if err := u.animals.UpdateStatus(ctx, in.AnimalID, entity.StatusAvailable); err != nil {
		return nil, fmt.Errorf("failed to update animal status: %w", err)
	}
	return rec, nil
}

// RegisterAdoption concludes an open rescue record: sets the adoption
// date and acting user, then flips the animal to adopted. The write is
// a conditional update, so a record can only be concluded once.
func (u *AdoptionsUsecase) RegisterAdoption(ctx context.Context, in AdoptionInput) (*entity.AdoptionRecord, error) {
	rec, err := u.records.FindByID(ctx, in.RecordID)
	if err != nil {
		return nil, err
	}
	if rec.Concluded() {
		return nil, ErrAlreadyAdopted
	}

	if err := u.records.MarkAdopted(ctx, in.RecordID, in.DataAdocao, in.Observacoes, in.UserID); err != nil {
		return nil, err
	}

	if err := u.animals.UpdateStatus(ctx, rec.AnimalID, entity.StatusAdopted); err != nil {
		return nil, fmt.Errorf("failed to update animal status: %w", err)
	}

	return u.records.FindByID(ctx, in.RecordID)
}

// UpdateNotes replaces a record's notes and returns the updated record.
func (u *AdoptionsUsecase) UpdateNotes(ctx context.Context, id uint, observacoes string) (*entity.AdoptionRecord, error) {
	if err := u.records.UpdateNotes(ctx, id, observacoes); err != nil {
		return nil, err
	}
	return u.records.FindByID(ctx, id)
}

// Delete removes a record and returns the deleted row.
func (u *AdoptionsUsecase) Delete(ctx context.Context, id uint) (*entity.AdoptionRecord, error) {
	rec, err := u.records.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.records.Delete(ctx, id); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetStatistics computes the adoption totals and the adoption rate.
// The rate is concluded/total*100 with two decimals, or "0" when there
// are no records at all.
func (u *AdoptionsUsecase) GetStatistics(ctx context.Context) (*Statistics, error) {
	total, err := u.records.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}
	concluded, err := u.records.CountConcluded(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count concluded records: %w", err)
	}
	available, err := u.animals.CountAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count available animals: %w", err)
	}

	rate := "0"
	if total > 0 {
		rate = fmt.Sprintf("%.2f", float64(concluded)/float64(total)*100)
	}

	return &Statistics{
		TotalAdocoes:       total,
		AdocoesConcluidas:  concluded,
		AnimaisDisponiveis: available,
		TaxaAdocao:         rate,
	}, nil
}
