package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petmatch_backend/internal/domain/entity"
)

// mockAdoptionRepository simulates adoption-record persistence during testing.
type mockAdoptionRepository struct {
	FindAllFunc        func(ctx context.Context) ([]entity.AdoptionRecord, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.AdoptionRecord, error)
	FindByUserFunc     func(ctx context.Context, userID uint) ([]entity.AdoptionRecord, error)
	CreateFunc         func(ctx context.Context, rec *entity.AdoptionRecord) error
	MarkAdoptedFunc    func(ctx context.Context, id uint, date time.Time, observacoes *string, userID uint) error
	UpdateNotesFunc    func(ctx context.Context, id uint, observacoes string) error
	DeleteFunc         func(ctx context.Context, id uint) error
	CountFunc          func(ctx context.Context) (int64, error)
	CountConcludedFunc func(ctx context.Context) (int64, error)
}

func (m *mockAdoptionRepository) FindAll(ctx context.Context) ([]entity.AdoptionRecord, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdoptionRepository) FindByID(ctx context.Context, id uint) (*entity.AdoptionRecord, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrRecordNotFound
}

func (m *mockAdoptionRepository) FindByUser(ctx context.Context, userID uint) ([]entity.AdoptionRecord, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAdoptionRepository) Create(ctx context.Context, rec *entity.AdoptionRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rec)
	}
	rec.ID = 1
	return nil
}

func (m *mockAdoptionRepository) MarkAdopted(ctx context.Context, id uint, date time.Time, observacoes *string, userID uint) error {
	if m.MarkAdoptedFunc != nil {
		return m.MarkAdoptedFunc(ctx, id, date, observacoes, userID)
	}
	return nil
}

func (m *mockAdoptionRepository) UpdateNotes(ctx context.Context, id uint, observacoes string) error {
	if m.UpdateNotesFunc != nil {
		return m.UpdateNotesFunc(ctx, id, observacoes)
	}
	return nil
}

func (m *mockAdoptionRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockAdoptionRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockAdoptionRepository) CountConcluded(ctx context.Context) (int64, error) {
	if m.CountConcludedFunc != nil {
		return m.CountConcludedFunc(ctx)
	}
	return 0, nil
}

// mockAnimalStore simulates the animal-side persistence during testing.
type mockAnimalStore struct {
	FindByIDFunc       func(ctx context.Context, id uint) (*entity.Animal, error)
	UpdateStatusFunc   func(ctx context.Context, id uint, status string) error
	CountAvailableFunc func(ctx context.Context) (int64, error)
}

func (m *mockAnimalStore) FindByID(ctx context.Context, id uint) (*entity.Animal, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &entity.Animal{ID: id, Nome: "Rex", Status: entity.StatusAvailable}, nil
}

func (m *mockAnimalStore) UpdateStatus(ctx context.Context, id uint, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockAnimalStore) CountAvailable(ctx context.Context) (int64, error) {
	if m.CountAvailableFunc != nil {
		return m.CountAvailableFunc(ctx)
	}
	return 0, nil
}

func TestAdoptionsUsecase_RegisterRescue(t *testing.T) {
	t.Run("creates the record and makes the animal available", func(t *testing.T) {
		var statusSet string
		animals := &mockAnimalStore{
			UpdateStatusFunc: func(ctx context.Context, id uint, status string) error {
				statusSet = status
				return nil
			},
		}
		uc := NewAdoptionsUsecase(&mockAdoptionRepository{}, animals)

		rec, err := uc.RegisterRescue(context.Background(), RescueInput{
			UserID:      4,
			AnimalID:    7,
			DataResgate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			Observacoes: "encontrado na rua",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(4), rec.UserID)
		assert.Equal(t, uint(7), rec.AnimalID)
		assert.Nil(t, rec.DataAdocao, "a fresh rescue is not concluded")
		assert.Equal(t, entity.StatusAvailable, statusSet)
	})

	t.Run("unknown animal", func(t *testing.T) {
		animals := &mockAnimalStore{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.Animal, error) {
				return nil, ErrAnimalNotFound
			},
		}
		records := &mockAdoptionRepository{
			CreateFunc: func(ctx context.Context, rec *entity.AdoptionRecord) error {
				t.Error("Create should not run for a missing animal")
				return nil
			},
		}
		uc := NewAdoptionsUsecase(records, animals)

		_, err := uc.RegisterRescue(context.Background(), RescueInput{AnimalID: 999})

		assert.ErrorIs(t, err, ErrAnimalNotFound)
	})
}

func TestAdoptionsUsecase_RegisterAdoption(t *testing.T) {
	open := func() *entity.AdoptionRecord {
		return &entity.AdoptionRecord{ID: 1, AnimalID: 7, UserID: 4, DataResgate: time.Now()}
	}

	t.Run("concludes the record and flips the animal", func(t *testing.T) {
		date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		adopted := open()
		adopted.DataAdocao = &date

		calls := 0
		records := &mockAdoptionRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.AdoptionRecord, error) {
				calls++
				if calls == 1 {
					return open(), nil
				}
				return adopted, nil
			},
			MarkAdoptedFunc: func(ctx context.Context, id uint, d time.Time, observacoes *string, userID uint) error {
				assert.Equal(t, uint(1), id)
				assert.Equal(t, date, d)
				assert.Equal(t, uint(9), userID, "acting user must be recorded")
				return nil
			},
		}
		var statusSet string
		animals := &mockAnimalStore{
			UpdateStatusFunc: func(ctx context.Context, id uint, status string) error {
				assert.Equal(t, uint(7), id)
				statusSet = status
				return nil
			},
		}
		uc := NewAdoptionsUsecase(records, animals)

		rec, err := uc.RegisterAdoption(context.Background(), AdoptionInput{
			UserID:     9,
			RecordID:   1,
			DataAdocao: date,
		})

		require.NoError(t, err)
		assert.True(t, rec.Concluded())
		assert.Equal(t, entity.StatusAdopted, statusSet)
	})

	t.Run("already concluded record", func(t *testing.T) {
		date := time.Now()
		concluded := open()
		concluded.DataAdocao = &date

		records := &mockAdoptionRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.AdoptionRecord, error) {
				return concluded, nil
			},
			MarkAdoptedFunc: func(ctx context.Context, id uint, d time.Time, observacoes *string, userID uint) error {
				t.Error("MarkAdopted should not run for a concluded record")
				return nil
			},
		}
		uc := NewAdoptionsUsecase(records, &mockAnimalStore{})

		_, err := uc.RegisterAdoption(context.Background(), AdoptionInput{RecordID: 1, DataAdocao: time.Now()})

		assert.ErrorIs(t, err, ErrAlreadyAdopted)
	})

	t.Run("concurrent adoption loses on the conditional update", func(t *testing.T) {
		records := &mockAdoptionRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.AdoptionRecord, error) {
				return open(), nil
			},
			MarkAdoptedFunc: func(ctx context.Context, id uint, d time.Time, observacoes *string, userID uint) error {
				return ErrAlreadyAdopted
			},
		}
		var statusTouched bool
		animals := &mockAnimalStore{
			UpdateStatusFunc: func(ctx context.Context, id uint, status string) error {
				statusTouched = true
				return nil
			},
		}
		uc := NewAdoptionsUsecase(records, animals)

		_, err := uc.RegisterAdoption(context.Background(), AdoptionInput{RecordID: 1, DataAdocao: time.Now()})

		assert.ErrorIs(t, err, ErrAlreadyAdopted)
		assert.False(t, statusTouched, "losing update must not touch the animal")
	})

	t.Run("missing record", func(t *testing.T) {
		uc := NewAdoptionsUsecase(&mockAdoptionRepository{}, &mockAnimalStore{})

		_, err := uc.RegisterAdoption(context.Background(), AdoptionInput{RecordID: 999, DataAdocao: time.Now()})

		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestAdoptionsUsecase_GetStatistics(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		concluded int64
		available int64
		wantRate  string
	}{
		{name: "empty history", total: 0, concluded: 0, available: 0, wantRate: "0"},
		{name: "partial conclusion", total: 10, concluded: 4, available: 6, wantRate: "40.00"},
		{name: "all concluded", total: 3, concluded: 3, available: 0, wantRate: "100.00"},
		{name: "one third", total: 3, concluded: 1, available: 2, wantRate: "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := &mockAdoptionRepository{
				CountFunc:          func(ctx context.Context) (int64, error) { return tt.total, nil },
				CountConcludedFunc: func(ctx context.Context) (int64, error) { return tt.concluded, nil },
			}
			animals := &mockAnimalStore{
				CountAvailableFunc: func(ctx context.Context) (int64, error) { return tt.available, nil },
			}
			uc := NewAdoptionsUsecase(records, animals)

			stats, err := uc.GetStatistics(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.total, stats.TotalAdocoes)
			assert.Equal(t, tt.concluded, stats.AdocoesConcluidas)
			assert.Equal(t, tt.available, stats.AnimaisDisponiveis)
			assert.Equal(t, tt.wantRate, stats.TaxaAdocao)
		})
	}
}

func TestAdoptionsUsecase_Delete(t *testing.T) {
	t.Run("returns the deleted row", func(t *testing.T) {
		rec := &entity.AdoptionRecord{ID: 5, AnimalID: 7}
		records := &mockAdoptionRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.AdoptionRecord, error) {
				return rec, nil
			},
		}
		uc := NewAdoptionsUsecase(records, &mockAnimalStore{})

		got, err := uc.Delete(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, rec, got)
	})

	t.Run("missing record", func(t *testing.T) {
		uc := NewAdoptionsUsecase(&mockAdoptionRepository{}, &mockAnimalStore{})

		_, err := uc.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestAdoptionsUsecase_UpdateNotes(t *testing.T) {
	t.Run("missing record", func(t *testing.T) {
		records := &mockAdoptionRepository{
			UpdateNotesFunc: func(ctx context.Context, id uint, observacoes string) error {
				return ErrRecordNotFound
			},
		}
		uc := NewAdoptionsUsecase(records, &mockAnimalStore{})

		_, err := uc.UpdateNotes(context.Background(), 999, "x")

		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}
