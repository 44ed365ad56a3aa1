package services

import (
	"context"
	"errors"
	"testing"

	"github.com/keremavci/studentapi/internal/app/models"
	"github.com/keremavci/studentapi/internal/app/repositories"
	"github.com/keremavci/studentapi/internal/pkg/apperrors"
)

// fakeStateStore implements stateStore in memory.
type fakeStateStore struct {
	states    []*models.State
	nextID    int64
	createErr error
	getAllErr error
}

func (f *fakeStateStore) GetAll(_ context.Context) ([]*models.State, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.states, nil
}

func (f *fakeStateStore) Create(_ context.Context, name string) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	for _, s := range f.states {
		if s.StateName == name {
			return 0, repositories.ErrStateAlreadyExists
		}
	}
	f.nextID++
	f.states = append(f.states, &models.State{StateID: f.nextID, StateName: name})
	return f.nextID, nil
}

func TestCreateState(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewStateService(store)

	state, err := svc.CreateState(context.Background(), "Texas")
	if err != nil {
		t.Fatalf("CreateState() error: %v", err)
	}
	if state.StateID != 1 || state.StateName != "Texas" {
		t.Errorf("CreateState() = %+v", state)
	}
}

func TestCreateState_Duplicate(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewStateService(store)

	if _, err := svc.CreateState(context.Background(), "Texas"); err != nil {
		t.Fatalf("first CreateState() error: %v", err)
	}

	_, err := svc.CreateState(context.Background(), "Texas")
	if !errors.Is(err, repositories.ErrStateAlreadyExists) {
		t.Errorf("duplicate CreateState() error = %v, want ErrStateAlreadyExists", err)
	}
}

func TestCreateState_CaseSensitive(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewStateService(store)

	if _, err := svc.CreateState(context.Background(), "Texas"); err != nil {
		t.Fatalf("CreateState(Texas) error: %v", err)
	}
	if _, err := svc.CreateState(context.Background(), "texas"); err != nil {
		t.Errorf("CreateState(texas) error = %v, names differing only by case are distinct", err)
	}
}

func TestCreateState_Blank(t *testing.T) {
	store := &fakeStateStore{}
	svc := NewStateService(store)

	for _, name := range []string{"", "   ", "\t"} {
		if _, err := svc.CreateState(context.Background(), name); !errors.Is(err, apperrors.ErrBlankStateName) {
			t.Errorf("CreateState(%q) error = %v, want ErrBlankStateName", name, err)
		}
	}
	if len(store.states) != 0 {
		t.Errorf("blank names reached the store: %d rows", len(store.states))
	}
}

func TestGetAllStates_NilBecomesEmpty(t *testing.T) {
	svc := NewStateService(&fakeStateStore{})

	states, err := svc.GetAllStates(context.Background())
	if err != nil {
		t.Fatalf("GetAllStates() error: %v", err)
	}
	if states == nil {
		t.Error("GetAllStates() returned nil slice, want empty")
	}
	if len(states) != 0 {
		t.Errorf("GetAllStates() = %d rows, want 0", len(states))
	}
}
