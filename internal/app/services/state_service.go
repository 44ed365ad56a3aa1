package services

import (
	"context"
	"strings"

	"github.com/keremavci/studentapi/internal/app/models"
	"github.com/keremavci/studentapi/internal/pkg/apperrors"
)

// stateStore is the repository surface the service needs.
type stateStore interface {
	GetAll(ctx context.Context) ([]*models.State, error)
	Create(ctx context.Context, name string) (int64, error)
}

// stateService implements StateService
type stateService struct {
	stateRepo stateStore
}

// NewStateService creates a new StateService
func NewStateService(stateRepo stateStore) StateService {
	return &stateService{
		stateRepo: stateRepo,
	}
}

// GetAllStates returns the state lookup rows.
func (s *stateService) GetAllStates(ctx context.Context) ([]*models.State, error) {
	states, err := s.stateRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if states == nil {
		states = []*models.State{}
	}
	return states, nil
}

// CreateState inserts a new state name. Blank or whitespace-only names are
// rejected before reaching the store. Name matching is case-sensitive.
func (s *stateService) CreateState(ctx context.Context, name string) (*models.State, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrBlankStateName
	}

	id, err := s.stateRepo.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	return &models.State{StateID: id, StateName: name}, nil
}
