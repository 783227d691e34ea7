package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogem/user-management/mapping"
	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
)

var (
	// ErrInvalidModel is returned by the generic service when a write is given no model
	ErrInvalidModel = errors.New("invalid model: model cannot be nil")
	// ErrNullArgument is returned by specialized services when a required input model is nil
	ErrNullArgument = errors.New("model cannot be nil")
	// ErrInvalidOperation is returned when persistence reports success but yields no entity
	ErrInvalidOperation = errors.New("invalid operation")
)

// BaseService translates between a repository's entities and one view model shape
type BaseService[T any, M models.ViewModel] struct {
	repo   repositories.Repository[T]
	mapper mapping.Mapper[T, M]
}

// NewBaseService creates a generic service over repo using mapper at every boundary
func NewBaseService[T any, M models.ViewModel](repo repositories.Repository[T], mapper mapping.Mapper[T, M]) *BaseService[T, M] {
	return &BaseService[T, M]{
		repo:   repo,
		mapper: mapper,
	}
}

// WithMapper returns a service sharing base's repository that speaks another model shape
func WithMapper[T any, M models.ViewModel, N models.ViewModel](base *BaseService[T, M], mapper mapping.Mapper[T, N]) *BaseService[T, N] {
	return NewBaseService(base.repo, mapper)
}

// Add maps the model to an entity, persists it and returns the stored result as a model
func (s *BaseService[T, M]) Add(ctx context.Context, model *M) (*M, error) {
	if model == nil {
		return nil, ErrInvalidModel
	}

	added, err := s.repo.Add(ctx, s.mapper.ToEntity(model))
	if err != nil {
		return nil, err
	}
	if added == nil {
		return nil, fmt.Errorf("%w: repository returned no entity", ErrInvalidOperation)
	}

	out := s.mapper.ToModel(added)
	return &out, nil
}

// GetByID retrieves an entity by ID as a model; repositories.ErrNotFound propagates
func (s *BaseService[T, M]) GetByID(ctx context.Context, id int64) (*M, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := s.mapper.ToModel(entity)
	return &out, nil
}

// GetAll retrieves every entity as a model
func (s *BaseService[T, M]) GetAll(ctx context.Context) ([]M, error) {
	entities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToModels(entities), nil
}

// Update maps the model to an entity and replaces the stored row
func (s *BaseService[T, M]) Update(ctx context.Context, model *M) error {
	if model == nil {
		return ErrInvalidModel
	}
	return s.repo.Update(ctx, s.mapper.ToEntity(model))
}

// Delete removes the entity with the given ID
func (s *BaseService[T, M]) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
