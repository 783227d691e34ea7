package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	"github.com/uptrace/bun"

	"github.com/blogem/user-management/models"
)

// ErrNotFound is returned when no row matches the requested id
var ErrNotFound = errors.New("entity not found")

// Repository defines the CRUD operations shared by every entity type
type Repository[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	Add(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
}

// entityPtr constrains P to *T carrying a numeric identity
type entityPtr[T any] interface {
	*T
	models.Entity
}

// baseRepository implements Repository on top of bun
type baseRepository[T any, P entityPtr[T]] struct {
	db   bun.IDB
	name string
}

// NewRepository creates a bun-backed repository for the entity type T
func NewRepository[T any, P entityPtr[T]](db bun.IDB) Repository[T] {
	return &baseRepository[T, P]{
		db:   db,
		name: reflect.TypeFor[T]().Name(),
	}
}

// GetByID retrieves an entity by ID
func (r *baseRepository[T, P]) GetByID(ctx context.Context, id int64) (*T, error) {
	entity := new(T)
	P(entity).SetID(id)

	err := r.db.NewSelect().Model(entity).WherePK().Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s with ID %d: %w", r.name, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", r.name, err)
	}

	return entity, nil
}

// GetAll retrieves all entities ordered by ID
func (r *baseRepository[T, P]) GetAll(ctx context.Context) ([]T, error) {
	entities := make([]T, 0)
	if err := r.db.NewSelect().Model(&entities).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to query %s rows: %w", r.name, err)
	}
	return entities, nil
}

// Add inserts a new entity and populates its store-assigned ID
func (r *baseRepository[T, P]) Add(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, fmt.Errorf("cannot add nil %s", r.name)
	}

	result, err := r.db.NewInsert().Model(entity).Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", r.name, err)
	}

	// Dialects without RETURNING leave the ID to LastInsertId
	if P(entity).GetID() == 0 {
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get inserted ID: %w", err)
		}
		P(entity).SetID(id)
	}

	return entity, nil
}

// Update replaces every column of the row matching the entity's ID
func (r *baseRepository[T, P]) Update(ctx context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("cannot update nil %s", r.name)
	}

	result, err := r.db.NewUpdate().Model(entity).WherePK().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.name, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s with ID %d: %w", r.name, P(entity).GetID(), ErrNotFound)
	}

	return nil
}

// Delete loads the entity by ID and removes it
func (r *baseRepository[T, P]) Delete(ctx context.Context, id int64) error {
	entity, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := r.db.NewDelete().Model(entity).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.name, err)
	}

	return nil
}
