/*
 * Copyright 2026 vantris.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package quarry exposes a generic data-access service over the global
// database connection, with soft-delete and optimistic-concurrency support
// provided by the underlying repository.
package quarry

import (
	"context"
	"sync"

	"github.com/uptrace/bun"

	"github.com/vantris/quarry/database"
	"github.com/vantris/quarry/repository"
	"github.com/vantris/quarry/types"
)

// Service is a thin facade over the generic repository for an entity type.
type Service[T any] interface {
	// Get returns a single entity by its identifier, or nil when the id is
	// nil or no row matches.
	Get(ctx context.Context, id any) (*T, error)

	// GetMany returns the entities whose identifiers are members of ids.
	GetMany(ctx context.Context, ids []any) ([]*T, error)

	// All returns all entities.
	All(ctx context.Context) ([]*T, error)

	// First returns the first entity matching the filter, or nil.
	First(ctx context.Context, filter *types.QueryFilter) (*T, error)

	// List returns entities that match the provided filter.
	List(ctx context.Context, filter *types.QueryFilter) ([]*T, error)

	// Query executes a raw WHERE clause and maps the results to entities.
	Query(ctx context.Context, query string, args ...interface{}) ([]*T, error)

	// Page returns a paginated list of entities.
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)

	// Save inserts one or more new entities.
	Save(ctx context.Context, model ...*T) error

	// SaveOrUpdate upserts entities based on fields and conflict keys.
	SaveOrUpdate(ctx context.Context, fields []string, conflictKeys []string, model ...*T) error

	// Update modifies an existing entity.
	Update(ctx context.Context, model *T) error

	// Merge validates current's row version against existing's and copies
	// its values onto the tracked instance on success.
	Merge(ctx context.Context, current *T, existing *T) error

	// Remove deletes an entity by its identifier, honoring soft delete.
	Remove(ctx context.Context, id any) error

	// RemoveMany deletes entities by identifier, skipping missing ones.
	RemoveMany(ctx context.Context, ids []any) error

	// RemoveEntity deletes the given entity, honoring soft delete.
	RemoveEntity(ctx context.Context, model *T) error

	// RemoveEntities deletes the given entities, honoring soft delete.
	RemoveEntities(ctx context.Context, models []*T) error

	// SaveWithTx inserts entities within an existing transaction.
	SaveWithTx(ctx context.Context, tx *bun.Tx, model ...*T) error

	// UpdateWithTx updates an entity within a transaction.
	UpdateWithTx(ctx context.Context, tx *bun.Tx, model *T) error

	// MergeWithTx merges an entity within a transaction.
	MergeWithTx(ctx context.Context, tx *bun.Tx, current *T, existing *T) error

	// RemoveWithTx deletes an entity by identifier within a transaction.
	RemoveWithTx(ctx context.Context, tx *bun.Tx, id any) error

	// SelectBuilder returns a Bun select query builder for the entity.
	SelectBuilder() *bun.SelectQuery

	// InsertBuilder returns a Bun insert query builder for the entity.
	InsertBuilder() *bun.InsertQuery

	// UpdateBuilder returns a Bun update query builder for the entity.
	UpdateBuilder() *bun.UpdateQuery

	// DeleteBuilder returns a Bun delete query builder for the entity.
	DeleteBuilder() *bun.DeleteQuery
}

type baseServiceImpl[T any] struct {
	repo repository.Repository[T]
	once sync.Once
}

// NewService returns a default Service implementation using the generic
// repository backed by the global database connection.
func NewService[T any]() Service[T] {
	return &baseServiceImpl[T]{}
}

func (s *baseServiceImpl[T]) baseRepo() repository.Repository[T] {
	s.once.Do(func() { s.repo = repository.NewRepository[T](database.GetDB()) })
	return s.repo
}

func (s *baseServiceImpl[T]) Get(ctx context.Context, id any) (*T, error) {
	return s.baseRepo().GetOne(ctx, id)
}

func (s *baseServiceImpl[T]) GetMany(ctx context.Context, ids []any) ([]*T, error) {
	return s.baseRepo().GetMany(ctx, ids)
}

func (s *baseServiceImpl[T]) All(ctx context.Context) ([]*T, error) {
	return s.baseRepo().GetAll(ctx)
}

func (s *baseServiceImpl[T]) First(ctx context.Context, filter *types.QueryFilter) (*T, error) {
	return s.baseRepo().First(ctx, filter)
}

func (s *baseServiceImpl[T]) List(ctx context.Context, filter *types.QueryFilter) ([]*T, error) {
	return s.baseRepo().List(ctx, filter)
}

func (s *baseServiceImpl[T]) Query(ctx context.Context, query string, args ...interface{}) ([]*T, error) {
	return s.baseRepo().Query(ctx, query, args...)
}

func (s *baseServiceImpl[T]) Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error) {
	return s.baseRepo().Page(ctx, page)
}

func (s *baseServiceImpl[T]) Save(ctx context.Context, model ...*T) error {
	return s.baseRepo().Create(ctx, model...)
}

func (s *baseServiceImpl[T]) SaveOrUpdate(ctx context.Context, fields []string, conflictKeys []string, model ...*T) error {
	return s.baseRepo().Upsert(ctx, fields, conflictKeys, model...)
}

func (s *baseServiceImpl[T]) Update(ctx context.Context, model *T) error {
	return s.baseRepo().Update(ctx, model)
}

func (s *baseServiceImpl[T]) Merge(ctx context.Context, current *T, existing *T) error {
	return s.baseRepo().Merge(ctx, current, existing)
}

func (s *baseServiceImpl[T]) Remove(ctx context.Context, id any) error {
	return s.baseRepo().Delete(ctx, id)
}

func (s *baseServiceImpl[T]) RemoveMany(ctx context.Context, ids []any) error {
	return s.baseRepo().DeleteMany(ctx, ids)
}

func (s *baseServiceImpl[T]) RemoveEntity(ctx context.Context, model *T) error {
	return s.baseRepo().DeleteEntity(ctx, model)
}

func (s *baseServiceImpl[T]) RemoveEntities(ctx context.Context, models []*T) error {
	return s.baseRepo().DeleteEntities(ctx, models)
}

func (s *baseServiceImpl[T]) SaveWithTx(ctx context.Context, tx *bun.Tx, model ...*T) error {
	return s.baseRepo().CreateWithTx(ctx, tx, model...)
}

func (s *baseServiceImpl[T]) UpdateWithTx(ctx context.Context, tx *bun.Tx, model *T) error {
	return s.baseRepo().UpdateWithTx(ctx, tx, model)
}

func (s *baseServiceImpl[T]) MergeWithTx(ctx context.Context, tx *bun.Tx, current *T, existing *T) error {
	return s.baseRepo().MergeWithTx(ctx, tx, current, existing)
}

func (s *baseServiceImpl[T]) RemoveWithTx(ctx context.Context, tx *bun.Tx, id any) error {
	return s.baseRepo().DeleteWithTx(ctx, tx, id)
}

func (s *baseServiceImpl[T]) SelectBuilder() *bun.SelectQuery {
	return s.baseRepo().NewSelect()
}

func (s *baseServiceImpl[T]) InsertBuilder() *bun.InsertQuery {
	return s.baseRepo().NewInsert()
}

func (s *baseServiceImpl[T]) UpdateBuilder() *bun.UpdateQuery {
	return s.baseRepo().NewUpdate()
}

func (s *baseServiceImpl[T]) DeleteBuilder() *bun.DeleteQuery {
	return s.baseRepo().NewDelete()
}
