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

package repository

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"

	"github.com/vantris/quarry/types"
)

// QueryRepository defines lookup operations for a generic entity type.
// Single-entity lookups return (nil, nil) when the id is nil or no row
// matches; multi-entity lookups return (nil, nil) only for nil input.
type QueryRepository[T any] interface {
	// GetOne returns the entity with the given key.
	GetOne(ctx context.Context, id any) (*T, error)

	// GetAll returns all entities of the type.
	GetAll(ctx context.Context) ([]*T, error)

	// GetMany returns the entities whose keys are members of ids. Result
	// order is not guaranteed and missing keys are silently absent.
	GetMany(ctx context.Context, ids []any) ([]*T, error)

	// First returns the first entity matching the filter, or nil.
	First(ctx context.Context, filter *types.QueryFilter) (*T, error)

	// List returns entities that match the provided filter.
	List(ctx context.Context, filter *types.QueryFilter) ([]*T, error)

	// Query executes a raw WHERE clause and maps the results to entities.
	Query(ctx context.Context, query string, args ...interface{}) ([]*T, error)
}

// CommandRepository defines mutating operations for a generic entity type.
// All writes are staged against the externally owned unit of work; this
// layer never commits or rolls back.
type CommandRepository[T any] interface {
	// Create stages one or more entities for insertion.
	Create(ctx context.Context, entity ...*T) error

	// Upsert inserts entities, updating the listed fields on key conflicts.
	Upsert(ctx context.Context, fields []string, conflictKeys []string, entity ...*T) error

	// Update writes the entity by primary key.
	Update(ctx context.Context, entity *T) error

	// Merge validates current's row version against existing's and, on a
	// bytewise match, copies current's field values onto the tracked
	// existing instance and writes it. A nil or mismatching version yields
	// a ConflictError.
	Merge(ctx context.Context, current *T, existing *T) error

	// Delete resolves the entity by key and deletes it. Soft-deletable
	// entities have their deleted flag set instead of being removed.
	// A missing row is a no-op.
	Delete(ctx context.Context, id any) error

	// DeleteEntity deletes the given entity by primary key; nil is a no-op.
	DeleteEntity(ctx context.Context, entity *T) error

	// DeleteMany deletes the entities matching ids; missing ids are skipped.
	DeleteMany(ctx context.Context, ids []any) error

	// DeleteEntities deletes the given entities; nil elements are skipped.
	DeleteEntities(ctx context.Context, entities []*T) error
}

// PageQueryRepository defines pagination functionality for listing entities.
type PageQueryRepository[T any] interface {
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)
}

// TransactionRepository defines mutations executed within an externally
// owned transaction.
type TransactionRepository[T any] interface {
	CreateWithTx(ctx context.Context, tx *bun.Tx, entity ...*T) error
	UpdateWithTx(ctx context.Context, tx *bun.Tx, entity *T) error
	MergeWithTx(ctx context.Context, tx *bun.Tx, current *T, existing *T) error
	DeleteWithTx(ctx context.Context, tx *bun.Tx, id any) error
}

// Repository combines queries, commands, pagination, and transactional
// operations, and exposes Bun query builders for advanced use cases.
type Repository[T any] interface {
	QueryRepository[T]
	CommandRepository[T]
	PageQueryRepository[T]
	TransactionRepository[T]
	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}
