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
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/feature"
	"github.com/uptrace/bun/schema"

	"github.com/vantris/quarry/database"
	"github.com/vantris/quarry/types"
)

type baseRepositoryImpl[T any] struct {
	db *bun.DB
}

// NewRepository returns a generic repository backed by the provided Bun DB.
// The repository holds a non-owning reference: the caller controls the
// database lifecycle and transaction boundaries.
func NewRepository[T any](db *bun.DB) Repository[T] {
	return &baseRepositoryImpl[T]{db: db}
}

func (r *baseRepositoryImpl[T]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *baseRepositoryImpl[T]) NewSelect() *bun.SelectQuery { return r.db.NewSelect() }

func (r *baseRepositoryImpl[T]) NewInsert() *bun.InsertQuery { return r.db.NewInsert() }

func (r *baseRepositoryImpl[T]) NewUpdate() *bun.UpdateQuery { return r.db.NewUpdate() }

func (r *baseRepositoryImpl[T]) NewDelete() *bun.DeleteQuery { return r.db.NewDelete() }

func collect[T any](entity ...*T) []*T {
	entities := make([]*T, len(entity))
	copy(entities, entity)
	return entities
}

func (r *baseRepositoryImpl[T]) GetOne(ctx context.Context, id any) (*T, error) {
	return getOneIn[T](ctx, r.db, id)
}

func getOneIn[T any](ctx context.Context, idb bun.IDB, id any) (*T, error) {
	if id == nil {
		return nil, nil
	}
	var entity T
	err := idb.NewSelect().Model(&entity).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T]) GetAll(ctx context.Context) ([]*T, error) {
	var entities []*T
	err := r.db.NewSelect().Model(&entities).Scan(ctx)
	return entities, err
}

func (r *baseRepositoryImpl[T]) GetMany(ctx context.Context, ids []any) ([]*T, error) {
	if ids == nil {
		return nil, nil
	}
	entities := make([]*T, 0, len(ids))
	if len(ids) == 0 {
		return entities, nil
	}
	err := r.db.NewSelect().Model(&entities).Where("id IN (?)", bun.In(ids)).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T]) First(ctx context.Context, filter *types.QueryFilter) (*T, error) {
	var entity T
	query := r.db.NewSelect().Model(&entity)
	if filter != nil {
		query = query.Where(filter.Expr, filter.Args...)
	}
	err := query.Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T]) List(ctx context.Context, filter *types.QueryFilter) ([]*T, error) {
	var entities []*T
	query := r.db.NewSelect().Model(&entities)
	if filter != nil {
		query = query.Where(filter.Expr, filter.Args...)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T]) Query(ctx context.Context, query string, args ...interface{}) ([]*T, error) {
	var entities []*T
	err := r.db.NewSelect().Model(&entities).Where(query, args...).Scan(ctx)
	return entities, err
}

func (r *baseRepositoryImpl[T]) Page(ctx context.Context, pageRequest *types.PageRequest) (*types.Pagination[T], error) {
	var entities []*T
	query := r.db.NewSelect().Model(&entities)
	if pageRequest.GetFilter() != nil {
		query = query.Where(pageRequest.GetFilter().Expr, pageRequest.GetFilter().Args...)
	}
	pagination := types.NewEmptyPagination[T](pageRequest.GetPage(), pageRequest.GetPageSize())
	total, err := query.Count(ctx)
	if err != nil || total == 0 {
		return pagination, err
	}
	err = query.
		Offset(pageRequest.GetOffset()).
		Limit(pageRequest.GetPageSize()).
		Order(pageRequest.GetOrders()...).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	pagination.Total = total
	pagination.Items = entities
	return pagination, nil
}

func (r *baseRepositoryImpl[T]) Create(ctx context.Context, entity ...*T) error {
	return createIn(ctx, r.db, entity...)
}

func createIn[T any](ctx context.Context, idb bun.IDB, entity ...*T) error {
	if len(entity) == 0 {
		return nilArgError("entity")
	}
	for _, e := range entity {
		if e == nil {
			return nilArgError("entity")
		}
		stampNew(e)
	}
	entities := collect(entity...)
	_, err := idb.NewInsert().Model(&entities).Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) Update(ctx context.Context, entity *T) error {
	return updateIn(ctx, r.db, entity)
}

func updateIn[T any](ctx context.Context, idb bun.IDB, entity *T) error {
	if entity == nil {
		return nilArgError("entity")
	}
	stampNext(entity)
	_, err := idb.NewUpdate().Model(entity).WherePK().Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) Merge(ctx context.Context, current *T, existing *T) error {
	return mergeIn(ctx, r.db, current, existing)
}

func mergeIn[T any](ctx context.Context, idb bun.IDB, current *T, existing *T) error {
	if current == nil {
		return nilArgError("current")
	}
	if existing == nil {
		return nilArgError("existing")
	}
	cv, ok := any(current).(types.Versioned)
	if !ok {
		return fmt.Errorf("%w: %T does not carry a row version", ErrInvalidArgument, current)
	}
	ev := any(existing).(types.Versioned)
	if len(cv.RowVersion()) == 0 {
		return newConflictError(current, existing)
	}
	if !versionsEqual(cv.RowVersion(), ev.RowVersion()) {
		return newConflictError(current, existing)
	}
	// Tokens match: copy the attempted values onto the tracked instance and
	// advance its stamp before writing.
	*existing = *current
	stampNext(existing)
	_, err := idb.NewUpdate().Model(existing).WherePK().Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) Delete(ctx context.Context, id any) error {
	return deleteIn[T](ctx, r.db, id)
}

func deleteIn[T any](ctx context.Context, idb bun.IDB, id any) error {
	entity, err := getOneIn[T](ctx, idb, id)
	if err != nil {
		return err
	}
	return removeIn(ctx, idb, entity)
}

// removeIn deletes a resolved entity, branching on the soft-delete
// capability. A nil entity is a no-op rather than an error.
func removeIn[T any](ctx context.Context, idb bun.IDB, entity *T) error {
	if entity == nil {
		return nil
	}
	if sd, ok := any(entity).(types.SoftDeletable); ok {
		sd.MarkDeleted()
		return updateIn(ctx, idb, entity)
	}
	_, err := idb.NewDelete().Model(entity).WherePK().Exec(ctx)
	return err
}

func (r *baseRepositoryImpl[T]) DeleteEntity(ctx context.Context, entity *T) error {
	return removeIn(ctx, r.db, entity)
}

func (r *baseRepositoryImpl[T]) DeleteMany(ctx context.Context, ids []any) error {
	if ids == nil {
		return nil
	}
	entities, err := r.GetMany(ctx, ids)
	if err != nil {
		return err
	}
	return r.DeleteEntities(ctx, entities)
}

func (r *baseRepositoryImpl[T]) DeleteEntities(ctx context.Context, entities []*T) error {
	for _, entity := range entities {
		if err := removeIn(ctx, r.db, entity); err != nil {
			return err
		}
	}
	return nil
}

func (r *baseRepositoryImpl[T]) CreateWithTx(ctx context.Context, tx *bun.Tx, entity ...*T) error {
	return createIn(ctx, tx, entity...)
}

func (r *baseRepositoryImpl[T]) UpdateWithTx(ctx context.Context, tx *bun.Tx, entity *T) error {
	return updateIn(ctx, tx, entity)
}

func (r *baseRepositoryImpl[T]) MergeWithTx(ctx context.Context, tx *bun.Tx, current *T, existing *T) error {
	return mergeIn(ctx, tx, current, existing)
}

func (r *baseRepositoryImpl[T]) DeleteWithTx(ctx context.Context, tx *bun.Tx, id any) error {
	return deleteIn[T](ctx, tx, id)
}

func (r *baseRepositoryImpl[T]) Upsert(ctx context.Context, fields []string, conflictKeys []string, entity ...*T) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: fields must not be empty", ErrInvalidArgument)
	}
	if len(entity) == 0 {
		return nilArgError("entity")
	}
	for _, e := range entity {
		if e == nil {
			return nilArgError("entity")
		}
		stampNew(e)
	}

	entities := collect(entity...)
	if r.db.HasFeature(feature.InsertOnConflict) {
		return r.upsertOnConflict(ctx, fields, conflictKeys, entities)
	}
	if r.db.HasFeature(feature.InsertOnDuplicateKey) {
		return r.upsertOnDuplicateKey(ctx, fields, entities)
	}
	return r.upsertFallback(ctx, entities)
}

// upsertOnConflict handles PostgreSQL and SQLite style upserts.
func (r *baseRepositoryImpl[T]) upsertOnConflict(ctx context.Context, fields []string, conflictKeys []string, entities []*T) error {
	if len(conflictKeys) == 0 {
		conflictKeys = []string{"id"}
	}
	assignments := make([]string, 0, len(fields))
	for _, field := range fields {
		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", bun.Ident(field), bun.Ident(field)))
	}
	_, err := r.db.NewInsert().
		Model(&entities).
		On("CONFLICT (" + strings.Join(conflictKeys, ",") + ") DO UPDATE").
		Set(strings.Join(assignments, ", ")).
		Exec(ctx)
	return err
}

// upsertOnDuplicateKey handles MySQL style upserts.
func (r *baseRepositoryImpl[T]) upsertOnDuplicateKey(ctx context.Context, fields []string, entities []*T) error {
	assignments := make([]string, 0, len(fields))
	for _, field := range fields {
		assignments = append(assignments, fmt.Sprintf("%s = VALUES(%s)", bun.Ident(field), bun.Ident(field)))
	}
	_, err := r.db.NewInsert().
		Model(&entities).
		On("DUPLICATE KEY UPDATE " + strings.Join(assignments, ", ")).
		Exec(ctx)
	return err
}

// upsertFallback inserts entities one by one, retrying duplicate-key
// failures as updates.
func (r *baseRepositoryImpl[T]) upsertFallback(ctx context.Context, entities []*T) error {
	for _, entity := range entities {
		_, err := r.db.NewInsert().Model(entity).Exec(ctx)
		if err == nil {
			continue
		}
		if is, kind := database.ClassifySQLError(err); !is || kind != database.DuplicateKeyErr {
			return err
		}
		if _, updateErr := r.db.NewUpdate().Model(entity).WherePK().Exec(ctx); updateErr != nil {
			return fmt.Errorf("upsert failed: insert error: %v, update error: %v", err, updateErr)
		}
	}
	return nil
}
