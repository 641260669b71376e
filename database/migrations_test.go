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

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs"`

	ID      int64  `bun:"id,pk,autoincrement"`
	Message string `bun:"message"`
}

func TestRunMigrations(t *testing.T) {
	db := newMemoryDB(t)
	RegisterModel(NewModelAdapter((*AuditLog)(nil), 1))

	mm := NewMigrationManager(db, nil)
	ctx := context.Background()
	require.NoError(t, mm.RunMigrations(ctx))

	// The registered model's table exists and accepts writes.
	_, err := db.NewInsert().Model(&AuditLog{Message: "hello"}).Exec(ctx)
	require.NoError(t, err)

	// The migration is recorded and a second run is idempotent.
	count, err := db.NewSelect().Model((*Migration)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, mm.RunMigrations(ctx))
	count, err = db.NewSelect().Model((*Migration)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestModelRegistryOrdering(t *testing.T) {
	registry := newModelRegistry()
	registry.Register(NewModelAdapter("second", 2))
	registry.Register(NewModelAdapter("first", 1))
	registry.Register(NewModelAdapter("third", 3))

	models := registry.Models()
	require.Len(t, models, 3)
	assert.Equal(t, "first", models[0].Instance())
	assert.Equal(t, "third", models[2].Instance())
}
