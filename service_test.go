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

package quarry_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/vantris/quarry"
	"github.com/vantris/quarry/database"
	"github.com/vantris/quarry/repository"
	"github.com/vantris/quarry/types"
)

type Note struct {
	bun.BaseModel `bun:"table:notes"`

	ID   string `bun:"id,pk"`
	Text string `bun:"text,notnull"`
	types.VersionStamp
	types.SoftDeleteMark
}

func TestMain(m *testing.M) {
	database.RegisterModel(database.NewModelAdapter((*Note)(nil), 1))

	cfg := &database.Config{
		Connection: database.ConnectionConfig{
			Type:   "sqlite",
			DBName: ":memory:",
		},
		Migrate: database.MigrateConfig{EnableMigrateOnStartup: true},
	}
	if _, err := database.InitDB(cfg); err != nil {
		panic(err)
	}

	code := m.Run()
	_ = database.CloseDB()
	os.Exit(code)
}

func TestServiceRoundTrip(t *testing.T) {
	svc := quarry.NewService[Note]()
	ctx := context.Background()

	n1 := &Note{ID: uuid.NewString(), Text: "first"}
	n2 := &Note{ID: uuid.NewString(), Text: "second"}
	require.NoError(t, svc.Save(ctx, n1, n2))

	found, err := svc.GetMany(ctx, []any{n1.ID, n2.ID})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	got, err := svc.Get(ctx, n1.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.Text)
}

func TestServiceMergeConflict(t *testing.T) {
	svc := quarry.NewService[Note]()
	ctx := context.Background()

	n := &Note{ID: uuid.NewString(), Text: "orig"}
	require.NoError(t, svc.Save(ctx, n))

	existing, err := svc.Get(ctx, n.ID)
	require.NoError(t, err)

	stale := &Note{ID: n.ID, Text: "stale"}
	stale.SetRowVersion([]byte{42})
	assert.ErrorIs(t, svc.Merge(ctx, stale, existing), repository.ErrConcurrencyConflict)

	fresh := &Note{ID: n.ID, Text: "fresh"}
	fresh.SetRowVersion(append([]byte(nil), existing.RowVersion()...))
	require.NoError(t, svc.Merge(ctx, fresh, existing))

	got, err := svc.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.Text)
}

func TestServiceSoftRemove(t *testing.T) {
	svc := quarry.NewService[Note]()
	ctx := context.Background()

	n := &Note{ID: uuid.NewString(), Text: "doomed"}
	require.NoError(t, svc.Save(ctx, n))
	require.NoError(t, svc.Remove(ctx, n.ID))

	got, err := svc.Get(ctx, n.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsDeleted())
}

func TestServicePage(t *testing.T) {
	svc := quarry.NewService[Note]()
	ctx := context.Background()

	n := &Note{ID: uuid.NewString(), Text: "paged"}
	require.NoError(t, svc.Save(ctx, n))

	page, err := svc.Page(ctx, types.NewPageRequest(1, 5, types.NewQueryFilter("text = ?", "paged"), "id ASC"))
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "paged", page.Items[0].Text)
}
