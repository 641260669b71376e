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
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newMemoryDB(t *testing.T) *bun.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	sqlDB, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSplitStatements(t *testing.T) {
	script := `
-- users
CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);

INSERT INTO users (name) VALUES ('a');
INSERT INTO users (name) VALUES ('b');
`
	statements := splitStatements(script)
	require.Len(t, statements, 3)
	assert.Contains(t, statements[0], "CREATE TABLE users")
	assert.Contains(t, statements[2], "('b')")
}

func TestSplitStatementsEmpty(t *testing.T) {
	assert.Empty(t, splitStatements("-- only a comment\n\n"))
}

func TestSeederRun(t *testing.T) {
	db := newMemoryDB(t)
	dir := t.TempDir()

	common := filepath.Join(dir, "common")
	envDir := filepath.Join(dir, "test")
	require.NoError(t, os.MkdirAll(common, 0o755))
	require.NoError(t, os.MkdirAll(envDir, 0o755))

	require.NoError(t, os.WriteFile(
		filepath.Join(common, "01_schema.sql"),
		[]byte("CREATE TABLE fixtures (id INTEGER PRIMARY KEY, name TEXT);"),
		0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(envDir, "01_data.sql"),
		[]byte("INSERT INTO fixtures (name) VALUES ('one');\nINSERT INTO fixtures (name) VALUES ('two');"),
		0o644))

	seeder := NewSeeder(db, nil)
	seeder.SetDir(dir)
	seeder.SetEnvironment("test")
	require.NoError(t, seeder.Run(context.Background()))

	count, err := db.NewSelect().Table("fixtures").Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSeederRunNoFiles(t *testing.T) {
	seeder := NewSeeder(newMemoryDB(t), nil)
	seeder.SetDir(t.TempDir())
	assert.NoError(t, seeder.Run(context.Background()))
}
