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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

const defaultSeedDir = "configs/sql"

// Seeder discovers and executes SQL files to seed initial data. Files live
// under <dir>/common and <dir>/<environment>; within a directory they run
// in lexical order, so a numeric prefix (01_users.sql) fixes ordering.
type Seeder struct {
	db          *bun.DB
	logger      Logger
	dir         string
	environment string
}

// NewSeeder creates a seeder with the default directory and environment.
func NewSeeder(db *bun.DB, logger Logger) *Seeder {
	return &Seeder{
		db:          db,
		logger:      logger,
		dir:         defaultSeedDir,
		environment: "development",
	}
}

// SetDir overrides the root directory from which SQL files are loaded.
func (s *Seeder) SetDir(dir string) {
	if dir != "" {
		s.dir = dir
	}
}

// SetEnvironment overrides the environment subdirectory.
func (s *Seeder) SetEnvironment(env string) {
	if env != "" {
		s.environment = env
	}
}

// Run executes all discovered SQL files, common ones first.
func (s *Seeder) Run(ctx context.Context) error {
	files, err := s.seedFiles()
	if err != nil {
		return fmt.Errorf("failed to discover seed files: %w", err)
	}
	if len(files) == 0 {
		if s.logger != nil {
			s.logger.Info("No seed files found", "dir", s.dir, "environment", s.environment)
		}
		return nil
	}

	for _, file := range files {
		start := time.Now()
		if err := s.executeFile(ctx, file); err != nil {
			return fmt.Errorf("seed file %s failed: %w", file, err)
		}
		if s.logger != nil {
			s.logger.Info("Seed file executed", "file", file, "duration", time.Since(start))
		}
	}

	if s.logger != nil {
		s.logger.Info("Data seeding completed", "files", len(files), "environment", s.environment)
	}
	return nil
}

func (s *Seeder) seedFiles() ([]string, error) {
	var files []string
	for _, sub := range []string{"common", s.environment} {
		dir := filepath.Join(s.dir, sub)
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var names []string
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
				continue
			}
			names = append(names, filepath.Join(dir, entry.Name()))
		}
		sort.Strings(names)
		files = append(files, names...)
	}
	return files, nil
}

func (s *Seeder) executeFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, stmt := range splitStatements(string(data)) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
}

// splitStatements cuts a script on semicolons, dropping comment lines and
// blanks. Semicolons inside string literals are not supported in seed files.
func splitStatements(script string) []string {
	var statements []string
	for _, raw := range strings.Split(script, ";") {
		var lines []string
		for _, line := range strings.Split(raw, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			lines = append(lines, trimmed)
		}
		stmt := strings.Join(lines, "\n")
		if stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
