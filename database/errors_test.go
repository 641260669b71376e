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
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestClassifySQLErrorMySQL(t *testing.T) {
	cases := []struct {
		number uint16
		kind   SQLErrorKind
	}{
		{1062, DuplicateKeyErr},
		{1146, NoTableErr},
		{1054, NoColumnErr},
		{1048, NotNullViolationErr},
		{9999, UnknownErr},
	}
	for _, tc := range cases {
		err := fmt.Errorf("exec: %w", &mysql.MySQLError{Number: tc.number, Message: "boom"})
		is, kind := ClassifySQLError(err)
		assert.True(t, is, "number %d", tc.number)
		assert.Equal(t, tc.kind, kind, "number %d", tc.number)
	}
}

func TestClassifySQLErrorPatterns(t *testing.T) {
	cases := []struct {
		msg  string
		kind SQLErrorKind
	}{
		{"ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)", DuplicateKeyErr},
		{"UNIQUE constraint failed: articles.id", DuplicateKeyErr},
		{"no such table: articles", NoTableErr},
		{"no such column: versions", NoColumnErr},
		{"NOT NULL constraint failed: tags.name", NotNullViolationErr},
		{"FOREIGN KEY constraint failed", ForeignKeyViolationErr},
		{"relation \"articles\" already exists", ExistTableErr},
	}
	for _, tc := range cases {
		is, kind := ClassifySQLError(errors.New(tc.msg))
		assert.True(t, is, tc.msg)
		assert.Equal(t, tc.kind, kind, tc.msg)
	}
}

func TestClassifySQLErrorUnknown(t *testing.T) {
	is, kind := ClassifySQLError(errors.New("connection refused"))
	assert.False(t, is)
	assert.Equal(t, UnknownErr, kind)

	is, _ = ClassifySQLError(nil)
	assert.False(t, is)
}
