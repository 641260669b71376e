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
	"strings"

	"github.com/go-sql-driver/mysql"
)

// SQLErrorKind classifies driver errors into dialect-independent categories.
type SQLErrorKind int

const (
	UnknownErr SQLErrorKind = iota
	NoRowsErr
	NoTableErr
	ExistTableErr
	NoColumnErr
	ExistColumnErr
	NoIndexErr
	ExistIndexErr
	DuplicateKeyErr
	NotNullViolationErr
	ForeignKeyViolationErr
	CheckConstraintViolationErr
	DataTruncatedErr
	InvalidTypeCastErr
)

// MySQL server error numbers; postgres and sqlite are matched on SQLSTATE
// codes and message fragments below.
var mysqlErrorKinds = map[uint16]SQLErrorKind{
	1050: ExistTableErr,
	1054: NoColumnErr,
	1060: ExistColumnErr,
	1061: ExistIndexErr,
	1062: DuplicateKeyErr,
	1048: NotNullViolationErr,
	1091: NoIndexErr,
	1146: NoTableErr,
	1216: ForeignKeyViolationErr,
	1217: ForeignKeyViolationErr,
	1265: DataTruncatedErr,
	3819: CheckConstraintViolationErr,
}

type sqlErrorPattern struct {
	kind     SQLErrorKind
	patterns []string
}

var sqlErrorPatterns = []sqlErrorPattern{
	{NoColumnErr, []string{"sqlstate 42703", "undefined column", "no such column"}},
	{NoTableErr, []string{"sqlstate 42p01", "undefined table", "no such table"}},
	{DuplicateKeyErr, []string{"sqlstate 23505", "duplicate key value", "unique constraint failed"}},
	{NotNullViolationErr, []string{"sqlstate 23502", "not-null constraint", "not null constraint failed"}},
	{ForeignKeyViolationErr, []string{"sqlstate 23503", "foreign key violation", "foreign key constraint failed"}},
	{CheckConstraintViolationErr, []string{"sqlstate 23514", "check constraint"}},
	{DataTruncatedErr, []string{"sqlstate 22001", "string data right truncation", "data truncated"}},
	{InvalidTypeCastErr, []string{"sqlstate 42804", "datatype mismatch"}},
}

// ClassifySQLError reports whether err is a recognizable SQL error and, if
// so, its dialect-independent kind.
func ClassifySQLError(err error) (bool, SQLErrorKind) {
	if err == nil {
		return false, UnknownErr
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		if kind, ok := mysqlErrorKinds[mysqlErr.Number]; ok {
			return true, kind
		}
		return true, UnknownErr
	}

	s := strings.ToLower(err.Error())
	for _, p := range sqlErrorPatterns {
		for _, pattern := range p.patterns {
			if strings.Contains(s, pattern) {
				return true, p.kind
			}
		}
	}
	if strings.Contains(s, "already exists") {
		if strings.Contains(s, "index") {
			return true, ExistIndexErr
		}
		if strings.Contains(s, "table") || strings.Contains(s, "relation") {
			return true, ExistTableErr
		}
	}
	if strings.Contains(s, "does not exist") && strings.Contains(s, "index") {
		return true, NoIndexErr
	}
	return false, UnknownErr
}
