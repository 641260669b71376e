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
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

var (
	// ErrInvalidArgument is returned when a required entity or collection
	// parameter is nil. Nothing is staged against the database in that case.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConcurrencyConflict signals a lost-update race detected by a
	// row-version mismatch. Callers decide whether to retry or merge; the
	// repository never retries on its own.
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

func nilArgError(name string) error {
	return fmt.Errorf("%w: %s must not be nil", ErrInvalidArgument, name)
}

// ConflictError carries a human-readable snapshot of the attempted and the
// currently tracked entity for diagnostics. It unwraps to
// ErrConcurrencyConflict.
type ConflictError struct {
	Attempted string
	Current   string
}

func newConflictError(attempted, current interface{}) *ConflictError {
	return &ConflictError{
		Attempted: spew.Sdump(attempted),
		Current:   spew.Sdump(current),
	}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("concurrency conflict: row version mismatch\nattempted: %scurrent: %s", e.Attempted, e.Current)
}

func (e *ConflictError) Unwrap() error { return ErrConcurrencyConflict }
