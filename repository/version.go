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
	"bytes"

	"github.com/vantris/quarry/types"
)

// Row-version stamps are opaque byte sequences compared only for equality.
// This layer stands in for a database rowversion engine: it assigns the
// initial stamp on insert and advances it on every successful write.
const versionLen = 8

func initialVersion() []byte {
	v := make([]byte, versionLen)
	v[versionLen-1] = 1
	return v
}

// nextVersion treats the stamp as a big-endian counter and returns its
// successor. A nil or empty stamp yields a fresh initial stamp.
func nextVersion(v []byte) []byte {
	if len(v) == 0 {
		return initialVersion()
	}
	next := make([]byte, len(v))
	copy(next, v)
	for i := len(next) - 1; i >= 0; i-- {
		next[i]++
		if next[i] != 0 {
			break
		}
	}
	return next
}

func versionsEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// stampNew assigns an initial row version to a versioned entity that does
// not carry one yet. Non-versioned entities are left untouched.
func stampNew(entity interface{}) {
	if v, ok := entity.(types.Versioned); ok && len(v.RowVersion()) == 0 {
		v.SetRowVersion(initialVersion())
	}
}

// stampNext advances the row version of a versioned entity. Non-versioned
// entities are left untouched.
func stampNext(entity interface{}) {
	if v, ok := entity.(types.Versioned); ok {
		v.SetRowVersion(nextVersion(v.RowVersion()))
	}
}
