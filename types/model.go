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

package types

// Versioned is implemented by models that carry an opaque row-version stamp
// used for optimistic concurrency. The stamp is compared bytewise; its
// content has no semantic meaning beyond equality.
type Versioned interface {
	RowVersion() []byte
	SetRowVersion(v []byte)
}

// SoftDeletable is implemented by models that are logically deleted via a
// flag instead of being physically removed. The repository checks for this
// capability at deletion time.
type SoftDeletable interface {
	MarkDeleted()
	IsDeleted() bool
}

// VersionStamp is an embeddable mixin implementing Versioned.
type VersionStamp struct {
	Version []byte `bun:"version" json:"version,omitempty"`
}

// RowVersion returns the current row-version stamp.
func (m *VersionStamp) RowVersion() []byte { return m.Version }

// SetRowVersion replaces the row-version stamp.
func (m *VersionStamp) SetRowVersion(v []byte) { m.Version = v }

// SoftDeleteMark is an embeddable mixin implementing SoftDeletable.
type SoftDeleteMark struct {
	Deleted bool `bun:"deleted,default:false" json:"deleted"`
}

// MarkDeleted sets the logical-deletion flag.
func (m *SoftDeleteMark) MarkDeleted() { m.Deleted = true }

// IsDeleted reports whether the logical-deletion flag is set.
func (m *SoftDeleteMark) IsDeleted() bool { return m.Deleted }
