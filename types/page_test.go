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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalization(t *testing.T) {
	p := NewDefaultPageRequest(0, 0)
	assert.Equal(t, 1, p.GetPage())
	assert.Equal(t, defaultPageSize, p.GetPageSize())
	assert.Equal(t, 0, p.GetOffset())

	p = NewPageRequest(3, 20, nil, "id DESC")
	assert.Equal(t, 40, p.GetOffset())
	assert.Equal(t, []string{"id DESC"}, p.GetOrders())
	assert.Nil(t, p.GetFilter())
}

func TestVersionStampMixin(t *testing.T) {
	var m VersionStamp
	assert.Nil(t, m.RowVersion())
	m.SetRowVersion([]byte{1, 2})
	assert.Equal(t, []byte{1, 2}, m.RowVersion())
}

func TestSoftDeleteMarkMixin(t *testing.T) {
	var m SoftDeleteMark
	assert.False(t, m.IsDeleted())
	m.MarkDeleted()
	assert.True(t, m.IsDeleted())
}
