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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextVersion(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, nextVersion(nil))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 1}, nextVersion([]byte{}))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 2}, nextVersion([]byte{0, 0, 0, 0, 0, 0, 0, 1}))
	// Carry across bytes.
	assert.Equal(t, []byte{0, 1, 0}, nextVersion([]byte{0, 0, 255}))
	// Wraparound keeps the stamp length.
	assert.Equal(t, []byte{0, 0}, nextVersion([]byte{255, 255}))
}

func TestNextVersionDoesNotMutateInput(t *testing.T) {
	v := []byte{1, 2}
	_ = nextVersion(v)
	assert.Equal(t, []byte{1, 2}, v)
}

func TestVersionsEqual(t *testing.T) {
	assert.True(t, versionsEqual([]byte{1, 2}, []byte{1, 2}))
	assert.False(t, versionsEqual([]byte{1, 2}, []byte{1, 3}))
	assert.False(t, versionsEqual([]byte{1, 2}, []byte{1, 2, 0}))
	assert.True(t, versionsEqual(nil, nil))
}
