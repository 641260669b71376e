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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvDefaults(t *testing.T) {
	t.Setenv("QUARRY_TEST_STR", "value")
	t.Setenv("QUARRY_TEST_BOOL", "true")
	t.Setenv("QUARRY_TEST_INT", "42")

	assert.Equal(t, "value", EnvDefaultString("QUARRY_TEST_STR", "def"))
	assert.Equal(t, "def", EnvDefaultString("QUARRY_TEST_UNSET", "def"))
	assert.True(t, EnvDefaultBool("QUARRY_TEST_BOOL", false))
	assert.False(t, EnvDefaultBool("QUARRY_TEST_UNSET", false))
	assert.Equal(t, 42, EnvDefaultInt("QUARRY_TEST_INT", 7))
	assert.Equal(t, 7, EnvDefaultInt("QUARRY_TEST_UNSET", 7))
}

func TestSetLoggerLevel(t *testing.T) {
	l := NewLogger("TEST")
	assert.NotNil(t, l)
	assert.True(t, SetLoggerLevel("TEST", "warn"))
	assert.False(t, SetLoggerLevel("NOPE", "warn"))

	// Same name returns the registered instance.
	assert.Same(t, l, NewLogger("TEST"))
}
