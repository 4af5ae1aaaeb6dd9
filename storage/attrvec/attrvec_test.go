// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package attrvec

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/storage/ids"
)

func TestWidthForCardinality(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{0, 1}, {1, 1}, {1 << 8, 1},
		{1<<8 + 1, 2}, {1 << 16, 2},
		{1<<16 + 1, 4}, {1 << 20, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WidthForCardinality(tc.size))
	}
}

func TestNewPicksMatchingLaneWidth(t *testing.T) {
	cases := []struct {
		dictSize  int
		wantWidth int
	}{
		{10, 1},
		{1 << 10, 2},
		{1 << 20, 4},
	}
	for _, tc := range cases {
		v := New(5, tc.dictSize)
		assert.Equal(t, tc.wantWidth, v.Width())
		assert.Equal(t, 5, v.Len())
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	for _, dictSize := range []int{4, 1 << 10, 1 << 20} {
		v := New(3, dictSize)
		require.NoError(t, v.Set(0, ids.ValueID(0)))
		require.NoError(t, v.Set(1, ids.ValueID(2)))
		require.NoError(t, v.Set(2, ids.ValueID(1)))

		got0, err := v.Get(0)
		require.NoError(t, err)
		assert.Equal(t, ids.ValueID(0), got0)

		got1, err := v.Get(1)
		require.NoError(t, err)
		assert.Equal(t, ids.ValueID(2), got1)
	}
}

func TestOutOfRange(t *testing.T) {
	v := New(2, 10)
	_, err := v.Get(2)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.True(t, errors.Is(v.Set(-1, 0), ErrOutOfRange))
}
