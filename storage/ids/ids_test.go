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

package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowIDLess(t *testing.T) {
	cases := []struct {
		name string
		a, b RowID
		want bool
	}{
		{"lower chunk wins", RowID{ChunkID: 0, ChunkOffset: 9}, RowID{ChunkID: 1, ChunkOffset: 0}, true},
		{"higher chunk loses", RowID{ChunkID: 1, ChunkOffset: 0}, RowID{ChunkID: 0, ChunkOffset: 9}, false},
		{"same chunk, offset orders", RowID{ChunkID: 2, ChunkOffset: 1}, RowID{ChunkID: 2, ChunkOffset: 2}, true},
		{"equal", RowID{ChunkID: 2, ChunkOffset: 2}, RowID{ChunkID: 2, ChunkOffset: 2}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Less(tc.b))
		})
	}
}

func TestRowIDString(t *testing.T) {
	assert.Equal(t, "(3,7)", RowID{ChunkID: 3, ChunkOffset: 7}.String())
}

func TestPositionListLen(t *testing.T) {
	p := PositionList{{ChunkID: 0, ChunkOffset: 0}, {ChunkID: 0, ChunkOffset: 1}}
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, 0, PositionList(nil).Len())
}

func TestInvalidValueIDIsMaxUint32(t *testing.T) {
	assert.Equal(t, ValueID(1<<32-1), InvalidValueID)
}
