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

package segment

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/storage/ids"
	"github.com/dolthub/colstore/storage/types"
)

// fakeChunk/fakeTable are minimal ReferencedChunk/ReferencedTable
// implementations, standing in for chunk.Chunk/table.Table so this
// package can test ReferenceSegment without importing either (which
// would be a cycle).
type fakeChunk struct {
	segments []Segment
}

func (c *fakeChunk) Segment(col ColumnID) (Segment, error) {
	if int(col) >= len(c.segments) {
		return nil, errors.New("out of range")
	}
	return c.segments[col], nil
}

type fakeTable struct {
	chunks []*fakeChunk
}

func (f *fakeTable) Chunk(id ChunkID) (ReferencedChunk, error) {
	if int(id) >= len(f.chunks) {
		return nil, errors.New("out of range")
	}
	return f.chunks[id], nil
}

func TestReferenceSegmentDereferences(t *testing.T) {
	base := NewValueSegment[int32](types.Int32Type)
	require.NoError(t, base.Append(types.NewInt32(100)))
	require.NoError(t, base.Append(types.NewInt32(200)))
	table := &fakeTable{chunks: []*fakeChunk{{segments: []Segment{base}}}}

	positions := ids.PositionList{
		{ChunkID: 0, ChunkOffset: 1},
		{ChunkID: 0, ChunkOffset: 0},
	}
	ref := NewReferenceSegment(table, 0, positions, types.Int32Type)

	assert.Equal(t, 2, ref.Len())
	assert.Equal(t, types.Int32Type, ref.Type())

	v0, err := ref.At(0)
	require.NoError(t, err)
	got, err := v0.Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(200), got)

	v1, err := ref.At(1)
	require.NoError(t, err)
	got, err = v1.Int32()
	require.NoError(t, err)
	assert.Equal(t, int32(100), got)
}

func TestReferenceSegmentAppendFails(t *testing.T) {
	ref := NewReferenceSegment(&fakeTable{}, 0, nil, types.Int32Type)
	assert.True(t, errors.Is(ref.Append(types.NewInt32(1)), ErrImmutable))
}

func TestReferenceSegmentAtOutOfRange(t *testing.T) {
	ref := NewReferenceSegment(&fakeTable{}, 0, ids.PositionList{}, types.Int32Type)
	_, err := ref.At(0)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestReferenceSegmentAccessors(t *testing.T) {
	positions := ids.PositionList{{ChunkID: 2, ChunkOffset: 3}}
	ref := NewReferenceSegment(&fakeTable{}, 5, positions, types.StringType)
	assert.Equal(t, ColumnID(5), ref.ReferencedColumn())
	assert.Equal(t, positions, ref.PositionList())
}
