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

package table

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/storage/segment"
	"github.com/dolthub/colstore/storage/types"
)

// TestCompressChunkPreservesContent is testable property 5.
func TestCompressChunkPreservesContent(t *testing.T) {
	tbl := newIntStringTable(t, 100)
	for i := int32(0); i < 5; i++ {
		require.NoError(t, tbl.Append([]types.Variant{types.NewInt32(i % 2), types.NewString("row")}))
	}

	before, err := tbl.Chunk(0)
	require.NoError(t, err)
	fpBefore := before.Fingerprint()
	rowsBefore := before.Size()
	colsBefore := before.ColumnCount()

	require.NoError(t, tbl.CompressChunk(0, nil))

	after, err := tbl.Chunk(0)
	require.NoError(t, err)
	assert.Equal(t, fpBefore, after.Fingerprint())
	assert.Equal(t, rowsBefore, after.Size())
	assert.Equal(t, colsBefore, after.ColumnCount())

	seg, err := after.Segment(0)
	require.NoError(t, err)
	_, isDict := seg.(*segment.DictionarySegment[int32])
	assert.True(t, isDict)
}

func TestCompressChunkOutOfRange(t *testing.T) {
	tbl := newIntStringTable(t, 10)
	err := tbl.CompressChunk(9, nil)
	assert.True(t, errors.Is(err, ErrChunkOutOfRange))
}

func TestCompressChunkKeepsRowCount(t *testing.T) {
	tbl := newIntStringTable(t, 100)
	for i := int32(0); i < 7; i++ {
		require.NoError(t, tbl.Append([]types.Variant{types.NewInt32(i), types.NewString("x")}))
	}
	require.NoError(t, tbl.CompressChunk(0, nil))
	assert.Equal(t, 7, tbl.RowCount())
}
