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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/storage/types"
)

func TestStatsString(t *testing.T) {
	s := Stats{Name: "people", Columns: 2, Rows: 1234, Chunks: 3, MemoryUsed: 2048}
	assert.Equal(t, "people #columns: 2 #rows: 1,234 #chunks: 3 (2.0 kB)", s.String())
}

func TestEstimateMemoryUsageGrowsWithRows(t *testing.T) {
	tbl := newIntStringTable(t, 100)
	empty := tbl.EstimateMemoryUsage()

	require.NoError(t, tbl.Append([]types.Variant{types.NewInt32(1), types.NewString("hello")}))
	withOneRow := tbl.EstimateMemoryUsage()

	assert.Greater(t, withOneRow, empty)
}

func TestFingerprintStableAcrossEqualContent(t *testing.T) {
	a := newIntStringTable(t, 100)
	b := newIntStringTable(t, 100)
	for _, tbl := range []*Table{a, b} {
		require.NoError(t, tbl.Append([]types.Variant{types.NewInt32(1), types.NewString("x")}))
		require.NoError(t, tbl.Append([]types.Variant{types.NewInt32(2), types.NewString("y")}))
	}
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}
