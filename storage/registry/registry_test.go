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

package registry

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/storage/table"
	"github.com/dolthub/colstore/storage/types"
)

func TestAddGetDrop(t *testing.T) {
	r := New(nil)
	tbl := table.New(10)

	require.NoError(t, r.Add("people", tbl))
	assert.True(t, r.Has("people"))

	got, err := r.Get("people")
	require.NoError(t, err)
	assert.Same(t, tbl, got)

	require.NoError(t, r.Drop("people"))
	assert.False(t, r.Has("people"))
}

func TestAddDuplicateFails(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Add("people", table.New(10)))
	err := r.Add("people", table.New(10))
	assert.True(t, errors.Is(err, ErrTableExists))
}

func TestGetDropUnknownFails(t *testing.T) {
	r := New(nil)
	_, err := r.Get("missing")
	assert.True(t, errors.Is(err, ErrUnknownTable))
	assert.True(t, errors.Is(r.Drop("missing"), ErrUnknownTable))
}

func TestTableNamesSorted(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Add("zebra", table.New(10)))
	require.NoError(t, r.Add("apple", table.New(10)))
	require.NoError(t, r.Add("mango", table.New(10)))

	assert.Equal(t, []string{"apple", "mango", "zebra"}, r.TableNames())
}

func TestReset(t *testing.T) {
	r := New(nil)
	require.NoError(t, r.Add("a", table.New(10)))
	r.Reset()
	assert.Empty(t, r.TableNames())
}

func TestPrintFormat(t *testing.T) {
	r := New(nil)
	tbl := table.New(10)
	require.NoError(t, tbl.AddColumn("n", types.Int32Type))
	require.NoError(t, tbl.Append([]types.Variant{types.NewInt32(1)}))
	require.NoError(t, r.Add("people", tbl))

	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf))

	out := buf.String()
	assert.Contains(t, out, "Registry #tables: 1\n")
	assert.Contains(t, out, "people #columns: 1 #rows: 1 #chunks: 1")
}
