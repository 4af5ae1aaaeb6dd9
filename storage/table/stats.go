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
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/dolthub/colstore/storage/ids"
	"github.com/dolthub/colstore/storage/segment"
)

// Stats is a human-readable snapshot of a table's shape, the data behind
// registry.Registry.Print's per-table line.
type Stats struct {
	Name       string
	Columns    int
	Rows       int
	Chunks     int
	MemoryUsed int
}

func (s Stats) String() string {
	return fmt.Sprintf("%s #columns: %d #rows: %s #chunks: %d (%s)",
		s.Name, s.Columns, humanize.Comma(int64(s.Rows)), s.Chunks, humanize.Bytes(uint64(s.MemoryUsed)))
}

// EstimateMemoryUsage sums every segment's estimated resident size across
// every chunk. ValueSegment cells are costed densely (len * sizeof(T));
// DictionarySegment and ReferenceSegment report their own estimates.
func (t *Table) EstimateMemoryUsage() int {
	total := 0
	for _, c := range t.chunks {
		for col := 0; col < c.ColumnCount(); col++ {
			seg, err := c.Segment(ids.ColumnID(col))
			if err != nil {
				continue
			}
			if m, ok := seg.(segment.MemoryEstimator); ok {
				total += m.EstimateMemoryUsage()
			}
		}
	}
	return total
}

// Fingerprint folds every chunk's content fingerprint into one digest,
// order-sensitive across chunks (chunk 0's fingerprint is mixed in before
// chunk 1's). Used by tests to compare two tables' content without a full
// per-cell deep-equal walk.
func (t *Table) Fingerprint() uint64 {
	var acc uint64 = 0xcbf29ce484222325 // FNV offset basis, just a mixing seed here
	for _, c := range t.chunks {
		acc ^= c.Fingerprint()
		acc *= 0x100000001b3
	}
	return acc
}
