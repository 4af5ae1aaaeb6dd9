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

// Package ids holds the strongly-typed integer handles shared by every
// layer of the storage engine: columns, chunks, offsets within a chunk,
// dictionary value-ids, and the row identifiers built from them. It has
// no dependencies of its own so every other package can import it without
// risking a cycle.
package ids

import "fmt"

// ColumnID identifies a column within a table's schema.
type ColumnID uint32

// ChunkID identifies a chunk within a table's chunk sequence.
type ChunkID uint32

// ChunkOffset identifies a row within a single chunk.
type ChunkOffset uint32

// ValueID indexes a dictionary segment's sorted dictionary. It is always
// wide enough to hold InvalidValueID regardless of the attribute-vector
// lane width chosen for a particular dictionary segment; lanes only ever
// store real dictionary indices, never the sentinel itself.
type ValueID uint32

// InvalidValueID is returned by DictionarySegment.LowerBound/UpperBound
// when no dictionary entry satisfies the query. It is the maximum value
// representable by ValueID.
const InvalidValueID ValueID = 1<<32 - 1

// RowID names one row of a (non-reference) table by chunk and offset.
type RowID struct {
	ChunkID     ChunkID
	ChunkOffset ChunkOffset
}

func (r RowID) String() string {
	return fmt.Sprintf("(%d,%d)", r.ChunkID, r.ChunkOffset)
}

// Less orders RowIDs by (ChunkID, ChunkOffset), the ascending order a scan
// over a base table produces.
func (r RowID) Less(other RowID) bool {
	if r.ChunkID != other.ChunkID {
		return r.ChunkID < other.ChunkID
	}
	return r.ChunkOffset < other.ChunkOffset
}

// PositionList is the ordered sequence of RowIDs a scan produces. A single
// PositionList is shared by every ReferenceSegment a scan emits, and by
// invariant every RowID in it refers to the same underlying base table.
type PositionList []RowID

// Len is provided so a PositionList can back a ReferenceSegment's Len()
// without every caller re-deriving len(list).
func (p PositionList) Len() int { return len(p) }
