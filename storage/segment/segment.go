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

// Package segment holds the three segment representations a Chunk's
// columns can be made of -- ValueSegment, DictionarySegment, and
// ReferenceSegment -- behind one shared read capability.
package segment

import (
	"github.com/pkg/errors"

	"github.com/dolthub/colstore/storage/ids"
	"github.com/dolthub/colstore/storage/types"
)

// ErrImmutable is returned by Append on a DictionarySegment or a
// ReferenceSegment; both are immutable once constructed.
var ErrImmutable = errors.New("segment: append to immutable segment")

// ErrOutOfRange is returned for any offset outside [0, Len()).
var ErrOutOfRange = errors.New("segment: offset out of range")

// Segment is the capability every column representation shares: read a
// cell by offset, and report how many rows it holds.
type Segment interface {
	Len() int
	At(offset int) (types.Variant, error)
	Type() types.ColumnType
}

// Appendable is satisfied by all three segment kinds -- ValueSegment
// accepts new rows, DictionarySegment and ReferenceSegment both always
// fail with ErrImmutable. Keeping Append out of the base Segment
// interface documents that appendability is a capability, not a given,
// even though every concrete type happens to implement it.
type Appendable interface {
	Segment
	Append(v types.Variant) error
}

// MemoryEstimator is implemented by segment kinds that can cheaply
// approximate their own resident size, used by table.Table.EstimateMemoryUsage
// and the registry's Print output.
type MemoryEstimator interface {
	EstimateMemoryUsage() int
}

// ColumnID and ChunkID are re-exported so callers that only touch the
// segment package's interfaces don't need a second import of ids for
// these two names.
type (
	ColumnID = ids.ColumnID
	ChunkID  = ids.ChunkID
)

// ReferencedChunk is the subset of Chunk behavior a ReferenceSegment
// needs to dereference a position. table.Table's chunk type satisfies
// this structurally, with no import of this package required on that
// side.
type ReferencedChunk interface {
	Segment(col ColumnID) (Segment, error)
}

// ReferencedTable is the subset of Table behavior a ReferenceSegment
// needs. Keeping it here (rather than importing the table package
// directly) is what lets segment sit below chunk and table in the
// dependency graph despite ReferenceSegment pointing back up at a table.
type ReferencedTable interface {
	Chunk(id ChunkID) (ReferencedChunk, error)
}
