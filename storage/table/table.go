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

// Package table implements Table, an ordered sequence of equal-shaped
// Chunks plus the column schema (names and types) shared by all of them.
package table

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dolthub/colstore/storage/chunk"
	"github.com/dolthub/colstore/storage/ids"
	"github.com/dolthub/colstore/storage/segment"
	"github.com/dolthub/colstore/storage/types"
)

// ErrColumnsAfterRows is returned by AddColumn once the table has a row.
var ErrColumnsAfterRows = errors.New("table: cannot add column after rows have been appended")

// ErrUnknownColumn is returned by ColumnIDByName when no column has name.
var ErrUnknownColumn = errors.New("table: unknown column name")

// ErrColumnCountMismatch is returned by EmplaceChunk when the chunk being
// emplaced has a different column count than the table's schema.
var ErrColumnCountMismatch = errors.New("table: chunk column count does not match table schema")

// ErrChunkOutOfRange is returned by Chunk for an id outside
// [0, ChunkCount()).
var ErrChunkOutOfRange = errors.New("table: chunk id out of range")

// Table is an ordered sequence of chunks sharing one column schema and
// one target chunk size. It always holds at least one chunk, created
// empty at construction.
type Table struct {
	id              uuid.UUID
	targetChunkSize int
	names           []string
	colTypes        []types.ColumnType
	chunks          []*chunk.Chunk
	rowCount        int
}

// New returns a Table with a single empty chunk and the given target
// chunk size (the maximum row count any chunk but the last may reach
// before a new one is started).
func New(targetChunkSize int) *Table {
	t := &Table{
		id:              uuid.New(),
		targetChunkSize: targetChunkSize,
	}
	t.chunks = append(t.chunks, chunk.New())
	return t
}

// ID is a random identifier stamped at construction, used only to
// correlate this table across log lines; it has no bearing on equality.
func (t *Table) ID() uuid.UUID { return t.id }

// TargetChunkSize returns the table's configured chunk size ceiling.
func (t *Table) TargetChunkSize() int { return t.targetChunkSize }

// ColumnCount reports the number of columns in the table's schema.
func (t *Table) ColumnCount() int { return len(t.names) }

// ColumnName returns the name of the column at id.
func (t *Table) ColumnName(id ids.ColumnID) (string, error) {
	if int(id) < 0 || int(id) >= len(t.names) {
		return "", errors.Wrapf(ErrUnknownColumn, "column id %d", id)
	}
	return t.names[id], nil
}

// ColumnType returns the element type of the column at id.
func (t *Table) ColumnType(id ids.ColumnID) (types.ColumnType, error) {
	if int(id) < 0 || int(id) >= len(t.colTypes) {
		return types.InvalidType, errors.Wrapf(ErrUnknownColumn, "column id %d", id)
	}
	return t.colTypes[id], nil
}

// ColumnIDByName looks up a column by name via linear search, returning
// the first match. Column names need not be unique; ColumnIDByName never
// rejects a table for having duplicates, it just always resolves to the
// earliest one.
func (t *Table) ColumnIDByName(name string) (ids.ColumnID, error) {
	for i, n := range t.names {
		if n == name {
			return ids.ColumnID(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownColumn, "name %q", name)
}

// RowCount sums every chunk's size.
func (t *Table) RowCount() int { return t.rowCount }

// ChunkCount reports the number of chunks in the table.
func (t *Table) ChunkCount() int { return len(t.chunks) }

// Chunk returns the chunk at id.
func (t *Table) Chunk(id ids.ChunkID) (*chunk.Chunk, error) {
	if int(id) < 0 || int(id) >= len(t.chunks) {
		return nil, errors.Wrapf(ErrChunkOutOfRange, "chunk id %d, chunks %d", id, len(t.chunks))
	}
	return t.chunks[id], nil
}

// AddColumn appends name/colType to the schema and a fresh empty value
// segment of that type to the table's sole chunk. It fails once the
// table has any row, matching the "columns fixed before data" invariant
// chunk-based compression and scanning both depend on.
func (t *Table) AddColumn(name string, colType types.ColumnType) error {
	if t.rowCount > 0 {
		return errors.Wrapf(ErrColumnsAfterRows, "table has %d rows", t.rowCount)
	}
	seg, err := newValueSegment(colType)
	if err != nil {
		return errors.Wrap(err, "add column")
	}
	if err := t.chunks[0].AddSegment(seg); err != nil {
		return errors.Wrap(err, "add column")
	}
	t.names = append(t.names, name)
	t.colTypes = append(t.colTypes, colType)
	return nil
}

// Append inserts one row into the table's last chunk, each value landing
// in the column at the same index. When the last chunk is already at
// TargetChunkSize, a fresh chunk (with matching empty value segments) is
// started first.
func (t *Table) Append(values []types.Variant) error {
	if len(values) != len(t.names) {
		return errors.Errorf("table: append expected %d values, got %d", len(t.names), len(values))
	}
	last := t.chunks[len(t.chunks)-1]
	if t.targetChunkSize > 0 && last.Size() >= t.targetChunkSize {
		next := chunk.New()
		for _, ct := range t.colTypes {
			seg, err := newValueSegment(ct)
			if err != nil {
				return errors.Wrap(err, "append")
			}
			if err := next.AddSegment(seg); err != nil {
				return errors.Wrap(err, "append")
			}
		}
		t.chunks = append(t.chunks, next)
		last = next
	}
	if err := last.Append(values); err != nil {
		return errors.Wrap(err, "append")
	}
	t.rowCount++
	return nil
}

// EmplaceChunk appends a prebuilt chunk to the table. If the table is
// currently exactly one empty chunk (one chunk, zero rows -- true right
// after New, and still true once AddColumn has defined the schema but no
// row has been appended), the prebuilt chunk replaces it instead of
// growing the table. This is the shortcut TableScan's output table relies
// on: build an empty table with the right schema, then emplace the one
// reference chunk the scan produced. c's column count must match the
// table's schema.
func (t *Table) EmplaceChunk(c *chunk.Chunk) error {
	if c.ColumnCount() != len(t.names) {
		return errors.Wrapf(ErrColumnCountMismatch, "chunk has %d columns, table has %d", c.ColumnCount(), len(t.names))
	}
	if len(t.chunks) == 1 && t.chunks[0].Size() == 0 && t.rowCount == 0 {
		t.chunks[0] = c
	} else {
		t.chunks = append(t.chunks, c)
	}
	t.rowCount += c.Size()
	return nil
}

// referencedTable adapts *Table to segment.ReferencedTable. It exists so
// this package and segment never need to import each other: segment
// declares the narrow interface it needs, and this tiny wrapper is the
// only place table.Table's actual Chunk signature (which returns the
// concrete *chunk.Chunk, not segment.ReferencedChunk) gets adjusted to
// match it.
type referencedTable struct{ t *Table }

func (r referencedTable) Chunk(id ids.ChunkID) (segment.ReferencedChunk, error) {
	c, err := r.t.Chunk(id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// AsReferencedTable adapts t for use as the table a ReferenceSegment
// points into.
func (t *Table) AsReferencedTable() segment.ReferencedTable {
	return referencedTable{t: t}
}

// valueSegmentVisitor resolves colType into a freshly-constructed, empty
// ValueSegment of the matching element type, via types.Dispatch.
type valueSegmentVisitor struct{ colType types.ColumnType }

func (v valueSegmentVisitor) VisitInt32() (segment.Appendable, error) {
	return segment.NewValueSegment[int32](v.colType), nil
}

func (v valueSegmentVisitor) VisitInt64() (segment.Appendable, error) {
	return segment.NewValueSegment[int64](v.colType), nil
}

func (v valueSegmentVisitor) VisitFloat() (segment.Appendable, error) {
	return segment.NewValueSegment[float32](v.colType), nil
}

func (v valueSegmentVisitor) VisitDouble() (segment.Appendable, error) {
	return segment.NewValueSegment[float64](v.colType), nil
}

func (v valueSegmentVisitor) VisitString() (segment.Appendable, error) {
	return segment.NewValueSegment[string](v.colType), nil
}

func newValueSegment(colType types.ColumnType) (segment.Appendable, error) {
	return types.Dispatch[segment.Appendable](colType, valueSegmentVisitor{colType: colType})
}
