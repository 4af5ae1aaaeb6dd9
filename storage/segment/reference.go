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
	"github.com/pkg/errors"

	"github.com/dolthub/colstore/storage/ids"
	"github.com/dolthub/colstore/storage/types"
)

// ReferenceSegment is a non-owning indirection into another (non-
// reference) table's column, through a PositionList shared by every
// ReferenceSegment a single scan produced.
type ReferenceSegment struct {
	colType      types.ColumnType
	referenced   ReferencedTable
	refColumn    ColumnID
	positionList ids.PositionList
}

// NewReferenceSegment builds a ReferenceSegment over referenced's
// refColumn, indexed by positions. colType is the element type of
// refColumn, copied in at construction so Type() doesn't need to resolve
// a position before answering.
func NewReferenceSegment(referenced ReferencedTable, refColumn ColumnID, positions ids.PositionList, colType types.ColumnType) *ReferenceSegment {
	return &ReferenceSegment{
		colType:      colType,
		referenced:   referenced,
		refColumn:    refColumn,
		positionList: positions,
	}
}

func (r *ReferenceSegment) Len() int { return r.positionList.Len() }

func (r *ReferenceSegment) Type() types.ColumnType { return r.colType }

// At resolves positionList[offset] into the referenced table and returns
// the cell there.
func (r *ReferenceSegment) At(offset int) (types.Variant, error) {
	if offset < 0 || offset >= len(r.positionList) {
		return types.Variant{}, errors.Wrapf(ErrOutOfRange, "offset %d, len %d", offset, len(r.positionList))
	}
	rowID := r.positionList[offset]
	chunk, err := r.referenced.Chunk(rowID.ChunkID)
	if err != nil {
		return types.Variant{}, errors.Wrap(err, "reference segment dereference")
	}
	seg, err := chunk.Segment(r.refColumn)
	if err != nil {
		return types.Variant{}, errors.Wrap(err, "reference segment dereference")
	}
	return seg.At(int(rowID.ChunkOffset))
}

// Append always fails: reference segments are immutable.
func (r *ReferenceSegment) Append(types.Variant) error {
	return errors.Wrap(ErrImmutable, "reference segment")
}

// ReferencedTable returns the table this segment points into.
func (r *ReferenceSegment) ReferencedTable() ReferencedTable { return r.referenced }

// ReferencedColumn returns the column id within the referenced table.
func (r *ReferenceSegment) ReferencedColumn() ColumnID { return r.refColumn }

// PositionList returns the shared position list backing this segment.
func (r *ReferenceSegment) PositionList() ids.PositionList { return r.positionList }

// EstimateMemoryUsage approximates the segment's resident size as the
// cost of the shared RowID list. Because the list is shared across every
// column's ReferenceSegment from the same scan, this overestimates actual
// marginal cost per segment -- the same simplification the original
// implementation makes.
func (r *ReferenceSegment) EstimateMemoryUsage() int {
	return len(r.positionList) * 8 // ChunkID + ChunkOffset, 4 bytes each
}
