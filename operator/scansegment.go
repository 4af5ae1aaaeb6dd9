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

package operator

import (
	"github.com/pkg/errors"

	"github.com/dolthub/colstore/storage/ids"
	"github.com/dolthub/colstore/storage/segment"
	"github.com/dolthub/colstore/storage/types"
)

// scanColumnInChunk appends to positions every RowID in chunkID's copy of
// seg that matches searchValue under op, dispatching on the segment's
// concrete representation. T is fixed by the column's declared type for
// the whole scan, resolved once by the caller.
func scanColumnInChunk[T types.Element](chunkID ids.ChunkID, seg segment.Segment, op ScanType, searchValue T, positions *ids.PositionList) error {
	switch s := seg.(type) {
	case *segment.ValueSegment[T]:
		return scanValueSegment[T](chunkID, s, op, searchValue, positions)
	case *segment.DictionarySegment[T]:
		return scanDictionarySegment[T](chunkID, s, op, searchValue, positions)
	case *segment.ReferenceSegment:
		return scanReferenceSegment[T](s, op, searchValue, positions)
	default:
		return errors.Errorf("table scan: segment type %T does not match element type %T", seg, searchValue)
	}
}

// scanValueSegment is the dense path: a direct typed comparison against
// every cell, no translation table involved.
func scanValueSegment[T types.Element](chunkID ids.ChunkID, s *segment.ValueSegment[T], op ScanType, searchValue T, positions *ids.PositionList) error {
	cmp, err := valueComparator[T](op)
	if err != nil {
		return err
	}
	for offset, v := range s.Values() {
		if cmp(v, searchValue) {
			*positions = append(*positions, ids.RowID{ChunkID: chunkID, ChunkOffset: ids.ChunkOffset(offset)})
		}
	}
	return nil
}

// scanDictionarySegment resolves the search value's position within the
// segment's sorted dictionary once, turns that into a value-id-domain
// comparison via dictionaryScanPlan, then walks the attribute vector --
// never the dictionary itself -- applying that comparison.
func scanDictionarySegment[T types.Element](chunkID ids.ChunkID, s *segment.DictionarySegment[T], op ScanType, searchValue T, positions *ids.PositionList) error {
	lb := s.LowerBound(searchValue)
	ub := s.UpperBound(searchValue)

	outcome, cmp, idOp, err := dictionaryScanPlan(op, lb, ub)
	if err != nil {
		return err
	}

	switch outcome {
	case scanEmpty:
		return nil
	case scanSelectAll:
		for offset := 0; offset < s.Len(); offset++ {
			*positions = append(*positions, ids.RowID{ChunkID: chunkID, ChunkOffset: ids.ChunkOffset(offset)})
		}
		return nil
	}

	idCmp, err := idComparator(idOp)
	if err != nil {
		return err
	}
	attrs := s.AttributeVector()
	for offset := 0; offset < attrs.Len(); offset++ {
		id, err := attrs.Get(offset)
		if err != nil {
			return err
		}
		if idCmp(int64(id), cmp) {
			*positions = append(*positions, ids.RowID{ChunkID: chunkID, ChunkOffset: ids.ChunkOffset(offset)})
		}
	}
	return nil
}

// scanReferenceSegment dereferences every position through the segment's
// referenced table and column, comparing the resolved cell directly
// (there is no dictionary to translate against here: the referenced
// column might itself be dictionary-compressed, but that is an
// implementation detail of its own segment, invisible at this level).
// Matching positions are re-emitted as the *referenced* row-id, which is
// what collapses a chain of reference segments down to one indirection.
func scanReferenceSegment[T types.Element](s *segment.ReferenceSegment, op ScanType, searchValue T, positions *ids.PositionList) error {
	cmp, err := valueComparator[T](op)
	if err != nil {
		return err
	}
	referenced := s.ReferencedTable()
	refColumn := s.ReferencedColumn()
	for _, rowID := range s.PositionList() {
		c, err := referenced.Chunk(rowID.ChunkID)
		if err != nil {
			return errors.Wrap(err, "table scan: dereference")
		}
		refSeg, err := c.Segment(refColumn)
		if err != nil {
			return errors.Wrap(err, "table scan: dereference")
		}
		cell, err := refSeg.At(int(rowID.ChunkOffset))
		if err != nil {
			return errors.Wrap(err, "table scan: dereference")
		}
		v, err := types.As[T](cell)
		if err != nil {
			return errors.Wrap(err, "table scan: dereference")
		}
		if cmp(v, searchValue) {
			*positions = append(*positions, rowID)
		}
	}
	return nil
}
