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
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dolthub/colstore/storage/chunk"
	"github.com/dolthub/colstore/storage/ids"
	"github.com/dolthub/colstore/storage/segment"
	"github.com/dolthub/colstore/storage/table"
	"github.com/dolthub/colstore/storage/types"
)

// TableScan is a single-column, single-predicate selection over its
// input: it returns a new table, with the same schema as its input, whose
// one chunk holds one ReferenceSegment per column pointing at whichever
// rows matched.
type TableScan struct {
	Base
	columnID    ids.ColumnID
	scanType    ScanType
	searchValue types.Variant
}

// NewTableScan returns a TableScan over input's columnID, selecting rows
// where the column's value compares to searchValue as scanType demands.
// input is not executed here; Execute runs it (a no-op if it has already
// run) and then reads its output through Base.LeftInputTable, the first
// time this operator itself executes.
func NewTableScan(input Operator, columnID ids.ColumnID, scanType ScanType, searchValue types.Variant, logger *zap.Logger) *TableScan {
	ts := &TableScan{columnID: columnID, scanType: scanType, searchValue: searchValue}
	ts.Base = NewBase(ts, input, nil, logger)
	return ts
}

func (ts *TableScan) onExecute() (*table.Table, error) {
	start := time.Now()

	if ts.left != nil {
		if err := ts.left.Execute(); err != nil {
			return nil, errors.Wrap(err, "table scan")
		}
	}
	input, err := ts.LeftInputTable()
	if err != nil {
		return nil, errors.Wrap(err, "table scan")
	}

	colType, err := input.ColumnType(ts.columnID)
	if err != nil {
		return nil, errors.Wrap(err, "table scan")
	}
	if ts.searchValue.Type() != colType {
		return nil, errors.Wrapf(types.ErrTypeMismatch,
			"table scan: search value is %s, column %d is %s", ts.searchValue.Type(), ts.columnID, colType)
	}

	positions, err := buildPositionList(input, ts.columnID, colType, ts.scanType, ts.searchValue)
	if err != nil {
		return nil, errors.Wrap(err, "table scan")
	}

	baseTable, err := resolveBaseTable(input)
	if err != nil {
		return nil, errors.Wrap(err, "table scan")
	}

	out, err := buildReferenceOutput(input, baseTable, positions)
	if err != nil {
		return nil, errors.Wrap(err, "table scan")
	}

	ts.logger.Info("table scan",
		zap.Uint32("column_id", uint32(ts.columnID)),
		zap.String("scan_type", ts.scanType.String()),
		zap.Int("rows_in", input.RowCount()),
		zap.Int("rows_out", len(positions)),
		zap.Duration("duration", time.Since(start)),
	)
	return out, nil
}

// positionListVisitor resolves colType's Go element type once and scans
// every chunk of input's columnID column against it, in chunk order, via
// types.Dispatch.
type positionListVisitor struct {
	input       *table.Table
	columnID    ids.ColumnID
	scanType    ScanType
	searchValue types.Variant
}

func (v positionListVisitor) VisitInt32() (ids.PositionList, error) {
	return scanAllChunks[int32](v.input, v.columnID, v.scanType, v.searchValue)
}

func (v positionListVisitor) VisitInt64() (ids.PositionList, error) {
	return scanAllChunks[int64](v.input, v.columnID, v.scanType, v.searchValue)
}

func (v positionListVisitor) VisitFloat() (ids.PositionList, error) {
	return scanAllChunks[float32](v.input, v.columnID, v.scanType, v.searchValue)
}

func (v positionListVisitor) VisitDouble() (ids.PositionList, error) {
	return scanAllChunks[float64](v.input, v.columnID, v.scanType, v.searchValue)
}

func (v positionListVisitor) VisitString() (ids.PositionList, error) {
	return scanAllChunks[string](v.input, v.columnID, v.scanType, v.searchValue)
}

func buildPositionList(input *table.Table, columnID ids.ColumnID, colType types.ColumnType, scanType ScanType, searchValue types.Variant) (ids.PositionList, error) {
	return types.Dispatch[ids.PositionList](colType, positionListVisitor{
		input: input, columnID: columnID, scanType: scanType, searchValue: searchValue,
	})
}

func scanAllChunks[T types.Element](input *table.Table, columnID ids.ColumnID, scanType ScanType, searchValue types.Variant) (ids.PositionList, error) {
	v, err := types.As[T](searchValue)
	if err != nil {
		return nil, err
	}
	var positions ids.PositionList
	for i := 0; i < input.ChunkCount(); i++ {
		c, err := input.Chunk(ids.ChunkID(i))
		if err != nil {
			return nil, err
		}
		seg, err := c.Segment(columnID)
		if err != nil {
			return nil, err
		}
		if err := scanColumnInChunk[T](ids.ChunkID(i), seg, scanType, v, &positions); err != nil {
			return nil, err
		}
	}
	return positions, nil
}

// resolveBaseTable implements the one-level reference-chain collapse: if
// input's own columns are already ReferenceSegments (input is itself the
// output of an earlier scan), this scan's output points at the same
// underlying table those do, rather than at input. Every column of a
// table produced this way is a ReferenceSegment, so checking column 0 of
// chunk 0 is representative of the whole table.
func resolveBaseTable(input *table.Table) (segment.ReferencedTable, error) {
	c, err := input.Chunk(0)
	if err != nil {
		return nil, err
	}
	firstSeg, err := c.Segment(0)
	if err != nil {
		return nil, err
	}
	if refSeg, ok := firstSeg.(*segment.ReferenceSegment); ok {
		return refSeg.ReferencedTable(), nil
	}
	return input.AsReferencedTable(), nil
}

// buildReferenceOutput copies input's schema into a fresh table and
// emplaces one chunk holding one ReferenceSegment per column, every
// column sharing the same positions list and pointing at baseTable.
// Column indices are preserved 1:1 from input to output and from output
// to baseTable: the engine has no projection or reordering operator, so
// the reference segment for output column i always names column i of
// baseTable, whether baseTable is input itself or input's own base table.
func buildReferenceOutput(input *table.Table, baseTable segment.ReferencedTable, positions ids.PositionList) (*table.Table, error) {
	out := table.New(input.TargetChunkSize())
	outChunk := chunk.New()
	for i := 0; i < input.ColumnCount(); i++ {
		colID := ids.ColumnID(i)
		name, err := input.ColumnName(colID)
		if err != nil {
			return nil, err
		}
		colType, err := input.ColumnType(colID)
		if err != nil {
			return nil, err
		}
		if err := out.AddColumn(name, colType); err != nil {
			return nil, err
		}
		refSeg := segment.NewReferenceSegment(baseTable, colID, positions, colType)
		if err := outChunk.AddSegment(refSeg); err != nil {
			return nil, err
		}
	}
	if err := out.EmplaceChunk(outChunk); err != nil {
		return nil, err
	}
	return out, nil
}
