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
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dolthub/colstore/storage/chunk"
	"github.com/dolthub/colstore/storage/ids"
	"github.com/dolthub/colstore/storage/segment"
	"github.com/dolthub/colstore/storage/types"
)

// ErrNotValueSegment is returned by CompressChunk if one of the target
// chunk's segments is not a ValueSegment -- compression only ever runs
// once, against the freshly-appended chunks a table builds for itself.
var ErrNotValueSegment = errors.New("table: segment is not a value segment")

// CompressChunk replaces the chunk at chunkID with a new chunk whose
// segments are DictionarySegments built from the originals. It is
// one-way: there is no decompress. Per-column construction runs
// concurrently (golang.org/x/sync/errgroup); each goroutine writes its
// segment into its own slot of a slice, and the destination chunk is
// assembled from those slots serially once every goroutine has finished.
func (t *Table) CompressChunk(chunkID ids.ChunkID, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if int(chunkID) < 0 || int(chunkID) >= len(t.chunks) {
		return errors.Wrapf(ErrChunkOutOfRange, "chunk id %d, chunks %d", chunkID, len(t.chunks))
	}
	src := t.chunks[chunkID]
	columns := src.ColumnCount()

	built := make([]segment.Segment, columns)
	g, _ := errgroup.WithContext(context.Background())
	for col := 0; col < columns; col++ {
		col := col
		g.Go(func() error {
			srcSeg, err := src.Segment(ids.ColumnID(col))
			if err != nil {
				return err
			}
			dictSeg, err := compressColumn(t.colTypes[col], srcSeg)
			if err != nil {
				return errors.Wrapf(err, "column %d", col)
			}
			built[col] = dictSeg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "compress chunk")
	}

	dst := chunk.New()
	for _, s := range built {
		if err := dst.AddSegment(s); err != nil {
			return errors.Wrap(err, "compress chunk")
		}
	}
	t.chunks[chunkID] = dst

	logger.Info("compressed chunk",
		zap.String("table_id", t.id.String()),
		zap.Uint32("chunk_id", uint32(chunkID)),
		zap.Int("columns", columns),
		zap.Int("rows", dst.Size()),
	)
	return nil
}

// compressColumnVisitor resolves colType into the type-asserted
// ValueSegment-to-DictionarySegment conversion for that element type, via
// types.Dispatch. src is asserted to the matching concrete ValueSegment
// type inside each Visit method rather than switched on beforehand.
type compressColumnVisitor struct{ src segment.Segment }

func (v compressColumnVisitor) VisitInt32() (segment.Segment, error) {
	vs, ok := v.src.(*segment.ValueSegment[int32])
	if !ok {
		return nil, ErrNotValueSegment
	}
	return segment.NewDictionarySegment(vs), nil
}

func (v compressColumnVisitor) VisitInt64() (segment.Segment, error) {
	vs, ok := v.src.(*segment.ValueSegment[int64])
	if !ok {
		return nil, ErrNotValueSegment
	}
	return segment.NewDictionarySegment(vs), nil
}

func (v compressColumnVisitor) VisitFloat() (segment.Segment, error) {
	vs, ok := v.src.(*segment.ValueSegment[float32])
	if !ok {
		return nil, ErrNotValueSegment
	}
	return segment.NewDictionarySegment(vs), nil
}

func (v compressColumnVisitor) VisitDouble() (segment.Segment, error) {
	vs, ok := v.src.(*segment.ValueSegment[float64])
	if !ok {
		return nil, ErrNotValueSegment
	}
	return segment.NewDictionarySegment(vs), nil
}

func (v compressColumnVisitor) VisitString() (segment.Segment, error) {
	vs, ok := v.src.(*segment.ValueSegment[string])
	if !ok {
		return nil, ErrNotValueSegment
	}
	return segment.NewDictionarySegment(vs), nil
}

func compressColumn(colType types.ColumnType, src segment.Segment) (segment.Segment, error) {
	return types.Dispatch[segment.Segment](colType, compressColumnVisitor{src: src})
}
