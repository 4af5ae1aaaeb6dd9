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

// Package chunk implements Chunk, a horizontal slice of a table: an
// ordered sequence of same-length segments, one per column.
package chunk

import (
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/dolthub/colstore/storage/ids"
	"github.com/dolthub/colstore/storage/segment"
	"github.com/dolthub/colstore/storage/types"
)

// ErrSizeMismatch is returned by AddSegment when the segment being added
// does not have the chunk's current row count.
var ErrSizeMismatch = errors.New("chunk: segment size does not match chunk size")

// ErrColumnOutOfRange is returned by Segment for a column id outside
// [0, ColumnCount()).
var ErrColumnOutOfRange = errors.New("chunk: column id out of range")

// Chunk is an ordered, fixed-width-per-row sequence of segments, all of
// the same length.
type Chunk struct {
	segments []segment.Segment
}

// New returns an empty Chunk.
func New() *Chunk { return &Chunk{} }

// ColumnCount reports how many segments (columns) the chunk has.
func (c *Chunk) ColumnCount() int { return len(c.segments) }

// Size returns the chunk's row count: the length of segment 0, or 0 for
// an empty chunk.
func (c *Chunk) Size() int {
	if len(c.segments) == 0 {
		return 0
	}
	return c.segments[0].Len()
}

// AddSegment appends s as the chunk's next column. The chunk's first
// segment is accepted at any length and sets the chunk's size; every
// later segment's length must equal that size.
func (c *Chunk) AddSegment(s segment.Segment) error {
	if len(c.segments) > 0 && s.Len() != c.Size() {
		return errors.Wrapf(ErrSizeMismatch, "segment len %d, chunk size %d", s.Len(), c.Size())
	}
	c.segments = append(c.segments, s)
	return nil
}

// Segment returns the segment at columnID.
func (c *Chunk) Segment(columnID ids.ColumnID) (segment.Segment, error) {
	if int(columnID) < 0 || int(columnID) >= len(c.segments) {
		return nil, errors.Wrapf(ErrColumnOutOfRange, "column %d, columns %d", columnID, len(c.segments))
	}
	return c.segments[columnID], nil
}

// ErrNotAppendable is returned by Append when one of the chunk's segments
// does not implement segment.Appendable (should not happen for chunks
// built the normal way, but Append does not assume it).
var ErrNotAppendable = errors.New("chunk: segment is not appendable")

// Append forwards values[i] to segment i's Append. values must have
// exactly ColumnCount() entries; each value's tag must match its
// segment's element type. A failure partway through leaves earlier
// segments already appended to; Append does not roll them back.
func (c *Chunk) Append(values []types.Variant) error {
	if len(values) != len(c.segments) {
		return errors.Errorf("chunk: append expected %d values, got %d", len(c.segments), len(values))
	}
	for i, v := range values {
		a, ok := c.segments[i].(segment.Appendable)
		if !ok {
			return errors.Wrapf(ErrNotAppendable, "column %d", i)
		}
		if err := a.Append(v); err != nil {
			return errors.Wrapf(err, "column %d", i)
		}
	}
	return nil
}

// Fingerprint hashes the rendered string form of every cell, segment by
// segment, into one digest, for every segment kind alike, letting tests
// compare chunk content without a deep structural walk. A value segment
// and a dictionary segment holding the same cells hash the same.
func (c *Chunk) Fingerprint() uint64 {
	h := xxhash.New()
	for _, s := range c.segments {
		for i := 0; i < s.Len(); i++ {
			v, err := s.At(i)
			if err != nil {
				continue
			}
			_, _ = h.Write([]byte(v.String()))
		}
	}
	return h.Sum64()
}
