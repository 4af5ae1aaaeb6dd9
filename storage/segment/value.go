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

	"github.com/dolthub/colstore/storage/types"
)

// ValueSegment is a mutable, densely packed, typed column segment. Rows
// are appended one at a time; Values exposes the backing buffer directly
// so scan inner loops can iterate it without going through the Variant
// boxing At() does.
type ValueSegment[T types.Element] struct {
	colType types.ColumnType
	values  []T
}

// NewValueSegment creates an empty ValueSegment tagged with colType. T
// must be the Go type that colType maps to; callers build these through
// the column-type dispatch in the table package, which enforces that.
func NewValueSegment[T types.Element](colType types.ColumnType) *ValueSegment[T] {
	return &ValueSegment[T]{colType: colType}
}

func (s *ValueSegment[T]) Len() int { return len(s.values) }

func (s *ValueSegment[T]) Type() types.ColumnType { return s.colType }

// Values exposes the dense backing buffer for efficient scanning. The
// returned slice must not be mutated by callers outside this package.
func (s *ValueSegment[T]) Values() []T { return s.values }

// At returns the cell at offset, boxed into a Variant.
func (s *ValueSegment[T]) At(offset int) (types.Variant, error) {
	if offset < 0 || offset >= len(s.values) {
		return types.Variant{}, errors.Wrapf(ErrOutOfRange, "offset %d, len %d", offset, len(s.values))
	}
	return types.From(s.values[offset]), nil
}

// Append adds one row, failing if v's active type does not match the
// segment's element type.
func (s *ValueSegment[T]) Append(v types.Variant) error {
	x, err := types.As[T](v)
	if err != nil {
		return errors.Wrap(err, "value segment append")
	}
	s.values = append(s.values, x)
	return nil
}

// EstimateMemoryUsage approximates the segment's resident size as
// sizeof(T) per row; like DictionarySegment's estimate, variable-length T
// (string) is costed at its header size only.
func (s *ValueSegment[T]) EstimateMemoryUsage() int {
	var zero T
	return int(elementSize(zero)) * len(s.values)
}
