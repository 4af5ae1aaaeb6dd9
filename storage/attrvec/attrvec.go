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

// Package attrvec implements the width-polymorphic integer vector a
// DictionarySegment uses to store one value-id per row. The lane width
// (1, 2, or 4 bytes) is chosen once, at construction, from the
// cardinality of the dictionary being built; every other package only
// ever sees the AttributeVector interface.
package attrvec

import (
	"github.com/pkg/errors"

	"github.com/dolthub/colstore/storage/ids"
)

// ErrOutOfRange is returned by Get/Set for a position outside [0, Len()).
var ErrOutOfRange = errors.New("attrvec: position out of range")

// AttributeVector is a dense, fixed-length sequence of dictionary
// value-ids. Width reports the number of bytes backing each element,
// which is always the narrowest of {1, 2, 4} that can hold every value-id
// actually stored in it.
type AttributeVector interface {
	Get(pos int) (ids.ValueID, error)
	Set(pos int, id ids.ValueID) error
	Len() int
	Width() int
}

// WidthForCardinality returns the narrowest lane width, in bytes, able to
// represent any value-id in a dictionary of the given size: 1 byte for up
// to 2^8 entries, 2 bytes for up to 2^16, 4 bytes otherwise.
func WidthForCardinality(dictionarySize int) int {
	switch {
	case dictionarySize <= 1<<8:
		return 1
	case dictionarySize <= 1<<16:
		return 2
	default:
		return 4
	}
}

// New allocates an AttributeVector of the given length, with lane width
// chosen for a dictionary of dictionarySize entries.
func New(length, dictionarySize int) AttributeVector {
	switch WidthForCardinality(dictionarySize) {
	case 1:
		return &vec8{data: make([]uint8, length)}
	case 2:
		return &vec16{data: make([]uint16, length)}
	default:
		return &vec32{data: make([]uint32, length)}
	}
}

type vec8 struct{ data []uint8 }

func (v *vec8) Len() int { return len(v.data) }
func (v *vec8) Width() int { return 1 }
func (v *vec8) Get(pos int) (ids.ValueID, error) {
	if pos < 0 || pos >= len(v.data) {
		return 0, errors.Wrapf(ErrOutOfRange, "pos %d, len %d", pos, len(v.data))
	}
	return ids.ValueID(v.data[pos]), nil
}
func (v *vec8) Set(pos int, id ids.ValueID) error {
	if pos < 0 || pos >= len(v.data) {
		return errors.Wrapf(ErrOutOfRange, "pos %d, len %d", pos, len(v.data))
	}
	v.data[pos] = uint8(id)
	return nil
}

type vec16 struct{ data []uint16 }

func (v *vec16) Len() int { return len(v.data) }
func (v *vec16) Width() int { return 2 }
func (v *vec16) Get(pos int) (ids.ValueID, error) {
	if pos < 0 || pos >= len(v.data) {
		return 0, errors.Wrapf(ErrOutOfRange, "pos %d, len %d", pos, len(v.data))
	}
	return ids.ValueID(v.data[pos]), nil
}
func (v *vec16) Set(pos int, id ids.ValueID) error {
	if pos < 0 || pos >= len(v.data) {
		return errors.Wrapf(ErrOutOfRange, "pos %d, len %d", pos, len(v.data))
	}
	v.data[pos] = uint16(id)
	return nil
}

type vec32 struct{ data []uint32 }

func (v *vec32) Len() int { return len(v.data) }
func (v *vec32) Width() int { return 4 }
func (v *vec32) Get(pos int) (ids.ValueID, error) {
	if pos < 0 || pos >= len(v.data) {
		return 0, errors.Wrapf(ErrOutOfRange, "pos %d, len %d", pos, len(v.data))
	}
	return ids.ValueID(v.data[pos]), nil
}
func (v *vec32) Set(pos int, id ids.ValueID) error {
	if pos < 0 || pos >= len(v.data) {
		return errors.Wrapf(ErrOutOfRange, "pos %d, len %d", pos, len(v.data))
	}
	v.data[pos] = uint32(id)
	return nil
}
