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
	"encoding/binary"
	"io"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"

	"github.com/dolthub/colstore/storage/attrvec"
	"github.com/dolthub/colstore/storage/ids"
	"github.com/dolthub/colstore/storage/types"
)

// DictionarySegment is an immutable, dictionary-compressed column
// segment: a sorted, duplicate-free dictionary of T plus an attribute
// vector of value-ids, one per row of the source segment it was built
// from.
type DictionarySegment[T types.Element] struct {
	colType    types.ColumnType
	dictionary []T
	attrs      attrvec.AttributeVector
}

// NewDictionarySegment builds a DictionarySegment from src: it
// materializes every cell, sorts and de-duplicates them into the
// dictionary, picks the narrowest attribute-vector lane width that fits
// the resulting cardinality, then binary-searches each original value
// back into the dictionary to fill the attribute vector.
func NewDictionarySegment[T types.Element](src *ValueSegment[T]) *DictionarySegment[T] {
	n := src.Len()
	values := src.Values()

	dict := make([]T, n)
	copy(dict, values)
	sort.Slice(dict, func(i, j int) bool { return dict[i] < dict[j] })
	dict = dedup(dict)

	attrs := attrvec.New(n, len(dict))
	for i, v := range values {
		id := searchEqual(dict, v)
		// Set never fails here: id is always < len(dict), which is always
		// within the lane width New chose for len(dict).
		_ = attrs.Set(i, ids.ValueID(id))
	}

	return &DictionarySegment[T]{colType: src.Type(), dictionary: dict, attrs: attrs}
}

func dedup[T comparable](sorted []T) []T {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// searchEqual returns the index of value within the sorted dictionary.
// Used only during construction, where value is guaranteed present.
func searchEqual[T types.Element](dict []T, value T) int {
	return sort.Search(len(dict), func(i int) bool { return !(dict[i] < value) })
}

func (d *DictionarySegment[T]) Len() int { return d.attrs.Len() }

func (d *DictionarySegment[T]) Type() types.ColumnType { return d.colType }

// Get returns the typed value at chunk offset i.
func (d *DictionarySegment[T]) Get(i int) (T, error) {
	var zero T
	id, err := d.attrs.Get(i)
	if err != nil {
		return zero, err
	}
	return d.dictionary[id], nil
}

// At returns the cell at offset i, boxed into a Variant.
func (d *DictionarySegment[T]) At(i int) (types.Variant, error) {
	v, err := d.Get(i)
	if err != nil {
		return types.Variant{}, err
	}
	return types.From(v), nil
}

// Append always fails: dictionary segments are immutable once built.
func (d *DictionarySegment[T]) Append(types.Variant) error {
	return errors.Wrap(ErrImmutable, "dictionary segment")
}

// ValueByValueID returns the dictionary entry named by id.
func (d *DictionarySegment[T]) ValueByValueID(id ids.ValueID) (T, error) {
	var zero T
	if int(id) < 0 || int(id) >= len(d.dictionary) {
		return zero, errors.Wrapf(ErrOutOfRange, "value id %d, dictionary size %d", id, len(d.dictionary))
	}
	return d.dictionary[id], nil
}

// LowerBound returns the first dictionary value-id whose entry is >=
// value, or ids.InvalidValueID if every entry is < value.
func (d *DictionarySegment[T]) LowerBound(value T) ids.ValueID {
	idx := sort.Search(len(d.dictionary), func(i int) bool { return !(d.dictionary[i] < value) })
	if idx == len(d.dictionary) {
		return ids.InvalidValueID
	}
	return ids.ValueID(idx)
}

// UpperBound returns the first dictionary value-id whose entry is >
// value, or ids.InvalidValueID if no entry is > value.
func (d *DictionarySegment[T]) UpperBound(value T) ids.ValueID {
	idx := sort.Search(len(d.dictionary), func(i int) bool { return value < d.dictionary[i] })
	if idx == len(d.dictionary) {
		return ids.InvalidValueID
	}
	return ids.ValueID(idx)
}

// UniqueValuesCount returns the dictionary's cardinality.
func (d *DictionarySegment[T]) UniqueValuesCount() int { return len(d.dictionary) }

// AttributeVector exposes the underlying value-id vector for scan inner
// loops that want to avoid the Get/At boxing overhead.
func (d *DictionarySegment[T]) AttributeVector() attrvec.AttributeVector { return d.attrs }

// EstimateMemoryUsage approximates the segment's resident size:
// sizeof(T) per dictionary entry plus the attribute vector's lane width
// per row. Variable-length T (string) is costed at its header size only,
// matching the original implementation's simplifying assumption.
func (d *DictionarySegment[T]) EstimateMemoryUsage() int {
	var zero T
	elemSize := int(elementSize(zero))
	return elemSize*len(d.dictionary) + d.attrs.Width()*d.attrs.Len()
}

func elementSize[T types.Element](zero T) uintptr {
	switch any(zero).(type) {
	case int32, float32:
		return 4
	case int64, float64:
		return 8
	case string:
		return 16 // string header: pointer + length
	default:
		return 0
	}
}

// Fingerprint hashes the sorted dictionary contents into a content digest
// used for debug logging and for comparing two dictionary segments'
// dictionaries without a full deep-equal. It never touches the attribute
// vector, so two segments built from the same values in different row
// order share a fingerprint.
func (d *DictionarySegment[T]) Fingerprint() uint64 {
	h := xxhash.New()
	for _, v := range d.dictionary {
		writeElement(h, v)
	}
	return h.Sum64()
}

func writeElement[T types.Element](w io.Writer, v T) {
	switch x := any(v).(type) {
	case int32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(x))
		w.Write(buf[:])
	case int64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(x))
		w.Write(buf[:])
	case float32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(x))
		w.Write(buf[:])
	case float64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		w.Write(buf[:])
	case string:
		io.WriteString(w, x)
	}
}
