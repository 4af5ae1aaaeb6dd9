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

package types

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTypeMismatch is returned whenever a Variant's active type tag does
// not match the type an operation requires of it (column append, search
// value vs. column, Cast and the typed accessors).
var ErrTypeMismatch = errors.New("types: type mismatch")

// Variant is a tagged union capable of holding exactly one cell value of
// any ColumnType. It is the engine's equivalent of AllTypeVariant.
type Variant struct {
	tag ColumnType
	i32 int32
	i64 int64
	f32 float32
	f64 float64
	str string
}

func NewInt32(v int32) Variant    { return Variant{tag: Int32Type, i32: v} }
func NewInt64(v int64) Variant    { return Variant{tag: Int64Type, i64: v} }
func NewFloat(v float32) Variant  { return Variant{tag: FloatType, f32: v} }
func NewDouble(v float64) Variant { return Variant{tag: DoubleType, f64: v} }
func NewString(v string) Variant  { return Variant{tag: StringType, str: v} }

// Type reports the Variant's active tag.
func (v Variant) Type() ColumnType { return v.tag }

func (v Variant) String() string {
	switch v.tag {
	case Int32Type:
		return fmt.Sprintf("%d", v.i32)
	case Int64Type:
		return fmt.Sprintf("%d", v.i64)
	case FloatType:
		return fmt.Sprintf("%g", v.f32)
	case DoubleType:
		return fmt.Sprintf("%g", v.f64)
	case StringType:
		return v.str
	default:
		return "<invalid>"
	}
}

// Int32 returns the active payload as an int32, failing if the Variant's
// tag is not Int32Type.
func (v Variant) Int32() (int32, error) {
	if v.tag != Int32Type {
		return 0, errors.Wrapf(ErrTypeMismatch, "want %s, have %s", Int32Type, v.tag)
	}
	return v.i32, nil
}

// Int64 returns the active payload as an int64, failing if the Variant's
// tag is not Int64Type.
func (v Variant) Int64() (int64, error) {
	if v.tag != Int64Type {
		return 0, errors.Wrapf(ErrTypeMismatch, "want %s, have %s", Int64Type, v.tag)
	}
	return v.i64, nil
}

// Float returns the active payload as a float32, failing if the Variant's
// tag is not FloatType.
func (v Variant) Float() (float32, error) {
	if v.tag != FloatType {
		return 0, errors.Wrapf(ErrTypeMismatch, "want %s, have %s", FloatType, v.tag)
	}
	return v.f32, nil
}

// Double returns the active payload as a float64, failing if the
// Variant's tag is not DoubleType.
func (v Variant) Double() (float64, error) {
	if v.tag != DoubleType {
		return 0, errors.Wrapf(ErrTypeMismatch, "want %s, have %s", DoubleType, v.tag)
	}
	return v.f64, nil
}

// Str returns the active payload as a string, failing if the Variant's
// tag is not StringType.
func (v Variant) Str() (string, error) {
	if v.tag != StringType {
		return "", errors.Wrapf(ErrTypeMismatch, "want %s, have %s", StringType, v.tag)
	}
	return v.str, nil
}

// Cast converts v's active payload into the element type named by want,
// failing with ErrTypeMismatch if the tags disagree. Cast never coerces
// between types (an Int32Type Variant cannot Cast to Int64Type); it only
// asserts that v already carries the requested type.
func (v Variant) Cast(want ColumnType) (Variant, error) {
	if v.tag != want {
		return Variant{}, errors.Wrapf(ErrTypeMismatch, "want %s, have %s", want, v.tag)
	}
	return v, nil
}

// As extracts v's payload as the generic element type T, failing if T's
// ColumnType does not match v's tag. It is the generic counterpart to the
// typed accessors (Int32, Str, ...) used by code that is itself generic
// over types.Element.
func As[T Element](v Variant) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int32:
		x, err := v.Int32()
		return any(x).(T), err
	case int64:
		x, err := v.Int64()
		return any(x).(T), err
	case float32:
		x, err := v.Float()
		return any(x).(T), err
	case float64:
		x, err := v.Double()
		return any(x).(T), err
	case string:
		x, err := v.Str()
		return any(x).(T), err
	default:
		return zero, errors.Wrapf(ErrTypeMismatch, "unsupported element type %T", zero)
	}
}

// From wraps a raw Go value of element type T into a Variant carrying the
// matching ColumnType tag.
func From[T Element](x T) Variant {
	switch v := any(x).(type) {
	case int32:
		return NewInt32(v)
	case int64:
		return NewInt64(v)
	case float32:
		return NewFloat(v)
	case float64:
		return NewDouble(v)
	case string:
		return NewString(v)
	default:
		panic(fmt.Sprintf("types: unreachable element type %T", x))
	}
}
