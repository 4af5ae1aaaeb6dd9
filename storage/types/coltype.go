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

// Package types is the closed set of column element types the storage
// engine understands, plus Variant, a tagged value that can hold a single
// cell of any one of them.
package types

import (
	"github.com/pkg/errors"
)

// ColumnType is a fixed, closed tag naming one of the engine's element
// types. Unlike the interpreter-heavy type systems of general-purpose
// databases, this set never grows at runtime: new types require a new
// ColumnType constant and a new case everywhere Dispatch is used.
type ColumnType uint8

const (
	// InvalidType is the zero value; it is never a valid column type.
	InvalidType ColumnType = iota
	Int32Type
	Int64Type
	FloatType
	DoubleType
	StringType
)

// ErrUnknownType is returned by ParseColumnType for any tag outside the
// fixed set, and by Dispatch for any ColumnType outside the fixed set.
var ErrUnknownType = errors.New("types: unknown column type")

func (t ColumnType) String() string {
	switch t {
	case Int32Type:
		return "int"
	case Int64Type:
		return "long"
	case FloatType:
		return "float"
	case DoubleType:
		return "double"
	case StringType:
		return "string"
	default:
		return "invalid"
	}
}

// ParseColumnType resolves a string type tag (as it would appear in a
// schema definition) to a ColumnType, failing on anything outside the
// fixed set.
func ParseColumnType(tag string) (ColumnType, error) {
	switch tag {
	case "int", "int32":
		return Int32Type, nil
	case "long", "int64":
		return Int64Type, nil
	case "float":
		return FloatType, nil
	case "double":
		return DoubleType, nil
	case "string":
		return StringType, nil
	default:
		return InvalidType, errors.Wrapf(ErrUnknownType, "tag %q", tag)
	}
}

// Element is the type constraint satisfied by every concrete Go type a
// ColumnType can map to. ValueSegment[T] and DictionarySegment[T] are
// instantiated over this constraint.
type Element interface {
	int32 | int64 | float32 | float64 | string
}
