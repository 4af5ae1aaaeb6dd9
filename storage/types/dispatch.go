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

import "github.com/pkg/errors"

// Visitor is implemented by callers of Dispatch. Each method is the
// compile-time-specialized code path for one element type; Dispatch picks
// exactly one based on a runtime ColumnType tag, so a caller never needs
// a type switch or reflection of its own. R is typically a Segment, a
// comparator, or some other value the caller builds generically over
// types.Element at each call site.
type Visitor[R any] interface {
	VisitInt32() (R, error)
	VisitInt64() (R, error)
	VisitFloat() (R, error)
	VisitDouble() (R, error)
	VisitString() (R, error)
}

// Dispatch turns a runtime ColumnType into a call against the matching
// Visitor method, replacing the reflection a generic "switch on type"
// would otherwise need. It fails with ErrUnknownType if t is outside the
// fixed set.
func Dispatch[R any](t ColumnType, v Visitor[R]) (R, error) {
	switch t {
	case Int32Type:
		return v.VisitInt32()
	case Int64Type:
		return v.VisitInt64()
	case FloatType:
		return v.VisitFloat()
	case DoubleType:
		return v.VisitDouble()
	case StringType:
		return v.VisitString()
	default:
		var zero R
		return zero, errors.Wrapf(ErrUnknownType, "tag %d", t)
	}
}
