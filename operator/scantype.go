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

	"github.com/dolthub/colstore/storage/types"
)

// ScanType names the comparison a TableScan applies between a column's
// cells and its search value.
type ScanType int

const (
	Equals ScanType = iota
	NotEquals
	LessThan
	LessThanEquals
	GreaterThan
	GreaterThanEquals
)

func (s ScanType) String() string {
	switch s {
	case Equals:
		return "="
	case NotEquals:
		return "!="
	case LessThan:
		return "<"
	case LessThanEquals:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanEquals:
		return ">="
	default:
		return "?"
	}
}

// ErrUnimplementedScan is returned for a ScanType discriminant outside
// the fixed set above.
var ErrUnimplementedScan = errors.New("table scan: unimplemented comparison")

// valueComparator returns the typed comparator for op: comparator(cell,
// search) reports whether cell should be selected. types.Element's union
// supports the full set of ordering operators for every member type
// (numeric and string alike), so this needs no separate "less" callback.
func valueComparator[T types.Element](op ScanType) (func(a, b T) bool, error) {
	switch op {
	case Equals:
		return func(a, b T) bool { return a == b }, nil
	case NotEquals:
		return func(a, b T) bool { return a != b }, nil
	case LessThan:
		return func(a, b T) bool { return a < b }, nil
	case LessThanEquals:
		return func(a, b T) bool { return a <= b }, nil
	case GreaterThan:
		return func(a, b T) bool { return a > b }, nil
	case GreaterThanEquals:
		return func(a, b T) bool { return a >= b }, nil
	default:
		return nil, errors.Wrapf(ErrUnimplementedScan, "scan type %d", op)
	}
}

// idComparator is the same comparator family, specialized for the
// signed value-id domain the dictionary segment scan path compares in
// (see dictionaryScanPlan -- cmp is computed as lb-1 in some cases, which
// int64 holds without wraparound).
func idComparator(op ScanType) (func(a, b int64) bool, error) {
	switch op {
	case Equals:
		return func(a, b int64) bool { return a == b }, nil
	case NotEquals:
		return func(a, b int64) bool { return a != b }, nil
	case LessThan:
		return func(a, b int64) bool { return a < b }, nil
	case LessThanEquals:
		return func(a, b int64) bool { return a <= b }, nil
	case GreaterThan:
		return func(a, b int64) bool { return a > b }, nil
	case GreaterThanEquals:
		return func(a, b int64) bool { return a >= b }, nil
	default:
		return nil, errors.Wrapf(ErrUnimplementedScan, "scan type %d", op)
	}
}
