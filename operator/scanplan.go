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

	"github.com/dolthub/colstore/storage/ids"
)

// scanOutcome is the three-way result of translating a value comparison
// into the dictionary's value-id domain: either every row in the segment
// matches, none does, or the segment must actually be scanned against a
// translated value-id comparison. Modeling this as an enum rather than a
// signed out-of-band sentinel integer (-2 meaning "empty", say) keeps the
// three cases named and distinct from every real compare value, so the
// switch that consumes it never has to decode a magic number.
type scanOutcome int

const (
	scanNormal scanOutcome = iota
	scanEmpty
	scanSelectAll
)

// dictionaryScanPlan translates a value-domain comparison (op against the
// original search value) into a value-id-domain comparison against a
// dictionary segment's attribute vector, given the lower and upper bounds
// of the search value within that dictionary. cmp is signed, so the lb-1
// cases below are computed without unsigned wraparound; the lb == 0 cases
// are answered by a short-circuit before lb-1 is reached, so cmp is never
// negative.
//
// lb is the first value-id whose dictionary entry is >= the search value;
// ub is the first value-id whose entry is > it. lb == ub means the search
// value is absent from the dictionary. lb == ids.InvalidValueID means the
// search value sorts after every dictionary entry; ub == ids.InvalidValueID
// means no entry is greater than it (it may equal the last entry).
func dictionaryScanPlan(op ScanType, lb, ub ids.ValueID) (scanOutcome, int64, ScanType, error) {
	switch op {
	case Equals:
		if lb == ub {
			return scanEmpty, 0, op, nil
		}
		return scanNormal, int64(lb), Equals, nil

	case NotEquals:
		if lb == ub {
			return scanSelectAll, 0, op, nil
		}
		return scanNormal, int64(lb), NotEquals, nil

	case GreaterThanEquals:
		if lb == ids.InvalidValueID {
			return scanEmpty, 0, op, nil
		}
		if lb == 0 {
			return scanSelectAll, 0, op, nil
		}
		return scanNormal, int64(lb), GreaterThanEquals, nil

	case GreaterThan:
		switch {
		case lb == ub && lb == 0:
			return scanSelectAll, 0, op, nil
		case lb == ub && lb == ids.InvalidValueID:
			return scanEmpty, 0, op, nil
		case lb == ub:
			return scanNormal, int64(lb) - 1, GreaterThan, nil
		default:
			return scanNormal, int64(lb), GreaterThan, nil
		}

	case LessThanEquals:
		switch {
		case lb == ub && lb == 0:
			return scanEmpty, 0, op, nil
		case lb == ub && lb == ids.InvalidValueID:
			return scanSelectAll, 0, op, nil
		case lb == ub:
			return scanNormal, int64(lb) - 1, LessThanEquals, nil
		default:
			return scanNormal, int64(lb), LessThanEquals, nil
		}

	case LessThan:
		switch {
		case lb == ub && lb == 0:
			return scanEmpty, 0, op, nil
		case lb == ub && lb == ids.InvalidValueID:
			return scanSelectAll, 0, op, nil
		default:
			return scanNormal, int64(lb), LessThan, nil
		}

	default:
		return scanEmpty, 0, op, errors.Wrapf(ErrUnimplementedScan, "scan type %d", op)
	}
}
