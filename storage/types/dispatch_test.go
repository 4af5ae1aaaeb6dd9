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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nameVisitor struct{}

func (nameVisitor) VisitInt32() (string, error)  { return "int32", nil }
func (nameVisitor) VisitInt64() (string, error)  { return "int64", nil }
func (nameVisitor) VisitFloat() (string, error)  { return "float", nil }
func (nameVisitor) VisitDouble() (string, error) { return "double", nil }
func (nameVisitor) VisitString() (string, error) { return "string", nil }

func TestDispatchResolvesEveryType(t *testing.T) {
	cases := map[ColumnType]string{
		Int32Type:  "int32",
		Int64Type:  "int64",
		FloatType:  "float",
		DoubleType: "double",
		StringType: "string",
	}
	for ct, want := range cases {
		got, err := Dispatch[string](ct, nameVisitor{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDispatchUnknownType(t *testing.T) {
	_, err := Dispatch[string](InvalidType, nameVisitor{})
	assert.True(t, errors.Is(err, ErrUnknownType))
}
