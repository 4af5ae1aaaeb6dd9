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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/storage/table"
)

// countingOp is a minimal onExecuter that counts how many times onExecute
// actually ran, to assert Execute's one-shot caching.
type countingOp struct {
	Base
	runs int
	out  *table.Table
}

func newCountingOp() *countingOp {
	c := &countingOp{out: table.New(10)}
	c.Base = NewBase(c, nil, nil, nil)
	return c
}

func (c *countingOp) onExecute() (*table.Table, error) {
	c.runs++
	return c.out, nil
}

func TestExecuteRunsOnce(t *testing.T) {
	op := newCountingOp()
	require.NoError(t, op.Execute())
	require.NoError(t, op.Execute())
	require.NoError(t, op.Execute())
	assert.Equal(t, 1, op.runs)

	out, err := op.Output()
	require.NoError(t, err)
	assert.Same(t, op.out, out)
}

func TestOutputBeforeExecuteFails(t *testing.T) {
	op := newCountingOp()
	_, err := op.Output()
	assert.True(t, errors.Is(err, ErrNotExecuted))
}

func TestNoInputFails(t *testing.T) {
	b := NewBase(nil, nil, nil, nil)
	_, err := b.LeftInputTable()
	assert.True(t, errors.Is(err, ErrNoInput))
	_, err = b.RightInputTable()
	assert.True(t, errors.Is(err, ErrNoInput))
}
