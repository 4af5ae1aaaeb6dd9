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

// Package operator implements the pipeline node framework the core's
// scans are built on: an abstract node with up to two inputs and a
// one-shot, cached execute, plus the GetTable and TableScan operators
// themselves.
package operator

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dolthub/colstore/storage/table"
)

// ErrNotExecuted is returned by Output before Execute has run.
var ErrNotExecuted = errors.New("operator: output requested before execute")

// ErrNoInput is returned by LeftInputTable/RightInputTable when the
// corresponding input operator is nil.
var ErrNoInput = errors.New("operator: no such input")

// Operator is the capability every pipeline node exposes: run once,
// yield a table.
type Operator interface {
	Execute() error
	Output() (*table.Table, error)
}

// onExecuter is implemented by every concrete operator type. Base.Execute
// calls into it exactly once per operator instance; this is the "self"
// half of the template-method pattern C++ would express with a virtual
// _on_execute -- Go has no virtual dispatch through an embedded struct,
// so the concrete type hands Base a reference to itself at construction.
type onExecuter interface {
	onExecute() (*table.Table, error)
}

// Base is embedded by every concrete operator. It owns up to two input
// operators and caches the result of the first Execute call.
type Base struct {
	self        onExecuter
	left, right Operator
	logger      *zap.Logger

	executed bool
	output   *table.Table
}

// NewBase wires self (the concrete operator embedding this Base) and its
// 0-2 inputs. Either input may be nil. A nil logger is replaced with a
// no-op one.
func NewBase(self onExecuter, left, right Operator, logger *zap.Logger) Base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Base{self: self, left: left, right: right, logger: logger}
}

// Execute runs the operator's onExecute once and caches its output; later
// calls are no-ops that reuse the cached output. A failed run caches
// nothing, so a later call runs onExecute again.
func (b *Base) Execute() error {
	if b.executed {
		return nil
	}
	out, err := b.self.onExecute()
	if err != nil {
		return err
	}
	b.output = out
	b.executed = true
	return nil
}

// Output returns the cached result of Execute, failing if Execute has not
// run yet.
func (b *Base) Output() (*table.Table, error) {
	if !b.executed {
		return nil, ErrNotExecuted
	}
	return b.output, nil
}

// LeftInputTable returns the left input operator's cached output, failing
// if there is no left input or it has not executed.
func (b *Base) LeftInputTable() (*table.Table, error) {
	if b.left == nil {
		return nil, errors.Wrap(ErrNoInput, "left")
	}
	return b.left.Output()
}

// RightInputTable returns the right input operator's cached output,
// failing if there is no right input or it has not executed.
func (b *Base) RightInputTable() (*table.Table, error) {
	if b.right == nil {
		return nil, errors.Wrap(ErrNoInput, "right")
	}
	return b.right.Output()
}
