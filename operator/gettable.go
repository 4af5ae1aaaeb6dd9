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
	"go.uber.org/zap"

	"github.com/dolthub/colstore/storage/registry"
	"github.com/dolthub/colstore/storage/table"
)

// GetTable is the pipeline's only leaf operator: it resolves a table by
// name from a registry.Registry.
type GetTable struct {
	Base
	name     string
	registry *registry.Registry
}

// NewGetTable returns a GetTable operator that, on Execute, resolves name
// from reg.
func NewGetTable(name string, reg *registry.Registry, logger *zap.Logger) *GetTable {
	g := &GetTable{name: name, registry: reg}
	g.Base = NewBase(g, nil, nil, logger)
	return g
}

func (g *GetTable) onExecute() (*table.Table, error) {
	t, err := g.registry.Get(g.name)
	if err != nil {
		return nil, errors.Wrapf(err, "get table %q", g.name)
	}
	return t, nil
}
