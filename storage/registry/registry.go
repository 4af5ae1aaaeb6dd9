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

// Package registry is the process-wide name -> table.Table mapping the
// core's GetTable operator resolves against. It is an external
// collaborator to the storage engine core (spec's TableScan/segments/
// chunks never touch it directly) but is the ambient service every
// pipeline is built on top of, the way dolt's env/doltdb package is to
// its storage layer. Concurrent add/drop is outside its contract: callers
// serialize access the way a single query session would.
package registry

import (
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dolthub/colstore/storage/table"
)

// ErrTableExists is returned by Add when name is already registered.
var ErrTableExists = errors.New("registry: table already exists")

// ErrUnknownTable is returned by Drop/Get when name is not registered.
var ErrUnknownTable = errors.New("registry: unknown table")

// Registry is a single process-wide table catalog. The zero value is not
// usable; construct one with New.
type Registry struct {
	logger *zap.Logger
	tables map[string]*table.Table
}

// New returns an empty Registry. A nil logger is replaced with a no-op
// one, matching how table.Table treats a nil *zap.Logger.
func New(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{logger: logger, tables: make(map[string]*table.Table)}
}

// Add registers t under name, failing if name is already taken.
func (r *Registry) Add(name string, t *table.Table) error {
	if _, ok := r.tables[name]; ok {
		return errors.Wrapf(ErrTableExists, "name %q", name)
	}
	r.tables[name] = t
	r.logger.Info("registered table", zap.String("name", name), zap.String("table_id", t.ID().String()))
	return nil
}

// Drop removes name, failing if it is not registered.
func (r *Registry) Drop(name string) error {
	if _, ok := r.tables[name]; !ok {
		return errors.Wrapf(ErrUnknownTable, "name %q", name)
	}
	delete(r.tables, name)
	r.logger.Info("dropped table", zap.String("name", name))
	return nil
}

// Get resolves name to its table, failing if it is not registered.
func (r *Registry) Get(name string) (*table.Table, error) {
	t, ok := r.tables[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTable, "name %q", name)
	}
	return t, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.tables[name]
	return ok
}

// TableNames returns every registered name, sorted for stable output
// (the original's map iteration order is not reproduced intentionally;
// deterministic output is more useful to callers than byte-for-byte
// parity with an unspecified map order).
func (r *Registry) TableNames() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears every registered table.
func (r *Registry) Reset() {
	r.tables = make(map[string]*table.Table)
}

// Print writes the registry's summary in the documented format:
// "Registry #tables: N\n" followed by one "<name> #columns: C #rows: R
// #chunks: K (<memory>)\n" line per table, in TableNames order.
func (r *Registry) Print(out io.Writer) error {
	if _, err := fmt.Fprintf(out, "Registry #tables: %d\n", len(r.tables)); err != nil {
		return err
	}
	for _, name := range r.TableNames() {
		t := r.tables[name]
		stats := table.Stats{
			Name:       name,
			Columns:    t.ColumnCount(),
			Rows:       t.RowCount(),
			Chunks:     t.ChunkCount(),
			MemoryUsed: t.EstimateMemoryUsage(),
		}
		if _, err := fmt.Fprintln(out, stats.String()); err != nil {
			return err
		}
	}
	return nil
}
