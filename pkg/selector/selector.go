// Package selector enumerates the directory entries that participate
// in a fan-out resolution.
package selector

import (
	"sort"

	"github.com/arthur-debert/pathpair/pkg/errors"
	"github.com/arthur-debert/pathpair/pkg/logging"
	"github.com/arthur-debert/pathpair/pkg/pattern"
	"github.com/arthur-debert/pathpair/pkg/types"
)

// Selector lists the direct child files of one directory, optionally
// filtered by a match expression. Nothing is cached: each List call
// re-reads the directory, so a restart reflects current contents.
type Selector struct {
	fsys types.FS
	dir  string
	expr *pattern.Expression
}

// New creates a selector over dir. expr may be nil, in which case every
// direct child file is selected.
func New(fsys types.FS, dir string, expr *pattern.Expression) *Selector {
	return &Selector{fsys: fsys, dir: dir, expr: expr}
}

// List returns the names of the matching direct child files, sorted
// ascending for deterministic pairing. Subdirectories are never
// recursed into.
func (s *Selector) List() ([]string, error) {
	entries, err := s.fsys.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrClassification,
			"unable to list directory %q", s.dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if s.expr != nil && !s.expr.Match(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	logger := logging.GetLogger("selector")
	logger.Debug().
		Str("dir", s.dir).
		Int("selected", len(names)).
		Int("total", len(entries)).
		Msg("selected directory entries")

	return names, nil
}
