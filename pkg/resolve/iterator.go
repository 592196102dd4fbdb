package resolve

import (
	"path/filepath"

	"github.com/arthur-debert/pathpair/pkg/errors"
	"github.com/arthur-debert/pathpair/pkg/namegen"
	"github.com/arthur-debert/pathpair/pkg/types"
)

// Iterator yields the resolved locator pairs one at a time, in the
// bufio.Scanner idiom:
//
//	it, err := cfg.Parse(src, dst)
//	for it.Next() {
//	    pair := it.Pair()
//	}
//	if err := it.Err(); err != nil { ... }
//
// Name synthesis and collision checks run per element, so a fan-out
// over a large directory does not pay for entries the caller never
// consumes. An Iterator is not restartable; call Parse again for a
// fresh run. The pairing is not guaranteed stable if the directory
// mutates during iteration.
type Iterator struct {
	fsys types.FS
	ext  string
	syn  *namegen.Synthesizer
	plan *plan

	idx           int
	cur           types.Pair
	err           error
	done          bool
	containerMade bool
}

// Next advances to the next pair. It returns false when the sequence is
// exhausted or a per-entry failure occurred; check Err afterwards.
func (it *Iterator) Next() bool {
	if it.done || it.err != nil {
		return false
	}

	switch it.plan.kind {
	case planSingle:
		it.cur = types.Pair{In: it.plan.in, Out: it.plan.out}
		it.done = true
		return true

	case planFanOut:
		if it.idx >= len(it.plan.entries) {
			it.done = true
			return false
		}
		if err := it.EnsureContainer(); err != nil {
			it.err = err
			return false
		}

		name := it.plan.entries[it.idx]
		it.idx++

		outName := namegen.ReplaceExt(name, it.ext)
		if it.plan.makeContainer {
			unique, err := it.syn.UniqueFile(it.plan.dstDir, outName)
			if err != nil {
				it.err = err
				return false
			}
			outName = unique
		}

		it.cur = types.Pair{
			In:  types.NewFileLocator(filepath.Join(it.plan.srcDir, name)),
			Out: types.NewFileLocator(filepath.Join(it.plan.dstDir, outName)),
		}
		return true

	default:
		it.err = errors.Newf(errors.ErrInternal, "unhandled plan kind %d", it.plan.kind)
		return false
	}
}

// Pair returns the pair produced by the last successful Next call.
func (it *Iterator) Pair() types.Pair {
	return it.cur
}

// Err returns the first failure encountered during iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Batch reports whether this resolution fans out over a directory.
func (it *Iterator) Batch() bool {
	return it.plan.kind == planFanOut
}

// ContainerDir returns the synthesized container directory of a fan-out
// without a given DST, or "" for every other strategy.
func (it *Iterator) ContainerDir() string {
	if it.plan.kind == planFanOut && it.plan.makeContainer {
		return it.plan.dstDir
	}
	return ""
}

// EnsureContainer creates the synthesized container directory if this
// resolution needs one and it was not created yet. Next calls it before
// yielding the first fan-out pair, so output locators are immediately
// usable; callers that want the directory earlier may call it
// themselves. Idempotent.
func (it *Iterator) EnsureContainer() error {
	if !it.plan.makeContainer || it.containerMade {
		return nil
	}
	if err := it.fsys.MkdirAll(it.plan.dstDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrInternal,
			"unable to create container directory %q", it.plan.dstDir)
	}
	it.containerMade = true
	return nil
}
