package resolve

import (
	"path/filepath"

	"github.com/arthur-debert/pathpair/pkg/errors"
	"github.com/arthur-debert/pathpair/pkg/namegen"
	"github.com/arthur-debert/pathpair/pkg/selector"
	"github.com/arthur-debert/pathpair/pkg/types"
)

// planKind discriminates the pairing strategies.
type planKind int

const (
	planSingle planKind = iota
	planFanOut
)

// plan is the computed pairing strategy. It carries no mutable state;
// the Iterator walks it.
type plan struct {
	kind planKind

	// planSingle
	in  types.Locator
	out types.Locator

	// planFanOut
	srcDir  string
	dstDir  string
	entries []string

	// makeContainer marks a synthesized container directory that must
	// be created before the first pair lands in it. Outputs into a
	// synthesized container are collision-checked per element; outputs
	// into a user-named DST directory are not (overwrite is the
	// caller's documented policy there).
	makeContainer bool
}

// plan applies the (SRC shape x DST shape) decision table.
func (c *Config) plan(fsys types.FS, syn *namegen.Synthesizer,
	src, dst string, srcShape, dstShape types.Shape, dstGiven bool) (*plan, error) {

	if srcShape == types.ShapeMissing {
		return nil, errors.Newf(errors.ErrSourceNotFound, "SRC %q does not exist", src)
	}

	if srcShape == types.ShapeStream && !c.AllowStdin {
		return nil, errors.New(errors.ErrStdinDisallowed, "reading from stdin is disallowed")
	}
	if dstShape == types.ShapeStream && dstGiven && !c.AllowStdout {
		return nil, errors.New(errors.ErrStdoutDisallowed, "writing to stdout is disallowed")
	}

	switch srcShape {
	case types.ShapeFile:
		return c.planFile(syn, src, dst, dstShape, dstGiven)
	case types.ShapeStream:
		return c.planStream(syn, dst, dstShape, dstGiven)
	case types.ShapeDir:
		return c.planDir(fsys, syn, src, dst, dstShape, dstGiven)
	default:
		return nil, errors.Newf(errors.ErrInternal, "unhandled SRC shape %s", srcShape)
	}
}

// planFile handles a single-file SRC.
func (c *Config) planFile(syn *namegen.Synthesizer,
	src, dst string, dstShape types.Shape, dstGiven bool) (*plan, error) {

	in := types.NewFileLocator(src)

	if !dstGiven {
		if !c.AutoNameFile {
			return nil, errors.New(errors.ErrAutoNameDisabled,
				"no DST given and automatic output naming is disabled")
		}
		dir := filepath.Dir(src)
		name, err := syn.UniqueFile(dir, namegen.ReplaceExt(filepath.Base(src), c.DefaultExtension))
		if err != nil {
			return nil, err
		}
		return &plan{kind: planSingle, in: in, out: types.NewFileLocator(filepath.Join(dir, name))}, nil
	}

	switch dstShape {
	case types.ShapeStream:
		return &plan{kind: planSingle, in: in, out: types.StdoutLocator()}, nil

	case types.ShapeMissing:
		// DST named but absent: it is the exact output file path
		return &plan{kind: planSingle, in: in, out: types.NewFileLocator(dst)}, nil

	case types.ShapeFile:
		// overwrite; whether that needs confirmation is the caller's call
		return &plan{kind: planSingle, in: in, out: types.NewFileLocator(dst)}, nil

	case types.ShapeDir:
		name := namegen.ReplaceExt(filepath.Base(src), c.DefaultExtension)
		out := filepath.Join(dst, name)
		if filepath.Clean(out) == filepath.Clean(src) && !c.AllowInplace {
			// landing on the source itself would read and create the
			// same file at once; pick a fresh sibling name instead
			unique, err := syn.UniqueFile(dst, name)
			if err != nil {
				return nil, err
			}
			out = filepath.Join(dst, unique)
		}
		return &plan{kind: planSingle, in: in, out: types.NewFileLocator(out)}, nil

	default:
		return nil, errors.Newf(errors.ErrInternal, "unhandled DST shape %s", dstShape)
	}
}

// planStream handles stdin SRC. Stdio is paired like a file named
// "stdin" wherever a file name is needed.
func (c *Config) planStream(syn *namegen.Synthesizer,
	dst string, dstShape types.Shape, dstGiven bool) (*plan, error) {

	in := types.StdinLocator()

	if !dstGiven {
		if !c.AutoNameFile {
			return nil, errors.New(errors.ErrAutoNameDisabled,
				"no DST given and automatic output naming is disabled")
		}
		dir, err := c.workDir()
		if err != nil {
			return nil, err
		}
		name, err := syn.UniqueFile(dir, namegen.ReplaceExt("stdin", c.DefaultExtension))
		if err != nil {
			return nil, err
		}
		return &plan{kind: planSingle, in: in, out: types.NewFileLocator(filepath.Join(dir, name))}, nil
	}

	switch dstShape {
	case types.ShapeStream:
		return &plan{kind: planSingle, in: in, out: types.StdoutLocator()}, nil

	case types.ShapeMissing, types.ShapeFile:
		return &plan{kind: planSingle, in: in, out: types.NewFileLocator(dst)}, nil

	case types.ShapeDir:
		name, err := syn.UniqueFile(dst, namegen.ReplaceExt("stdin", c.DefaultExtension))
		if err != nil {
			return nil, err
		}
		return &plan{kind: planSingle, in: in, out: types.NewFileLocator(filepath.Join(dst, name))}, nil

	default:
		return nil, errors.Newf(errors.ErrInternal, "unhandled DST shape %s", dstShape)
	}
}

// planDir handles a directory SRC: fan-out or a structural mismatch.
func (c *Config) planDir(fsys types.FS, syn *namegen.Synthesizer,
	src, dst string, dstShape types.Shape, dstGiven bool) (*plan, error) {

	if !dstGiven {
		if !c.AutoNameDir {
			return nil, errors.New(errors.ErrAutoNameDisabled,
				"no DST given and automatic container naming is disabled")
		}
		entries, err := selector.New(fsys, src, c.Match).List()
		if err != nil {
			return nil, err
		}
		parent := filepath.Dir(filepath.Clean(src))
		container, err := c.containerName(syn, parent, filepath.Base(filepath.Clean(src)))
		if err != nil {
			return nil, err
		}
		return &plan{
			kind:          planFanOut,
			srcDir:        src,
			dstDir:        filepath.Join(parent, container),
			entries:       entries,
			makeContainer: true,
		}, nil
	}

	switch dstShape {
	case types.ShapeStream, types.ShapeFile:
		return nil, errors.Newf(errors.ErrShapeMismatch,
			"cannot write the contents of directory %q into a single output", src)

	case types.ShapeMissing:
		// a named DST directory is never created implicitly
		return nil, errors.Newf(errors.ErrDstDirNotFound,
			"DST directory %q does not exist", dst)

	case types.ShapeDir:
		if filepath.Clean(dst) == filepath.Clean(src) && !c.AllowInplace {
			return nil, errors.Newf(errors.ErrInplace,
				"SRC and DST are the same directory %q", src)
		}
		entries, err := selector.New(fsys, src, c.Match).List()
		if err != nil {
			return nil, err
		}
		return &plan{
			kind:    planFanOut,
			srcDir:  src,
			dstDir:  dst,
			entries: entries,
		}, nil

	default:
		return nil, errors.Newf(errors.ErrInternal, "unhandled DST shape %s", dstShape)
	}
}

// containerName picks the fan-out container: the explicit override when
// it is free, a disambiguated variant of it when taken, or a token-named
// sibling of the source directory.
func (c *Config) containerName(syn *namegen.Synthesizer, parent, base string) (string, error) {
	if c.Container == "" {
		return syn.UniqueContainer(parent, base)
	}
	free, err := syn.ClaimExplicit(parent, c.Container)
	if err != nil {
		return "", err
	}
	if free {
		return c.Container, nil
	}
	return syn.UniqueContainer(parent, c.Container)
}
