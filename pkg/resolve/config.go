package resolve

import (
	"os"

	"github.com/arthur-debert/pathpair/pkg/classify"
	"github.com/arthur-debert/pathpair/pkg/errors"
	"github.com/arthur-debert/pathpair/pkg/filesystem"
	"github.com/arthur-debert/pathpair/pkg/logging"
	"github.com/arthur-debert/pathpair/pkg/namegen"
	"github.com/arthur-debert/pathpair/pkg/pattern"
	"github.com/arthur-debert/pathpair/pkg/types"
)

// Config holds the immutable resolution settings. Construct it with
// New, adjust fields, then call Parse. A Config owns no filesystem
// handles and may be reused for any number of Parse calls.
type Config struct {
	// DefaultExtension is applied whenever an output name must be
	// synthesized. May be empty, with or without the leading dot.
	DefaultExtension string

	// Match optionally restricts which directory entries participate
	// in a fan-out.
	Match *pattern.Expression

	// Container overrides the synthesized fan-out container name. It
	// is still collision-checked: a taken name is disambiguated, never
	// reused.
	Container string

	// Stdio and naming gates. New enables stdio and auto-naming;
	// in-place pairing stays disabled since reading and creating the
	// same file at once loses data.
	AllowStdin   bool
	AllowStdout  bool
	AllowInplace bool
	AutoNameFile bool
	AutoNameDir  bool

	// WorkDir is where stream input lands when no DST is given.
	// Empty means the process working directory.
	WorkDir string

	// FS is the filesystem the engine resolves against. Nil means the
	// real one.
	FS types.FS
}

// New returns a Config with the default gates: stdio allowed,
// auto-naming allowed, in-place disallowed.
func New(defaultExtension string) *Config {
	return &Config{
		DefaultExtension: defaultExtension,
		AllowStdin:       true,
		AllowStdout:      true,
		AutoNameFile:     true,
		AutoNameDir:      true,
	}
}

// Parse resolves the SRC and DST specifiers into an Iterator of
// locator pairs. An empty dst means "no DST given", which is distinct
// from a DST that is given but does not exist yet. The stdio sentinel
// "-" designates stdin for src and stdout for dst.
//
// Shape-level and config-level failures are reported here; per-entry
// failures during a fan-out surface through Iterator.Err.
func (c *Config) Parse(src, dst string) (*Iterator, error) {
	fsys := c.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	srcShape, err := classify.Classify(fsys, src)
	if err != nil {
		return nil, err
	}

	dstGiven := dst != ""
	dstShape := types.ShapeMissing
	if dstGiven {
		if dstShape, err = classify.Classify(fsys, dst); err != nil {
			return nil, err
		}
	}

	logger := logging.GetLogger("resolve")
	logger.Debug().
		Str("src", src).
		Str("srcShape", srcShape.String()).
		Str("dst", dst).
		Str("dstShape", dstShape.String()).
		Bool("dstGiven", dstGiven).
		Msg("classified SRC and DST")

	syn := namegen.New(fsys)
	pl, err := c.plan(fsys, syn, src, dst, srcShape, dstShape, dstGiven)
	if err != nil {
		return nil, err
	}

	return &Iterator{
		fsys: fsys,
		ext:  c.DefaultExtension,
		syn:  syn,
		plan: pl,
	}, nil
}

// workDir resolves the directory used for stream input without a DST.
func (c *Config) workDir() (string, error) {
	if c.WorkDir != "" {
		return c.WorkDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrClassification,
			"unable to determine working directory")
	}
	return wd, nil
}
