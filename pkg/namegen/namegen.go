// Package namegen synthesizes default output names: extension
// rewriting, the unique container token for fan-out runs and the
// bounded collision-avoidance loop.
package namegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arthur-debert/pathpair/pkg/errors"
	"github.com/arthur-debert/pathpair/pkg/logging"
	"github.com/arthur-debert/pathpair/pkg/types"
)

// maxAttempts bounds the collision-avoidance loop so synthesis stays
// total instead of spinning on a hostile directory.
const maxAttempts = 64

// Synthesizer produces collision-free output names. Names issued
// through one Synthesizer are remembered for the lifetime of the
// resolution run, so a single run never yields the same output path
// twice even before anything is written to disk.
type Synthesizer struct {
	fsys   types.FS
	issued map[string]bool
}

// New creates a synthesizer backed by fsys.
func New(fsys types.FS) *Synthesizer {
	return &Synthesizer{
		fsys:   fsys,
		issued: make(map[string]bool),
	}
}

// ReplaceExt swaps name's extension for ext. An empty ext strips the
// extension; ext may be given with or without the leading dot.
func ReplaceExt(name, ext string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if ext == "" {
		return stem
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return stem + ext
}

// Token returns a short time-derived identifier with a random tail,
// e.g. "A250828-1745-3f2c". Uniqueness is not assumed: callers always
// collision-check the resulting name.
func Token() string {
	id := uuid.NewString()
	return fmt.Sprintf("%s-%s", time.Now().Format("A060102-1504"), id[:4])
}

// UniqueFile returns a name for dir/name that collides with nothing on
// disk and nothing already issued in this run. The first free candidate
// wins: name itself, then stem-<token>.ext, then numbered variants of
// that. Fails with NAME_EXHAUSTED once the attempt budget is spent.
func (s *Synthesizer) UniqueFile(dir, name string) (string, error) {
	if free, err := s.claim(dir, name); err != nil {
		return "", err
	} else if free {
		return name, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	tagged := fmt.Sprintf("%s-%s%s", stem, Token(), ext)

	candidate := tagged
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if free, err := s.claim(dir, candidate); err != nil {
			return "", err
		} else if free {
			if attempt > 1 {
				logger := logging.GetLogger("namegen")
				logger.Debug().
					Str("name", name).
					Str("candidate", candidate).
					Int("attempts", attempt).
					Msg("resolved name collision")
			}
			return candidate, nil
		}
		taggedExt := filepath.Ext(tagged)
		candidate = fmt.Sprintf("%s-%d%s",
			strings.TrimSuffix(tagged, taggedExt), attempt+1, taggedExt)
	}

	return "", errors.Newf(errors.ErrNameExhausted,
		"no free name found for %q in %q after %d attempts", name, dir, maxAttempts)
}

// UniqueContainer returns a directory name under parent derived from
// base plus a token, guaranteed free at synthesis time. The directory
// itself is not created here.
func (s *Synthesizer) UniqueContainer(parent, base string) (string, error) {
	candidate := fmt.Sprintf("%s-%s", base, Token())
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if free, err := s.claim(parent, candidate); err != nil {
			return "", err
		} else if free {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%s", base, Token())
	}

	return "", errors.Newf(errors.ErrNameExhausted,
		"no free container name found for %q in %q after %d attempts", base, parent, maxAttempts)
}

// ClaimExplicit records an externally chosen name (an explicit
// container override) so later synthesis avoids it, and reports whether
// it was free on disk.
func (s *Synthesizer) ClaimExplicit(parent, name string) (bool, error) {
	return s.claim(parent, name)
}

// claim checks dir/name against disk and the issued set, recording it
// as taken when free. A stat failure other than "does not exist" aborts
// synthesis rather than risking a silent overwrite.
func (s *Synthesizer) claim(dir, name string) (bool, error) {
	full := filepath.Join(dir, name)
	if s.issued[full] {
		return false, nil
	}
	if _, err := s.fsys.Lstat(full); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrClassification,
			"unable to inspect candidate %q", full)
	}
	s.issued[full] = true
	return true, nil
}
