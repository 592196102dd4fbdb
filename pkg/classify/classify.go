// Package classify determines the shape of a raw path specifier:
// missing, file, directory or stream.
package classify

import (
	"os"

	"github.com/arthur-debert/pathpair/pkg/errors"
	"github.com/arthur-debert/pathpair/pkg/logging"
	"github.com/arthur-debert/pathpair/pkg/types"
)

// Classify inspects a raw path specifier and returns its shape. The
// stdio sentinel "-" always classifies as a stream, regardless of
// filesystem state. A stat failure other than "does not exist" is
// reported as a classification error rather than mapped to missing,
// since an inaccessible path is not the same as an absent one.
func Classify(fsys types.FS, raw string) (types.Shape, error) {
	if raw == types.StdioSentinel {
		return types.ShapeStream, nil
	}

	info, err := fsys.Stat(raw)
	if err != nil {
		if os.IsNotExist(err) {
			return types.ShapeMissing, nil
		}
		return types.ShapeMissing, errors.Wrapf(err, errors.ErrClassification,
			"unable to inspect %q", raw)
	}

	shape := types.ShapeFile
	if info.IsDir() {
		shape = types.ShapeDir
	}

	logger := logging.GetLogger("classify")
	logger.Trace().
		Str("path", raw).
		Str("shape", shape.String()).
		Msg("classified path")

	return shape, nil
}
