package classify

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathpair/pkg/errors"
	"github.com/arthur-debert/pathpair/pkg/filesystem"
	"github.com/arthur-debert/pathpair/pkg/types"
)

func newTestFS(t *testing.T) (types.FS, afero.Fs) {
	t.Helper()
	mem := afero.NewMemMapFs()
	return filesystem.NewAferoFS(mem), mem
}

func TestClassify(t *testing.T) {
	fsys, mem := newTestFS(t)
	require.NoError(t, mem.MkdirAll("/data/photos", 0755))
	require.NoError(t, afero.WriteFile(mem, "/data/photos/a.jpg", []byte("x"), 0644))

	tests := []struct {
		name  string
		raw   string
		shape types.Shape
	}{
		{name: "stdio sentinel", raw: "-", shape: types.ShapeStream},
		{name: "existing file", raw: "/data/photos/a.jpg", shape: types.ShapeFile},
		{name: "existing directory", raw: "/data/photos", shape: types.ShapeDir},
		{name: "missing path", raw: "/data/nope", shape: types.ShapeMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := Classify(fsys, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, shape)
		})
	}
}

// faultFS fails every metadata query, standing in for permission or
// I/O errors during stat.
type faultFS struct {
	err error
}

func (f faultFS) Stat(string) (fs.FileInfo, error)      { return nil, f.err }
func (f faultFS) Lstat(string) (fs.FileInfo, error)     { return nil, f.err }
func (f faultFS) ReadDir(string) ([]fs.DirEntry, error) { return nil, f.err }
func (f faultFS) MkdirAll(string, fs.FileMode) error    { return f.err }

func TestClassify_StatFailureIsNotMissing(t *testing.T) {
	fsys := faultFS{err: fs.ErrPermission}

	_, err := Classify(fsys, "/locked/file")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrClassification))
}

func TestClassify_SentinelIgnoresFilesystem(t *testing.T) {
	// even a broken filesystem never touches the sentinel
	shape, err := Classify(faultFS{err: fs.ErrPermission}, "-")
	require.NoError(t, err)
	assert.Equal(t, types.ShapeStream, shape)
}
