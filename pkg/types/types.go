package types

import (
	"io/fs"
)

// StdioSentinel is the raw path value that designates the standard
// input or output stream instead of a filesystem path.
const StdioSentinel = "-"

// Shape classifies a raw path specifier.
type Shape int

const (
	// ShapeMissing means the path does not exist on the filesystem.
	ShapeMissing Shape = iota
	// ShapeFile means the path is an existing regular file.
	ShapeFile
	// ShapeDir means the path is an existing directory.
	ShapeDir
	// ShapeStream means the raw value is the stdio sentinel.
	ShapeStream
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeMissing:
		return "missing"
	case ShapeFile:
		return "file"
	case ShapeDir:
		return "directory"
	case ShapeStream:
		return "stream"
	default:
		return "unknown"
	}
}

// Locator is an opaque reference to either a filesystem path or a
// standard stream. A file Locator yielded by the engine points at a
// location whose preconditions were verified at yield time: the source
// exists, the destination's parent directory exists.
type Locator struct {
	path   string
	stream bool
}

// NewFileLocator returns a Locator for a filesystem path.
func NewFileLocator(path string) Locator {
	return Locator{path: path}
}

// StdinLocator returns the Locator designating standard input.
func StdinLocator() Locator {
	return Locator{stream: true}
}

// StdoutLocator returns the Locator designating standard output.
func StdoutLocator() Locator {
	return Locator{stream: true}
}

// IsStream reports whether the locator designates a standard stream.
func (l Locator) IsStream() bool {
	return l.stream
}

// Path returns the filesystem path, or "" for a stream locator.
func (l Locator) Path() string {
	return l.path
}

func (l Locator) String() string {
	if l.stream {
		return StdioSentinel
	}
	return l.path
}

// Pair is one resolved unit of work: read In, write Out.
type Pair struct {
	In  Locator
	Out Locator
}

// FS is the filesystem surface the engine depends on. Implementations
// live in pkg/filesystem; tests substitute an afero-backed one.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error
}
