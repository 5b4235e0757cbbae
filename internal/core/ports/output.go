package ports

import "go.trai.ch/casgen/internal/core/domain"

// Output is the destination directory of a generation run. All names are
// relative to its root.
//
//go:generate go run go.uber.org/mock/mockgen -source=output.go -destination=mocks/mock_output.go -package=mocks
type Output interface {
	// WriteFile creates or truncates the named file and writes data to it.
	WriteFile(name string, data []byte) error

	// MkdirAll creates the directory. An existing directory is not an error.
	MkdirAll(dir string) error

	// Symlink creates link pointing at target. The target is stored verbatim.
	Symlink(target, link string) error

	// Snapshot lists every file and symlink below the root, sorted by path.
	Snapshot() ([]domain.Artifact, error)
}

// OutputFactory opens generation destinations.
type OutputFactory interface {
	// Open returns the Output rooted at dir, which must be an existing directory.
	Open(dir string) (Output, error)

	// InMemory returns an empty Output that never touches the disk.
	InMemory() Output
}
