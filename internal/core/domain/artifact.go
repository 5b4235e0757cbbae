package domain

// Artifact is a file or symlink found in a generation destination.
type Artifact struct {
	Path string
	// Content is set for regular files.
	Content []byte
	// LinkTarget is set for symlinks.
	LinkTarget string
	IsLink     bool
}
