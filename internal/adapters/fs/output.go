// Package fs implements the generation destination and content hashing on top of go-billy.
package fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/casgen/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Output        = (*Output)(nil)
	_ ports.OutputFactory = (*OutputFactory)(nil)
)

// Output implements ports.Output over a billy filesystem rooted at the destination.
type Output struct {
	fs billy.Filesystem
}

// NewOutput wraps fsys. Paths passed to the Output are relative to its root.
func NewOutput(fsys billy.Filesystem) *Output {
	return &Output{fs: fsys}
}

// WriteFile creates or truncates name and writes data to it.
func (o *Output) WriteFile(name string, data []byte) error {
	f, err := o.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrUnitCreateFailed.Error()), "path", name)
	}

	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrUnitWriteFailed.Error()), "path", name)
	}
	return nil
}

// MkdirAll creates dir and any missing parents.
func (o *Output) MkdirAll(dir string) error {
	if err := o.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRequiresDirFailed.Error()), "path", dir)
	}
	return nil
}

// Symlink creates link pointing at target.
func (o *Output) Symlink(target, link string) error {
	if err := o.fs.Symlink(target, link); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrSymlinkFailed.Error()), "path", link)
		return zerr.With(err, "target", target)
	}
	return nil
}

// Snapshot walks the destination and returns its files and symlinks in lexical order.
func (o *Output) Snapshot() ([]domain.Artifact, error) {
	var artifacts []domain.Artifact

	err := util.Walk(o.fs, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(filepath.ToSlash(path), "/")
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := o.fs.Readlink(path)
			if err != nil {
				return err
			}
			artifacts = append(artifacts, domain.Artifact{Path: rel, LinkTarget: target, IsLink: true})
			return nil
		}

		content, err := util.ReadFile(o.fs, path)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, domain.Artifact{Path: rel, Content: content})
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to snapshot destination")
	}

	return artifacts, nil
}

// OutputFactory implements ports.OutputFactory.
type OutputFactory struct{}

// NewOutputFactory creates a new OutputFactory.
func NewOutputFactory() *OutputFactory {
	return &OutputFactory{}
}

// Open returns an Output rooted at dir on the host filesystem.
func (f *OutputFactory) Open(dir string) (ports.Output, error) {
	info, err := osfs.Default.Stat(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputDirMissing.Error()), "path", dir)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.Wrap(domain.ErrOutputDirMissing, "destination is not a directory"), "path", dir)
	}
	return NewOutput(osfs.New(dir)), nil
}

// InMemory returns an Output backed by an empty in-memory filesystem.
func (f *OutputFactory) InMemory() ports.Output {
	return NewOutput(memfs.New())
}
