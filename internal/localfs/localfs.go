// Package localfs provides a go-billy-backed view of the local disk.
//
// Unlike a chrooted billy filesystem, relative names are resolved against
// the process working directory before they reach billy, so callers can pass
// the same paths they would pass to the os package.
package localfs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/fs/core"
)

// FS wraps billy's osfs rooted at "/".
type FS struct {
	bfs billy.Filesystem
}

// New creates a local filesystem rooted at the filesystem root.
func New() *FS {
	return &FS{bfs: osfs.New("/")}
}

// Unwrap returns the underlying billy.Filesystem.
func (l *FS) Unwrap() billy.Filesystem {
	return l.bfs
}

// resolve makes name absolute relative to the working directory and
// converts it to forward slashes.
func resolve(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", &fs.PathError{Op: "abs", Path: name, Err: err}
	}
	return filepath.ToSlash(abs), nil
}

// Open opens the named file for reading.
func (l *FS) Open(name string) (fs.File, error) {
	p, err := resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := l.bfs.Open(p)
	if err != nil {
		return nil, err
	}
	return &File{file: f, fs: l.bfs, name: p}, nil
}

// Stat returns file metadata for the named file.
func (l *FS) Stat(name string) (fs.FileInfo, error) {
	p, err := resolve(name)
	if err != nil {
		return nil, err
	}
	return l.bfs.Stat(p)
}

// OpenFile opens a file with the specified flags and permissions.
func (l *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	p, err := resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := l.bfs.OpenFile(p, flag, perm)
	if err != nil {
		return nil, err
	}
	writable := flag&(os.O_WRONLY|os.O_RDWR) != 0
	return &File{file: f, fs: l.bfs, name: p, writable: writable}, nil
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (l *FS) MkdirAll(path string, perm fs.FileMode) error {
	p, err := resolve(path)
	if err != nil {
		return err
	}
	return l.bfs.MkdirAll(p, perm)
}

// Remove removes the named file or empty directory.
func (l *FS) Remove(name string) error {
	p, err := resolve(name)
	if err != nil {
		return err
	}
	return l.bfs.Remove(p)
}

// Exists reports whether the named file or directory exists.
func (l *FS) Exists(name string) (bool, error) {
	_, err := l.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
