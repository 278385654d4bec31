package localfs

import (
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/fs/core"
)

// File adapts billy.File to core.File.
// billy.File has no Stat, so the owning filesystem is kept for it.
type File struct {
	file     billy.File
	fs       billy.Basic
	name     string
	writable bool
}

func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close closes the file. Files opened for writing are synced first when
// the backend can.
func (f *File) Close() error {
	if !f.writable {
		return f.file.Close()
	}
	if s, ok := f.file.(interface{ Sync() error }); ok {
		if err := s.Sync(); err != nil {
			_ = f.file.Close()
			return err
		}
	}
	return f.file.Close()
}

// Stat implements fs.File.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the resolved absolute name of the file.
func (f *File) Name() string {
	return f.name
}

var (
	_ core.File = (*File)(nil)
	_ fs.File   = (*File)(nil)
)
