package resio

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CopyOption controls how a copy writes its destination path.
type CopyOption int

const (
	// ReplaceExisting overwrites the destination if it already exists.
	// Without it, copying onto an existing path fails with ALREADY_EXISTS.
	ReplaceExisting CopyOption = iota + 1
)

func replaceExisting(opts []CopyOption) bool {
	for _, o := range opts {
		if o == ReplaceExisting {
			return true
		}
	}
	return false
}

// copyBytes moves src to dst in BufferSize chunks. A read of zero bytes
// without an error does not end the loop; only io.EOF does.
func copyBytes(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, BufferSize)
	var total int64
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			total += int64(w)
			if werr != nil {
				return total, werr
			}
			if w != n {
				return total, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, rerr
		}
	}
}

// create opens target for writing after making sure its parent directory
// chain exists.
func (x *IO) create(target string, flag int) (io.WriteCloser, error) {
	if err := x.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, err
	}
	return x.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|flag, 0o644)
}

func writeFlag(opts []CopyOption) int {
	if replaceExisting(opts) {
		return os.O_TRUNC
	}
	return os.O_EXCL
}

// Read resolves source and returns its entire contents.
func (x *IO) Read(source string) ([]byte, error) {
	in, err := x.Open(source)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	return x.readAll(in, source)
}

// ReadFile returns the contents of the file at path. The "classpath:"
// prefix is not interpreted.
func (x *IO) ReadFile(path string) ([]byte, error) {
	in, err := x.openFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	return x.readAll(in, path)
}

func (x *IO) readAll(in io.Reader, source string) ([]byte, error) {
	out := bytes.NewBuffer(make([]byte, 0, BufferSize))
	if _, err := copyBytes(out, in); err != nil {
		return nil, fail(err, "read", "source", source)
	}
	return out.Bytes(), nil
}

// Copy copies src to dst until EOF and returns the number of bytes copied.
// Neither stream is closed.
func (x *IO) Copy(dst io.Writer, src io.Reader) (int64, error) {
	n, err := copyBytes(dst, src)
	if err != nil {
		return n, fail(err, "copy", "source", "stream")
	}
	return n, nil
}

// CopyTo resolves source and copies it to dst. dst is not closed.
func (x *IO) CopyTo(dst io.Writer, source string) (int64, error) {
	in, err := x.Open(source)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	n, err := copyBytes(dst, in)
	if err != nil {
		return n, fail(err, "copy", "source", source)
	}
	return n, nil
}

// CopyFileTo copies the file at path to dst. The "classpath:" prefix is not
// interpreted. dst is not closed.
func (x *IO) CopyFileTo(dst io.Writer, path string) (int64, error) {
	in, err := x.openFile(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	n, err := copyBytes(dst, in)
	if err != nil {
		return n, fail(err, "copy", "source", path)
	}
	return n, nil
}

// CopyFrom copies src to the file at target, creating missing parent
// directories. src is not closed. Resources are read-only, so target is
// always a filesystem path. If the copy fails after this call created
// target, the partial file is removed; a target opened with ReplaceExisting
// is left as written.
func (x *IO) CopyFrom(src io.Reader, target string, opts ...CopyOption) (n int64, err error) {
	flag := writeFlag(opts)
	out, err := x.create(target, flag)
	if err != nil {
		return 0, fail(err, "create", "target", target)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fail(cerr, "close", "target", target)
		}
		if err != nil && flag == os.O_EXCL {
			if rerr := x.fs.Remove(target); rerr != nil {
				x.logger.Debug("failed to remove partial target", "target", target, "err", rerr)
			}
		}
	}()

	n, err = copyBytes(out, src)
	if err != nil {
		return n, fail(err, "copy", "target", target)
	}
	x.logger.Debug("copied stream", "target", target, "bytes", n)
	return n, nil
}

// CopySource resolves source and copies it to the file at target. It
// returns the size of target as reported by the filesystem once written.
func (x *IO) CopySource(source, target string, opts ...CopyOption) (int64, error) {
	if _, ok := ResourceName(source); !ok {
		if info, same := x.sameFile(source, target); same {
			return info.Size(), nil
		}
	}

	in, err := x.Open(source)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	return x.copyToPath(in, source, target, opts)
}

// CopyFile copies the file at source to the file at target. The
// "classpath:" prefix is not interpreted. It returns the size of target as
// reported by the filesystem once written.
func (x *IO) CopyFile(source, target string, opts ...CopyOption) (int64, error) {
	if info, same := x.sameFile(source, target); same {
		return info.Size(), nil
	}

	in, err := x.openFile(source)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	return x.copyToPath(in, source, target, opts)
}

// sameFile reports whether source and target name the same existing file.
// Copying a file onto itself leaves it untouched, with or without
// ReplaceExisting.
func (x *IO) sameFile(source, target string) (fs.FileInfo, bool) {
	dst, err := x.fs.Stat(target)
	if err != nil {
		return nil, false
	}
	src, err := x.fs.Stat(source)
	if err != nil || src.IsDir() {
		return nil, false
	}
	if !os.SameFile(src, dst) && absPath(source) != absPath(target) {
		return nil, false
	}
	x.logger.Debug("source and target are the same file", "source", source, "target", target)
	return dst, true
}

func absPath(name string) string {
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return filepath.Clean(name)
}

func (x *IO) copyToPath(in io.Reader, source, target string, opts []CopyOption) (int64, error) {
	if _, err := x.CopyFrom(in, target, opts...); err != nil {
		return 0, err
	}

	info, err := x.fs.Stat(target)
	if err != nil {
		return 0, fail(err, "stat", "target", target)
	}
	x.logger.Debug("copied", "source", source, "target", target, "size", info.Size())
	return info.Size(), nil
}

// Read resolves source against the default IO and returns its contents.
func Read(source string) ([]byte, error) {
	return std.Read(source)
}

// ReadFile returns the contents of the file at path.
func ReadFile(path string) ([]byte, error) {
	return std.ReadFile(path)
}

// Copy copies src to dst until EOF and returns the number of bytes copied.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	return std.Copy(dst, src)
}

// CopyTo resolves source against the default IO and copies it to dst.
func CopyTo(dst io.Writer, source string) (int64, error) {
	return std.CopyTo(dst, source)
}

// CopyFileTo copies the file at path to dst.
func CopyFileTo(dst io.Writer, path string) (int64, error) {
	return std.CopyFileTo(dst, path)
}

// CopyFrom copies src to the file at target.
func CopyFrom(src io.Reader, target string, opts ...CopyOption) (int64, error) {
	return std.CopyFrom(src, target, opts...)
}

// CopySource resolves source against the default IO and copies it to target.
func CopySource(source, target string, opts ...CopyOption) (int64, error) {
	return std.CopySource(source, target, opts...)
}

// CopyFile copies the file at source to the file at target.
func CopyFile(source, target string, opts ...CopyOption) (int64, error) {
	return std.CopyFile(source, target, opts...)
}
