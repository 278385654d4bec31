package resio

import (
	"io"
	"io/fs"
	"strings"

	"github.com/jmgilman/go/errors"
)

// ResourceName reports whether source refers to a bundled resource and, if
// so, returns the resource name with the "classpath:" prefix and at most one
// leading "/" removed.
func ResourceName(source string) (string, bool) {
	name, ok := strings.CutPrefix(source, ClasspathPrefix)
	if !ok {
		return "", false
	}
	return strings.TrimPrefix(name, "/"), true
}

// Open resolves source and opens it for reading. The caller must close the
// returned reader.
func (x *IO) Open(source string) (io.ReadCloser, error) {
	if name, ok := ResourceName(source); ok {
		return x.openResource(name)
	}
	return x.openFile(source)
}

// Open resolves source against the default IO and opens it for reading.
func Open(source string) (io.ReadCloser, error) {
	return std.Open(source)
}

func (x *IO) openFile(path string) (io.ReadCloser, error) {
	f, err := x.fs.Open(path)
	if err != nil {
		return nil, fail(err, "open", "path", path)
	}
	x.logger.Debug("opened file", "path", path)
	return f, nil
}

// openResource searches the registered bundles in order. A missing resource
// is reported here rather than surfacing later as a read failure.
func (x *IO) openResource(name string) (io.ReadCloser, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, errors.WithContextMap(
			errors.Newf(errors.CodeInvalidInput, "invalid resource name %q", name),
			map[string]interface{}{"op": "open", "resource": name},
		)
	}

	for i, bundle := range x.bundles() {
		f, err := bundle.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fail(err, "open", "resource", name)
		}

		info, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return nil, fail(err, "open", "resource", name)
		}
		if info.IsDir() {
			_ = f.Close()
			return nil, errors.WithContextMap(
				errors.Newf(errors.CodeInvalidInput, "resource %q is a directory", name),
				map[string]interface{}{"op": "open", "resource": name},
			)
		}

		x.logger.Debug("opened resource", "resource", name, "bundle", i)
		return f, nil
	}

	return nil, errors.WithContextMap(
		errors.Newf(errors.CodeNotFound, "resource %q not found", name),
		map[string]interface{}{"op": "open", "resource": name},
	)
}
