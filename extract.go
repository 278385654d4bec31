package resio

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/errors"
)

// Extract copies every bundled resource under root into the directory dir,
// preserving the directory structure below root. Use "." to extract
// everything. When several bundles provide the same name, the first
// registered bundle wins, exactly as it would for a classpath: lookup.
//
// Missing parent directories are created. Existing files are only
// overwritten when ReplaceExisting is given. Extract returns the number of
// files written.
//
//	//go:embed templates/*
//	var templates embed.FS
//
//	x := resio.New(resio.WithResources(templates))
//	n, err := x.Extract("templates", "/etc/myapp", resio.ReplaceExisting)
func (x *IO) Extract(root, dir string, opts ...CopyOption) (int, error) {
	root = path.Clean(strings.TrimPrefix(root, "/"))
	seen := make(map[string]bool)
	count := 0
	found := false

	for _, bundle := range x.bundles() {
		err := fs.WalkDir(bundle, root, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				if name == root && errors.Is(err, fs.ErrNotExist) {
					return fs.SkipAll
				}
				return err
			}
			found = true
			if d.IsDir() || seen[name] {
				return nil
			}
			seen[name] = true

			rel := name
			if root != "." {
				rel = strings.TrimPrefix(strings.TrimPrefix(name, root), "/")
			}
			if rel == "" {
				rel = path.Base(name)
			}
			target := filepath.Join(dir, filepath.FromSlash(rel))

			if _, err := x.CopySource(ClasspathPrefix+name, target, opts...); err != nil {
				return err
			}
			count++
			return nil
		})
		if err != nil {
			return count, fail(err, "extract", "resource", root)
		}
	}

	if !found {
		return 0, errors.WithContextMap(
			errors.Newf(errors.CodeNotFound, "resource %q not found", root),
			map[string]interface{}{"op": "extract", "resource": root},
		)
	}
	return count, nil
}

// Extract copies bundled resources under root from the default IO into dir.
func Extract(root, dir string, opts ...CopyOption) (int, error) {
	return std.Extract(root, dir, opts...)
}
