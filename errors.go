package resio

import (
	"io/fs"

	"github.com/jmgilman/go/errors"
)

// CodeIOFailure indicates the underlying device or transport failed while
// opening, reading, writing or creating directories.
const CodeIOFailure errors.ErrorCode = "IO_FAILURE"

// fail converts err into a PlatformError tagged with the operation and the
// path or resource it concerns. Errors that are already PlatformErrors keep
// their code and only gain context.
func fail(err error, op, key, value string) error {
	if err == nil {
		return nil
	}

	var platformErr errors.PlatformError
	if errors.As(err, &platformErr) {
		return errors.WithContextMap(platformErr, map[string]interface{}{
			"op": op,
			key:  value,
		})
	}

	code := CodeIOFailure
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = errors.CodeNotFound
	case errors.Is(err, fs.ErrExist):
		code = errors.CodeAlreadyExists
	}

	return errors.WrapWithContext(err, code, op+" "+value, map[string]interface{}{
		"op": op,
		key:  value,
	})
}
