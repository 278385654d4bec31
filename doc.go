// Package resio reads and copies data between byte streams, character
// streams, filesystem paths and bundled resources.
//
// # Sources
//
// Functions that take a source string resolve it at call time:
//
//   - "classpath:<name>" and "classpath:/<name>" name a bundled resource,
//     looked up in the fs.FS bundles registered with Register or WithResources
//   - anything else is a filesystem path, absolute or relative to the working
//     directory
//
// The *File variants (ReadFile, CopyFile, CopyFileTo, CopyFileTextTo) never
// interpret the prefix, so a file literally named "classpath:x" can still be
// read. Resources are read-only and are never valid copy targets.
//
//	//go:embed templates
//	var templates embed.FS
//
//	func init() {
//	    resio.Register(templates)
//	}
//
//	data, err := resio.Read("classpath:templates/index.html")
//
// # Copying
//
// Every copy consumes its source to EOF in chunks of BufferSize and returns
// the number of bytes (or runes, for text) transferred. Copies onto a path
// create the parent directory chain first and fail with ALREADY_EXISTS when
// the target exists, unless ReplaceExisting is given:
//
//	n, err := resio.CopySource("classpath:defaults.yaml", "/etc/app/config.yaml", resio.ReplaceExisting)
//
// Streams passed in by the caller are never closed. Files and resources opened
// by a call are always closed before it returns.
//
// # Text
//
// Text copies work on runes. Crossing between bytes and runes always takes an
// explicit golang.org/x/text encoding; there is no default:
//
//	enc, err := resio.LookupEncoding("ISO-8859-1")
//	n, err := resio.CopyTextTo(&sb, "legacy.txt", enc)
//
// # Errors
//
// Errors are github.com/jmgilman/go/errors PlatformErrors with code
// NOT_FOUND, ALREADY_EXISTS, INVALID_INPUT or IO_FAILURE and context naming
// the operation and path. Underlying causes stay reachable through
// errors.Is, so errors.Is(err, fs.ErrNotExist) still works for missing files.
package resio
