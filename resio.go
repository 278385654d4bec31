package resio

import (
	"io/fs"
	"log/slog"
	"sync"

	"github.com/jmgilman/go/fs/core"

	"github.com/jmgilman/go/resio/internal/localfs"
)

// BufferSize is the chunk size used by every copy loop: bytes for binary
// copies, runes for text copies.
const BufferSize = 8192

// ClasspathPrefix marks a source string as a bundled resource reference.
const ClasspathPrefix = "classpath:"

// FS is the subset of core.FS the copier needs. Every core.FS provider
// satisfies it.
type FS interface {
	Open(name string) (fs.File, error)
	Stat(name string) (fs.FileInfo, error)
	OpenFile(name string, flag int, perm fs.FileMode) (core.File, error)
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
}

// Options configures an IO.
type Options struct {
	// FS serves filesystem paths. Defaults to the local disk.
	FS FS

	// Resources are the bundles searched, in order, for classpath: sources.
	Resources []fs.FS

	// Logger receives debug records. Defaults to a discarding logger.
	Logger *slog.Logger
}

// Option is a functional option for configuring an IO.
type Option func(*Options)

// WithFS serves filesystem paths from fsys instead of the local disk.
func WithFS(fsys FS) Option {
	return func(opts *Options) {
		opts.FS = fsys
	}
}

// WithResources appends bundles to the resource search order.
func WithResources(bundles ...fs.FS) Option {
	return func(opts *Options) {
		opts.Resources = append(opts.Resources, bundles...)
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// IO reads and copies data between streams, filesystem paths and bundled
// resources. An IO holds no per-call state and is safe for concurrent use;
// the streams handed to it are not.
type IO struct {
	fs     FS
	logger *slog.Logger

	mu        sync.RWMutex
	resources []fs.FS
}

// New creates an IO configured by opts.
func New(opts ...Option) *IO {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.FS == nil {
		o.FS = localfs.New()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return &IO{
		fs:        o.FS,
		logger:    o.Logger,
		resources: append([]fs.FS(nil), o.Resources...),
	}
}

// Register appends bundles to the resource search order of x.
// Bundles are expected to be registered during program initialization.
func (x *IO) Register(bundles ...fs.FS) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.resources = append(x.resources, bundles...)
}

func (x *IO) bundles() []fs.FS {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.resources
}

var std = New()

// Default returns the IO used by the package-level functions.
func Default() *IO {
	return std
}

// Register appends bundles to the resource search order of the default IO.
//
//	//go:embed templates
//	var templates embed.FS
//
//	func init() {
//	    resio.Register(templates)
//	}
func Register(bundles ...fs.FS) {
	std.Register(bundles...)
}
