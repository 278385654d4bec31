package resio

import (
	"bytes"
	"embed"
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

//go:embed testdata/bundle
var testdataFS embed.FS

const (
	unicodeResource  = "UTF-8-test.txt"
	unicodeClasspath = "classpath:" + unicodeResource
)

var unicodeData = unicodeSample()

// unicodeSample writes every code point from U+0000 through U+10FFFF as
// UTF-8, breaking lines every 80 code points. Surrogates are not valid
// runes and are written as U+FFFD.
func unicodeSample() []byte {
	var sb strings.Builder
	ranges := []struct {
		header   string
		from, to rune
	}{
		{"Characters U+0000 to U+007F\n", 0x0000, 0x007F},
		{"Characters U+0080 to U+07FF\n", 0x0080, 0x07FF},
		{"Characters U+0800 to U+FFFF\n", 0x0800, 0xFFFF},
		{"Characters U+10000 to U+10FFFF\n", 0x10000, 0x10FFFF},
	}
	for _, r := range ranges {
		sb.WriteString(r.header)
		for c := r.from; c <= r.to; c++ {
			if (c+1)%80 == 0 {
				sb.WriteByte('\n')
			}
			sb.WriteRune(c)
		}
	}
	return []byte(sb.String())
}

// sized returns n bytes of a repeating, non-trivial pattern.
func sized(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*31 + i/251)
	}
	return b
}

// bundle returns a resource bundle holding the unicode sample.
func bundle(extra map[string][]byte) fs.FS {
	m := fstest.MapFS{
		unicodeResource: &fstest.MapFile{Data: unicodeData},
	}
	for name, data := range extra {
		m[name] = &fstest.MapFile{Data: data}
	}
	return m
}

// embeddedBundle returns testdata/bundle rooted at its own directory.
func embeddedBundle(t *testing.T) fs.FS {
	t.Helper()
	sub, err := fs.Sub(testdataFS, "testdata/bundle")
	require.NoError(t, err)
	return sub
}

// stutterReader returns (0, nil) before every chunk it hands out.
type stutterReader struct {
	r     *bytes.Reader
	stall bool
}

func (s *stutterReader) Read(p []byte) (int, error) {
	s.stall = !s.stall
	if s.stall {
		return 0, nil
	}
	if len(p) > 1000 {
		p = p[:1000]
	}
	return s.r.Read(p)
}

// failingWriter fails after accepting limit bytes.
type failingWriter struct {
	limit int
	n     int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n+len(p) > f.limit {
		return 0, errFailingWriter
	}
	f.n += len(p)
	return len(p), nil
}

func (f *failingWriter) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

var errFailingWriter = stderrors.New("disk full")

// failingReader fails once limit bytes have been read.
type failingReader struct {
	r     *bytes.Reader
	limit int
	n     int
}

func (f *failingReader) Read(p []byte) (int, error) {
	if f.n >= f.limit {
		return 0, errFailingReader
	}
	if len(p) > f.limit-f.n {
		p = p[:f.limit-f.n]
	}
	n, err := f.r.Read(p)
	f.n += n
	return n, err
}

var errFailingReader = stderrors.New("device lost")

// openCounter counts files opened and closed through a tracking wrapper.
type openCounter struct {
	opened int
	closed int
}

func (c *openCounter) track(f fs.File) fs.File {
	c.opened++
	return &trackedFile{File: f, counter: c}
}

type trackedFile struct {
	fs.File
	counter *openCounter
	done    bool
}

func (f *trackedFile) Close() error {
	if !f.done {
		f.done = true
		f.counter.closed++
	}
	return f.File.Close()
}

// trackingBundle counts the resources opened from a bundle.
type trackingBundle struct {
	fs.FS
	counter *openCounter
}

func (b trackingBundle) Open(name string) (fs.File, error) {
	f, err := b.FS.Open(name)
	if err != nil {
		return nil, err
	}
	return b.counter.track(f), nil
}

// trackingFS counts the files opened for reading from an FS.
type trackingFS struct {
	FS
	counter *openCounter
}

func (t trackingFS) Open(name string) (fs.File, error) {
	f, err := t.FS.Open(name)
	if err != nil {
		return nil, err
	}
	return t.counter.track(f), nil
}
