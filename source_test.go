package resio

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceName(t *testing.T) {
	tests := []struct {
		source string
		name   string
		ok     bool
	}{
		{"classpath:a.txt", "a.txt", true},
		{"classpath:/a.txt", "a.txt", true},
		{"classpath://a.txt", "/a.txt", true},
		{"classpath:dir/a.txt", "dir/a.txt", true},
		{"classpath:", "", true},
		{"/tmp/a.txt", "", false},
		{"a.txt", "", false},
		{"CLASSPATH:a.txt", "", false},
		{"file:classpath:a.txt", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			name, ok := ResourceName(tt.source)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestOpen_BundleOrder(t *testing.T) {
	first := fstest.MapFS{"shared.txt": {Data: []byte("first")}}
	second := fstest.MapFS{
		"shared.txt": {Data: []byte("second")},
		"only.txt":   {Data: []byte("only in second")},
	}
	x := New(WithResources(first, second))

	data, err := x.Read("classpath:shared.txt")
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	data, err = x.Read("classpath:only.txt")
	require.NoError(t, err)
	assert.Equal(t, "only in second", string(data))
}

func TestOpen_EmbeddedBundle(t *testing.T) {
	x := New(WithResources(embeddedBundle(t)))

	rc, err := x.Open("classpath:/docs/nested.txt")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "nested\n", string(data))
}

func TestOpen_Filesystem(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(p, []byte("plain"), 0o644))

	rc, err := New().Open(p)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "plain", string(data))
}

func TestOpen_ResourceErrors(t *testing.T) {
	x := New(WithResources(embeddedBundle(t)))

	tests := []struct {
		name   string
		source string
		code   errors.ErrorCode
	}{
		{"missing", "classpath:missing.txt", errors.CodeNotFound},
		{"no bundles match", "classpath:docs/missing.md", errors.CodeNotFound},
		{"directory", "classpath:docs", errors.CodeInvalidInput},
		{"empty name", "classpath:", errors.CodeInvalidInput},
		{"escapes bundle", "classpath:../secret", errors.CodeInvalidInput},
		{"double slash", "classpath://hello.txt", errors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, err := x.Open(tt.source)
			require.Error(t, err)
			assert.Nil(t, rc)
			assert.Equal(t, tt.code, errors.GetCode(err))

			var platformErr errors.PlatformError
			require.True(t, errors.As(err, &platformErr))
			assert.Equal(t, "open", platformErr.Context()["op"])
		})
	}
}

func TestOpen_NoBundles(t *testing.T) {
	_, err := New().Open("classpath:hello.txt")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}
