package resio

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	x := New()
	require.NotNil(t, x.fs)
	require.NotNil(t, x.logger)
	assert.Empty(t, x.bundles())
}

func TestIO_Register(t *testing.T) {
	x := New(WithResources(fstest.MapFS{"a.txt": {Data: []byte("a")}}))
	x.Register(fstest.MapFS{"b.txt": {Data: []byte("b")}})

	assert.Len(t, x.bundles(), 2)

	data, err := x.Read("classpath:b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestRegister_Default(t *testing.T) {
	Register(fstest.MapFS{"resio-default-test/greeting.txt": {Data: []byte("hi")}})
	require.Same(t, std, Default())

	data, err := Read("classpath:/resio-default-test/greeting.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))

	var out strings.Builder
	n, err := CopyTextTo(&out, "classpath:resio-default-test/greeting.txt", UTF8)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, "hi", out.String())
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	x := New(WithLogger(logger), WithResources(bundle(nil)))

	_, err := x.CopySource(unicodeClasspath, filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "opened resource")
	assert.Contains(t, buf.String(), "resource="+unicodeResource)
	assert.Contains(t, buf.String(), "msg=copied")
}

func TestErrors_Context(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")

	_, err := CopyFileTo(&bytes.Buffer{}, missing)
	require.Error(t, err)

	var platformErr errors.PlatformError
	require.True(t, errors.As(err, &platformErr))
	assert.Equal(t, errors.CodeNotFound, platformErr.Code())
	assert.Equal(t, errors.ClassificationPermanent, platformErr.Classification())
	assert.Equal(t, "open", platformErr.Context()["op"])
	assert.Equal(t, missing, platformErr.Context()["path"])
	assert.False(t, errors.IsRetryable(err))
}

func TestErrors_IOFailureIsPermanent(t *testing.T) {
	_, err := Copy(&failingWriter{}, strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, CodeIOFailure, errors.GetCode(err))
	assert.False(t, errors.IsRetryable(err))

	resp := errors.ToJSON(err)
	require.NotNil(t, resp)
	assert.Equal(t, "IO_FAILURE", resp.Code)
	assert.Equal(t, "copy", resp.Context["op"])
}
