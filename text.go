package resio

import (
	"bufio"
	"io"
	"os"

	"github.com/jmgilman/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// readRunes fills buf from src and returns how many runes it read along with
// the error that stopped it early, if any.
func readRunes(src io.RuneReader, buf []rune) (int, error) {
	for i := range buf {
		r, _, err := src.ReadRune()
		if err != nil {
			return i, err
		}
		buf[i] = r
	}
	return len(buf), nil
}

// copyRunes moves src to dst in chunks of BufferSize runes and returns the
// number of runes copied.
func copyRunes(dst io.StringWriter, src io.RuneReader) (int64, error) {
	buf := make([]rune, BufferSize)
	var total int64
	for {
		n, rerr := readRunes(src, buf)
		if n > 0 {
			s := string(buf[:n])
			w, werr := dst.WriteString(s)
			if werr != nil {
				return total, werr
			}
			if w != len(s) {
				return total, io.ErrShortWrite
			}
			total += int64(n)
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, rerr
		}
	}
}

func requireEncoding(enc encoding.Encoding, op, key, value string) error {
	if enc != nil {
		return nil
	}
	return errors.WithContextMap(
		errors.New(errors.CodeInvalidInput, "text encoding is required"),
		map[string]interface{}{"op": op, key: value},
	)
}

// decode wraps a byte stream so it yields runes decoded with enc.
// Malformed input decodes to U+FFFD.
func decode(r io.Reader, enc encoding.Encoding) io.RuneReader {
	return bufio.NewReaderSize(transform.NewReader(r, enc.NewDecoder()), BufferSize)
}

// CopyText copies runes from src to dst until EOF and returns the number of
// runes copied. Neither side is closed.
func (x *IO) CopyText(dst io.StringWriter, src io.RuneReader) (int64, error) {
	n, err := copyRunes(dst, src)
	if err != nil {
		return n, fail(err, "copy", "source", "stream")
	}
	return n, nil
}

// CopyTextTo resolves source, decodes it with enc and writes the runes to
// dst. dst is not closed.
func (x *IO) CopyTextTo(dst io.StringWriter, source string, enc encoding.Encoding) (int64, error) {
	if err := requireEncoding(enc, "copy", "source", source); err != nil {
		return 0, err
	}

	in, err := x.Open(source)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	return x.decodeTo(dst, in, source, enc)
}

// CopyFileTextTo decodes the file at path with enc and writes the runes to
// dst. The "classpath:" prefix is not interpreted.
func (x *IO) CopyFileTextTo(dst io.StringWriter, path string, enc encoding.Encoding) (int64, error) {
	if err := requireEncoding(enc, "copy", "source", path); err != nil {
		return 0, err
	}

	in, err := x.openFile(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	return x.decodeTo(dst, in, path, enc)
}

func (x *IO) decodeTo(dst io.StringWriter, in io.Reader, source string, enc encoding.Encoding) (int64, error) {
	n, err := copyRunes(dst, decode(in, enc))
	if err != nil {
		return n, fail(err, "copy", "source", source)
	}
	return n, nil
}

// CopyTextFrom encodes runes from src with enc and writes them to the file
// at target, creating missing parent directories. An existing target is
// truncated. Runes enc cannot represent are written as its replacement
// character. src is not closed.
func (x *IO) CopyTextFrom(src io.RuneReader, target string, enc encoding.Encoding) (n int64, err error) {
	if err := requireEncoding(enc, "create", "target", target); err != nil {
		return 0, err
	}

	out, err := x.create(target, os.O_TRUNC)
	if err != nil {
		return 0, fail(err, "create", "target", target)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fail(cerr, "close", "target", target)
		}
	}()

	tw := transform.NewWriter(out, encoding.ReplaceUnsupported(enc.NewEncoder()))
	bw := bufio.NewWriterSize(tw, BufferSize)

	n, err = copyRunes(bw, src)
	if err == nil {
		err = bw.Flush()
	}
	if err == nil {
		err = tw.Close()
	}
	if err != nil {
		return n, fail(err, "copy", "target", target)
	}

	x.logger.Debug("copied text", "target", target, "runes", n)
	return n, nil
}

// CopyText copies runes from src to dst until EOF.
func CopyText(dst io.StringWriter, src io.RuneReader) (int64, error) {
	return std.CopyText(dst, src)
}

// CopyTextTo resolves source against the default IO and writes its runes,
// decoded with enc, to dst.
func CopyTextTo(dst io.StringWriter, source string, enc encoding.Encoding) (int64, error) {
	return std.CopyTextTo(dst, source, enc)
}

// CopyFileTextTo writes the runes of the file at path, decoded with enc, to dst.
func CopyFileTextTo(dst io.StringWriter, path string, enc encoding.Encoding) (int64, error) {
	return std.CopyFileTextTo(dst, path, enc)
}

// CopyTextFrom encodes runes from src with enc into the file at target.
func CopyTextFrom(src io.RuneReader, target string, enc encoding.Encoding) (int64, error) {
	return std.CopyTextFrom(src, target, enc)
}
