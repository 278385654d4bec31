package resio

import (
	"github.com/jmgilman/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// UTF8 is the UTF-8 encoding without byte order mark handling.
var UTF8 encoding.Encoding = unicode.UTF8

// LookupEncoding returns the encoding registered under name. IANA names and
// aliases are tried first, then WHATWG labels, so both "ISO-8859-1" and
// "latin1" resolve.
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err == nil && enc != nil {
		return enc, nil
	}

	enc, herr := htmlindex.Get(name)
	if herr == nil && enc != nil {
		return enc, nil
	}

	if err == nil {
		err = herr
	}
	return nil, errors.WithContext(
		errors.Wrapf(err, errors.CodeInvalidInput, "unsupported encoding %q", name),
		"encoding", name,
	)
}
