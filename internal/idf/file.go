package idf

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used by ReadFile when no encoding is given.
const DefaultEncoding = "utf-8"

// AccessError is returned when an input file cannot be opened or read.
type AccessError struct {
	Filename string
	Err      error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("reading %v failed: %v", e.Filename, e.Err)
}

// Cause returns the underlying error.
func (e *AccessError) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *AccessError) Unwrap() error { return e.Err }

// ReadFile returns the contents of filename decoded from the named encoding
// (WHATWG names and labels, e.g. "utf-8", "windows-1252", "latin1"). A byte
// order mark at the start of the file is removed and overrides the encoding.
func ReadFile(filename, encoding string) (text string, err error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}

	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return "", errors.Wrapf(err, "encoding %q", encoding)
	}

	f, err := os.Open(filename)
	if err != nil {
		return "", &AccessError{Filename: filename, Err: err}
	}

	defer func() {
		e := f.Close()
		if err == nil && e != nil {
			err = &AccessError{Filename: filename, Err: e}
		}
	}()

	rd := transform.NewReader(f, unicode.BOMOverride(enc.NewDecoder()))
	buf, err := ioutil.ReadAll(rd)
	if err != nil {
		return "", &AccessError{Filename: filename, Err: err}
	}

	return string(buf), nil
}

// ParseFile reads filename with ReadFile and parses the contents.
func ParseFile(filename, encoding string, opts ...Option) (*Document, error) {
	text, err := ReadFile(filename, encoding)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(text, opts...)
	if err != nil {
		return nil, errors.WithMessage(err, filename)
	}

	return doc, nil
}
