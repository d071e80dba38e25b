// Package charset resolves text-encoding names given on the command line and
// wraps readers so that downstream parsers always see UTF-8.
package charset

import (
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Default is the encoding bam-readcount output is assumed to be in when it
// has been round-tripped through Windows tooling.
const Default = "utf-16-le"

// Lookup returns the encoding named by name.  Common codec aliases
// ("utf-16-le", "utf_8", "latin-1") are accepted in addition to IANA names.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.Replace(strings.ToLower(strings.TrimSpace(name)), "_", "-", -1)
	switch key {
	case "utf-16-le", "utf-16le", "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "utf-16-be", "utf-16be", "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-8", "utf8", "utf-8-sig", "utf8-sig":
		return unicode.UTF8, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, errors.E(errors.Invalid, err, "unknown text encoding", name)
	}
	if enc == nil {
		return nil, errors.E(errors.NotSupported, "unsupported text encoding", name)
	}
	return enc, nil
}

// NewReader returns a reader that decodes r from enc into UTF-8.  A leading
// UTF-8 or UTF-16 byte order mark overrides enc and is consumed.
func NewReader(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))
}
