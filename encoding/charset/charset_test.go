package charset_test

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/readcount/encoding/charset"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func utf16le(s string, bom bool) []byte {
	var out []byte
	if bom {
		out = append(out, 0xff, 0xfe)
	}
	for _, c := range []byte(s) {
		out = append(out, c, 0)
	}
	return out
}

func decode(t *testing.T, name string, in []byte) string {
	enc, err := charset.Lookup(name)
	assert.NoError(t, err)
	out, err := ioutil.ReadAll(charset.NewReader(bytes.NewReader(in), enc))
	assert.NoError(t, err)
	return string(out)
}

func TestDecode(t *testing.T) {
	for _, test := range []struct {
		name string
		enc  string
		in   []byte
		want string
	}{
		{"utf16leNoBOM", "utf-16-le", utf16le("chr1\t100\n", false), "chr1\t100\n"},
		{"utf16leBOM", "utf-16-le", utf16le("chr1\t100\n", true), "chr1\t100\n"},
		{"underscoreAlias", "UTF_16_LE", utf16le("A:1", false), "A:1"},
		{"utf16Default", "utf-16", utf16le("T", true), "T"},
		{"utf8", "utf-8", []byte("chr2\t5\n"), "chr2\t5\n"},
		{"utf8BOM", "utf-8-sig", []byte("\xef\xbb\xbfChr\n"), "Chr\n"},
		{"latin1", "latin-1", []byte("caf\xe9"), "café"},
	} {
		t.Run(test.name, func(t *testing.T) {
			expect.EQ(t, decode(t, test.enc, test.in), test.want)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := charset.Lookup("no-such-encoding")
	assert.NotNil(t, err)
	expect.True(t, errors.Is(errors.Invalid, err))
	expect.HasSubstr(t, err.Error(), "no-such-encoding")
}
