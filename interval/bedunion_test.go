package interval

import (
	"bytes"
	"math"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/klauspost/compress/gzip"
)

func TestNewBEDUnion(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		oneBasedInput bool
		want          map[string]([]PosType)
	}{
		{
			"zeroBased",
			"chr1\t10\t20\nchr1\t15\t30\nchr1\t40\t41\n",
			false,
			map[string]([]PosType){"chr1": []PosType{10, 30, 40, 41}},
		},
		{
			"oneBasedUnsorted",
			"chr2\t500\t500\nchr1\t100\t100\nchr2\t200\t200\nchr1\t101\t101\n",
			true,
			map[string]([]PosType){
				"chr1": []PosType{99, 101},
				"chr2": []PosType{199, 200, 499, 500},
			},
		},
		{
			"emptyInterval",
			"chr3\t7\t7\n\n",
			false,
			map[string]([]PosType){"chr3": []PosType{}},
		},
	}
	for _, tt := range tests {
		result, err := NewBEDUnion(strings.NewReader(tt.input), NewBEDOpts{OneBasedInput: tt.oneBasedInput})
		expect.NoError(t, err)
		if !reflect.DeepEqual(result.nameMap, tt.want) {
			t.Errorf("%s: Wanted: %v  Got: %v", tt.name, tt.want, result.nameMap)
		}
	}
}

func TestNewBEDUnionErrors(t *testing.T) {
	for _, input := range []string{
		"chr1\t10\n",
		"chr1\tx\t20\n",
		"chr1\t20\t10\n",
	} {
		_, err := NewBEDUnion(strings.NewReader(input), NewBEDOpts{})
		expect.NotNil(t, err)
	}
	_, err := NewBEDUnion(strings.NewReader("chr1\t0\t5\n"), NewBEDOpts{OneBasedInput: true})
	expect.HasSubstr(t, err.Error(), "negative start")
}

func TestContainsByName(t *testing.T) {
	u, err := NewBEDUnion(strings.NewReader("chr1\t100\t100\nchr1\t200\t205\nchr2\t5\t5\n"), NewBEDOpts{OneBasedInput: true})
	assert.NoError(t, err)
	expect.EQ(t, u.NBases(), 8)

	// Positions are 0-based in queries.
	expect.True(t, u.ContainsByName("chr1", 99))
	expect.False(t, u.ContainsByName("chr1", 100))
	expect.True(t, u.ContainsByName("chr1", 199))
	expect.True(t, u.ContainsByName("chr1", 204))
	expect.False(t, u.ContainsByName("chr1", 205))
	// Non-sequential query after a sequential run.
	expect.True(t, u.ContainsByName("chr1", 99))
	expect.True(t, u.ContainsByName("chr2", 4))
	expect.False(t, u.ContainsByName("chrX", 4))
	expect.True(t, u.ContainsByName("chr1", 200))
}

func TestNewBEDUnionFromPath(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("chr1\t100\t100\n"))
	assert.NoError(t, err)
	assert.NoError(t, gz.Close())

	ctx := vcontext.Background()
	path := filepath.Join(tmpdir, "regions.txt.gz")
	out, err := file.Create(ctx, path)
	assert.NoError(t, err)
	_, err = out.Writer(ctx).Write(buf.Bytes())
	assert.NoError(t, err)
	assert.NoError(t, out.Close(ctx))

	u, err := NewBEDUnionFromPath(ctx, path, NewBEDOpts{OneBasedInput: true})
	assert.NoError(t, err)
	expect.True(t, u.ContainsByName("chr1", 99))

	_, err = NewBEDUnionFromPath(ctx, filepath.Join(tmpdir, "missing.txt"), NewBEDOpts{})
	expect.NotNil(t, err)
}

func TestParseRegionString(t *testing.T) {
	tests := []struct {
		region  string
		chrName string
		start0  PosType
		end     PosType
	}{
		{
			"chr1:1-1000",
			"chr1",
			0,
			1000,
		},
		{
			"chr1:1000",
			"chr1",
			999,
			1000,
		},
		{
			"chr1:5-5",
			"chr1",
			4,
			5,
		},
		{
			"chr1",
			"chr1",
			0,
			math.MaxInt32 - 1,
		},
	}

	for _, tt := range tests {
		result, err := ParseRegionString(tt.region)
		expect.NoError(t, err)
		expect.EQ(t, tt.chrName, result.ChrName)
		expect.EQ(t, tt.start0, result.Start0)
		expect.EQ(t, tt.end, result.End)
	}
	for _, bad := range []string{"", ":5", "chr1:0", "chr1:10-5", "chr1:a-b"} {
		_, err := ParseRegionString(bad)
		expect.NotNil(t, err, bad)
	}
}
