package regions_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/readcount/regions"
	"github.com/grailbio/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const variantTable = "Sample\tChr\tPosition\tRef\tAlt\n" +
	"s1\tchr2\t500\tG\tT\n" +
	"s1\tchr1\t100\tA\tTT\n" +
	"s2\tchrX\t  7 \tC\tA\n"

func TestReadRegions(t *testing.T) {
	got, err := regions.ReadRegions(strings.NewReader(variantTable))
	require.NoError(t, err)
	assert.Equal(t, []regions.Region{
		{Chrom: "chr2", Start: 500, End: 500},
		{Chrom: "chr1", Start: 100, End: 100},
		{Chrom: "chrX", Start: 7, End: 7},
	}, got)
	assert.Equal(t, "chr2:500-500", got[0].String())

	got, err = regions.ReadRegions(strings.NewReader("Chr\tPosition\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadRegionsErrors(t *testing.T) {
	for _, test := range []struct {
		name, input, expectedError string
	}{
		{"empty", "", "missing header line"},
		{"noChr", "Chrom\tPosition\nchr1\t1\n", `expected column "Chr" was not found`},
		{"noPosition", "Chr\tPos\nchr1\t1\n", `expected column "Position" was not found`},
		{"badPosition", "Chr\tPosition\nchr1\t1\nchr1\tabc\n", `line 3: Position "abc" is not an integer`},
		{"shortRow", "Ref\tChr\tPosition\nA\tchr1\n", "line 2"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := regions.ReadRegions(strings.NewReader(test.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.expectedError)
		})
	}
}

func TestWriteRegions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, regions.WriteRegions(&buf, []regions.Region{
		{Chrom: "chr2", Start: 500, End: 500},
		{Chrom: "chr1", Start: 100, End: 100},
	}))
	assert.Equal(t, "chr2\t500\t500\nchr1\t100\t100\n", buf.String())
}

func TestGenerate(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	inPath := filepath.Join(tmpdir, "variants.tsv")
	require.NoError(t, ioutil.WriteFile(inPath, []byte(variantTable), 0644))
	outPath := filepath.Join(tmpdir, "regions.txt")
	opts := regions.DefaultOpts
	require.NoError(t, regions.Generate(ctx, inPath, outPath, &opts))
	data, err := ioutil.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "chr2\t500\t500\nchr1\t100\t100\nchrX\t7\t7\n", string(data))

	// UTF-16 with a byte order mark.
	var utf16 []byte
	utf16 = append(utf16, 0xff, 0xfe)
	for _, c := range []byte(variantTable) {
		utf16 = append(utf16, c, 0)
	}
	require.NoError(t, ioutil.WriteFile(inPath, utf16, 0644))
	opts.Encoding = "utf-16"
	require.NoError(t, regions.Generate(ctx, inPath, outPath, &opts))
	data, err = ioutil.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "chr2\t500\t500\nchr1\t100\t100\nchrX\t7\t7\n", string(data))
}

func TestGenerateErrors(t *testing.T) {
	tmpdir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpdir)
	ctx := vcontext.Background()

	badPath := filepath.Join(tmpdir, "bad.tsv")
	require.NoError(t, ioutil.WriteFile(badPath, []byte("Chrom\tPosition\nchr1\t5\n"), 0644))

	for _, test := range []struct {
		name, inPath, encoding, expectedError string
	}{
		{"missingInput", filepath.Join(tmpdir, "missing.tsv"), "utf-8", "missing.tsv"},
		{"missingColumn", badPath, "utf-8", `expected column "Chr" was not found`},
		{"badEncoding", badPath, "klingon", "klingon"},
	} {
		t.Run(test.name, func(t *testing.T) {
			outPath := filepath.Join(tmpdir, test.name+".txt")
			opts := regions.Opts{Encoding: test.encoding}
			err := regions.Generate(ctx, test.inPath, outPath, &opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.expectedError)
			_, statErr := os.Stat(outPath)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}
