// Package regions converts a variant table into the chrom/start/end region
// list consumed by bam-readcount's -l option and by bio-readcount-summary's
// -regions flag.
package regions

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/readcount/encoding/charset"
	"github.com/pkg/errors"
)

// Column names looked up in the variant table header.
const (
	ChrColumn      = "Chr"
	PositionColumn = "Position"
)

// Region is a single-position region.  Start and End are 1-based and
// inclusive; every Region produced by ReadRegions has Start == End.
type Region struct {
	Chrom string
	Start int64
	End   int64
}

// Opts configures Generate.
type Opts struct {
	// Encoding names the text encoding of the input table.
	Encoding string
}

// DefaultOpts is the default configuration.
var DefaultOpts = Opts{
	Encoding: "utf-8",
}

func columnIndex(header []string, name string) (int, error) {
	for i, col := range header {
		if col == name {
			return i, nil
		}
	}
	return -1, errors.Errorf("expected column %q was not found", name)
}

// ReadRegions reads a tab-separated table with a header line and returns one
// Region per data row, taken from the Chr and Position columns.  Other
// columns are ignored.
func ReadRegions(r io.Reader) ([]Region, error) {
	tr := tsv.NewReader(r)
	tr.FieldsPerRecord = -1
	tr.LazyQuotes = true
	header, err := tr.Reader.Read()
	if err == io.EOF {
		return nil, errors.New("missing header line")
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	chrCol, err := columnIndex(header, ChrColumn)
	if err != nil {
		return nil, err
	}
	posCol, err := columnIndex(header, PositionColumn)
	if err != nil {
		return nil, err
	}

	var regions []Region
	for line := 2; ; line++ {
		fields, err := tr.Reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if chrCol >= len(fields) || posCol >= len(fields) {
			return nil, errors.Errorf("line %d: has %d columns, expected at least %d", line, len(fields), len(header))
		}
		posStr := strings.TrimSpace(fields[posCol])
		pos, err := strconv.ParseInt(posStr, 10, 64)
		if err != nil {
			return nil, errors.Errorf("line %d: %s %q is not an integer", line, PositionColumn, posStr)
		}
		regions = append(regions, Region{Chrom: fields[chrCol], Start: pos, End: pos})
	}
	return regions, nil
}

// WriteRegions writes regions as headerless chrom\tstart\tend lines.
func WriteRegions(w io.Writer, regions []Region) error {
	tw := tsv.NewWriter(w)
	for _, r := range regions {
		tw.WriteString(r.Chrom)
		tw.WriteInt64(r.Start)
		tw.WriteInt64(r.End)
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func readPath(ctx context.Context, path string, opts *Opts) (regions []Region, err error) {
	enc, err := charset.Lookup(opts.Encoding)
	if err != nil {
		return
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return
	}
	defer file.CloseAndReport(ctx, in, &err)
	reader, _ := compress.NewReader(in.Reader(ctx))
	defer func() {
		if e := reader.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return ReadRegions(charset.NewReader(reader, enc))
}

// Generate reads the variant table at inPath and writes its region list to
// outPath.  The whole input is read before outPath is created, so nothing is
// written when the input is unreadable or malformed.
func Generate(ctx context.Context, inPath, outPath string, opts *Opts) (err error) {
	regions, err := readPath(ctx, inPath, opts)
	if err != nil {
		return errors.Wrap(err, inPath)
	}
	log.Debug.Printf("regions: read %d row(s) from %s", len(regions), inPath)

	out, err := file.Create(ctx, outPath)
	if err != nil {
		return
	}
	defer file.CloseAndReport(ctx, out, &err)
	if err = WriteRegions(out.Writer(ctx), regions); err != nil {
		return errors.Wrap(err, outPath)
	}
	log.Printf("regions: wrote %d region(s) to %s", len(regions), outPath)
	return
}

// String returns the region as chrom:start-end.
func (r Region) String() string {
	return fmt.Sprintf("%s:%d-%d", r.Chrom, r.Start, r.End)
}
