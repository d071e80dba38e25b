package readcount

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/readcount/encoding/charset"
	"golang.org/x/text/encoding"
)

// Scanner reads bam-readcount output one position at a time.  The Scan
// method decodes the next line into the provided record, returning a boolean
// indicating whether the scan succeeded.  Scanners are not threadsafe.
//
// Lines have a variable number of columns: four fixed ones (chromosome,
// position, reference base, depth) followed by one column per observed base
// or indel.
type Scanner struct {
	r   *tsv.Reader
	row int
	err error
}

// NewScanner constructs a new Scanner that reads UTF-8 bam-readcount output
// from r.
func NewScanner(r io.Reader) *Scanner {
	tsvReader := tsv.NewReader(r)
	tsvReader.FieldsPerRecord = -1
	tsvReader.LazyQuotes = true
	return &Scanner{r: tsvReader}
}

// Scan decodes the next line into rec.  Once Scan returns false, it never
// returns true again.  Upon completion, the user should check the Err method
// to determine whether scanning stopped because of an error or because the
// end of the stream was reached.
func (s *Scanner) Scan(rec *PositionRecord) bool {
	if s.err != nil {
		return false
	}
	fields, err := s.r.Reader.Read()
	if err != nil {
		if err != io.EOF {
			s.err = errors.E(errors.Integrity, err, fmt.Sprintf("readcount: row %d", s.row+1))
		} else {
			s.err = io.EOF
		}
		return false
	}
	s.row++
	if err = ParseLine(fields, rec); err != nil {
		s.err = errors.E(errors.Integrity, err, fmt.Sprintf("readcount: row %d", s.row))
		return false
	}
	return true
}

// Row returns the 1-based index of the most recently scanned row.
func (s *Scanner) Row() int {
	return s.row
}

// Err returns the scanning error, if any.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// FileScanner is a Scanner over a file opened by Open.
type FileScanner struct {
	*Scanner
	ctx    context.Context
	in     file.File
	reader io.ReadCloser
}

// Open opens the bam-readcount output at path for scanning.  path may be
// anything grailbio/base/file understands; gzip/bzip2/zstd input is
// decompressed transparently, and the text is decoded from enc.
func Open(ctx context.Context, path string, enc encoding.Encoding) (*FileScanner, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "readcount.Open", path)
	}
	reader, _ := compress.NewReader(in.Reader(ctx))
	return &FileScanner{
		Scanner: NewScanner(charset.NewReader(reader, enc)),
		ctx:     ctx,
		in:      in,
		reader:  reader,
	}, nil
}

// Close releases the underlying file.
func (f *FileScanner) Close() error {
	err := f.reader.Close()
	if e := f.in.Close(f.ctx); e != nil && err == nil {
		err = e
	}
	return err
}

// ForEach opens path and calls fn on every decoded line, in order.  The
// record passed to fn is reused between calls.
func ForEach(ctx context.Context, path string, enc encoding.Encoding, fn func(rec *PositionRecord) error) (err error) {
	var s *FileScanner
	if s, err = Open(ctx, path, enc); err != nil {
		return
	}
	defer func() {
		if e := s.Close(); e != nil && err == nil {
			err = e
		}
	}()
	var rec PositionRecord
	for s.Scan(&rec) {
		if err = fn(&rec); err != nil {
			return
		}
	}
	return s.Err()
}
