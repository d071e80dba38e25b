// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package summary

import (
	"context"
	"io"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/hts/bgzf"
	"github.com/grailbio/readcount/encoding/charset"
	"github.com/grailbio/readcount/encoding/readcount"
	"github.com/grailbio/readcount/interval"
	"github.com/grailbio/readcount/pileup"
	"golang.org/x/text/encoding"
)

// positionFilter restricts the summary to a region list or a single region
// string.  The zero value keeps everything.
type positionFilter struct {
	union  *interval.BEDUnion
	region *interval.Entry
}

func newPositionFilter(ctx context.Context, opts *Opts) (f positionFilter, err error) {
	if opts.RegionsPath != "" {
		var union interval.BEDUnion
		if union, err = interval.NewBEDUnionFromPath(ctx, opts.RegionsPath, interval.NewBEDOpts{OneBasedInput: true}); err != nil {
			return
		}
		f.union = &union
	} else if opts.Region != "" {
		var entry interval.Entry
		if entry, err = interval.ParseRegionString(opts.Region); err != nil {
			return
		}
		f.region = &entry
	}
	return
}

func (f *positionFilter) keep(rec *readcount.PositionRecord) bool {
	pos0 := rec.Pos - 1
	if f.union != nil {
		if pos0 < 0 || pos0 >= pileup.PosTypeMax {
			return false
		}
		return f.union.ContainsByName(rec.Chrom, pileup.PosType(pos0))
	}
	if f.region != nil {
		return rec.Chrom == f.region.ChrName && pos0 >= int64(f.region.Start0) && pos0 < int64(f.region.End)
	}
	return true
}

// ScanSchema makes the first pass over the bam-readcount output at inPath,
// returning the schema that fits every kept position and the number of kept
// positions.  Every per-base field is decoded, so malformed input is reported
// here, before any output exists.
func ScanSchema(ctx context.Context, inPath string, opts *Opts) (schema Schema, nRows int, err error) {
	enc, err := charset.Lookup(opts.Encoding)
	if err != nil {
		return
	}
	filter, err := newPositionFilter(ctx, opts)
	if err != nil {
		return
	}
	return scanSchema(ctx, inPath, enc, &filter)
}

func scanSchema(ctx context.Context, inPath string, enc encoding.Encoding, filter *positionFilter) (schema Schema, nRows int, err error) {
	err = readcount.ForEach(ctx, inPath, enc, func(rec *readcount.PositionRecord) error {
		if filter.keep(rec) {
			schema.Observe(rec)
			nRows++
		}
		return nil
	})
	return
}

// Run summarizes the bam-readcount output at inPath into outPath.
//
// Two passes are made over the input: the first determines the maximum number
// of insertions and deletions at any kept position, which fixes the header,
// and the second writes one padded row per kept position.
func Run(ctx context.Context, inPath, outPath string, opts *Opts) (err error) {
	if err = opts.validate(); err != nil {
		return
	}
	enc, err := charset.Lookup(opts.Encoding)
	if err != nil {
		return
	}
	filter, err := newPositionFilter(ctx, opts)
	if err != nil {
		return
	}
	schema, nRows, err := scanSchema(ctx, inPath, enc, &filter)
	if err != nil {
		return
	}
	log.Printf("summary: %d position(s) in %s; at most %d insertion(s), %d deletion(s) per position",
		nRows, inPath, schema.MaxInsertions, schema.MaxDeletions)

	var dst file.File
	if dst, err = file.Create(ctx, outPath); err != nil {
		return
	}
	defer file.CloseAndReport(ctx, dst, &err)

	var w io.Writer = dst.Writer(ctx)
	if opts.Format == FormatTSVBgz {
		bgzfWriter := bgzf.NewWriter(w, 1)
		defer func() {
			if e := bgzfWriter.Close(); e != nil && err == nil {
				err = e
			}
		}()
		w = bgzfWriter
	}
	sw := NewWriter(w, schema)
	if err = sw.WriteHeader(); err != nil {
		return
	}
	if err = readcount.ForEach(ctx, inPath, enc, func(rec *readcount.PositionRecord) error {
		if !filter.keep(rec) {
			return nil
		}
		row := Summarize(rec)
		return sw.Write(&row)
	}); err != nil {
		return
	}
	if err = sw.Flush(); err != nil {
		return
	}
	log.Debug.Printf("summary: wrote %d row(s) with %d column(s) to %s", nRows, schema.NCols(), outPath)
	return
}
