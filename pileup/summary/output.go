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
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/readcount/encoding/readcount"
)

// fixedHeader lists the columns present in every summary row, in order.
var fixedHeader = []string{
	"chrom",
	"position",
	"wildtype",
	"single base mutation",
	"A count",
	"T count",
	"G count",
	"C count",
	"Total count",
	"Frequency wildtype",
	"Frequency mutation",
}

// NFixedCols is the number of columns preceding the insertion/deletion
// detail columns.
var NFixedCols = len(fixedHeader)

// Schema fixes the width of the insertion/deletion portion of the output.
// Every row is padded out to MaxInsertions (sequence, count) insertion pairs
// followed by MaxDeletions deletion pairs.
type Schema struct {
	MaxInsertions int
	MaxDeletions  int
}

// Observe widens the schema, if necessary, to fit rec.
func (s *Schema) Observe(rec *readcount.PositionRecord) {
	nIns, nDel := countIndels(rec)
	if nIns > s.MaxInsertions {
		s.MaxInsertions = nIns
	}
	if nDel > s.MaxDeletions {
		s.MaxDeletions = nDel
	}
}

// NCols returns the number of columns in every row.
func (s Schema) NCols() int {
	return NFixedCols + 2*s.MaxInsertions + 2*s.MaxDeletions
}

// Header returns the column names.
func (s Schema) Header() []string {
	header := make([]string, 0, s.NCols())
	header = append(header, fixedHeader...)
	for i := 1; i <= s.MaxInsertions; i++ {
		header = append(header, fmt.Sprintf("Insertion %d", i), fmt.Sprintf("Insertion %d count", i))
	}
	for i := 1; i <= s.MaxDeletions; i++ {
		header = append(header, fmt.Sprintf("Deletion %d", i), fmt.Sprintf("Deletion %d count", i))
	}
	return header
}

// formatFreq renders a frequency in shortest round-trip form ("0.5", "0").
func formatFreq(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Writer writes summary rows as TSV.
type Writer struct {
	tsvw   *tsv.Writer
	schema Schema
}

// NewWriter creates a Writer for rows fitting schema.
func NewWriter(w io.Writer, schema Schema) *Writer {
	return &Writer{tsvw: tsv.NewWriter(w), schema: schema}
}

// WriteHeader writes the header line.
func (w *Writer) WriteHeader() error {
	for _, col := range w.schema.Header() {
		w.tsvw.WriteString(col)
	}
	return w.tsvw.EndLine()
}

func (w *Writer) writeIndels(indels []Indel, width int) {
	for i := 0; i < width; i++ {
		if i < len(indels) {
			w.tsvw.WriteString(indels[i].Seq)
			w.tsvw.WriteInt64(indels[i].Count)
		} else {
			w.tsvw.WriteString("")
			w.tsvw.WriteString("")
		}
	}
}

// Write writes one row, padded to the schema width.  It is an error for the
// row to have more insertions or deletions than the schema allows.
func (w *Writer) Write(row *Row) error {
	if len(row.Insertions) > w.schema.MaxInsertions || len(row.Deletions) > w.schema.MaxDeletions {
		return errors.E(errors.Invalid, fmt.Sprintf("summary: %s:%d has %d insertion(s) and %d deletion(s), schema allows %d and %d",
			row.Chrom, row.Pos, len(row.Insertions), len(row.Deletions), w.schema.MaxInsertions, w.schema.MaxDeletions))
	}
	w.tsvw.WriteString(row.Chrom)
	w.tsvw.WriteInt64(row.Pos)
	w.tsvw.WriteString(row.Wildtype)
	w.tsvw.WriteString(row.Mutation)
	for _, base := range mutationOrder {
		w.tsvw.WriteInt64(row.Counts[base])
	}
	w.tsvw.WriteString(row.Depth)
	w.tsvw.WriteString(formatFreq(row.FreqWildtype))
	w.tsvw.WriteString(formatFreq(row.FreqMutation))
	w.writeIndels(row.Insertions, w.schema.MaxInsertions)
	w.writeIndels(row.Deletions, w.schema.MaxDeletions)
	return w.tsvw.EndLine()
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.tsvw.Flush()
}
