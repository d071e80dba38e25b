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
	"github.com/grailbio/readcount/encoding/readcount"
	"github.com/grailbio/readcount/pileup"
)

// Mutation labels that aren't a single nucleotide.
const (
	MutationIndel = "indel"
	MutationNone  = "No mutation"
)

// mutationOrder is both the output column order for nucleotide totals and the
// scan order for picking the dominant substitution; on a tie, the earlier
// base wins.
var mutationOrder = [pileup.NBase]byte{pileup.BaseA, pileup.BaseT, pileup.BaseG, pileup.BaseC}

// Indel is one observed insertion or deletion at a position.  Seq excludes
// the leading +/-.
type Indel struct {
	Seq   string
	Count int64
}

// Row is one line of the summary TSV.
//
// - Counts is indexed by pileup.BaseA/C/G/T.
// - Depth is the depth column as given; FreqWildtype and FreqMutation are 0
//   when it is zero or non-numeric.
type Row struct {
	Chrom         string
	Pos           int64
	Wildtype      string
	Mutation      string
	MutationCount int64
	WildtypeCount int64
	Counts        [pileup.NBase]int64
	Depth         string
	FreqWildtype  float64
	FreqMutation  float64
	Insertions    []Indel
	Deletions     []Indel
}

// countIndels returns the number of observed insertions and deletions at rec.
func countIndels(rec *readcount.PositionRecord) (nIns, nDel int) {
	for i := range rec.Bases {
		if rec.Bases[i].IsInsertion() {
			nIns++
		} else if rec.Bases[i].IsDeletion() {
			nDel++
		}
	}
	return
}

// Summarize computes the summary row for one bam-readcount position.
//
// The mutation label is "indel" whenever any insertion or deletion was
// observed, regardless of substitution counts; its count is then the sum of
// all indel counts.  Otherwise it is the non-reference nucleotide with the
// highest total (ties broken in A, T, G, C order), or "No mutation" when that
// total is zero.
func Summarize(rec *readcount.PositionRecord) Row {
	row := Row{
		Chrom:    rec.Chrom,
		Pos:      rec.Pos,
		Wildtype: rec.Ref,
		Depth:    rec.Depth,
	}
	var indelTotal int64
	for i := range rec.Bases {
		b := &rec.Bases[i]
		if base := pileup.BaseEnum(b.Base); base != pileup.BaseX {
			row.Counts[base] += b.Count
		}
		switch {
		case b.Base == rec.Ref:
			row.WildtypeCount += b.Count
		case b.IsInsertion():
			row.Insertions = append(row.Insertions, Indel{Seq: b.IndelSeq(), Count: b.Count})
			indelTotal += b.Count
		case b.IsDeletion():
			row.Deletions = append(row.Deletions, Indel{Seq: b.IndelSeq(), Count: b.Count})
			indelTotal += b.Count
		}
	}

	if len(row.Insertions)+len(row.Deletions) > 0 {
		row.Mutation = MutationIndel
		row.MutationCount = indelTotal
	} else {
		refBase := pileup.BaseEnum(rec.Ref)
		best := mutationOrder[0]
		var bestCount int64
		for i, base := range mutationOrder {
			var count int64
			if base != refBase {
				count = row.Counts[base]
			}
			if i == 0 || count > bestCount {
				best, bestCount = base, count
			}
		}
		if bestCount == 0 {
			row.Mutation = MutationNone
		} else {
			row.Mutation = string(pileup.EnumToASCIITable[best])
			row.MutationCount = bestCount
		}
	}

	if depth, ok := rec.NumericDepth(); ok && depth > 0 {
		row.FreqWildtype = float64(row.WildtypeCount) / float64(depth)
		row.FreqMutation = float64(row.MutationCount) / float64(depth)
	}
	return row
}
