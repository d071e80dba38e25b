package readcount

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// NBaseFields is the number of colon-separated sub-fields in every per-base
// column of bam-readcount output.
const NBaseFields = 14

// BaseFieldNames lists the per-base sub-fields in the order bam-readcount
// writes them.
var BaseFieldNames = [NBaseFields]string{
	"base",
	"count",
	"avg_mapping_quality",
	"avg_basequality",
	"avg_se_mapping_quality",
	"num_plus_strand",
	"num_minus_strand",
	"avg_pos_as_fraction",
	"avg_num_mismatches_as_fraction",
	"avg_sum_mismatch_qualities",
	"num_q2_containing_reads",
	"avg_distance_to_q2_start_in_q2_reads",
	"avg_clipped_length",
	"avg_distance_to_effective_3p_end",
}

// BaseRecord is one decoded per-base column.  Base is upper-cased; it is
// either a single symbol (A, C, G, T, N, =) or an indel of the form "+SEQ"
// or "-SEQ".  The quality metrics are kept verbatim.
type BaseRecord struct {
	Base  string
	Count int64

	AvgMappingQuality             string
	AvgBaseQuality                string
	AvgSEMappingQuality           string
	NumPlusStrand                 string
	NumMinusStrand                string
	AvgPosAsFraction              string
	AvgNumMismatchesAsFraction    string
	AvgSumMismatchQualities       string
	NumQ2ContainingReads          string
	AvgDistanceToQ2StartInQ2Reads string
	AvgClippedLength              string
	AvgDistanceToEffective3pEnd   string
}

// IsInsertion reports whether the record is an observed insertion.
func (b *BaseRecord) IsInsertion() bool {
	return b.Count > 0 && strings.HasPrefix(b.Base, "+")
}

// IsDeletion reports whether the record is an observed deletion.
func (b *BaseRecord) IsDeletion() bool {
	return b.Count > 0 && strings.HasPrefix(b.Base, "-")
}

// IndelSeq returns the inserted or deleted sequence, without the +/- prefix.
func (b *BaseRecord) IndelSeq() string {
	if len(b.Base) == 0 {
		return ""
	}
	return b.Base[1:]
}

// ParseBaseRecord decodes a single per-base column.  It returns an
// errors.Integrity error if the sub-field count is wrong or the count is not
// an integer.
func ParseBaseRecord(field string) (b BaseRecord, err error) {
	parts := strings.Split(field, ":")
	if len(parts) != NBaseFields {
		err = errors.E(errors.Integrity, fmt.Sprintf("per-base field %q has %d sub-fields, expected %d", field, len(parts), NBaseFields))
		return
	}
	if b.Count, err = strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64); err != nil {
		err = errors.E(errors.Integrity, fmt.Sprintf("per-base field %q has non-integer count %q", field, parts[1]))
		return
	}
	b.Base = strings.ToUpper(strings.TrimSpace(parts[0]))
	b.AvgMappingQuality = parts[2]
	b.AvgBaseQuality = parts[3]
	b.AvgSEMappingQuality = parts[4]
	b.NumPlusStrand = parts[5]
	b.NumMinusStrand = parts[6]
	b.AvgPosAsFraction = parts[7]
	b.AvgNumMismatchesAsFraction = parts[8]
	b.AvgSumMismatchQualities = parts[9]
	b.NumQ2ContainingReads = parts[10]
	b.AvgDistanceToQ2StartInQ2Reads = parts[11]
	b.AvgClippedLength = parts[12]
	b.AvgDistanceToEffective3pEnd = parts[13]
	return
}

// PositionRecord is one line of bam-readcount output.
//
// - Pos is 1-based, as written by bam-readcount.
// - Ref is upper-cased.
// - Depth is kept as text; see NumericDepth.
type PositionRecord struct {
	Chrom string
	Pos   int64
	Ref   string
	Depth string
	Bases []BaseRecord
}

// NumericDepth returns the depth as an integer.  ok is false unless Depth
// consists only of decimal digits.
func (r *PositionRecord) NumericDepth() (depth int64, ok bool) {
	if len(r.Depth) == 0 {
		return 0, false
	}
	for i := 0; i < len(r.Depth); i++ {
		if r.Depth[i] < '0' || r.Depth[i] > '9' {
			return 0, false
		}
	}
	var err error
	if depth, err = strconv.ParseInt(r.Depth, 10, 64); err != nil {
		return 0, false
	}
	return depth, true
}

// ParseLine decodes the columns of one bam-readcount line into rec, reusing
// rec.Bases.  Empty per-base columns (e.g. from a trailing tab) are skipped.
func ParseLine(fields []string, rec *PositionRecord) error {
	if len(fields) < 4 {
		return errors.E(errors.Integrity, fmt.Sprintf("expected at least 4 columns, got %d", len(fields)))
	}
	pos, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	if err != nil {
		return errors.E(errors.Integrity, fmt.Sprintf("position %q is not an integer", fields[1]))
	}
	rec.Chrom = fields[0]
	rec.Pos = pos
	rec.Ref = strings.ToUpper(strings.TrimSpace(fields[2]))
	rec.Depth = strings.TrimSpace(fields[3])
	rec.Bases = rec.Bases[:0]
	for _, field := range fields[4:] {
		if len(field) == 0 {
			continue
		}
		b, err := ParseBaseRecord(field)
		if err != nil {
			return err
		}
		rec.Bases = append(rec.Bases, b)
	}
	return nil
}
