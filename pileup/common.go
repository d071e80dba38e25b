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
package pileup

import (
	"github.com/grailbio/readcount/interval"
)

// Common pileup components.

// PosType is the integer type used to represent genomic positions.
type PosType = interval.PosType

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = interval.PosTypeMax

// These constants are the natural values for A/C/G/T in a packed 2-bit
// representation, with BaseX as a catch-all for everything else (N, '=',
// indel symbols).
const (
	// BaseA represents an A base.
	BaseA byte = iota
	// BaseC represents an C base.
	BaseC
	// BaseG represents an G base.
	BaseG
	// BaseT represents an T base.
	BaseT
	// BaseX is a catch-all.
	BaseX
)

const (
	// NBase is the number of regular base types.
	NBase = 4
	// NBaseEnum counts BaseX as well as the regular base types.
	NBaseEnum = 5
)

// EnumToASCIITable is the A/C/G/T/X -> ASCII mapping, with X rendered as 'N'.
var EnumToASCIITable = [...]byte{'A', 'C', 'G', 'T', 'N'}

var asciiToEnumTable = func() (table [256]byte) {
	for i := range table {
		table[i] = BaseX
	}
	table['A'], table['a'] = BaseA, BaseA
	table['C'], table['c'] = BaseC, BaseC
	table['G'], table['g'] = BaseG, BaseG
	table['T'], table['t'] = BaseT, BaseT
	return
}()

// BaseEnum returns the A/C/G/T/X enum for a base symbol.  Only single-letter
// nucleotide symbols map to a regular base; everything else, including
// insertion/deletion symbols like "+TT", is BaseX.
func BaseEnum(symbol string) byte {
	if len(symbol) != 1 {
		return BaseX
	}
	return asciiToEnumTable[symbol[0]]
}
