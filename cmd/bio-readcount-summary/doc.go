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

/*
Given the output of bam-readcount, bio-readcount-summary writes one TSV row
per genomic position with the reference base, the dominant mutation ("indel"
whenever an insertion or deletion was observed), per-nucleotide totals,
wildtype/mutation frequencies, and every observed insertion and deletion with
its read count.

The input is read twice: once to find the largest number of insertions and
deletions at any position, which fixes the column count, and once to write
the rows.  Input is assumed to be UTF-16LE unless --encoding says otherwise;
gzip/bzip2/zstd input is decompressed transparently.

The output defaults to <input basename>_parsed_output.tsv in the working
directory.

Sample usage:
bio-readcount-summary \
    --encoding utf-8 \
    --regions regions.txt \
    sample.readcount.txt
*/
package main
