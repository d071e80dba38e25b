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
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/readcount/pileup/summary"
)

var (
	encoding    = flag.String("encoding", summary.DefaultOpts.Encoding, "Text encoding of the input, e.g. 'utf-16-le', 'utf-8', 'latin-1'")
	format      = flag.String("format", summary.DefaultOpts.Format, "Output format; 'tsv' and 'tsv-bgz' supported")
	outPath     = flag.String("out", "", "Output path (default <input basename>_parsed_output.tsv, with .gz appended for tsv-bgz)")
	regionsPath = flag.String("regions", summary.DefaultOpts.RegionsPath, "Only summarize positions in this 1-based chrom/start/end region list (e.g. bio-regions output); at most one of this and -region")
	region      = flag.String("region", summary.DefaultOpts.Region, "Only summarize positions in the specified region. Format as <contig ID>:<1-based first pos>-<last pos>, <contig ID>:<1-based pos>, or just <contig ID>")
)

func bioReadcountSummaryUsage() {
	fmt.Printf("Usage: %s [OPTIONS] input_file\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bioReadcountSummaryUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 1 {
		if flag.NArg() == 0 {
			log.Fatalf("Missing positional argument (input_file required)")
		} else {
			log.Fatalf("Too many positional arguments (only input_file expected); please check flag syntax: '%s'", strings.Join(flag.Args(), " "))
		}
	}
	inPath := flag.Arg(0)
	ctx := vcontext.Background()
	opts := summary.Opts{
		Encoding:    *encoding,
		Format:      *format,
		RegionsPath: *regionsPath,
		Region:      *region,
	}
	out := *outPath
	if out == "" {
		out = summary.OutputPath(inPath, opts.Format)
	}
	if err := summary.Run(ctx, inPath, out, &opts); err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("Parsed output has been saved to %s", out)
	log.Debug.Printf("exiting")
}
