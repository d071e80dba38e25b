package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/readcount/regions"
	"github.com/pkg/errors"
)

var (
	outPath  = flag.String("out", "regions.txt", "Output region list path")
	encoding = flag.String("encoding", regions.DefaultOpts.Encoding, "Text encoding of the input table")
)

const prompt = "Enter the name of the TSV file (including extension, e.g., file.tsv): "

// promptInputPath asks for the input path on w and reads one line from r.
func promptInputPath(r io.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no input file given")
	}
	return path, nil
}

func bioRegionsUsage() {
	fmt.Printf("Usage: %s [OPTIONS] [variants.tsv]\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = bioRegionsUsage
	shutdown := grail.Init()
	defer shutdown()

	var inPath string
	switch flag.NArg() {
	case 0:
		var err error
		if inPath, err = promptInputPath(os.Stdin, os.Stdout); err != nil {
			log.Fatalf("bio-regions: %v", err)
		}
	case 1:
		inPath = flag.Arg(0)
	default:
		log.Fatalf("Too many positional arguments (at most one input path expected): '%s'", strings.Join(flag.Args(), " "))
	}
	ctx := vcontext.Background()
	opts := regions.Opts{Encoding: *encoding}
	if err := regions.Generate(ctx, inPath, *outPath, &opts); err != nil {
		log.Fatalf("bio-regions: %v", err)
	}
	fmt.Printf("%s file has been generated successfully!\n", *outPath)
}
