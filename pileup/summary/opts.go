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
	"path/filepath"
	"strings"

	"github.com/grailbio/readcount/encoding/charset"
)

// Supported output formats.
const (
	// FormatTSV is plain tab-separated text.
	FormatTSV = "tsv"
	// FormatTSVBgz is tab-separated text in a BGZF container.
	FormatTSVBgz = "tsv-bgz"
)

// outputSuffix is appended to the input file's base name (without its
// extension) to form the default output name.
const outputSuffix = "_parsed_output.tsv"

type Opts struct {
	// Commandline options.
	Encoding    string
	Format      string
	RegionsPath string
	Region      string
}

var DefaultOpts = Opts{
	Encoding: charset.Default,
	Format:   FormatTSV,
}

func (opts *Opts) validate() error {
	if opts.RegionsPath != "" && opts.Region != "" {
		return fmt.Errorf("summary: at most one of -regions and -region may be specified")
	}
	switch opts.Format {
	case FormatTSV, FormatTSVBgz:
	default:
		return fmt.Errorf("summary: unsupported output format %q", opts.Format)
	}
	return nil
}

// OutputPath returns the default output file name for inPath:
// <basename without extension>_parsed_output.tsv, plus ".gz" for tsv-bgz.
// The result has no directory component, so it lands in the working
// directory.
func OutputPath(inPath, format string) string {
	base := filepath.Base(inPath)
	ext := filepath.Ext(base)
	if ext == base {
		// Dot-files like ".readcount" have no extension.
		ext = ""
	}
	out := strings.TrimSuffix(base, ext) + outputSuffix
	if format == FormatTSVBgz {
		out += ".gz"
	}
	return out
}
