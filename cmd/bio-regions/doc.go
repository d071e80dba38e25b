/*
bio-regions extracts the Chr and Position columns of a tab-separated variant
table into a headerless chrom/start/end region list, one single-base region
per row.  The result can be fed to bam-readcount's -l option, or to
bio-readcount-summary's -regions flag.

When no input path is given on the command line, bio-regions prompts for one.

Sample usage:
bio-regions -out regions.txt variants.tsv
*/
package main
