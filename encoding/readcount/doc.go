/*
Package readcount decodes the per-position output of bam-readcount.

Each line is tab-separated:

  chrom  pos  ref  depth  base:count:...  base:count:...  ...

where every per-base column carries 14 colon-separated sub-fields (see
BaseFieldNames).  Indels appear as per-base columns whose symbol starts with
'+' (insertion) or '-' (deletion), followed by the inserted/deleted sequence.
*/
package readcount
