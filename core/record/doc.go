// Package record reads and writes the BICGR ("block ICGR") line format,
// one encoded sequence per line:
//
//	seq_id <TAB> description <TAB> overlap <TAB> tri_integers
//
// where tri_integers is a ';'-joined list of x,y,n triples. Lines starting
// with '#' are comments. Streams may be gzip-, zstd- or lz4-compressed;
// Open and Create handle compression transparently by suffix or magic
// number.
package record
