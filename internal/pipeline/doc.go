// Package pipeline runs the chunk-level fan-out for both directions of
// the codec: FASTA records to BICGR records on encode, and back on
// decode. Chunk jobs are tagged with their index and write disjoint
// result slots, so output is deterministic for any worker count. Merging
// stays sequential: each seam check depends on the previous chunk.
package pipeline
