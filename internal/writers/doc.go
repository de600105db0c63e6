// Package writers turns encoded records and decoded sequences into
// serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (BICGR lines, JSONL, FASTA).
//   - The codec stays domain-only; Pipeline stays orchestration-only.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
package writers
