// Package chunk bounds integer growth in the codec. The forward
// transform's coordinates scale with 2^n, so sequences are split into
// windows of bounded length before encoding; adjacent windows share a
// fixed overlap that Merge verifies at reassembly, catching corruption
// confined to a single stored triple.
package chunk
