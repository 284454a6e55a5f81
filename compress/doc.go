// Package compress provides the payload compression codecs used by the
// geometry container format.
//
// A container's face and attribute payload is compressed as a single block
// with one of the supported algorithms (None, Zstd, S2, LZ4). The codec is
// recorded in the container header so decoders can select the matching
// decompressor without out-of-band configuration.
//
// All codecs are safe for concurrent use; internal scratch state is pooled
// per call.
package compress
