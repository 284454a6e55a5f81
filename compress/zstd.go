package compress

// ZstdCompressor provides Zstandard compression for container payloads.
//
// Zstd favors compression ratio over speed, making it the right choice for
// geometry shipped over the network or stored at rest, where the payload is
// decoded far less often than it is transferred.
//
// Two implementations exist, selected by build tag:
//   - cgo builds use valyala/gozstd (libzstd bindings)
//   - non-cgo builds use klauspost/compress/zstd (pure Go)
//
// Both produce standard zstd frames and are wire compatible.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
