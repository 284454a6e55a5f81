package geom

import (
	"fmt"

	"github.com/meshpack/meshpack/compress"
	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/format"
	"github.com/meshpack/meshpack/internal/hash"
	"github.com/meshpack/meshpack/internal/options"
	"github.com/meshpack/meshpack/section"
)

// decodeConfig holds decoder settings applied through DecodeOption values.
type decodeConfig struct {
	verifyChecksum bool
}

// DecodeOption represents a functional option for configuring Decode.
type DecodeOption = options.Option[*decodeConfig]

// WithChecksumVerification enables or disables payload checksum verification.
//
// Verification is enabled by default. Disabling it skips the xxHash64 pass
// over the payload, for callers that already verified integrity at a lower
// transport layer.
func WithChecksumVerification(enabled bool) DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.verifyChecksum = enabled
	})
}

// Decode parses geometry container bytes into a Geometry handle.
//
// Decode validates the header magic, geometry kind, attribute table, payload
// checksum, and section sizes before handing out a handle. The returned
// Geometry owns its data; the input slice may be modified or discarded after
// Decode returns.
//
// Parameters:
//   - data: Geometry container bytes
//   - opts: Optional decode configuration
//
// Returns:
//   - *Geometry: Decoded geometry handle (mesh or point cloud)
//   - error: Header, table, checksum, or payload validation errors
func Decode(data []byte, opts ...DecodeOption) (*Geometry, error) {
	cfg := &decodeConfig{verifyChecksum: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseGeometryHeader(data)
	if err != nil {
		return nil, fmt.Errorf("parse container header: %w", err)
	}

	engine := header.Flag.GetEndianEngine()

	tableEnd := section.AttributeTableOff + int(header.AttributeCount)*section.AttributeEntrySize
	if len(data) < tableEnd {
		return nil, fmt.Errorf("attribute table: %w", errs.ErrInvalidAttributeEntry)
	}

	entries := make([]section.AttributeEntry, header.AttributeCount)
	seen := make(map[uint32]struct{}, header.AttributeCount)
	for i := range entries {
		off := section.AttributeTableOff + i*section.AttributeEntrySize
		entry, err := section.ParseAttributeEntry(data[off:], engine)
		if err != nil {
			return nil, fmt.Errorf("attribute entry %d: %w", i, err)
		}
		if _, dup := seen[entry.UniqueID]; dup {
			return nil, fmt.Errorf("attribute entry %d (id %d): %w", i, entry.UniqueID, errs.ErrDuplicateAttributeID)
		}
		seen[entry.UniqueID] = struct{}{}
		entries[i] = entry
	}

	if len(data) < tableEnd+int(header.PayloadLength) {
		return nil, fmt.Errorf("payload: %w", errs.ErrInvalidPayloadLength)
	}
	payload := data[tableEnd : tableEnd+int(header.PayloadLength)]

	if cfg.verifyChecksum && header.Flag.HasChecksum() {
		if hash.Sum64(payload) != header.PayloadChecksum {
			return nil, errs.ErrChecksumMismatch
		}
	}

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, header.Flag.Compression())
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	if header.Flag.Compression() == format.CompressionNone {
		// The no-op codec aliases the input slice; copy so the handle does
		// not keep the caller's container bytes alive or observe mutation.
		raw = append([]byte(nil), raw...)
	}

	kind := header.Flag.GeometryKind()
	if kind == format.KindPointCloud && header.FaceCount != 0 {
		return nil, fmt.Errorf("point cloud with %d faces: %w", header.FaceCount, errs.ErrInvalidGeometryKind)
	}

	faceBytes := int(header.FaceCount) * section.FaceVertexCount * section.FaceIndexSize
	expected := faceBytes
	for _, entry := range entries {
		expected += int(entry.Dim) * int(header.PointCount) * entry.ScalarTypeTag().ByteWidth()
	}
	if len(raw) != expected {
		return nil, fmt.Errorf("payload is %d bytes, expected %d: %w", len(raw), expected, errs.ErrInvalidPayloadLength)
	}

	g := &Geometry{
		kind:       kind,
		pointCount: header.PointCount,
		faceCount:  header.FaceCount,
		attrs:      make([]*Attribute, len(entries)),
	}

	if kind == format.KindMesh {
		g.faces = make([]uint32, int(header.FaceCount)*section.FaceVertexCount)
		for i := range g.faces {
			g.faces[i] = engine.Uint32(raw[i*section.FaceIndexSize:])
		}
	}

	cursor := faceBytes
	for i, entry := range entries {
		length := int(entry.Dim) * int(header.PointCount) * entry.ScalarTypeTag().ByteWidth()
		g.attrs[i] = &Attribute{
			values:     raw[cursor : cursor+length],
			engine:     engine,
			pointCount: header.PointCount,
			uniqueID:   entry.UniqueID,
			scalarType: entry.ScalarTypeTag(),
			dim:        entry.Dim,
			semantic:   entry.SemanticTag(),
		}
		cursor += length
	}

	return g, nil
}
