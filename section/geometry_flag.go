package section

import (
	"github.com/meshpack/meshpack/endian"
	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/format"
)

// GeometryFlag represents the packed flag fields in the geometry container header.
type GeometryFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 is the checksum flag, 1 means the header carries a payload checksum.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the container format:
	//   - 0xEC10 (0b1110_1100_0001_0000): Geometry container format v1
	Options uint16

	// Kind is the geometry kind stored in the container (mesh or point cloud).
	Kind uint8

	// CompressionType is the compression applied to the container payload.
	CompressionType uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewGeometryFlag creates a new GeometryFlag with default settings:
// little-endian, checksum enabled, no payload compression.
func NewGeometryFlag(kind format.GeometryKind) GeometryFlag {
	flag := GeometryFlag{
		Options:         MagicGeometryV1Opt | ChecksumMask,
		Kind:            uint8(kind),
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the container payload is little-endian.
func (f GeometryFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the container payload is big-endian.
func (f GeometryFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *GeometryFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *GeometryFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// HasChecksum returns whether the header carries a payload checksum.
func (f GeometryFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the payload checksum.
func (f *GeometryFlag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// GetMagicNumber returns the magic number from the Options field.
func (f GeometryFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f GeometryFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GeometryKind returns the geometry kind stored in the container.
func (f GeometryFlag) GeometryKind() format.GeometryKind {
	return format.GeometryKind(f.Kind)
}

// SetGeometryKind sets the geometry kind.
func (f *GeometryFlag) SetGeometryKind(kind format.GeometryKind) {
	f.Kind = uint8(kind)
}

// Compression returns the payload compression type.
func (f GeometryFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *GeometryFlag) SetCompression(ct format.CompressionType) {
	f.CompressionType = uint8(ct)
}

// Validate checks the flag fields against the container format.
//
// Returns:
//   - error: ErrInvalidMagicNumber, ErrInvalidGeometryKind, or
//     ErrInvalidCompression
func (f GeometryFlag) Validate() error {
	if f.GetMagicNumber() != MagicGeometryV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	kind := f.GeometryKind()
	if kind != format.KindMesh && kind != format.KindPointCloud {
		return errs.ErrInvalidGeometryKind
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return errs.ErrInvalidCompression
	}

	return nil
}
