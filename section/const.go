package section

const (
	// Bit masks for the packed Options field
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ChecksumMask     = 0x0002 // Mask for payload checksum bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicGeometryV1Opt is the version 1 magic number for the geometry
	// container format (bits 4-15 of the Options field).
	MagicGeometryV1Opt = 0xEC10
)

// Section sizes and offsets in the container
const (
	HeaderSize         = 32                // fixed header size in bytes
	AttributeEntrySize = 8                 // fixed attribute table entry size in bytes
	AttributeTableOff  = HeaderSize        // byte offset where the attribute table starts
	MaxAttributeCount  = 0xFFFF            // attribute count is stored as uint16
	MaxComponentCount  = 4                 // attributes carry 1-4 components per point
	FaceIndexSize      = 4                 // container face indices are stored as uint32
	FaceVertexCount    = 3                 // triangulated faces only
)
