// Package section defines the fixed-size binary sections of the geometry
// container format: the 32-byte header and the 8-byte attribute table
// entries that follow it.
//
// The header's Options field is always serialized little-endian so a decoder
// can read the endianness flag before selecting the engine for the remaining
// fields. Everything after the Options field honors the flagged byte order.
package section
