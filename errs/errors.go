// Package errs defines the sentinel errors shared across meshpack packages.
//
// All failure conditions are reported to the immediate caller; nothing is
// retried or recovered internally. Callers can match conditions with
// errors.Is against the sentinels below.
package errs

import "errors"

var (
	// ErrInvalidGeometry indicates a nil or malformed decoded geometry handle.
	ErrInvalidGeometry = errors.New("invalid geometry handle")

	// ErrDecodeFailure indicates the geometry container bytes were rejected.
	ErrDecodeFailure = errors.New("geometry decode failure")

	// ErrBufferTooSmall indicates the caller-supplied output region cannot
	// hold the computed layout.
	ErrBufferTooSmall = errors.New("output buffer too small")

	// ErrUnsupportedScalarType indicates a scalar type outside the closed
	// enumeration reached the descriptor or write path.
	ErrUnsupportedScalarType = errors.New("unsupported scalar type")

	// ErrInvalidHeaderSize indicates a container header shorter than the
	// fixed header size.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates the container header magic bits do not
	// match the geometry container format.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidAttributeEntry indicates a truncated or malformed attribute
	// table entry.
	ErrInvalidAttributeEntry = errors.New("invalid attribute table entry")

	// ErrInvalidGeometryKind indicates a geometry kind outside the known set.
	ErrInvalidGeometryKind = errors.New("invalid geometry kind")

	// ErrInvalidCompression indicates a compression type outside the known set.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrChecksumMismatch indicates the payload checksum does not match the
	// header checksum.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrValueCountMismatch indicates a supplied value slice whose length is
	// not component count times point count.
	ErrValueCountMismatch = errors.New("value count mismatch")

	// ErrInvalidPayloadLength indicates the payload is shorter than the
	// length declared by the header, or shorter than its sections require.
	ErrInvalidPayloadLength = errors.New("invalid payload length")

	// ErrInvalidComponentCount indicates an attribute dimensionality outside
	// the supported 1-4 range.
	ErrInvalidComponentCount = errors.New("invalid component count")

	// ErrPointIndexOutOfRange indicates a per-point access beyond the
	// geometry's point count.
	ErrPointIndexOutOfRange = errors.New("point index out of range")

	// ErrDuplicateAttributeID indicates two attributes in one geometry share
	// a unique ID.
	ErrDuplicateAttributeID = errors.New("duplicate attribute unique id")

	// ErrInvalidAttributeName indicates an empty attribute name.
	ErrInvalidAttributeName = errors.New("invalid attribute name")

	// ErrAttributeIDCollision indicates two distinct attribute names hash to
	// the same unique ID.
	ErrAttributeIDCollision = errors.New("attribute id collision")

	// ErrInvalidConfigSize indicates mesh config bytes are too short or do
	// not match the descriptor count they declare.
	ErrInvalidConfigSize = errors.New("invalid mesh config size")
)
