// Package geom implements the geometry container codec: decoding compressed
// container bytes into an in-memory Geometry handle, and building container
// bytes from raw face and attribute data.
//
// A decoded Geometry is read-only. The same handle may be packed any number
// of times (decode once, pack many), and distinct handles may be processed
// concurrently from independent goroutines. A single handle must not be
// shared while the container is still being decoded.
//
// Attribute values are accessed per point and converted on the fly to any
// supported scalar type via the generic Values function, mirroring how a
// renderer-facing packer consumes them.
package geom
