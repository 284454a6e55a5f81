// Package meshpack exposes decoded 3D geometry as flat, self-describing
// binary buffers ready for direct consumption by a rendering pipeline, with
// no further parsing on the consumer side.
//
// Geometry arrives as compressed container bytes and is decoded once into a
// read-only handle; packing is a separate, repeatable operation over the
// handle (decode once, pack many):
//
//	mesh, _ := meshpack.DecodeMesh(data)
//	config, _ := meshpack.ComputeMeshConfig(mesh)
//
//	buf := make([]byte, config.BufferSize)
//	n, _ := meshpack.PackMesh(mesh, buf)
//
// The packed buffer holds 2- or 4-byte indices first (2-byte up to 65535
// indices), then one tightly packed value block per attribute in ascending
// unique-ID order - structure of arrays, no interleaving, no padding. The
// MeshConfig records every block's offset and length, so a consumer can
// slice the buffer directly into GPU uploads.
//
// Point clouds use a simpler fixed layout with no descriptor:
//
//	points, _ := meshpack.DecodePointCloud(data)  // 12 bytes per point
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the geom and
// pack packages, simplifying the most common use cases. For fine-grained
// control (byte order, checksum handling, container building), use those
// packages directly.
package meshpack

import (
	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/geom"
	"github.com/meshpack/meshpack/internal/hash"
	"github.com/meshpack/meshpack/pack"
)

// DecodeGeometry decodes geometry container bytes into a handle of either
// kind (mesh or point cloud).
//
// The handle is read-only and may be packed any number of times; callers
// that process many containers can cache handles across pack calls.
//
// Parameters:
//   - data: Geometry container bytes
//
// Returns:
//   - *geom.Geometry: Decoded geometry handle
//   - error: Container validation or decompression errors
func DecodeGeometry(data []byte) (*geom.Geometry, error) {
	return geom.Decode(data)
}

// DecodeMesh decodes geometry container bytes that must hold a mesh.
//
// Parameters:
//   - data: Geometry container bytes
//
// Returns:
//   - *geom.Geometry: Decoded mesh handle
//   - error: Decode errors, or errs.ErrInvalidGeometry if the container
//     holds a point cloud
func DecodeMesh(data []byte) (*geom.Geometry, error) {
	g, err := geom.Decode(data)
	if err != nil {
		return nil, err
	}
	if !g.IsMesh() {
		return nil, errs.ErrInvalidGeometry
	}

	return g, nil
}

// ComputeMeshConfig plans the packed buffer layout for a decoded mesh.
//
// The config is deterministic for an unmodified handle and describes the
// exact buffer PackMesh produces: index region length, per-attribute
// offsets and lengths in ascending unique-ID order, and the total
// BufferSize the caller must allocate.
//
// Parameters:
//   - mesh: Decoded mesh handle from DecodeMesh
//
// Returns:
//   - *pack.MeshConfig: Layout descriptor
//   - error: errs.ErrInvalidGeometry or errs.ErrUnsupportedScalarType
func ComputeMeshConfig(mesh *geom.Geometry) (*pack.MeshConfig, error) {
	return pack.ComputeMeshConfig(mesh)
}

// PackMesh serializes a decoded mesh into the caller-owned buffer.
//
// On success the returned count equals the corresponding config's
// BufferSize. On any failure the count is 0; a typical recovery is to
// allocate BufferSize bytes and retry - the handle is untouched and can be
// packed again.
//
// Parameters:
//   - mesh: Decoded mesh handle
//   - out: Caller-allocated buffer, at least config.BufferSize bytes
//   - opts: Optional pack configuration (byte order)
//
// Returns:
//   - int: Bytes written (0 on failure)
//   - error: errs.ErrInvalidGeometry, errs.ErrBufferTooSmall, or
//     errs.ErrUnsupportedScalarType
func PackMesh(mesh *geom.Geometry, out []byte, opts ...pack.Option) (int, error) {
	return pack.PackMesh(mesh, out, opts...)
}

// DecodePointCloud decodes point cloud container bytes and flattens the
// position attribute in one call.
//
// The result is a packed sequence of 3-component float32 tuples, 12 bytes
// per point, with no descriptor - the layout is implicit and fixed. A point
// cloud without a position attribute yields an empty result, not an error.
//
// For repeated flattening of the same container, decode once with
// DecodeGeometry and call pack.FlattenPointCloud on the handle instead.
//
// Parameters:
//   - data: Geometry container bytes holding a point cloud
//
// Returns:
//   - []byte: 12 * PointCount bytes, or nil when no position attribute exists
//   - error: Decode errors
func DecodePointCloud(data []byte) ([]byte, error) {
	g, err := geom.Decode(data)
	if err != nil {
		return nil, err
	}

	return pack.FlattenPointCloud(g)
}

// AttributeID converts an attribute name string to a 32-bit identifier.
//
// Producers that name their channels ("position", "normal", "uv0", ...) can
// use this to generate stable unique IDs for the container attribute table.
// The hash is deterministic, so the same name always maps to the same ID
// across containers and processes. Uniqueness within one geometry remains
// the producer's responsibility; the builder rejects duplicates.
//
// Example:
//
//	posID := meshpack.AttributeID("position")
//	geom.AddAttribute(builder, posID, format.SemanticPosition, 3, positions)
func AttributeID(name string) uint32 {
	return hash.ID(name)
}
