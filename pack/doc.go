// Package pack turns decoded geometry into flat, self-describing binary
// buffers ready for direct upload to a rendering pipeline.
//
// The mesh path is split into two pure steps over the same handle:
//
//	config, _ := pack.ComputeMeshConfig(mesh)   // plan the layout
//	buf := make([]byte, config.BufferSize)
//	n, _ := pack.PackMesh(mesh, buf)            // fill the buffer
//
// The packed buffer holds the index block first, then one tightly packed
// value block per attribute in ascending unique-ID order (structure of
// arrays, no padding). The MeshConfig describes every region's offset and
// length so consumers can slice the buffer without re-parsing it.
//
// The point cloud path has no descriptor: FlattenPointCloud emits a fixed
// layout of three float32 components per point.
//
// Both steps derive the index width from SelectIndexWidth and the attribute
// order from OrderAttributes, so a layout computed by ComputeMeshConfig
// always matches the bytes produced by PackMesh for the same handle.
package pack
