package pack

import (
	"math"

	"github.com/meshpack/meshpack/errs"
	"github.com/meshpack/meshpack/format"
	"github.com/meshpack/meshpack/geom"
)

// PointStride is the byte length of one flattened point: three float32
// components, no padding.
const PointStride = 3 * 4

// FlattenPointCloud extracts the position attribute of a decoded geometry
// and returns it as a packed sequence of 3-component float32 tuples, one per
// point, in ascending point order.
//
// The layout is fixed and carries no descriptor. Positions with fewer than
// three components are zero-padded; extra components are dropped. A geometry
// without a position attribute yields an empty result, not an error - empty
// output is the "nothing to do" signal.
//
// The returned buffer is freshly allocated per call and fully owned by the
// caller.
//
// Parameters:
//   - g: Decoded geometry handle (point cloud or mesh)
//   - opts: Optional pack configuration (byte order)
//
// Returns:
//   - []byte: PointStride * PointCount bytes, or nil when no position
//     attribute exists
//   - error: errs.ErrInvalidGeometry for nil handles, or value conversion
//     errors
func FlattenPointCloud(g *geom.Geometry, opts ...Option) ([]byte, error) {
	cfg, err := newPackConfig(opts...)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errs.ErrInvalidGeometry
	}

	pos := g.NamedAttribute(format.SemanticPosition)
	if pos == nil {
		return nil, nil
	}

	pointCount := g.PointCount()
	out := make([]byte, 0, int(pointCount)*PointStride)

	for p := uint32(0); p < pointCount; p++ {
		var v [3]float32
		if err := geom.Values(pos, p, v[:]); err != nil {
			return nil, err
		}
		for _, component := range v {
			out = cfg.engine.AppendUint32(out, math.Float32bits(component))
		}
	}

	return out, nil
}
