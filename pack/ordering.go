package pack

import (
	"sort"

	"github.com/meshpack/meshpack/geom"
)

// OrderAttributes returns the geometry's attributes sorted by ascending
// unique ID, regardless of container storage order.
//
// This ordering is load-bearing: ComputeMeshConfig assigns descriptor
// offsets in it and PackMesh writes value blocks in it, so both always go
// through this one function. Unique IDs are unique per geometry (enforced at
// decode), so the sort is a total order with no tie-break.
func OrderAttributes(g *geom.Geometry) []*geom.Attribute {
	attrs := g.Attributes()
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].UniqueID() < attrs[j].UniqueID()
	})

	return attrs
}
