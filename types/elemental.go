package types

import (
	"fmt"
)

/*
Edge stores an edge's vertices in ascending order so that edges can be compared with ==
An edge between vertices [4] and [0] will always be stored as [0,4]
*/
type Edge [2]int

func NewEdge(verts [2]int) (e Edge) {
	if verts[0] <= verts[1] {
		return Edge{verts[0], verts[1]}
	}
	return Edge{verts[1], verts[0]}
}

func (e Edge) GetVertices(rev bool) (verts [2]int) {
	verts = e
	if rev {
		verts[0], verts[1] = verts[1], verts[0]
	}
	return
}

func (e Edge) String() string {
	return fmt.Sprintf("[%d,%d]", e[0], e[1])
}

// TriEdges returns the three edges of a triangle in winding order: v0-v1, v1-v2, v2-v0
func TriEdges(tri [3]int) (edges [3]Edge) {
	for i := 0; i < 3; i++ {
		edges[i] = NewEdge([2]int{tri[i], tri[(i+1)%3]})
	}
	return
}

// SharedEdges returns the edges common to both triangles, in the edge order of triangle a
func SharedEdges(a, b [3]int) (shared []Edge) {
	var (
		eb = TriEdges(b)
	)
	for _, ea := range TriEdges(a) {
		for _, e := range eb {
			if ea == e {
				shared = append(shared, ea)
				break
			}
		}
	}
	return
}
