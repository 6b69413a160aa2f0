package geometry2D

import (
	"errors"
	"fmt"
	"log"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/quadindex/types"
	"github.com/notargets/quadindex/utils"
)

const (
	VertsPerQuad   = 4
	IndicesPerTri  = 3
	IndicesPerQuad = 2 * IndicesPerTri
)

var (
	ErrInvalidQuadCount  = errors.New("invalid quad count")
	ErrInvalidStartIndex = errors.New("invalid start index")
)

/*
QuadIndices returns the triangle list index buffer for numQuads independent quads.
Quad n owns vertices 4n..4n+3 and is emitted as two triangles sharing the diagonal 4n+1 - 4n+2:

	4n, 4n+1, 4n+2,  4n+1, 4n+2, 4n+3

A negative count is not an error, a warning is logged and the result is empty.
*/
func QuadIndices(numQuads int) (I utils.Index) {
	if numQuads < 0 {
		log.Printf("Warning: number of quads is negative (%d), returning an empty index list", numQuads)
		return utils.Index{}
	}
	I = make(utils.Index, 0, IndicesPerQuad*numQuads)
	for n := 0; n < numQuads; n++ {
		I = AppendQuadIndices(I, VertsPerQuad*n)
	}
	return
}

// QuadIndicesFrom is QuadIndices with every index offset by startIndex
func QuadIndicesFrom(numQuads, startIndex int) (I utils.Index) {
	if startIndex < 0 {
		log.Printf("Warning: start index is negative (%d), returning an empty index list", startIndex)
		return utils.Index{}
	}
	return QuadIndices(numQuads).AddInPlace(startIndex)
}

// QuadIndicesStrict rejects a negative count with ErrInvalidQuadCount instead of warning
func QuadIndicesStrict(numQuads int) (I utils.Index, err error) {
	return QuadIndicesFromStrict(numQuads, 0)
}

func QuadIndicesFromStrict(numQuads, startIndex int) (I utils.Index, err error) {
	switch {
	case numQuads < 0:
		err = fmt.Errorf("%w: %d, must be zero or greater", ErrInvalidQuadCount, numQuads)
		return
	case startIndex < 0:
		err = fmt.Errorf("%w: %d, must be zero or greater", ErrInvalidStartIndex, startIndex)
		return
	}
	return QuadIndicesFrom(numQuads, startIndex), nil
}

func AppendTriangleIndices(I utils.Index, startIndex int) utils.Index {
	return append(I, startIndex, startIndex+1, startIndex+2)
}

// AppendQuadIndices appends the two triangles of the quad whose first vertex is startIndex
func AppendQuadIndices(I utils.Index, startIndex int) utils.Index {
	I = AppendTriangleIndices(I, startIndex)
	return AppendTriangleIndices(I, startIndex+1)
}

// QuadTriangles reshapes a triangle list into an element to vertex matrix, one row per triangle
func QuadTriangles(I utils.Index) (EToV *mat.Dense, err error) {
	var (
		nTri = len(I) / IndicesPerTri
	)
	if len(I)%IndicesPerTri != 0 {
		err = fmt.Errorf("index length %d is not a multiple of %d", len(I), IndicesPerTri)
		return
	}
	if nTri == 0 {
		// gonum refuses zero sized matrices
		err = fmt.Errorf("no triangles in index list")
		return
	}
	data := make([]float64, len(I))
	for i, val := range I {
		data[i] = float64(val)
	}
	EToV = mat.NewDense(nTri, IndicesPerTri, data)
	return
}

/*
ValidateQuadIndices checks that I is a buffer of independent quads as produced by QuadIndicesFrom:
  - the length is a whole number of quads
  - every quad follows the two triangle pattern from its own base vertex
  - quad bases increase by exactly 4, so vertex blocks are disjoint and increasing
  - the two triangles of each quad share exactly one edge, the diagonal
*/
func ValidateQuadIndices(I utils.Index) (err error) {
	if len(I)%IndicesPerQuad != 0 {
		err = fmt.Errorf("index length %d is not a multiple of %d", len(I), IndicesPerQuad)
		return
	}
	var (
		numQuads = len(I) / IndicesPerQuad
	)
	for n := 0; n < numQuads; n++ {
		q := I[n*IndicesPerQuad : (n+1)*IndicesPerQuad]
		base := q[0]
		if base < 0 {
			return fmt.Errorf("quad %d has negative base index %d", n, base)
		}
		if n > 0 {
			if prev := I[(n-1)*IndicesPerQuad]; base != prev+VertsPerQuad {
				return fmt.Errorf("quad %d base index %d does not follow quad %d base index %d",
					n, base, n-1, prev)
			}
		}
		expected := AppendQuadIndices(make(utils.Index, 0, IndicesPerQuad), base)
		if !expected.Equal(q) {
			return fmt.Errorf("quad %d has indices %v, expected %v", n, []int(q), []int(expected))
		}
		shared := types.SharedEdges([3]int{q[0], q[1], q[2]}, [3]int{q[3], q[4], q[5]})
		if len(shared) != 1 || shared[0] != types.NewEdge([2]int{base + 1, base + 2}) {
			return fmt.Errorf("quad %d triangles share edges %v, expected only the diagonal", n, shared)
		}
	}
	return
}
