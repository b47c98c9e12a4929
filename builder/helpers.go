package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/domset/core"
)

// addVertices registers labels idFn(0..n-1) and returns their indices.
// Complexity: O(n).
func addVertices(method string, b *core.Builder, n int, idFn func(int) string) ([]core.Vertex, error) {
	vs := make([]core.Vertex, n)
	for i := 0; i < n; i++ {
		id := idFn(i)
		v, err := b.AddVertex(id)
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%q): %w", method, id, err)
		}
		vs[i] = v
	}

	return vs, nil
}

// addEdge connects two registered vertices with method context.
func addEdge(method string, b *core.Builder, u, v core.Vertex) error {
	if err := b.AddEdgeIDs(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// addRing connects vs[i]-vs[i+1] and closes vs[last]-vs[0].
func addRing(method string, b *core.Builder, vs []core.Vertex) error {
	for i := range vs {
		if err := addEdge(method, b, vs[i], vs[(i+1)%len(vs)]); err != nil {
			return err
		}
	}

	return nil
}

// vertexID returns prefix+i, e.g. vertexID("R",2) → "R2".
func vertexID(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
