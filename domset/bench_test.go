package domset_test

import (
	"testing"

	"github.com/katalvlaran/domset/builder"
	"github.com/katalvlaran/domset/core"
	"github.com/katalvlaran/domset/domset"
)

func benchSolve(b *testing.B, g *core.Graph, opts ...domset.Option) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := domset.Solve(g, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Grid5x5_Cover measures the default policy on a 5×5 grid (γ=7).
func BenchmarkSolve_Grid5x5_Cover(b *testing.B) {
	benchSolve(b, builder.MustBuild(nil, builder.Grid(5, 5)))
}

// BenchmarkSolve_Grid5x5_Simple measures SimpleBound on the same grid.
func BenchmarkSolve_Grid5x5_Simple(b *testing.B) {
	benchSolve(b, builder.MustBuild(nil, builder.Grid(5, 5)), domset.WithBound(domset.SimpleBound))
}

// BenchmarkSolve_Cubic30 measures a random 3-regular graph on 30 vertices.
func BenchmarkSolve_Cubic30(b *testing.B) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomRegular(30, 3))
	benchSolve(b, g)
}

// BenchmarkContext_SelectRollback measures one select/rollback pair on a
// dense random graph.
func BenchmarkContext_SelectRollback(b *testing.B) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(200, 0.1))
	c, err := domset.NewContext(g)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := core.Vertex(i % g.Order())
		mark := c.Mark()
		c.Select(v)
		c.Rollback(mark)
	}
}
