package fastset_test

import (
	"testing"

	"github.com/katalvlaran/domset/fastset"
)

func BenchmarkEpochSet_Clear(b *testing.B) {
	s := fastset.NewEpochSet(1 << 16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Insert(i & 0xffff)
		s.Clear()
	}
}

func BenchmarkDenseSet_InsertRemove(b *testing.B) {
	s := fastset.NewDenseSet[int](1 << 10)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		k := i & 0x3ff
		s.Insert(k)
		s.Remove(k)
	}
}
