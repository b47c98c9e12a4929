package fastset_test

import (
	"fmt"

	"github.com/katalvlaran/domset/fastset"
)

func ExampleEpochSet() {
	s := fastset.NewEpochSet(4)
	s.Insert(1)
	s.Insert(3)
	fmt.Println(s.Contains(1), s.Contains(2))
	s.Clear()
	fmt.Println(s.Contains(1), s.Contains(3))
	// Output:
	// true false
	// false false
}

func ExampleDenseSet() {
	s := fastset.NewDenseSet[int](6)
	s.Insert(2)
	s.Insert(5)
	s.Insert(1)
	s.Remove(2)
	fmt.Println(s.Len(), s.Values())
	// Output: 2 [1 5]
}
