package compressedpath_test

import (
	"fmt"

	"github.com/katalvlaran/hpath/compressedpath"
	"github.com/katalvlaran/hpath/point"
)

func ExampleCompress() {
	p := point.Path{
		Points: []point.Point{{0, 0}, {1, 0}, {2, 0}},
		Cost:   point.Cost(2),
	}
	cp := compressedpath.Compress(p)
	fmt.Println(cp.Len(), cp.Cost(), cp.Start(), cp.End())
	// Output: 3 2 0,0 2,0
}
