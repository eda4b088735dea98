package index

import (
	"fmt"
	"github.com/paulmach/orb"
	"math"
	"spatialneighbors/geometry"
	"testing"
)

func fillSquare(spatialIndex SpatialIndex[int], size int) {
	for x := -size; x < size; x++ {
		for y := -size; y < size; y++ {
			spatialIndex.InsertUnchecked(orb.Point{float64(x), float64(y)}, 1)
		}
	}
}

func newBenchmarkIndex(b *testing.B, config Config, size int) SpatialIndex[int] {
	domain, err := geometry.NewDomain(float64(-size), float64(size), float64(-size), float64(size))
	if err != nil {
		b.Fatal(err)
	}
	spatialIndex, err := New[int](config, domain)
	if err != nil {
		b.Fatal(err)
	}
	return spatialIndex
}

var benchmarkConfigs = map[string]Config{
	"List":       {Kind: KindList},
	"Grid10":     {Kind: KindGrid, CellsX: 10, CellsY: 10},
	"Grid100":    {Kind: KindGrid, CellsX: 100, CellsY: 100},
	"Grid1000":   {Kind: KindGrid, CellsX: 1000, CellsY: 1000},
	"QuadTree10": {Kind: KindQuadTree, Capacity: 10},
	"QuadTree25": {Kind: KindQuadTree, Capacity: 25},
	"QuadTree50": {Kind: KindQuadTree, Capacity: 50},
}

func BenchmarkInsert(b *testing.B) {
	for _, points := range []int{500, 2_000, 5_000} {
		size := int(math.Sqrt(float64(points)))
		for name, config := range benchmarkConfigs {
			b.Run(fmt.Sprintf("%s/%d", name, points), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					spatialIndex := newBenchmarkIndex(b, config, size)
					fillSquare(spatialIndex, size)
				}
			})
		}
	}
}

func BenchmarkInCircle_radius(b *testing.B) {
	const size = 500

	for name, config := range benchmarkConfigs {
		spatialIndex := newBenchmarkIndex(b, config, size)
		fillSquare(spatialIndex, size)

		for _, radius := range []float64{5, 10, 20, 50, 100} {
			b.Run(fmt.Sprintf("%s/%v", name, radius), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					spatialIndex.InCircle(orb.Point{0, 0}, radius)
				}
			})
		}
	}
}

func BenchmarkInCircle_pointCount(b *testing.B) {
	for _, points := range []int{10_000, 100_000, 1_000_000} {
		size := int(math.Sqrt(float64(points))) / 2
		for name, config := range benchmarkConfigs {
			spatialIndex := newBenchmarkIndex(b, config, size)
			fillSquare(spatialIndex, size)

			b.Run(fmt.Sprintf("%s/%d", name, points), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					spatialIndex.InCircle(orb.Point{0, 0}, 10)
				}
			})
		}
	}
}
