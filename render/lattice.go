package render

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"io"
	"spatialneighbors/geometry"
	"spatialneighbors/index"
	"spatialneighbors/util"
	"strings"
)

const (
	hitSymbol  = " X "
	missSymbol = " * "
)

// LatticeDomain returns the domain of a width x height lattice centered at the origin.
func LatticeDomain(width int, height int) (geometry.Domain, error) {
	return geometry.NewDomain(-float64(width)/2, float64(width)/2, -float64(height)/2, float64(height)/2)
}

// Lattice fills the index with one point in the middle of each unit cell of a width x height area centered at the
// origin. The payload of each point is its number in row-major order. All points within the circle are then printed as
// hitSymbol, all others as missSymbol. Rows are printed from the lowest to the highest y coordinate.
//
// The index is cleared beforehand. The number of points within the circle is returned.
func Lattice(spatialIndex index.SpatialIndex[int], width int, height int, center orb.Point, radius float64, writer io.Writer) (int, error) {
	if width < 1 || height < 1 {
		return 0, errors.Wrapf(index.ErrInvalidParameter, "lattice needs a size of at least 1x1 but was %dx%d", width, height)
	}

	spatialIndex.Clear()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			err := spatialIndex.Insert(latticePoint(x, y, width, height), y*width+x)
			if err != nil {
				return 0, errors.Wrapf(err, "Unable to insert lattice point %d,%d", x, y)
			}
		}
	}
	sigolo.Debugf("Inserted %d lattice points", spatialIndex.Count())

	hits := make([]bool, width*height)
	for _, element := range spatialIndex.InCircle(center, radius) {
		if element < 0 || element >= len(hits) {
			util.LogFatalBug("Index returned element %d which is not part of the %dx%d lattice", element, width, height)
		}
		hits[element] = true
	}

	numberOfHits := 0
	for y := 0; y < height; y++ {
		line := strings.Builder{}
		for x := 0; x < width; x++ {
			if hits[y*width+x] {
				line.WriteString(hitSymbol)
				numberOfHits++
			} else {
				line.WriteString(missSymbol)
			}
		}

		_, err := fmt.Fprintln(writer, line.String())
		if err != nil {
			return 0, errors.Wrap(err, "Unable to write lattice row")
		}
	}

	sigolo.Debugf("%d of %d points are within %v around %s", numberOfHits, len(hits), radius, geometry.FormatPoint(center))
	return numberOfHits, nil
}

func latticePoint(x int, y int, width int, height int) orb.Point {
	return orb.Point{
		-float64(width)/2 + float64(x) + 0.5,
		-float64(height)/2 + float64(y) + 0.5,
	}
}
