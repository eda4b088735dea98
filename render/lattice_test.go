package render

import (
	"bytes"
	"github.com/paulmach/orb"
	"spatialneighbors/index"
	"spatialneighbors/util"
	"testing"
)

func TestLattice_smallArea(t *testing.T) {
	list := index.NewList[int]()
	writer := &bytes.Buffer{}

	// Act
	hits, err := Lattice(list, 4, 2, orb.Point{0, 0}, 1, writer)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 4, hits)
	util.AssertEqual(t, " *  X  X  * \n *  X  X  * \n", writer.String())
}

func TestLattice_rowsFromBottomToTop(t *testing.T) {
	list := index.NewList[int]()
	writer := &bytes.Buffer{}

	// Act
	hits, err := Lattice(list, 3, 3, orb.Point{-1, -1}, 0, writer)

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 1, hits)
	util.AssertEqual(t, " X  *  * \n *  *  * \n *  *  * \n", writer.String())
}

func TestLattice_sameOutputForAllIndices(t *testing.T) {
	domain, err := LatticeDomain(10, 10)
	util.AssertNil(t, err)
	grid, err := index.NewGrid[int](domain, 3, 3)
	util.AssertNil(t, err)
	quadTree, err := index.NewQuadTree[int](domain, 5)
	util.AssertNil(t, err)

	expectedWriter := &bytes.Buffer{}
	expectedHits, err := Lattice(index.NewList[int](), 10, 10, orb.Point{0, 0}, 3, expectedWriter)
	util.AssertNil(t, err)
	util.AssertEqual(t, 32, expectedHits)

	for _, spatialIndex := range []index.SpatialIndex[int]{grid, quadTree} {
		writer := &bytes.Buffer{}

		// Act
		hits, err := Lattice(spatialIndex, 10, 10, orb.Point{0, 0}, 3, writer)

		// Assert
		util.AssertNil(t, err)
		util.AssertEqual(t, expectedHits, hits)
		util.AssertEqual(t, expectedWriter.String(), writer.String())
		util.AssertEqual(t, 100, spatialIndex.Count())
	}
}

func TestLattice_clearsIndex(t *testing.T) {
	list := index.NewList[int]()
	list.InsertUnchecked(orb.Point{0, 0}, 1000)

	// Act
	hits, err := Lattice(list, 2, 2, orb.Point{0, 0}, 10, &bytes.Buffer{})

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 4, hits)
	util.AssertEqual(t, 4, list.Count())
}

func TestLattice_invalidSize(t *testing.T) {
	_, err := Lattice(index.NewList[int](), 0, 2, orb.Point{0, 0}, 1, &bytes.Buffer{})
	util.AssertErrorIs(t, index.ErrInvalidParameter, err)
}

func TestLattice_indexTooSmall(t *testing.T) {
	domain, err := LatticeDomain(2, 2)
	util.AssertNil(t, err)
	grid, err := index.NewGrid[int](domain, 1, 1)
	util.AssertNil(t, err)

	// Act
	_, err = Lattice(grid, 4, 4, orb.Point{0, 0}, 1, &bytes.Buffer{})

	// Assert
	util.AssertErrorIs(t, index.ErrOutOfBounds, err)
}
