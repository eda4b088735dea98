package index

import (
	"github.com/paulmach/orb"
	"spatialneighbors/util"
	"testing"
)

func TestCellIndex_isBelowOrLeftOf(t *testing.T) {
	cell := CellIndex{10, 10}
	/*
		[ 9,11]   [10,11]   [11,11]

		[ 9,10]   [10,10]   [11,10]

		[ 9, 9]   [10, 9]   [11, 9]
	*/

	// First Column
	util.AssertTrue(t, cell.isBelowOrLeftOf(CellIndex{9, 11}))
	util.AssertFalse(t, cell.isBelowOrLeftOf(CellIndex{9, 10}))
	util.AssertFalse(t, cell.isBelowOrLeftOf(CellIndex{9, 9}))

	// Second column
	util.AssertTrue(t, cell.isBelowOrLeftOf(CellIndex{10, 11}))
	util.AssertFalse(t, cell.isBelowOrLeftOf(CellIndex{10, 10}))
	util.AssertFalse(t, cell.isBelowOrLeftOf(CellIndex{10, 9}))

	// Third column
	util.AssertTrue(t, cell.isBelowOrLeftOf(CellIndex{11, 11}))
	util.AssertTrue(t, cell.isBelowOrLeftOf(CellIndex{11, 10}))
	util.AssertTrue(t, cell.isBelowOrLeftOf(CellIndex{11, 9}))
}

func TestCellIndex_isAboveOrRightOf(t *testing.T) {
	cell := CellIndex{10, 10}

	// First Column
	util.AssertTrue(t, cell.isAboveOrRightOf(CellIndex{9, 11}))
	util.AssertTrue(t, cell.isAboveOrRightOf(CellIndex{9, 10}))
	util.AssertTrue(t, cell.isAboveOrRightOf(CellIndex{9, 9}))

	// Second column
	util.AssertFalse(t, cell.isAboveOrRightOf(CellIndex{10, 11}))
	util.AssertFalse(t, cell.isAboveOrRightOf(CellIndex{10, 10}))
	util.AssertTrue(t, cell.isAboveOrRightOf(CellIndex{10, 9}))

	// Third column
	util.AssertFalse(t, cell.isAboveOrRightOf(CellIndex{11, 11}))
	util.AssertFalse(t, cell.isAboveOrRightOf(CellIndex{11, 10}))
	util.AssertTrue(t, cell.isAboveOrRightOf(CellIndex{11, 9}))
}

func TestCellIndex_toBound(t *testing.T) {
	bound := CellIndex{2, 3}.ToBound(orb.Point{-50, 10}, 10, 5)

	util.AssertEqual(t, orb.Point{-30, 25}, bound.Min)
	util.AssertEqual(t, orb.Point{-20, 30}, bound.Max)
}

func TestCellExtent_expand(t *testing.T) {
	extent := CellExtent{CellIndex{10, 10}, CellIndex{20, 20}}

	util.AssertEqual(t, extent, extent.Expand(CellIndex{10, 10}))
	util.AssertEqual(t, extent, extent.Expand(CellIndex{15, 15}))
	util.AssertEqual(t, extent, extent.Expand(CellIndex{20, 20}))

	util.AssertEqual(t, CellExtent{CellIndex{9, 9}, CellIndex{20, 20}}, extent.Expand(CellIndex{9, 9}))
	util.AssertEqual(t, CellExtent{CellIndex{10, 10}, CellIndex{21, 21}}, extent.Expand(CellIndex{21, 21}))
	util.AssertEqual(t, CellExtent{CellIndex{9, 10}, CellIndex{20, 21}}, extent.Expand(CellIndex{9, 21}))
	util.AssertEqual(t, CellExtent{CellIndex{10, 9}, CellIndex{21, 20}}, extent.Expand(CellIndex{21, 9}))
}

func TestCellExtent_contains(t *testing.T) {
	extent := CellExtent{
		CellIndex{10, 10},
		CellIndex{20, 20},
	}

	// Lower-left corner
	util.AssertFalse(t, extent.Contains(CellIndex{9, 11}))
	util.AssertFalse(t, extent.Contains(CellIndex{9, 10}))
	util.AssertTrue(t, extent.Contains(CellIndex{10, 10}))
	util.AssertFalse(t, extent.Contains(CellIndex{10, 9}))
	util.AssertTrue(t, extent.Contains(CellIndex{11, 11}))

	// Upper-right corner
	util.AssertTrue(t, extent.Contains(CellIndex{19, 19}))
	util.AssertTrue(t, extent.Contains(CellIndex{20, 20}))
	util.AssertFalse(t, extent.Contains(CellIndex{20, 21}))
	util.AssertFalse(t, extent.Contains(CellIndex{21, 20}))
	util.AssertFalse(t, extent.Contains(CellIndex{21, 21}))
}

func TestCellExtent_growAndClip(t *testing.T) {
	grid := CellExtent{CellIndex{0, 0}, CellIndex{9, 4}}

	// Act
	grown := CellExtent{CellIndex{1, 3}, CellIndex{1, 3}}.Grow(2, 3)
	clipped := grown.Clip(grid)

	// Assert
	util.AssertEqual(t, CellExtent{CellIndex{-1, 0}, CellIndex{3, 6}}, grown)
	util.AssertEqual(t, CellExtent{CellIndex{0, 0}, CellIndex{3, 4}}, clipped)
	util.AssertEqual(t, 20, clipped.NumberOfCells())
	util.AssertFalse(t, clipped.IsEmpty())
}

func TestCellExtent_clipDisjoint(t *testing.T) {
	extent := CellExtent{CellIndex{20, 20}, CellIndex{25, 25}}

	clipped := extent.Clip(CellExtent{CellIndex{0, 0}, CellIndex{9, 9}})

	util.AssertTrue(t, clipped.IsEmpty())
	util.AssertEqual(t, 0, clipped.NumberOfCells())
}

func TestCellExtent_clampCell(t *testing.T) {
	extent := CellExtent{CellIndex{0, 0}, CellIndex{9, 4}}

	util.AssertEqual(t, CellIndex{3, 2}, extent.ClampCell(CellIndex{3, 2}))
	util.AssertEqual(t, CellIndex{0, 4}, extent.ClampCell(CellIndex{-7, 12}))
	util.AssertEqual(t, CellIndex{9, 0}, extent.ClampCell(CellIndex{100, -1}))
}
