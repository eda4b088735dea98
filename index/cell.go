package index

import (
	"github.com/paulmach/orb"
	"math"
)

// CellIndex is the column (X) and row (Y) of a grid cell.
type CellIndex [2]int

func (c CellIndex) X() int { return c[0] }

func (c CellIndex) Y() int { return c[1] }

func (c CellIndex) isBelowOrLeftOf(other CellIndex) bool {
	return c.X() < other.X() || c.Y() < other.Y()
}

func (c CellIndex) isAboveOrRightOf(other CellIndex) bool {
	return c.X() > other.X() || c.Y() > other.Y()
}

// GetCellIndexForCoordinate returns the cell containing the position for a grid starting at the given origin.
func GetCellIndexForCoordinate(position orb.Point, origin orb.Point, cellWidth float64, cellHeight float64) CellIndex {
	return CellIndex{
		int(math.Floor((position.X() - origin.X()) / cellWidth)),
		int(math.Floor((position.Y() - origin.Y()) / cellHeight)),
	}
}

// ToPoint returns the lower-left corner of the cell for a grid starting at the given origin.
func (c CellIndex) ToPoint(origin orb.Point, cellWidth float64, cellHeight float64) orb.Point {
	return orb.Point{origin.X() + float64(c[0])*cellWidth, origin.Y() + float64(c[1])*cellHeight}
}

// ToBound returns the area covered by the cell for a grid starting at the given origin.
func (c CellIndex) ToBound(origin orb.Point, cellWidth float64, cellHeight float64) orb.Bound {
	upperRight := CellIndex{c[0] + 1, c[1] + 1}
	return orb.Bound{
		Min: c.ToPoint(origin, cellWidth, cellHeight),
		Max: upperRight.ToPoint(origin, cellWidth, cellHeight),
	}
}

// CellExtent is a rectangular block of cells. Both cells are inclusive.
type CellExtent [2]CellIndex

func (c CellExtent) LowerLeftCell() CellIndex { return c[0] }

func (c CellExtent) UpperRightCell() CellIndex { return c[1] }

// IsEmpty is true when the lower-left cell is above or right of the upper-right cell, which happens when clipping two
// disjoint extents.
func (c CellExtent) IsEmpty() bool {
	return c.LowerLeftCell().isAboveOrRightOf(c.UpperRightCell())
}

// NumberOfCells returns the amount of cells within this extent.
func (c CellExtent) NumberOfCells() int {
	if c.IsEmpty() {
		return 0
	}
	return (c.UpperRightCell().X() - c.LowerLeftCell().X() + 1) * (c.UpperRightCell().Y() - c.LowerLeftCell().Y() + 1)
}

func (c CellExtent) Expand(cell CellIndex) CellExtent {
	if c.Contains(cell) {
		return c
	}

	minX := c.LowerLeftCell().X()
	minY := c.LowerLeftCell().Y()

	maxX := c.UpperRightCell().X()
	maxY := c.UpperRightCell().Y()

	if cell.X() < minX {
		minX = cell.X()
	}
	if cell.Y() < minY {
		minY = cell.Y()
	}

	if cell.X() > maxX {
		maxX = cell.X()
	}
	if cell.Y() > maxY {
		maxY = cell.Y()
	}

	return CellExtent{
		CellIndex{minX, minY},
		CellIndex{maxX, maxY},
	}
}

// Grow adds the given number of cells on each side of the extent.
func (c CellExtent) Grow(cellsX int, cellsY int) CellExtent {
	return CellExtent{
		CellIndex{c.LowerLeftCell().X() - cellsX, c.LowerLeftCell().Y() - cellsY},
		CellIndex{c.UpperRightCell().X() + cellsX, c.UpperRightCell().Y() + cellsY},
	}
}

// Clip returns the intersection of both extents. The result might be empty (see IsEmpty).
func (c CellExtent) Clip(other CellExtent) CellExtent {
	return CellExtent{
		CellIndex{
			max(c.LowerLeftCell().X(), other.LowerLeftCell().X()),
			max(c.LowerLeftCell().Y(), other.LowerLeftCell().Y()),
		},
		CellIndex{
			min(c.UpperRightCell().X(), other.UpperRightCell().X()),
			min(c.UpperRightCell().Y(), other.UpperRightCell().Y()),
		},
	}
}

// ClampCell returns the cell within this extent closest to the given one.
func (c CellExtent) ClampCell(cell CellIndex) CellIndex {
	return CellIndex{
		min(max(cell.X(), c.LowerLeftCell().X()), c.UpperRightCell().X()),
		min(max(cell.Y(), c.LowerLeftCell().Y()), c.UpperRightCell().Y()),
	}
}

func (c CellExtent) Contains(cell CellIndex) bool {
	return !cell.isAboveOrRightOf(c.UpperRightCell()) && !cell.isBelowOrLeftOf(c.LowerLeftCell())
}
