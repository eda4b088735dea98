package index

import (
	"github.com/paulmach/orb"
	"math"
	"spatialneighbors/geometry"
)

// Grid divides its domain into equally sized cells. Each entry is stored in the cell containing its position.
type Grid[T any] struct {
	domain     geometry.Domain
	cells      [][]entry[T] // Row-major, i.e. the cell (x, y) is at position x + y*cellsX.
	cellsX     int
	cellsY     int
	cellWidth  float64
	cellHeight float64
	count      int
}

// NewGrid creates a grid with cellsX columns and cellsY rows covering the domain.
func NewGrid[T any](domain geometry.Domain, cellsX int, cellsY int) (*Grid[T], error) {
	err := validateDomain(domain)
	if err != nil {
		return nil, err
	}
	if cellsX < 1 || cellsY < 1 {
		return nil, newInvalidParameterError("grid needs at least one cell per axis but got %dx%d cells", cellsX, cellsY)
	}

	return &Grid[T]{
		domain:     domain,
		cells:      make([][]entry[T], cellsX*cellsY),
		cellsX:     cellsX,
		cellsY:     cellsY,
		cellWidth:  domain.Width() / float64(cellsX),
		cellHeight: domain.Height() / float64(cellsY),
	}, nil
}

// NewGridWithCellSize creates a grid whose cells are at most cellWidth wide and cellHeight high. The number of cells is
// rounded up, so the actual cell size is adjusted to cover the domain exactly.
func NewGridWithCellSize[T any](domain geometry.Domain, cellWidth float64, cellHeight float64) (*Grid[T], error) {
	err := validateDomain(domain)
	if err != nil {
		return nil, err
	}
	if !isPositiveFinite(cellWidth) || !isPositiveFinite(cellHeight) {
		return nil, newInvalidParameterError("cell size must be positive but was %fx%f", cellWidth, cellHeight)
	}

	cellsX := int(math.Ceil(domain.Width() / cellWidth))
	cellsY := int(math.Ceil(domain.Height() / cellHeight))

	return NewGrid[T](domain, cellsX, cellsY)
}

func (g *Grid[T]) Domain() geometry.Domain { return g.domain }

// CellCount returns the number of columns and rows.
func (g *Grid[T]) CellCount() (int, int) { return g.cellsX, g.cellsY }

func (g *Grid[T]) CellSize() (float64, float64) { return g.cellWidth, g.cellHeight }

func (g *Grid[T]) Insert(position orb.Point, data T) error {
	if !g.domain.Contains(position) {
		return newOutOfBoundsError(position, g.domain)
	}

	g.InsertUnchecked(position, data)
	return nil
}

// InsertUnchecked stores positions outside the domain in the nearest border cell. Queries might still miss them,
// since the fully-enclosed check of such a cell doesn't know about the foreign position.
func (g *Grid[T]) InsertUnchecked(position orb.Point, data T) {
	cell := g.gridExtent().ClampCell(g.GetCellIndexForCoordinate(position))
	i := g.toCellArrayIndex(cell)

	g.cells[i] = append(g.cells[i], entry[T]{position: position, data: data})
	g.count++
}

func (g *Grid[T]) Count() int {
	return g.count
}

func (g *Grid[T]) Clear() {
	g.count = 0
	for i := range g.cells {
		g.cells[i] = nil
	}
}

func (g *Grid[T]) InCircle(center orb.Point, radius float64) []T {
	var result []T
	if !geometry.IsValidRadius(radius) {
		return result
	}

	// The radius in number of cells. A circle larger than the grid never needs more than the whole grid.
	radiusX := cellRadius(radius, g.cellWidth, g.cellsX)
	radiusY := cellRadius(radius, g.cellHeight, g.cellsY)

	gridExtent := g.gridExtent()
	centerCell := gridExtent.ClampCell(g.GetCellIndexForCoordinate(center))
	extent := CellExtent{centerCell, centerCell}.Grow(radiusX, radiusY).Clip(gridExtent)

	for y := extent.LowerLeftCell().Y(); y <= extent.UpperRightCell().Y(); y++ {
		for x := extent.LowerLeftCell().X(); x <= extent.UpperRightCell().X(); x++ {
			cell := CellIndex{x, y}
			entries := g.cells[g.toCellArrayIndex(cell)]

			if len(entries) > enclosedCheckThreshold && geometry.BoundInCircle(g.getCellBound(cell), center, radius) {
				for _, e := range entries {
					result = append(result, e.data)
				}
				continue
			}

			for _, e := range entries {
				if geometry.InRange(e.position, center, radius) {
					result = append(result, e.data)
				}
			}
		}
	}

	return result
}

// GetCellIndexForCoordinate returns the cell containing the given position. The cell might not exist when the
// position is outside the domain.
func (g *Grid[T]) GetCellIndexForCoordinate(position orb.Point) CellIndex {
	return GetCellIndexForCoordinate(position, g.domain.Min(), g.cellWidth, g.cellHeight)
}

func (g *Grid[T]) gridExtent() CellExtent {
	return CellExtent{CellIndex{0, 0}, CellIndex{g.cellsX - 1, g.cellsY - 1}}
}

func (g *Grid[T]) getCellBound(cell CellIndex) orb.Bound {
	return cell.ToBound(g.domain.Min(), g.cellWidth, g.cellHeight)
}

func (g *Grid[T]) toCellArrayIndex(cell CellIndex) int {
	return cell.X() + cell.Y()*g.cellsX
}

// cellRadius converts the radius into a number of cells, which is limited to the number of cells on that axis.
func cellRadius(radius float64, cellSize float64, cellCount int) int {
	cells := math.Ceil(radius / cellSize)
	if cells > float64(cellCount) {
		return cellCount
	}
	return int(cells)
}

func validateDomain(domain geometry.Domain) error {
	if !isPositiveFinite(domain.Width()) || !isPositiveFinite(domain.Height()) {
		return newInvalidParameterError("domain %s has no area", domain.String())
	}
	return nil
}

func isPositiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
