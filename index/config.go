package index

import (
	"spatialneighbors/geometry"
)

type Kind string

const (
	KindList     Kind = "list"
	KindGrid     Kind = "grid"
	KindQuadTree Kind = "quadtree"
)

// Config describes which index to create and how. Only the fields of the chosen kind are used.
type Config struct {
	Kind Kind

	// Grid: The number of cells per axis. When both are 0, the cell size is used instead.
	CellsX     int
	CellsY     int
	CellWidth  float64
	CellHeight float64

	// Quadtree
	Capacity    int
	MinNodeSize float64
}

func (c Config) Validate() error {
	switch c.Kind {
	case KindList:
		return nil
	case KindGrid:
		if c.CellsX == 0 && c.CellsY == 0 {
			if !isPositiveFinite(c.CellWidth) || !isPositiveFinite(c.CellHeight) {
				return newInvalidParameterError("grid needs either a cell count or a cell size")
			}
			return nil
		}
		if c.CellsX < 1 || c.CellsY < 1 {
			return newInvalidParameterError("grid needs at least one cell per axis but got %dx%d cells", c.CellsX, c.CellsY)
		}
		return nil
	case KindQuadTree:
		if c.Capacity < 1 {
			return newInvalidParameterError("node capacity must be at least 1 but was %d", c.Capacity)
		}
		return nil
	}
	return newInvalidParameterError("unknown index kind '%s'", c.Kind)
}

// New creates an empty index of the configured kind covering the given domain.
func New[T any](config Config, domain geometry.Domain) (SpatialIndex[T], error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	var spatialIndex SpatialIndex[T]
	switch config.Kind {
	case KindGrid:
		var grid *Grid[T]
		if config.CellsX == 0 && config.CellsY == 0 {
			grid, err = NewGridWithCellSize[T](domain, config.CellWidth, config.CellHeight)
		} else {
			grid, err = NewGrid[T](domain, config.CellsX, config.CellsY)
		}
		spatialIndex = grid
	case KindQuadTree:
		var quadTree *QuadTree[T]
		quadTree, err = NewQuadTreeWithMinNodeSize[T](domain, config.Capacity, config.MinNodeSize)
		spatialIndex = quadTree
	default:
		spatialIndex = NewList[T]()
	}

	if err != nil {
		return nil, err
	}
	return spatialIndex, nil
}
