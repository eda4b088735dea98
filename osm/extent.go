package osm

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"math"
	"spatialneighbors/geometry"
	"spatialneighbors/index"
)

// Degenerated extents (e.g. only one node) are widened by this amount in degree on each side.
const minimumExtent = 1e-7

// ExtentAggregator collects the bounding box of all matching nodes as well as the number of nodes per cell of a
// coarse lon/lat grid.
type ExtentAggregator struct {
	CellToNodeCount     map[index.CellIndex]int
	InputDataCellExtent *index.CellExtent
	NumberOfNodes       int
	bound               orb.Bound
	filter              TagFilter
	cellWidth           float64
	cellHeight          float64
}

func NewExtentAggregator(cellWidth float64, cellHeight float64, filter TagFilter) *ExtentAggregator {
	return &ExtentAggregator{
		CellToNodeCount: map[index.CellIndex]int{},
		filter:          filter,
		cellWidth:       cellWidth,
		cellHeight:      cellHeight,
	}
}

func (a *ExtentAggregator) Name() string {
	return "ExtentAggregator"
}

func (a *ExtentAggregator) Init() error {
	a.CellToNodeCount = map[index.CellIndex]int{}
	a.InputDataCellExtent = nil
	a.NumberOfNodes = 0
	return nil
}

func (a *ExtentAggregator) HandleNode(node *osm.Node) error {
	if !a.filter.Matches(node.Tags) {
		return nil
	}

	position := orb.Point{node.Lon, node.Lat}
	if a.NumberOfNodes == 0 {
		a.bound = position.Bound()
	} else {
		a.bound = a.bound.Extend(position)
	}
	a.NumberOfNodes++

	cell := index.GetCellIndexForCoordinate(position, orb.Point{0, 0}, a.cellWidth, a.cellHeight)
	a.CellToNodeCount[cell]++

	if a.InputDataCellExtent == nil {
		a.InputDataCellExtent = &index.CellExtent{cell, cell}
	} else {
		newExtent := a.InputDataCellExtent.Expand(cell)
		a.InputDataCellExtent = &newExtent
	}

	return nil
}

func (a *ExtentAggregator) HandleWay(way *osm.Way) error {
	return nil
}

func (a *ExtentAggregator) HandleRelation(relation *osm.Relation) error {
	return nil
}

func (a *ExtentAggregator) Done() error {
	return nil
}

// MaxCellDensity returns the highest number of nodes within one cell.
func (a *ExtentAggregator) MaxCellDensity() int {
	maxCount := 0
	for _, count := range a.CellToNodeCount {
		maxCount = max(maxCount, count)
	}
	return maxCount
}

// CellCoverage returns the number of cells containing at least one node and the number of cells of the extent
// spanned by all nodes.
func (a *ExtentAggregator) CellCoverage() (int, int) {
	if a.InputDataCellExtent == nil {
		return 0, 0
	}
	return len(a.CellToNodeCount), a.InputDataCellExtent.NumberOfCells()
}

// Domain returns a half-open domain containing all aggregated nodes. Since nodes on the upper or right border of the
// bounding box would be outside a half-open domain, the domain is slightly larger than the bounding box.
func (a *ExtentAggregator) Domain() (geometry.Domain, error) {
	if a.NumberOfNodes == 0 {
		return geometry.Domain{}, errors.New("No nodes found to determine the extent of the data")
	}

	minX, maxX := widenRange(a.bound.Min.X(), a.bound.Max.X())
	minY, maxY := widenRange(a.bound.Min.Y(), a.bound.Max.Y())

	return geometry.NewDomain(minX, maxX, minY, maxY)
}

func widenRange(minValue float64, maxValue float64) (float64, float64) {
	if maxValue-minValue < minimumExtent {
		return minValue - minimumExtent, maxValue + minimumExtent
	}
	return minValue, math.Nextafter(maxValue, math.Inf(1))
}
