package osm

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"spatialneighbors/geometry"
	"spatialneighbors/index"
	"time"
)

// Cell size in degree of the density statistic collected while determining the extent.
const densityCellSize = 0.1

// LoadIndex reads the file twice: The first pass determines the domain of all nodes matching the filter, the second
// one inserts these nodes into a new index of the configured kind.
func LoadIndex(filename string, config index.Config, filter TagFilter) (index.SpatialIndex[Node], geometry.Domain, error) {
	err := config.Validate()
	if err != nil {
		return nil, geometry.Domain{}, err
	}

	sigolo.Infof("Load nodes from %s into %s index", filename, config.Kind)
	if !filter.IsEmpty() {
		sigolo.Infof("Only nodes with tag '%s' are used", filter.String())
	}
	loadStartTime := time.Now()

	reader := NewOsmReader()

	extentAggregator := NewExtentAggregator(densityCellSize, densityCellSize, filter)
	err = reader.Read(filename, extentAggregator)
	if err != nil {
		return nil, geometry.Domain{}, err
	}

	domain, err := extentAggregator.Domain()
	if err != nil {
		return nil, geometry.Domain{}, errors.Wrapf(err, "Unable to determine extent of %s", filename)
	}
	sigolo.Debugf("Found %d nodes within domain %s", extentAggregator.NumberOfNodes, domain.String())
	coveredCells, extentCells := extentAggregator.CellCoverage()
	sigolo.Debugf("Nodes cover %d of %d cells of %vx%v degree with at most %d nodes per cell", coveredCells, extentCells, densityCellSize, densityCellSize, extentAggregator.MaxCellDensity())

	spatialIndex, err := index.New[Node](config, domain)
	if err != nil {
		return nil, geometry.Domain{}, err
	}

	err = reader.Read(filename, NewNodeIndexer(spatialIndex, filter))
	if err != nil {
		return nil, geometry.Domain{}, err
	}

	sigolo.Infof("Loaded %d nodes in %s", spatialIndex.Count(), time.Since(loadStartTime))

	return spatialIndex, domain, nil
}
