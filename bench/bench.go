package bench

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"spatialneighbors/geometry"
	"spatialneighbors/index"
	"time"
)

// Candidate is one index configuration taking part in a benchmark run.
type Candidate struct {
	Name   string
	Config index.Config
}

type Config struct {
	// Size is half the edge length of the square lattice [-Size, Size)² that is inserted into each index.
	Size       int
	Radii      []float64
	Queries    int
	Candidates []Candidate
}

type Result struct {
	Name         string
	Points       int
	InsertTime   time.Duration
	QueryTimes   map[float64]time.Duration // Average duration of one query per radius
	ResultCounts map[float64]int
}

// DefaultCandidates mirrors the structures and resolutions used in the benchmarks of the index package.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Name: "List", Config: index.Config{Kind: index.KindList}},
		{Name: "Grid10", Config: index.Config{Kind: index.KindGrid, CellsX: 10, CellsY: 10}},
		{Name: "Grid100", Config: index.Config{Kind: index.KindGrid, CellsX: 100, CellsY: 100}},
		{Name: "Grid1000", Config: index.Config{Kind: index.KindGrid, CellsX: 1000, CellsY: 1000}},
		{Name: "QuadTree10", Config: index.Config{Kind: index.KindQuadTree, Capacity: 10}},
		{Name: "QuadTree25", Config: index.Config{Kind: index.KindQuadTree, Capacity: 25}},
		{Name: "QuadTree50", Config: index.Config{Kind: index.KindQuadTree, Capacity: 50}},
	}
}

func (c Config) validate() error {
	if c.Size < 1 {
		return errors.Wrapf(index.ErrInvalidParameter, "benchmark size must be at least 1 but was %d", c.Size)
	}
	if c.Queries < 1 {
		return errors.Wrapf(index.ErrInvalidParameter, "number of queries must be at least 1 but was %d", c.Queries)
	}
	for _, candidate := range c.Candidates {
		err := candidate.Config.Validate()
		if err != nil {
			return errors.Wrapf(err, "Invalid configuration for candidate '%s'", candidate.Name)
		}
	}
	return nil
}

// Run fills every candidate with the same lattice and measures the insertion and query times. Candidates are run one
// after another in the given order.
func Run(config Config) ([]Result, error) {
	err := config.validate()
	if err != nil {
		return nil, err
	}

	domain, err := geometry.NewDomain(float64(-config.Size), float64(config.Size), float64(-config.Size), float64(config.Size))
	if err != nil {
		return nil, err
	}

	sigolo.Infof("Run benchmark for %d candidates on domain %s", len(config.Candidates), domain.String())

	var results []Result
	for _, candidate := range config.Candidates {
		result, err := runCandidate(candidate, domain, config)
		if err != nil {
			return nil, err
		}

		sigolo.Infof("%s: Inserted %d points in %s", result.Name, result.Points, result.InsertTime)
		for _, radius := range config.Radii {
			sigolo.Infof("%s: Radius %v took %s on average and found %d points", result.Name, radius, result.QueryTimes[radius], result.ResultCounts[radius])
		}

		results = append(results, result)
	}

	return results, nil
}

func runCandidate(candidate Candidate, domain geometry.Domain, config Config) (Result, error) {
	spatialIndex, err := index.New[int](candidate.Config, domain)
	if err != nil {
		return Result{}, errors.Wrapf(err, "Unable to create index for candidate '%s'", candidate.Name)
	}

	result := Result{
		Name:         candidate.Name,
		QueryTimes:   map[float64]time.Duration{},
		ResultCounts: map[float64]int{},
	}

	insertStartTime := time.Now()
	for x := -config.Size; x < config.Size; x++ {
		for y := -config.Size; y < config.Size; y++ {
			err = spatialIndex.Insert(orb.Point{float64(x), float64(y)}, result.Points)
			if err != nil {
				return Result{}, errors.Wrapf(err, "Unable to insert lattice point into candidate '%s'", candidate.Name)
			}
			result.Points++
		}
	}
	result.InsertTime = time.Since(insertStartTime)

	if quadTree, ok := spatialIndex.(*index.QuadTree[int]); ok {
		sigolo.Debugf("%s: Quadtree has %d nodes and a depth of %d", candidate.Name, quadTree.NodeCount(), quadTree.Depth())
	}

	for _, radius := range config.Radii {
		queryStartTime := time.Now()
		for i := 0; i < config.Queries; i++ {
			result.ResultCounts[radius] = len(spatialIndex.InCircle(orb.Point{0, 0}, radius))
		}
		result.QueryTimes[radius] = time.Since(queryStartTime) / time.Duration(config.Queries)
		sigolo.Tracef("%s: Finished %d queries with radius %v", candidate.Name, config.Queries, radius)
	}

	return result, nil
}
