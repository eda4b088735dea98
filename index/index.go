package index

import (
	"github.com/paulmach/orb"
)

// SpatialIndex stores positions with an attached payload and finds all payloads within a circle. None of the
// implementations is safe for concurrent use.
type SpatialIndex[T any] interface {
	// Insert adds the data at the given position. It returns an error wrapping ErrOutOfBounds when the position is not
	// within the domain of the index. The index is not modified in that case.
	Insert(position orb.Point, data T) error

	// InsertUnchecked adds the data without checking the domain. Positions outside the domain are not rejected but
	// where they end up is up to the concrete implementation.
	InsertUnchecked(position orb.Point, data T)

	// Count returns the number of entries inserted since creation or since the last call of Clear.
	Count() int

	// Clear removes all entries. The geometry of the index (domain, cells, capacities) stays the same.
	Clear()

	// InCircle returns the payloads of all entries with a squared distance to the center of at most radius². The order
	// of the result is not specified.
	InCircle(center orb.Point, radius float64) []T
}

// entry is one stored position with its payload.
type entry[T any] struct {
	position orb.Point
	data     T
}

// enclosedCheckThreshold is the number of entries a cell or node must exceed before it's checked for being fully
// within the query circle. For fewer entries, single distance checks are cheaper than the four corner checks.
const enclosedCheckThreshold = 4
