package index

import (
	"github.com/paulmach/orb"
	"spatialneighbors/geometry"
)

// QuadTree recursively divides its domain into four quadrants once a node holds more than capacity entries. Dense
// regions therefore end up in small nodes while sparse regions stay in large ones.
//
// A node that has been divided keeps the entries it held at that time. Only new entries are passed on to the child
// nodes, so queries have to check the entries of every node on their way down.
type QuadTree[T any] struct {
	domain      geometry.Domain
	capacity    int
	minNodeSize float64
	root        *quadTreeNode[T]
	count       int
}

// NewQuadTree creates a quadtree whose nodes are divided as soon as they hold capacity entries.
func NewQuadTree[T any](domain geometry.Domain, capacity int) (*QuadTree[T], error) {
	return NewQuadTreeWithMinNodeSize[T](domain, capacity, 0)
}

// NewQuadTreeWithMinNodeSize creates a quadtree whose nodes are not divided any further once their half-extent on an
// axis is at most minNodeSize. Such nodes take any number of entries.
func NewQuadTreeWithMinNodeSize[T any](domain geometry.Domain, capacity int, minNodeSize float64) (*QuadTree[T], error) {
	err := validateDomain(domain)
	if err != nil {
		return nil, err
	}
	if capacity < 1 {
		return nil, newInvalidParameterError("node capacity must be at least 1 but was %d", capacity)
	}
	if !(minNodeSize >= 0) {
		return nil, newInvalidParameterError("minimum node size must not be negative but was %f", minNodeSize)
	}

	q := &QuadTree[T]{
		domain:      domain,
		capacity:    capacity,
		minNodeSize: minNodeSize,
	}
	q.root = q.newRootNode()

	return q, nil
}

func (q *QuadTree[T]) newRootNode() *quadTreeNode[T] {
	return newQuadTreeNode[T](q.domain.Center(), orb.Point{q.domain.Width() / 2, q.domain.Height() / 2})
}

func (q *QuadTree[T]) Domain() geometry.Domain { return q.domain }

func (q *QuadTree[T]) Capacity() int { return q.capacity }

func (q *QuadTree[T]) MinNodeSize() float64 { return q.minNodeSize }

func (q *QuadTree[T]) Insert(position orb.Point, data T) error {
	if !q.domain.Contains(position) {
		return newOutOfBoundsError(position, q.domain)
	}

	q.InsertUnchecked(position, data)
	return nil
}

func (q *QuadTree[T]) InsertUnchecked(position orb.Point, data T) {
	q.root.insert(entry[T]{position: position, data: data}, q.capacity, q.minNodeSize)
	q.count++
}

func (q *QuadTree[T]) Count() int {
	return q.count
}

func (q *QuadTree[T]) Clear() {
	q.root = q.newRootNode()
	q.count = 0
}

func (q *QuadTree[T]) InCircle(center orb.Point, radius float64) []T {
	var result []T
	if !geometry.IsValidRadius(radius) {
		return result
	}

	return q.root.inCircle(center, radius, geometry.CircleBound(center, radius), result)
}

// Depth returns the number of levels of the tree. A tree without divided nodes has a depth of 1.
func (q *QuadTree[T]) Depth() int {
	return q.root.depth()
}

// NodeCount returns the number of nodes including the root node.
func (q *QuadTree[T]) NodeCount() int {
	return q.root.nodeCount()
}
