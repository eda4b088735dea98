package index

import (
	"github.com/paulmach/orb"
	"spatialneighbors/geometry"
)

const (
	quadrantSouthWest = iota
	quadrantNorthWest
	quadrantSouthEast
	quadrantNorthEast
)

type quadTreeNode[T any] struct {
	center   orb.Point
	size     orb.Point // Half of the width and height of this node.
	entries  []entry[T]
	children *[4]quadTreeNode[T] // Indexed by quadrant, nil for leaves.
}

func newQuadTreeNode[T any](center orb.Point, size orb.Point) *quadTreeNode[T] {
	return &quadTreeNode[T]{
		center: center,
		size:   size,
	}
}

func (n *quadTreeNode[T]) insert(e entry[T], capacity int, minNodeSize float64) {
	for n.children != nil {
		n = &n.children[n.getQuadrant(e.position)]
	}

	n.entries = append(n.entries, e)

	if len(n.entries) >= capacity && n.size.X() > minNodeSize && n.size.Y() > minNodeSize {
		n.subdivide()
	}
}

// subdivide creates the four child nodes. The entries of this node stay where they are.
func (n *quadTreeNode[T]) subdivide() {
	childSize := orb.Point{n.size.X() / 2, n.size.Y() / 2}
	west := n.center.X() - childSize.X()
	east := n.center.X() + childSize.X()
	south := n.center.Y() - childSize.Y()
	north := n.center.Y() + childSize.Y()

	n.children = &[4]quadTreeNode[T]{
		quadrantSouthWest: {center: orb.Point{west, south}, size: childSize},
		quadrantNorthWest: {center: orb.Point{west, north}, size: childSize},
		quadrantSouthEast: {center: orb.Point{east, south}, size: childSize},
		quadrantNorthEast: {center: orb.Point{east, north}, size: childSize},
	}
}

// getQuadrant returns the quadrant of this node the location belongs to. Locations on the center lines belong to the
// east and north quadrants.
func (n *quadTreeNode[T]) getQuadrant(location orb.Point) int {
	if location.X() < n.center.X() {
		if location.Y() < n.center.Y() {
			return quadrantSouthWest
		}
		return quadrantNorthWest
	}

	if location.Y() < n.center.Y() {
		return quadrantSouthEast
	}
	return quadrantNorthEast
}

func (n *quadTreeNode[T]) bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{n.center.X() - n.size.X(), n.center.Y() - n.size.Y()},
		Max: orb.Point{n.center.X() + n.size.X(), n.center.Y() + n.size.Y()},
	}
}

// inCircle adds all entries of this node and its children within the circle to the result. The queryBound is the
// square enclosing the circle and determines the children to visit.
func (n *quadTreeNode[T]) inCircle(center orb.Point, radius float64, queryBound orb.Bound, result []T) []T {
	if len(n.entries) > enclosedCheckThreshold && geometry.BoundInCircle(n.bound(), center, radius) {
		return n.appendAll(result)
	}

	for _, e := range n.entries {
		if geometry.InRange(e.position, center, radius) {
			result = append(result, e.data)
		}
	}

	if n.children == nil {
		return result
	}

	var quadrants [4]bool
	quadrants[n.getQuadrant(queryBound.Min)] = true
	quadrants[n.getQuadrant(orb.Point{queryBound.Min.X(), queryBound.Max.Y()})] = true
	quadrants[n.getQuadrant(orb.Point{queryBound.Max.X(), queryBound.Min.Y()})] = true
	quadrants[n.getQuadrant(queryBound.Max)] = true

	for i, visit := range quadrants {
		if visit {
			result = n.children[i].inCircle(center, radius, queryBound, result)
		}
	}

	return result
}

// appendAll adds the entries of this node and all its children without any distance check. This is used for nodes
// lying completely within the query circle.
func (n *quadTreeNode[T]) appendAll(result []T) []T {
	for _, e := range n.entries {
		result = append(result, e.data)
	}

	if n.children != nil {
		for i := range n.children {
			result = n.children[i].appendAll(result)
		}
	}

	return result
}

func (n *quadTreeNode[T]) depth() int {
	if n.children == nil {
		return 1
	}

	maxChildDepth := 0
	for i := range n.children {
		maxChildDepth = max(maxChildDepth, n.children[i].depth())
	}
	return maxChildDepth + 1
}

func (n *quadTreeNode[T]) nodeCount() int {
	count := 1
	if n.children != nil {
		for i := range n.children {
			count += n.children[i].nodeCount()
		}
	}
	return count
}
