package geometry

import (
	"github.com/paulmach/orb"
	"math"
	"spatialneighbors/util"
	"testing"
)

func TestInRange(t *testing.T) {
	center := orb.Point{1, 1}

	util.AssertTrue(t, InRange(orb.Point{1, 1}, center, 0))
	util.AssertTrue(t, InRange(orb.Point{2, 1}, center, 1))
	util.AssertTrue(t, InRange(orb.Point{1, 0}, center, 1))
	util.AssertTrue(t, InRange(orb.Point{4, 5}, center, 5))
	util.AssertFalse(t, InRange(orb.Point{4, 5.001}, center, 5))
	util.AssertFalse(t, InRange(orb.Point{2, 2}, center, 1))
	util.AssertFalse(t, InRange(orb.Point{1.1, 1}, center, 0))
}

func TestBoundInCircle(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}

	util.AssertTrue(t, BoundInCircle(bound, orb.Point{0.5, 0.5}, 0.71))
	util.AssertTrue(t, BoundInCircle(bound, orb.Point{0, 0}, 1.42))
	util.AssertFalse(t, BoundInCircle(bound, orb.Point{0.5, 0.5}, 0.7))
	util.AssertFalse(t, BoundInCircle(bound, orb.Point{0, 0}, 1.4))

	// Only three corners in range
	util.AssertFalse(t, BoundInCircle(bound, orb.Point{0, 0}, 1.0))
}

func TestBoundInCircle_cornersOnCircle(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}

	util.AssertFalse(t, BoundInCircle(bound, orb.Point{0.5, 0.5}, math.Sqrt(0.5)))
	util.AssertFalse(t, BoundInCircle(bound, orb.Point{0, 0}, math.Sqrt(2)))
	util.AssertFalse(t, BoundInCircle(orb.Bound{Min: orb.Point{2, 2}, Max: orb.Point{2, 2}}, orb.Point{2, 2}, 0))
	util.AssertFalse(t, BoundInCircle(bound, orb.Point{0.5, 0.5}, math.NaN()))
}

func TestBoundInCircle_largeCoordinates(t *testing.T) {
	bound := orb.Bound{Min: orb.Point{1e6, 1e6}, Max: orb.Point{1e6 + 1, 1e6 + 1}}
	center := orb.Point{1e6 + 0.5, 1e6 + 0.5}

	util.AssertTrue(t, BoundInCircle(bound, center, 0.71))
	util.AssertFalse(t, BoundInCircle(bound, center, math.Nextafter(math.Sqrt(0.5), 1)))
}

func TestCircleBound(t *testing.T) {
	bound := CircleBound(orb.Point{2, -3}, 1.5)

	util.AssertEqual(t, orb.Point{0.5, -4.5}, bound.Min)
	util.AssertEqual(t, orb.Point{3.5, -1.5}, bound.Max)
}

func TestIsValidRadius(t *testing.T) {
	util.AssertTrue(t, IsValidRadius(0))
	util.AssertTrue(t, IsValidRadius(12.5))
	util.AssertFalse(t, IsValidRadius(-0.1))
	util.AssertFalse(t, IsValidRadius(math.NaN()))
}
