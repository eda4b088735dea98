package geometry

import (
	"github.com/paulmach/orb"
	"math"
)

// InRange checks whether the squared distance between the two points is at most radius². A point exactly on the
// circle is therefore in range.
func InRange(a orb.Point, b orb.Point, radius float64) bool {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	return dx*dx+dy*dy <= radius*radius
}

// Relative margin by which BoundInCircle shrinks the radius. It covers the rounding of computed cell and node corners,
// which might lie a few ulps inside the positions actually stored in that cell or node.
const enclosedTolerance = 1e-9

// BoundInCircle returns true when all four corners of the bound are in range of the given circle. Since circles are
// convex, every point within the bound is in range as well. The radius is slightly reduced, so the result is false for
// bounds touching the circle from inside.
func BoundInCircle(bound orb.Bound, center orb.Point, radius float64) bool {
	magnitude := max(
		math.Abs(center.X()), math.Abs(center.Y()),
		math.Abs(bound.Min.X()), math.Abs(bound.Min.Y()),
		math.Abs(bound.Max.X()), math.Abs(bound.Max.Y()),
	)
	reducedRadius := radius - enclosedTolerance*(radius+magnitude)
	if !(reducedRadius >= 0) {
		return false
	}

	return InRange(bound.Min, center, reducedRadius) &&
		InRange(orb.Point{bound.Min.X(), bound.Max.Y()}, center, reducedRadius) &&
		InRange(orb.Point{bound.Max.X(), bound.Min.Y()}, center, reducedRadius) &&
		InRange(bound.Max, center, reducedRadius)
}

// CircleBound returns the axis-aligned square enclosing the circle.
func CircleBound(center orb.Point, radius float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{center.X() - radius, center.Y() - radius},
		Max: orb.Point{center.X() + radius, center.Y() + radius},
	}
}

// IsValidRadius is false for negative and NaN radii. Such queries have an empty result.
func IsValidRadius(radius float64) bool {
	return radius >= 0
}
