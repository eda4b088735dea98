package geometry

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"math"
)

var ErrInvalidDomain = errors.New("invalid domain")

// Domain is the area in which points can be inserted. The bound is half-open on both axes, i.e.
// [Min.X, Max.X) × [Min.Y, Max.Y).
type Domain struct {
	bound orb.Bound
}

func NewDomain(minX float64, maxX float64, minY float64, maxY float64) (Domain, error) {
	return NewDomainFromBound(orb.Bound{Min: orb.Point{minX, minY}, Max: orb.Point{maxX, maxY}})
}

func NewDomainFromBound(bound orb.Bound) (Domain, error) {
	for _, v := range []float64{bound.Min.X(), bound.Min.Y(), bound.Max.X(), bound.Max.Y()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Domain{}, errors.Wrapf(ErrInvalidDomain, "bound %v contains non-finite value", bound)
		}
	}
	if bound.Max.X() <= bound.Min.X() {
		return Domain{}, errors.Wrapf(ErrInvalidDomain, "empty x range [%f, %f)", bound.Min.X(), bound.Max.X())
	}
	if bound.Max.Y() <= bound.Min.Y() {
		return Domain{}, errors.Wrapf(ErrInvalidDomain, "empty y range [%f, %f)", bound.Min.Y(), bound.Max.Y())
	}

	return Domain{bound: bound}, nil
}

func (d Domain) Bound() orb.Bound { return d.bound }

func (d Domain) Min() orb.Point { return d.bound.Min }

func (d Domain) Max() orb.Point { return d.bound.Max }

func (d Domain) Width() float64 { return d.bound.Max.X() - d.bound.Min.X() }

func (d Domain) Height() float64 { return d.bound.Max.Y() - d.bound.Min.Y() }

func (d Domain) Center() orb.Point { return d.bound.Center() }

// Contains respects the half-open bounds. Unlike orb.Bound.Contains, points on the maximum edges are outside.
func (d Domain) Contains(p orb.Point) bool {
	return p.X() >= d.bound.Min.X() && p.X() < d.bound.Max.X() &&
		p.Y() >= d.bound.Min.Y() && p.Y() < d.bound.Max.Y()
}

func (d Domain) String() string {
	return "[" + formatFloat(d.bound.Min.X()) + "," + formatFloat(d.bound.Max.X()) + ") x [" +
		formatFloat(d.bound.Min.Y()) + "," + formatFloat(d.bound.Max.Y()) + ")"
}
