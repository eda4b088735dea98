package index

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"spatialneighbors/geometry"
)

var (
	ErrOutOfBounds      = errors.New("position out of bounds")
	ErrInvalidParameter = errors.New("invalid parameter")
)

func newOutOfBoundsError(position orb.Point, domain geometry.Domain) error {
	return errors.Wrapf(ErrOutOfBounds, "position %s not within domain %s", geometry.FormatPoint(position), domain.String())
}

func newInvalidParameterError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}
