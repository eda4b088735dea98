package geometry

import (
	"github.com/paulmach/orb"
	"strconv"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func FormatPoint(p orb.Point) string {
	return "[" + formatFloat(p.X()) + "," + formatFloat(p.Y()) + "]"
}
