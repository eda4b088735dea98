package index

import (
	"github.com/paulmach/orb"
	"spatialneighbors/geometry"
)

// List is a plain, unindexed list of entries. Every query checks every entry, which makes it the reference for the
// other implementations but not a fast one.
type List[T any] struct {
	entries []entry[T]
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Insert never fails since a list has no domain.
func (l *List[T]) Insert(position orb.Point, data T) error {
	l.InsertUnchecked(position, data)
	return nil
}

func (l *List[T]) InsertUnchecked(position orb.Point, data T) {
	l.entries = append(l.entries, entry[T]{position: position, data: data})
}

func (l *List[T]) Count() int {
	return len(l.entries)
}

func (l *List[T]) Clear() {
	l.entries = nil
}

func (l *List[T]) InCircle(center orb.Point, radius float64) []T {
	var result []T
	if !geometry.IsValidRadius(radius) {
		return result
	}

	for _, e := range l.entries {
		if geometry.InRange(e.position, center, radius) {
			result = append(result, e.data)
		}
	}

	return result
}
