package osm

import (
	"fmt"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
	"strings"
)

// TagFilter matches objects having a certain key and, when Value is set, a certain value for that key. The empty
// filter matches every object.
type TagFilter struct {
	Key   string
	Value string
}

// ParseTagFilter parses "key=value" and "key" expressions. An empty string results in the empty filter.
func ParseTagFilter(expression string) (TagFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return TagFilter{}, nil
	}

	key, value, hasValue := strings.Cut(expression, "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	if key == "" {
		return TagFilter{}, errors.Errorf("Tag filter '%s' has no key", expression)
	}
	if hasValue && value == "" {
		return TagFilter{}, errors.Errorf("Tag filter '%s' has an empty value", expression)
	}

	return TagFilter{Key: key, Value: value}, nil
}

func (f TagFilter) IsEmpty() bool {
	return f.Key == ""
}

func (f TagFilter) Matches(tags osm.Tags) bool {
	if f.IsEmpty() {
		return true
	}
	if f.Value == "" {
		return tags.HasTag(f.Key)
	}
	return tags.HasTag(f.Key) && tags.Find(f.Key) == f.Value
}

func (f TagFilter) String() string {
	if f.Value == "" {
		return f.Key
	}
	return fmt.Sprintf("%s=%s", f.Key, f.Value)
}
