package resources

import (
	"strings"

	"strings-diff/internal/util"
)

const (
	WildcardTag = "*"
	DefaultTag  = "string"
)

// TagFilter selects which child elements of the resource root are considered.
// A nil set matches every element.
type TagFilter struct {
	tags map[string]bool
}

// AllTags matches every element that carries a name attribute
func AllTags() TagFilter {
	return TagFilter{}
}

func NewTagFilter(tags ...string) TagFilter {
	filter := TagFilter{tags: map[string]bool{}}
	for _, tag := range tags {
		filter.tags[tag] = true
	}
	return filter
}

// ParseTagFilter parses a comma separated list of tag names.
// "*" selects all tags, an expression without any tag falls back to DefaultTag.
func ParseTagFilter(expr string) TagFilter {
	expr = strings.TrimSpace(expr)
	if expr == WildcardTag {
		return AllTags()
	}

	var tags []string
	for _, part := range strings.Split(expr, ",") {
		if util.IsBlank(part) {
			continue
		}
		tags = append(tags, strings.TrimSpace(part))
	}
	if len(tags) == 0 {
		return NewTagFilter(DefaultTag)
	}
	return NewTagFilter(tags...)
}

func (f TagFilter) IsWildcard() bool {
	return f.tags == nil
}

func (f TagFilter) Matches(tag string) bool {
	if f.IsWildcard() {
		return true
	}
	return f.tags[tag]
}

// Tags returns the selected tag names in sorted order, nil for the wildcard filter
func (f TagFilter) Tags() []string {
	if f.IsWildcard() {
		return nil
	}
	return util.SortedKeys(f.tags)
}

func (f TagFilter) String() string {
	if f.IsWildcard() {
		return WildcardTag
	}
	return strings.Join(f.Tags(), ",")
}
