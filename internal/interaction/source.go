package interaction

import "strings"

// Source names a UI region or gesture that currently needs mouse input.
type Source uint8

const (
	SourceWidgetHover Source = 1 << iota
	SourceWidgetDrag
	SourcePanelHover
	SourcePanelDrag
	SourcePanelResize
)

var sourceNames = []struct {
	src  Source
	name string
}{
	{SourceWidgetHover, "widget-hover"},
	{SourceWidgetDrag, "widget-drag"},
	{SourcePanelHover, "panel-hover"},
	{SourcePanelDrag, "panel-drag"},
	{SourcePanelResize, "panel-resize"},
}

// String returns the source identifier used in logs
func (s Source) String() string {
	for _, n := range sourceNames {
		if n.src == s {
			return n.name
		}
	}
	return "unknown"
}

// SourceSet is a fixed-capacity set of sources.
type SourceSet uint8

// Has reports whether src is a member
func (s SourceSet) Has(src Source) bool {
	return s&SourceSet(src) != 0
}

// With returns the set including src
func (s SourceSet) With(src Source) SourceSet {
	return s | SourceSet(src)
}

// Without returns the set excluding src
func (s SourceSet) Without(src Source) SourceSet {
	return s &^ SourceSet(src)
}

// Empty reports whether no source is active
func (s SourceSet) Empty() bool {
	return s == 0
}

// String lists the members, e.g. "widget-hover,panel-drag"
func (s SourceSet) String() string {
	var names []string
	for _, n := range sourceNames {
		if s.Has(n.src) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}
