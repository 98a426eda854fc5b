package core

import "sort"

// Size describes the dimensions of a scalar field.
type Size struct {
	W int
	H int
}

// Len returns W*H.
func (s Size) Len() int { return s.W * s.H }

// Source defines the minimal contract a field producer must implement.
// Field returns W*H samples in row-major order with element 0 at the
// bottom-left of the field; rows go bottom to top.
type Source interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Field() []float64
}

// Factory constructs a Source using an optional configuration map.
type Factory func(cfg map[string]string) Source

var sources = map[string]Factory{}

// Register adds a source factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sources[name] = f
}

// Sources exposes the registry of available source factories.
func Sources() map[string]Factory {
	return sources
}

// SourceNames returns the registered names in sorted order.
func SourceNames() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
