// Package catalog holds the static registry of internal firmware modules
// that generated code is evaluated against. Each entry describes one
// module's public surface: its header path and the exported functions,
// types, and constants the analyzer looks for in source text.
package catalog

// Descriptor describes one internal module. Descriptors are built once at
// process start and never mutated.
type Descriptor struct {
	Name      string
	Header    string
	Functions []string
	Types     []string
	Constants []string
}

// Catalog is a read-only lookup table of module descriptors.
type Catalog struct {
	byName  map[string]Descriptor
	ordered []Descriptor
}

// New builds a catalog from the given descriptors, preserving their order.
func New(descriptors []Descriptor) *Catalog {
	c := &Catalog{
		byName:  make(map[string]Descriptor, len(descriptors)),
		ordered: make([]Descriptor, len(descriptors)),
	}
	copy(c.ordered, descriptors)
	for _, d := range descriptors {
		c.byName[d.Name] = d
	}
	return c
}

// Get returns the descriptor for name, and whether it exists.
func (c *Catalog) Get(name string) (Descriptor, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// All returns every descriptor in registration order. The returned slice
// is shared; callers must not modify it.
func (c *Catalog) All() []Descriptor {
	return c.ordered
}

// Len returns the number of registered modules.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

var defaultCatalog = New(moduleTable)

// Default returns the process-wide catalog of internal modules.
func Default() *Catalog {
	return defaultCatalog
}
