package alarm

import "slices"

// Category groups points of interest. Every property it does not override
// is taken from the global configuration.
type Category struct {
	overrides

	id     int
	name   string
	poiIDs []int
	global *GlobalConfig
}

var _ Configurable = (*Category)(nil)

// NewCategory creates a category that delegates everything to global.
// A nil global gets a fresh configuration holding the defaults.
func NewCategory(id int, name string, poiIDs []int, global *GlobalConfig) *Category {
	if global == nil {
		global = NewGlobalConfig()
	}

	c := &Category{
		id:     id,
		name:   name,
		poiIDs: slices.Clone(poiIDs),
		global: global,
	}

	c.parent = func() Configurable { return c.global }
	c.ResetFullConfig()

	return c
}

// ID returns the stable category identifier.
func (c *Category) ID() int {
	return c.id
}

// Name returns the unique category name.
func (c *Category) Name() string {
	return c.name
}

// Global returns the configuration the category falls back to.
func (c *Category) Global() *GlobalConfig {
	return c.global
}

// POIIDs returns a copy of the member point of interest identifiers.
func (c *Category) POIIDs() []int {
	return slices.Clone(c.poiIDs)
}

// AddPOI records id as a member. Existing members are ignored.
func (c *Category) AddPOI(id int) {
	if slices.Contains(c.poiIDs, id) {
		return
	}

	c.poiIDs = append(c.poiIDs, id)
}

// RemovePOI forgets the member id and reports whether it was present.
func (c *Category) RemovePOI(id int) bool {
	i := slices.Index(c.poiIDs, id)
	if i < 0 {
		return false
	}

	c.poiIDs = slices.Delete(c.poiIDs, i, i+1)

	return true
}
