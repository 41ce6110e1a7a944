package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/oshokin/alarm-map/internal/domain/alarm"
)

var (
	// ErrNotFound is returned when a category or point of interest does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when an identifier or category name is taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrCategoryInUse is returned when removing a category that still has members.
	ErrCategoryInUse = errors.New("category still has points of interest")
	// errEmptyName is returned when a category name is blank.
	errEmptyName = errors.New("category name must not be empty")
)

// Catalog indexes categories by id and name, and points of interest by id.
// It is not safe for concurrent use.
type Catalog struct {
	// global is the configuration new categories fall back to.
	global *alarm.GlobalConfig
	// categories maps category id to category.
	categories map[int]*alarm.Category
	// byName maps category name to category.
	byName map[string]*alarm.Category
	// pois maps point id to point.
	pois map[int]*alarm.PointOfInterest
}

var _ alarm.CategoryResolver = (*Catalog)(nil)

// New creates an empty catalog whose categories fall back to global.
func New(global *alarm.GlobalConfig) *Catalog {
	if global == nil {
		global = alarm.NewGlobalConfig()
	}

	return &Catalog{
		global:     global,
		categories: make(map[int]*alarm.Category),
		byName:     make(map[string]*alarm.Category),
		pois:       make(map[int]*alarm.PointOfInterest),
	}
}

// Global returns the configuration shared by every category.
func (c *Catalog) Global() *alarm.GlobalConfig {
	return c.global
}

// FindByID implements alarm.CategoryResolver.
func (c *Catalog) FindByID(id int) (*alarm.Category, bool) {
	category, ok := c.categories[id]

	return category, ok
}

// FindByName implements alarm.CategoryResolver.
func (c *Catalog) FindByName(name string) (*alarm.Category, bool) {
	category, ok := c.byName[name]

	return category, ok
}

// AddCategory creates a category with no overrides.
func (c *Catalog) AddCategory(id int, name string) (*alarm.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errEmptyName
	}

	if _, ok := c.categories[id]; ok {
		return nil, fmt.Errorf("category %d: %w", id, ErrAlreadyExists)
	}

	if _, ok := c.byName[name]; ok {
		return nil, fmt.Errorf("category %q: %w", name, ErrAlreadyExists)
	}

	category := alarm.NewCategory(id, name, nil, c.global)
	c.categories[id] = category
	c.byName[name] = category

	return category, nil
}

// RemoveCategory deletes an empty category.
func (c *Catalog) RemoveCategory(id int) error {
	category, ok := c.categories[id]
	if !ok {
		return fmt.Errorf("category %d: %w", id, ErrNotFound)
	}

	if members := category.POIIDs(); len(members) > 0 {
		return fmt.Errorf("category %q has %d members: %w", category.Name(), len(members), ErrCategoryInUse)
	}

	delete(c.categories, id)
	delete(c.byName, category.Name())

	return nil
}

// Category returns the category with the given id.
func (c *Catalog) Category(id int) (*alarm.Category, error) {
	category, ok := c.categories[id]
	if !ok {
		return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}

	return category, nil
}

// CategoryByName returns the category with the given name.
func (c *Catalog) CategoryByName(name string) (*alarm.Category, error) {
	category, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", name, ErrNotFound)
	}

	return category, nil
}

// Categories returns every category ordered by id.
func (c *Catalog) Categories() []*alarm.Category {
	ids := slices.Sorted(maps.Keys(c.categories))
	result := make([]*alarm.Category, 0, len(ids))

	for _, id := range ids {
		result = append(result, c.categories[id])
	}

	return result
}

// AddPOI creates a point of interest in an existing category and records it as a member.
func (c *Catalog) AddPOI(id int, latitude, longitude float64, name, categoryName string) (*alarm.PointOfInterest, error) {
	if _, ok := c.pois[id]; ok {
		return nil, fmt.Errorf("point of interest %d: %w", id, ErrAlreadyExists)
	}

	category, ok := c.byName[categoryName]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", categoryName, ErrNotFound)
	}

	poi, err := alarm.NewPointOfInterest(id, latitude, longitude, name, categoryName, c)
	if err != nil {
		return nil, fmt.Errorf("point of interest %d: %w", id, err)
	}

	c.pois[id] = poi
	category.AddPOI(id)

	return poi, nil
}

// RemovePOI deletes a point of interest and drops it from its category.
func (c *Catalog) RemovePOI(id int) error {
	poi, ok := c.pois[id]
	if !ok {
		return fmt.Errorf("point of interest %d: %w", id, ErrNotFound)
	}

	if category, found := c.byName[poi.CategoryName()]; found {
		category.RemovePOI(id)
	}

	delete(c.pois, id)

	return nil
}

// POI returns the point of interest with the given id.
func (c *Catalog) POI(id int) (*alarm.PointOfInterest, error) {
	poi, ok := c.pois[id]
	if !ok {
		return nil, fmt.Errorf("point of interest %d: %w", id, ErrNotFound)
	}

	return poi, nil
}

// POIs returns every point of interest ordered by id.
func (c *Catalog) POIs() []*alarm.PointOfInterest {
	ids := slices.Sorted(maps.Keys(c.pois))
	result := make([]*alarm.PointOfInterest, 0, len(ids))

	for _, id := range ids {
		result = append(result, c.pois[id])
	}

	return result
}

// NextCategoryID returns one more than the largest category id in use.
func (c *Catalog) NextCategoryID() int {
	return nextID(c.categories)
}

// NextPOIID returns one more than the largest point id in use.
func (c *Catalog) NextPOIID() int {
	return nextID(c.pois)
}

func nextID[V any](m map[int]V) int {
	next := 1

	for id := range m {
		if id >= next {
			next = id + 1
		}
	}

	return next
}
