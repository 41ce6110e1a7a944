package alarm

import (
	"fmt"
	"math"
)

// CategoryResolver looks categories up for points of interest.
type CategoryResolver interface {
	FindByID(id int) (*Category, bool)
	FindByName(name string) (*Category, bool)
}

// PointOfInterest is a place with an alarm. Every property it does not
// override is taken from its category, found through a CategoryResolver.
// The point keeps only the category name, not the category itself.
type PointOfInterest struct {
	overrides

	id           int
	latitude     float64
	longitude    float64
	name         string
	categoryName string
	categories   CategoryResolver
}

var _ Configurable = (*PointOfInterest)(nil)

// NewPointOfInterest creates a point that delegates everything to the
// category named categoryName.
func NewPointOfInterest(
	id int,
	latitude, longitude float64,
	name, categoryName string,
	categories CategoryResolver,
) (*PointOfInterest, error) {
	if categories == nil {
		return nil, invalidf("category resolver must be provided")
	}

	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return nil, invalidf("latitude %v is out of range", latitude)
	}

	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return nil, invalidf("longitude %v is out of range", longitude)
	}

	p := &PointOfInterest{
		id:           id,
		latitude:     latitude,
		longitude:    longitude,
		name:         name,
		categoryName: categoryName,
		categories:   categories,
	}

	p.parent = func() Configurable { return p.Category() }
	p.ResetFullConfig()

	return p, nil
}

func (p *PointOfInterest) ID() int              { return p.id }
func (p *PointOfInterest) Latitude() float64    { return p.latitude }
func (p *PointOfInterest) Longitude() float64   { return p.longitude }
func (p *PointOfInterest) Name() string         { return p.name }
func (p *PointOfInterest) CategoryName() string { return p.categoryName }

// Category resolves the owning category.
// It panics with ErrCategoryNotFound when the resolver does not know it,
// since a point without a category has nothing to delegate to.
func (p *PointOfInterest) Category() *Category {
	c, ok := p.categories.FindByName(p.categoryName)
	if !ok {
		panic(fmt.Errorf("point of interest %d: %w: %q", p.id, ErrCategoryNotFound, p.categoryName))
	}

	return c
}
