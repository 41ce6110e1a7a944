package alarmmap

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/alarm-map/internal/domain/alarm"
	"github.com/oshokin/alarm-map/internal/logger"
)

// Resolve returns the effective values of target with every property set.
func (s *Service) Resolve(_ context.Context, target string) (alarm.Values, error) {
	t, err := ParseTarget(target)
	if err != nil {
		return alarm.Values{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return alarm.Values{}, ErrClosed
	}

	cfg, err := s.configurable(t)
	if err != nil {
		return alarm.Values{}, err
	}

	return effective(cfg), nil
}

// Show renders the effective configuration of target together with
// what it overrides locally.
func (s *Service) Show(_ context.Context, target string) (*View, error) {
	t, err := ParseTarget(target)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	cfg, err := s.configurable(t)
	if err != nil {
		return nil, err
	}

	view := newView(t, cfg)

	switch t.Kind {
	case TargetCategory:
		view.Name = t.Name
	case TargetPOI:
		poi, _ := s.catalog.POI(t.ID)
		lat, lon := poi.Latitude(), poi.Longitude()
		view.Name, view.Category = poi.Name(), poi.CategoryName()
		view.Latitude, view.Longitude = &lat, &lon
	default:
		if !s.updatedAt.IsZero() {
			view.UpdatedAt = s.updatedAt.Format(time.RFC3339)
		}

		if s.updatedBy != nil {
			view.UpdatedBy = s.updatedBy.String()
		}
	}

	return view, nil
}

// Set parses value and stores it as property of target.
func (s *Service) Set(ctx context.Context, target, property, value string) error {
	t, err := ParseTarget(target)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	cfg, err := s.configurable(t)
	if err != nil {
		return err
	}

	if err = setProperty(cfg, property, value); err != nil {
		return fmt.Errorf("set %s of %s: %w", property, t, err)
	}

	s.markDirty(t)
	logger.InfoKV(logger.WithKV(ctx, "target", t.String()), "Property set", "property", property, "value", value)

	return nil
}

// Reset clears property of target, or every property when property is "all".
func (s *Service) Reset(ctx context.Context, target, property string) error {
	t, err := ParseTarget(target)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	cfg, err := s.configurable(t)
	if err != nil {
		return err
	}

	if err = resetProperty(cfg, property); err != nil {
		return fmt.Errorf("reset %s of %s: %w", property, t, err)
	}

	s.markDirty(t)
	logger.InfoKV(logger.WithKV(ctx, "target", t.String()), "Property reset", "property", property)

	return nil
}

// AddCategory creates a category with the next free id.
func (s *Service) AddCategory(ctx context.Context, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	category, err := s.catalog.AddCategory(s.catalog.NextCategoryID(), name)
	if err != nil {
		return 0, err
	}

	s.catalogDirty = true
	logger.InfoKV(ctx, "Category added", "id", category.ID(), "name", category.Name())

	return category.ID(), nil
}

// RemoveCategory deletes the category called name. It must have no members.
func (s *Service) RemoveCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	category, err := s.catalog.CategoryByName(name)
	if err != nil {
		return err
	}

	if err = s.catalog.RemoveCategory(category.ID()); err != nil {
		return err
	}

	s.catalogDirty = true
	logger.InfoKV(ctx, "Category removed", "id", category.ID(), "name", name)

	return nil
}

// AddPOI creates a point of interest in categoryName with the next free id.
func (s *Service) AddPOI(ctx context.Context, name, categoryName string, latitude, longitude float64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	poi, err := s.catalog.AddPOI(s.catalog.NextPOIID(), latitude, longitude, name, categoryName)
	if err != nil {
		return 0, err
	}

	s.catalogDirty = true
	logger.InfoKV(ctx, "Point of interest added", "id", poi.ID(), "name", name, "category", categoryName)

	return poi.ID(), nil
}

// RemovePOI deletes the point of interest with the given id.
func (s *Service) RemovePOI(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	if err := s.catalog.RemovePOI(id); err != nil {
		return err
	}

	s.catalogDirty = true
	logger.InfoKV(ctx, "Point of interest removed", "id", id)

	return nil
}

// ListCategories summarises every category ordered by id.
func (s *Service) ListCategories(_ context.Context) ([]CategorySummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	categories := s.catalog.Categories()
	result := make([]CategorySummary, 0, len(categories))

	for _, c := range categories {
		result = append(result, CategorySummary{
			ID:        c.ID(),
			Name:      c.Name(),
			Members:   c.POIIDs(),
			Overrides: overridden(c.Values()),
		})
	}

	return result, nil
}

// ListPOIs summarises every point of interest ordered by id.
func (s *Service) ListPOIs(_ context.Context) ([]POISummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	pois := s.catalog.POIs()
	result := make([]POISummary, 0, len(pois))

	for _, p := range pois {
		result = append(result, POISummary{
			ID:        p.ID(),
			Name:      p.Name(),
			Category:  p.CategoryName(),
			Latitude:  p.Latitude(),
			Longitude: p.Longitude(),
			Overrides: overridden(p.Values()),
		})
	}

	return result, nil
}
