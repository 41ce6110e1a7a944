package alarmmap

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/oshokin/alarm-map/internal/config"
	"github.com/oshokin/alarm-map/internal/domain/alarm"
	"github.com/oshokin/alarm-map/internal/domain/catalog"
	"github.com/oshokin/alarm-map/internal/logger"
	"github.com/oshokin/alarm-map/internal/repository/sqlite"
	"github.com/oshokin/alarm-map/internal/repository/state"
	"github.com/oshokin/alarm-map/internal/service/common"
)

// Options controls where the service finds its settings and data.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// StateFile overrides the global configuration file from the settings.
	StateFile string
	// CatalogFile overrides the catalog database from the settings.
	CatalogFile string
}

// ErrClosed is returned by operations on a closed service.
var ErrClosed = errors.New("service is closed")

// catalogStore is the part of the SQLite store the service depends on.
type catalogStore interface {
	Load(ctx context.Context) (*sqlite.Records, error)
	Save(ctx context.Context, records *sqlite.Records) error
	Close() error
}

// Service owns the configuration tiers for the lifetime of one process.
type Service struct {
	// stateRepo persists the global configuration.
	stateRepo state.Repository
	// store persists categories and points of interest.
	store catalogStore
	// catalog holds every tier in memory.
	catalog *catalog.Catalog
	// updatedAt and updatedBy describe the last persisted global change.
	updatedAt time.Time
	updatedBy *alarm.Actor
	// globalDirty and catalogDirty mark what Close has to write back.
	globalDirty  bool
	catalogDirty bool
	closed       bool
	// mu protects everything above.
	mu sync.RWMutex
}

// Open loads the settings, the global configuration and the catalog.
func Open(ctx context.Context, opts *Options) (*Service, error) {
	if opts == nil {
		opts = &Options{}
	}

	ctx = logger.WithName(ctx, "alarm-map")

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	applyOverrides(settings, opts)

	if err = logger.SetLevelName(settings.LogLevel); err != nil {
		return nil, err
	}

	actor, err := common.DetectActor()
	if err != nil {
		logger.WarnKV(ctx, "Unable to detect actor", "error", err)
	}

	store := sqlite.NewStore(settings.CatalogFile)
	if err = store.Open(ctx); err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	svc, err := newService(ctx, state.NewFileRepository(settings.StateFile, state.WithActor(actor)), store)
	if err != nil {
		_ = store.Close()

		return nil, err
	}

	logger.DebugKV(ctx, "Alarm map opened",
		"state_file", settings.StateFile,
		"catalog_file", settings.CatalogFile,
		"categories", len(svc.catalog.Categories()),
		"points_of_interest", len(svc.catalog.POIs()))

	return svc, nil
}

func applyOverrides(settings *config.Config, opts *Options) {
	if opts.StateFile != "" {
		settings.StateFile = opts.StateFile
	}

	if opts.CatalogFile != "" {
		settings.CatalogFile = opts.CatalogFile
	}
}

// newService restores the tiers from the given repositories.
func newService(ctx context.Context, stateRepo state.Repository, store catalogStore) (*Service, error) {
	s := &Service{
		stateRepo: stateRepo,
		store:     store,
	}

	global := alarm.NewGlobalConfig()

	snapshot, err := stateRepo.LoadSnapshot(ctx)
	switch {
	case err == nil:
		if err = global.Apply(snapshot.Values); err != nil {
			return nil, fmt.Errorf("apply global configuration: %w", err)
		}

		s.updatedAt, s.updatedBy = snapshot.UpdatedAt, snapshot.UpdatedBy
	case errors.Is(err, state.ErrNotFound):
		logger.Debug(ctx, "No global configuration stored yet, using defaults")
	default:
		return nil, fmt.Errorf("load global configuration: %w", err)
	}

	records, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if s.catalog, err = rebuildCatalog(global, records); err != nil {
		return nil, fmt.Errorf("rebuild catalog: %w", err)
	}

	return s, nil
}

// rebuildCatalog restores every record, reporting all broken ones at once.
func rebuildCatalog(global *alarm.GlobalConfig, records *sqlite.Records) (*catalog.Catalog, error) {
	c := catalog.New(global)
	if records == nil {
		return c, nil
	}

	var err error

	for _, rec := range records.Categories {
		category, addErr := c.AddCategory(rec.ID, rec.Name)
		if addErr != nil {
			err = multierr.Append(err, addErr)

			continue
		}

		if applyErr := category.Apply(rec.Values); applyErr != nil {
			err = multierr.Append(err, fmt.Errorf("category %q: %w", rec.Name, applyErr))
		}
	}

	for _, rec := range records.POIs {
		poi, addErr := c.AddPOI(rec.ID, rec.Latitude, rec.Longitude, rec.Name, rec.CategoryName)
		if addErr != nil {
			err = multierr.Append(err, addErr)

			continue
		}

		if applyErr := poi.Apply(rec.Values); applyErr != nil {
			err = multierr.Append(err, fmt.Errorf("point of interest %d: %w", rec.ID, applyErr))
		}
	}

	return c, err
}

// Close writes back whatever changed and releases the catalog store.
// Closing a closed service is a no-op.
func (s *Service) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true

	var err error

	if s.globalDirty {
		if saveErr := s.catalog.Global().Save(ctx, s.stateRepo); saveErr != nil {
			err = multierr.Append(err, fmt.Errorf("save global configuration: %w", saveErr))
		} else {
			logger.Debug(ctx, "Global configuration saved")
		}
	}

	if s.catalogDirty {
		if saveErr := s.store.Save(ctx, s.records()); saveErr != nil {
			err = multierr.Append(err, fmt.Errorf("save catalog: %w", saveErr))
		} else {
			logger.Debug(ctx, "Catalog saved")
		}
	}

	if closeErr := s.store.Close(); closeErr != nil {
		err = multierr.Append(err, fmt.Errorf("close catalog: %w", closeErr))
	}

	return err
}

// records converts the in-memory catalog to its stored form.
func (s *Service) records() *sqlite.Records {
	categories := s.catalog.Categories()
	pois := s.catalog.POIs()

	result := &sqlite.Records{
		Categories: make([]sqlite.CategoryRecord, 0, len(categories)),
		POIs:       make([]sqlite.POIRecord, 0, len(pois)),
	}

	for _, c := range categories {
		result.Categories = append(result.Categories, sqlite.CategoryRecord{
			ID:     c.ID(),
			Name:   c.Name(),
			Values: c.Values(),
		})
	}

	for _, p := range pois {
		result.POIs = append(result.POIs, sqlite.POIRecord{
			ID:           p.ID(),
			Latitude:     p.Latitude(),
			Longitude:    p.Longitude(),
			Name:         p.Name(),
			CategoryName: p.CategoryName(),
			Values:       p.Values(),
		})
	}

	return result
}

// configurable looks up the tier addressed by target. Callers hold mu.
func (s *Service) configurable(target Target) (alarm.Configurable, error) {
	switch target.Kind {
	case TargetCategory:
		category, err := s.catalog.CategoryByName(target.Name)
		if err != nil {
			return nil, err
		}

		return category, nil
	case TargetPOI:
		poi, err := s.catalog.POI(target.ID)
		if err != nil {
			return nil, err
		}

		return poi, nil
	default:
		return s.catalog.Global(), nil
	}
}

// markDirty records that target changed.
func (s *Service) markDirty(target Target) {
	if target.Kind == TargetGlobal {
		s.globalDirty = true
	} else {
		s.catalogDirty = true
	}
}
