package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/alarm-map/internal/config"
	"github.com/oshokin/alarm-map/internal/domain/alarm"
)

// Snapshot is the persisted form of the global configuration.
type Snapshot struct {
	// Values holds every global property.
	Values alarm.Values
	// UpdatedAt is when the snapshot was saved.
	UpdatedAt time.Time
	// UpdatedBy is who saved the snapshot, if known.
	UpdatedBy *alarm.Actor
}

// Repository defines persistence operations for the global configuration.
type Repository interface {
	alarm.Persistence

	LoadSnapshot(ctx context.Context) (*Snapshot, error)
	SaveSnapshot(ctx context.Context, snapshot *Snapshot) error
}

// FileRepository persists the global configuration to a JSON file on disk.
// JSON is produced and consumed via protojson over a structpb.Struct.
type FileRepository struct {
	// path is the filesystem location of the JSON state file.
	path string
	// actor is stamped on snapshots written through Save.
	actor *alarm.Actor
	// now returns the save timestamp.
	now func() time.Time
	// mu protects concurrent access to the state file.
	mu sync.Mutex
}

// Option configures a FileRepository.
type Option func(*FileRepository)

// WithActor records actor as the author of snapshots written through Save.
func WithActor(actor *alarm.Actor) Option {
	return func(r *FileRepository) {
		r.actor = actor.Clone()
	}
}

// WithClock replaces the clock used to timestamp snapshots.
func WithClock(now func() time.Time) Option {
	return func(r *FileRepository) {
		if now != nil {
			r.now = now
		}
	}
}

var (
	// ErrNotFound is returned when the state file does not exist yet.
	// It wraps alarm.ErrNotPersisted, so GlobalConfig.Load falls back to defaults.
	ErrNotFound = fmt.Errorf("state not found: %w", alarm.ErrNotPersisted)
	// errSnapshotIsNotSet is returned when a nil snapshot is saved.
	errSnapshotIsNotSet = errors.New("snapshot is not set")
)

var _ Repository = (*FileRepository)(nil)

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string, opts ...Option) *FileRepository {
	r := &FileRepository{
		path: filepath.Clean(path),
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Path returns the location of the state file.
func (r *FileRepository) Path() string {
	return r.path
}

// Load implements alarm.Persistence.
func (r *FileRepository) Load(ctx context.Context) (alarm.Values, error) {
	snapshot, err := r.LoadSnapshot(ctx)
	if err != nil {
		return alarm.Values{}, err
	}

	return snapshot.Values, nil
}

// Save implements alarm.Persistence, stamping the configured actor and the current time.
func (r *FileRepository) Save(ctx context.Context, v alarm.Values) error {
	return r.SaveSnapshot(ctx, &Snapshot{
		Values:    v,
		UpdatedAt: r.now(),
		UpdatedBy: r.actor.Clone(),
	})
}

// LoadSnapshot reads the snapshot from disk.
func (r *FileRepository) LoadSnapshot(_ context.Context) (*Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read state file: %w", err)
	}

	var message structpb.Struct
	if err = protojson.Unmarshal(contents, &message); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	snapshot, err := fromStruct(&message)
	if err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}

	return snapshot, nil
}

// SaveSnapshot writes the snapshot to disk using JSON representation.
func (r *FileRepository) SaveSnapshot(_ context.Context, snapshot *Snapshot) error {
	if snapshot == nil {
		return errSnapshotIsNotSet
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	message, err := toStruct(snapshot)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline: true,
		Indent:    "  ",
	}

	data, err := marshalOptions.Marshal(message)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(r.path), config.DefaultDirPermissions); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}

	return nil
}
