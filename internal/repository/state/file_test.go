package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-map/internal/domain/alarm"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for a missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))

	s, err := repo.LoadSnapshot(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, err, alarm.ErrNotPersisted)
	require.Nil(t, s)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns equal values.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "nested", "state.json")
	ts := time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)
	actor := &alarm.Actor{
		Hostname: "Oleg Shokin",
		Username: "o.shokin",
	}

	repo := NewFileRepository(file, WithActor(actor), WithClock(func() time.Time { return ts }))

	global := alarm.NewGlobalConfig()
	require.NoError(t, global.SetRange(120.5))
	require.NoError(t, global.SetMessage("Leave now"))
	require.NoError(t, global.SetWindow(alarm.At(6, 15), alarm.At(24, 0)))
	global.SetVibrate(false)
	global.SetOnSunday(false)

	require.NoError(t, global.Save(context.Background(), repo))

	snapshot, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, global.Values(), snapshot.Values)
	require.Equal(t, ts, snapshot.UpdatedAt)
	require.Equal(t, actor, snapshot.UpdatedBy)

	loaded := alarm.NewGlobalConfig()
	require.NoError(t, loaded.Load(context.Background(), repo))
	require.Equal(t, global.Values(), loaded.Values())

	_, err = os.Stat(file)
	require.NoError(t, err)
}

// TestFileRepository_DefaultsOnFirstLoad checks that a missing file leaves the defaults in place.
func TestFileRepository_DefaultsOnFirstLoad(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "state.json"))
	global := alarm.NewGlobalConfig()

	require.NoError(t, global.Load(context.Background(), repo))
	require.Equal(t, alarm.NewGlobalConfig().Values(), global.Values())
}

// TestFileRepository_Corrupt checks decoding failures on malformed files.
func TestFileRepository_Corrupt(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"not json":    "{",
		"range":       `{"range": "far"}`,
		"days length": `{"days": [true, false]}`,
		"begin":       `{"begin": "noon"}`,
		"updated_at":  `{"days": [true, true, true, true, true, true, true], "updated_at": "yesterday"}`,
	}

	for name, contents := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			file := filepath.Join(t.TempDir(), "state.json")
			require.NoError(t, os.WriteFile(file, []byte(contents), 0o600))

			_, err := NewFileRepository(file).LoadSnapshot(context.Background())
			require.Error(t, err)
		})
	}
}

// TestFileRepository_IncompleteValues checks that a partial file is rejected by the global tier.
func TestFileRepository_IncompleteValues(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"range": 10, "days": [true, true, true, true, true, true, true]}`), 0o600))

	global := alarm.NewGlobalConfig()
	err := global.Load(context.Background(), NewFileRepository(file))
	require.ErrorIs(t, err, alarm.ErrInvalidArgument)
	require.InDelta(t, alarm.DefaultRange, global.Range(), 0)
}

// TestFileRepository_MissingDays checks that a file without weekday flags is
// rejected instead of disabling every day.
func TestFileRepository_MissingDays(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "state.json")
	contents := `{"range": 10, "ringtone_uri": "", "vibrate": true, "message": "", "begin": "00:00", "end": "23:60"}`
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o600))

	_, err := NewFileRepository(file).LoadSnapshot(context.Background())
	require.ErrorIs(t, err, errMalformed)

	global := alarm.NewGlobalConfig()
	require.Error(t, global.Load(context.Background(), NewFileRepository(file)))
	require.True(t, global.OnMonday())
	require.Equal(t, alarm.EveryDay(), global.Values().Days)
}

// TestFileRepository_UpdatedAtFormat checks that the stamp is written as a protobuf JSON timestamp.
func TestFileRepository_UpdatedAtFormat(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "state.json")
	ts := time.Date(2026, 10, 16, 8, 30, 0, 500, time.UTC)
	repo := NewFileRepository(file, WithClock(func() time.Time { return ts }))

	require.NoError(t, alarm.NewGlobalConfig().Save(context.Background(), repo))

	contents, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(contents), `"2026-10-16T08:30:00.000000500Z"`)

	snapshot, err := repo.LoadSnapshot(context.Background())
	require.NoError(t, err)
	require.True(t, ts.Equal(snapshot.UpdatedAt))
}

// TestFileRepository_SaveNil checks that a nil snapshot is rejected.
func TestFileRepository_SaveNil(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "state.json"))
	require.Error(t, repo.SaveSnapshot(context.Background(), nil))
}
