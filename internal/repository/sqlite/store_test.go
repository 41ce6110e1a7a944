package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-map/internal/domain/alarm"
)

func openStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "nested", "catalog.db"))
	require.NoError(t, store.Open(context.Background()))
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func ptr[T any](v T) *T {
	return &v
}

// TestStore_NotOpen verifies that Load and Save refuse to work on a closed store.
func TestStore_NotOpen(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "catalog.db"))

	_, err := store.Load(context.Background())
	require.ErrorIs(t, err, ErrNotOpen)
	require.ErrorIs(t, store.Save(context.Background(), &Records{}), ErrNotOpen)
	require.NoError(t, store.Close())
}

// TestStore_EmptyLoad verifies that a fresh database yields no records.
func TestStore_EmptyLoad(t *testing.T) {
	t.Parallel()

	store := openStore(t)

	records, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, records.Categories)
	require.Empty(t, records.POIs)
}

// TestStore_SaveLoad_Roundtrip checks that overrides and inherited values survive a reopen.
func TestStore_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")

	var evenDays alarm.Weekdays
	evenDays[time.Sunday] = true
	evenDays[time.Tuesday] = true

	records := &Records{
		Categories: []CategoryRecord{
			{
				ID:   1,
				Name: "Groceries",
				Values: alarm.Values{
					Range:       ptr(75.0),
					Message:     ptr("Buy milk"),
					Begin:       ptr(alarm.At(8, 0)),
					End:         ptr(alarm.At(24, 0)),
					OwnSchedule: true,
					Days:        evenDays,
				},
			},
			{ID: 2, Name: "Pharmacy", Values: alarm.Values{Days: alarm.EveryDay()}},
		},
		POIs: []POIRecord{
			{
				ID:           10,
				Latitude:     55.75,
				Longitude:    37.62,
				Name:         "Corner shop",
				CategoryName: "Groceries",
				Values: alarm.Values{
					RingtoneURI: ptr("file:///sounds/bell.ogg"),
					Vibrate:     ptr(false),
					Days:        alarm.EveryDay(),
				},
			},
		},
	}

	store := NewStore(path)
	require.NoError(t, store.Open(ctx))
	require.NoError(t, store.Save(ctx, records))
	require.NoError(t, store.Close())

	reopened := NewStore(path)
	require.NoError(t, reopened.Open(ctx))
	t.Cleanup(func() { _ = reopened.Close() })

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, records, loaded)
}

// TestStore_SaveReplaces verifies that Save drops rows missing from the new records.
func TestStore_SaveReplaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.Save(ctx, &Records{
		Categories: []CategoryRecord{
			{ID: 1, Name: "Work", Values: alarm.Values{Days: alarm.EveryDay()}},
			{ID: 2, Name: "Home", Values: alarm.Values{Days: alarm.EveryDay()}},
		},
	}))
	require.NoError(t, store.Save(ctx, &Records{
		Categories: []CategoryRecord{{ID: 2, Name: "Home", Values: alarm.Values{Days: alarm.EveryDay()}}},
	}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Categories, 1)
	require.Equal(t, "Home", loaded.Categories[0].Name)
}

// TestStore_SaveRollsBack verifies that a failed save keeps the previous catalog.
func TestStore_SaveRollsBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openStore(t)

	original := &Records{
		Categories: []CategoryRecord{{ID: 1, Name: "Work", Values: alarm.Values{Days: alarm.EveryDay()}}},
	}
	require.NoError(t, store.Save(ctx, original))

	err := store.Save(ctx, &Records{
		Categories: []CategoryRecord{
			{ID: 1, Name: "Gym", Values: alarm.Values{Days: alarm.EveryDay()}},
			{ID: 2, Name: "Gym", Values: alarm.Values{Days: alarm.EveryDay()}},
		},
	})
	require.Error(t, err)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, original, loaded)
}

// TestStore_MalformedRows verifies that undecodable columns are reported.
func TestStore_MalformedRows(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"short days": `INSERT INTO categories (id, name, days) VALUES (1, 'Work', '101')`,
		"bad days":   `INSERT INTO categories (id, name, days) VALUES (1, 'Work', '10x1111')`,
		"bad begin":  `INSERT INTO categories (id, name, begin_time) VALUES (1, 'Work', 'noon')`,
	}

	for name, stmt := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store := openStore(t)

			_, err := store.db.ExecContext(context.Background(), stmt)
			require.NoError(t, err)

			_, err = store.Load(context.Background())
			require.ErrorIs(t, err, errMalformed)
		})
	}
}

// TestDays_Encoding checks the Sunday-first flag string.
func TestDays_Encoding(t *testing.T) {
	t.Parallel()

	var days alarm.Weekdays
	days[time.Monday] = true
	days[time.Saturday] = true

	require.Equal(t, "0100001", encodeDays(days))

	decoded, err := decodeDays("0100001")
	require.NoError(t, err)
	require.Equal(t, days, decoded)
}
