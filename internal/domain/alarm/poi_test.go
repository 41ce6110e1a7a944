package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// mapResolver resolves categories from a fixed set.
type mapResolver map[string]*Category

func (m mapResolver) FindByName(name string) (*Category, bool) {
	c, ok := m[name]

	return c, ok
}

func (m mapResolver) FindByID(id int) (*Category, bool) {
	for _, c := range m {
		if c.ID() == id {
			return c, true
		}
	}

	return nil, false
}

// newTestPOI builds a point under a category with window 01:10-04:40.
func newTestPOI(t *testing.T) (*PointOfInterest, *Category) {
	t.Helper()

	c := NewCategory(1, "center!", nil, NewGlobalConfig())
	require.NoError(t, c.SetEndTime(4, 40))
	require.NoError(t, c.SetBeginTime(1, 10))
	require.NoError(t, c.SetRange(42))
	require.NoError(t, c.SetMessage("category message"))

	p, err := NewPointOfInterest(9, -30.03, -51.22, "Redenção", "center!", mapResolver{"center!": c})
	require.NoError(t, err)

	return p, c
}

// TestPointOfInterestIdentity verifies the read-only identity accessors.
func TestPointOfInterestIdentity(t *testing.T) {
	t.Parallel()

	p, c := newTestPOI(t)

	require.Equal(t, 9, p.ID())
	require.InDelta(t, -30.03, p.Latitude(), 0)
	require.InDelta(t, -51.22, p.Longitude(), 0)
	require.Equal(t, "Redenção", p.Name())
	require.Equal(t, "center!", p.CategoryName())
	require.Same(t, c, p.Category())
}

// TestNewPointOfInterestValidation checks constructor argument checks.
func TestNewPointOfInterestValidation(t *testing.T) {
	t.Parallel()

	resolver := mapResolver{}

	_, err := NewPointOfInterest(1, 91, 0, "n", "c", resolver)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPointOfInterest(1, 0, -180.5, "n", "c", resolver)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPointOfInterest(1, 0, 0, "n", "c", nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPointOfInterest(1, 90, 180, "n", "c", resolver)
	require.NoError(t, err)
}

// TestPointOfInterestWindowScenario checks overriding and resetting the begin time under a category.
func TestPointOfInterestWindowScenario(t *testing.T) {
	t.Parallel()

	p, c := newTestPOI(t)

	require.Equal(t, 1, p.BeginHour())
	require.Equal(t, 10, p.BeginMinute())

	require.NoError(t, p.SetBeginTime(2, 20))
	require.Equal(t, 2, p.BeginHour())
	require.Equal(t, 20, p.BeginMinute())
	require.Equal(t, 1, c.BeginHour())

	p.ResetBeginTime()
	require.Equal(t, 1, p.BeginHour())
	require.Equal(t, 10, p.BeginMinute())
}

// TestPointOfInterestEqualBounds checks that a begin equal to the effective end is rejected.
func TestPointOfInterestEqualBounds(t *testing.T) {
	t.Parallel()

	p, _ := newTestPOI(t)

	err := p.SetBeginTime(4, 40)
	require.ErrorIs(t, err, ErrReversedTimes)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Equal(t, At(1, 10), p.BeginTime())

	require.ErrorIs(t, p.SetEndTime(1, 10), ErrReversedTimes)
}

// TestPointOfInterestEndBoundary checks the 24:00 end boundary.
func TestPointOfInterestEndBoundary(t *testing.T) {
	t.Parallel()

	p, _ := newTestPOI(t)

	require.NoError(t, p.SetEndTime(24, 0))
	require.ErrorIs(t, p.SetEndTime(24, 1), ErrInvalidArgument)
	require.ErrorIs(t, p.SetEndTime(25, 0), ErrInvalidArgument)
	require.Equal(t, At(24, 0), p.EndTime())
}

// TestPointOfInterestChain checks that every reset property resolves to the category's value.
func TestPointOfInterestChain(t *testing.T) {
	t.Parallel()

	p, c := newTestPOI(t)

	require.NoError(t, p.SetRange(5))
	require.NoError(t, p.SetRingtoneURI(""))
	require.NoError(t, p.SetMessage("poi message"))
	p.SetVibrate(false)
	require.NoError(t, p.SetWindow(At(2, 0), At(3, 0)))

	require.InDelta(t, 5.0, p.Range(), 0)
	require.InDelta(t, 42.0, c.Range(), 0)
	require.False(t, p.Vibrate())
	require.Equal(t, "poi message", p.Message())

	p.ResetFullConfig()

	require.InDelta(t, c.Range(), p.Range(), 0)
	require.Equal(t, c.RingtoneURI(), p.RingtoneURI())
	require.Equal(t, c.Vibrate(), p.Vibrate())
	require.Equal(t, c.Message(), p.Message())
	require.Equal(t, c.Window(), p.Window())

	// Properties the category does not override come from the global tier.
	require.Equal(t, c.Global().Vibrate(), p.Vibrate())
	require.Equal(t, "category message", p.Message())
}

// TestPointOfInterestSchedule checks the schedule delegation through two tiers.
func TestPointOfInterestSchedule(t *testing.T) {
	t.Parallel()

	p, c := newTestPOI(t)

	c.Global().SetOnTuesday(false)
	require.False(t, p.OnTuesday())

	c.SetOnTuesday(true)
	require.True(t, p.OnTuesday())
	require.False(t, p.OnWednesday(), "category own schedule leaves other days off")

	p.SetOnWednesday(true)
	require.True(t, p.UsesOwnSchedule())
	require.True(t, p.OnWednesday())
	require.False(t, p.OnTuesday())

	p.ResetDaysOfWeek()
	require.False(t, p.UsesOwnSchedule())
	require.True(t, p.OnTuesday())
	require.True(t, p.Values().Days.On(time.Wednesday))
}

// TestPointOfInterestMissingCategory checks that resolving an unknown category panics.
func TestPointOfInterestMissingCategory(t *testing.T) {
	t.Parallel()

	p, err := NewPointOfInterest(1, 0, 0, "orphan", "nowhere", mapResolver{})
	require.NoError(t, err)

	require.PanicsWithError(t, `point of interest 1: category not found: "nowhere"`, func() {
		_ = p.Range()
	})

	// Local overrides never consult the category.
	require.NoError(t, p.SetRange(1))
	require.InDelta(t, 1.0, p.Range(), 0)
}
