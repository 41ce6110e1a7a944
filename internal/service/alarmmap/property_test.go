package alarmmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-map/internal/domain/alarm"
)

// TestParseTarget covers every target form and the malformed ones.
func TestParseTarget(t *testing.T) {
	t.Parallel()

	valid := map[string]Target{
		"global":            {Kind: TargetGlobal},
		" GLOBAL ":          {Kind: TargetGlobal},
		"category:Shops":    {Kind: TargetCategory, Name: "Shops"},
		"category: Day job": {Kind: TargetCategory, Name: "Day job"},
		"poi:42":            {Kind: TargetPOI, ID: 42},
	}

	for input, want := range valid {
		got, err := ParseTarget(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}

	for _, input := range []string{"", "planet", "category:", "poi:x", "poi:"} {
		_, err := ParseTarget(input)
		require.ErrorIs(t, err, ErrUnknownTarget, input)
	}

	require.Equal(t, "category:Shops", Target{Kind: TargetCategory, Name: "Shops"}.String())
	require.Equal(t, "poi:7", Target{Kind: TargetPOI, ID: 7}.String())
}

// TestParseDays checks the day list syntax.
func TestParseDays(t *testing.T) {
	t.Parallel()

	days, err := parseDays("mon, Wednesday,FRI")
	require.NoError(t, err)
	require.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, days.Active())

	days, err = parseDays("all")
	require.NoError(t, err)
	require.Equal(t, alarm.EveryDay(), days)

	days, err = parseDays("none")
	require.NoError(t, err)
	require.Empty(t, days.Active())

	_, err = parseDays("mon,funday")
	require.ErrorIs(t, err, alarm.ErrInvalidArgument)
}

// TestParseBool checks the accepted spellings.
func TestParseBool(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"true", "1", "on", "YES"} {
		b, err := parseBool(s)
		require.NoError(t, err)
		require.True(t, b, s)
	}

	for _, s := range []string{"false", "0", "off", "no"} {
		b, err := parseBool(s)
		require.NoError(t, err)
		require.False(t, b, s)
	}

	_, err := parseBool("maybe")
	require.ErrorIs(t, err, alarm.ErrInvalidArgument)
}

// TestSetProperty_Global drives every settable property of the global tier.
func TestSetProperty_Global(t *testing.T) {
	t.Parallel()

	g := alarm.NewGlobalConfig()

	require.NoError(t, setProperty(g, "range", "150"))
	require.NoError(t, setProperty(g, "ringtone", "file:///sounds/chime.ogg"))
	require.NoError(t, setProperty(g, "vibrate", "false"))
	require.NoError(t, setProperty(g, "message", "Almost there"))
	require.NoError(t, setProperty(g, "window", "06:00-22:00"))
	require.NoError(t, setProperty(g, "Tue", "off"))

	require.InDelta(t, 150.0, g.Range(), 0)
	require.Equal(t, "file:///sounds/chime.ogg", g.RingtoneURI())
	require.False(t, g.Vibrate())
	require.Equal(t, "Almost there", g.Message())
	require.Equal(t, alarm.Window{Begin: alarm.At(6, 0), End: alarm.At(22, 0)}, g.Window())
	require.False(t, g.OnTuesday())

	require.ErrorIs(t, setProperty(g, "window", "22:00-06:00"), alarm.ErrReversedTimes)
	require.ErrorIs(t, setProperty(g, "begin", "noon"), alarm.ErrInvalidArgument)

	require.NoError(t, resetProperty(g, "all"))
	require.Equal(t, alarm.NewGlobalConfig().Values(), g.Values())
}

// TestOverridden lists locally stored properties in a stable order.
func TestOverridden(t *testing.T) {
	t.Parallel()

	require.Empty(t, overridden(alarm.Values{}))

	v := alarm.Values{Message: ptr("hi"), End: ptr(alarm.At(9, 0)), OwnSchedule: true}
	require.Equal(t, []string{PropertyMessage, PropertyEnd, PropertyDays}, overridden(v))
}
