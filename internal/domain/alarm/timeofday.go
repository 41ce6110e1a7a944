package alarm

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	minutesPerHour = 60
	hoursPerDay    = 24
	maxMinute      = 59
)

// TimeOfDay is an hour and minute within a day.
// Both 24:00 and 23:60 denote the end of the day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

var (
	// StartOfDay is the earliest time of the day.
	StartOfDay = TimeOfDay{Hour: 0, Minute: 0}
	// EndOfDay is the default end of the window, meaning "through the end of the day".
	EndOfDay = TimeOfDay{Hour: 23, Minute: 60}
)

// At is shorthand for TimeOfDay{Hour: hour, Minute: minute}.
func At(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*minutesPerHour + t.Minute
}

// Before reports whether t is strictly earlier than o.
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Minutes() < o.Minutes()
}

// String formats the time as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// ParseTimeOfDay parses an "HH:MM" string. Range checks are left to the setters.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hourText, minuteText, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return TimeOfDay{}, invalidf("time %q is not in HH:MM format", s)
	}

	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return TimeOfDay{}, invalidf("time %q has a malformed hour", s)
	}

	minute, err := strconv.Atoi(minuteText)
	if err != nil {
		return TimeOfDay{}, invalidf("time %q has a malformed minute", s)
	}

	return At(hour, minute), nil
}

// validateBegin checks that t lies in the domain of begin times.
// Hour 24 is never a begin: nothing can follow it within the day.
func validateBegin(t TimeOfDay) error {
	if t.Hour < 0 || t.Minute < 0 {
		return invalidf("can't use negative times")
	}

	if t.Hour >= hoursPerDay || t.Minute > maxMinute {
		return invalidf("the given time %q is invalid", t)
	}

	return nil
}

// validateEnd checks that t lies in the domain of end times.
// 24:00 is the only legal time with hour 24.
func validateEnd(t TimeOfDay) error {
	if t.Hour < 0 || t.Minute < 0 {
		return invalidf("can't use negative times")
	}

	if t.Hour > hoursPerDay || (t.Hour == hoursPerDay && t.Minute > 0) || t.Minute > maxMinute {
		return invalidf("the given time %q is invalid", t)
	}

	return nil
}

// validateStoredEnd is validateEnd that also admits the EndOfDay default,
// which is only ever produced by resetters and read back from snapshots.
func validateStoredEnd(t TimeOfDay) error {
	if t == EndOfDay {
		return nil
	}

	return validateEnd(t)
}

// checkOrder reports ErrReversedTimes unless begin is strictly before end.
func checkOrder(begin, end TimeOfDay) error {
	if !begin.Before(end) {
		return reversedf("begin time %s would not be before end time %s", begin, end)
	}

	return nil
}

// Window is the daily time range during which an alarm may trigger.
type Window struct {
	Begin TimeOfDay
	End   TimeOfDay
}

// Contains reports whether t falls inside the window. End is exclusive.
func (w Window) Contains(t TimeOfDay) bool {
	m := t.Minutes()

	return m >= w.Begin.Minutes() && m < w.End.Minutes()
}

// Valid reports whether the window is non-empty.
func (w Window) Valid() bool {
	return w.Begin.Before(w.End)
}

// String formats the window as HH:MM-HH:MM.
func (w Window) String() string {
	return w.Begin.String() + "-" + w.End.String()
}

// ParseWindow parses an "HH:MM-HH:MM" string.
func ParseWindow(s string) (Window, error) {
	beginText, endText, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return Window{}, invalidf("window %q is not in HH:MM-HH:MM format", s)
	}

	begin, err := ParseTimeOfDay(beginText)
	if err != nil {
		return Window{}, err
	}

	end, err := ParseTimeOfDay(endText)
	if err != nil {
		return Window{}, err
	}

	return Window{Begin: begin, End: end}, nil
}
