package alarm

import (
	"math"
	"time"
	"unicode/utf8"
)

// Configurable is the contract shared by every configuration tier.
//
// Getters resolve through the delegation chain and never fail. Setters
// validate and store a value at this tier only; on error the tier is left
// unchanged. Resetters clear the local value.
type Configurable interface {
	// Range is the distance in metres from which the alarm may be triggered.
	Range() float64
	// RingtoneURI identifies the ringtone. An empty URI rings silently.
	RingtoneURI() string
	Vibrate() bool
	// Message is displayed with the alarm. An empty message displays nothing.
	Message() string

	BeginTime() TimeOfDay
	BeginHour() int
	BeginMinute() int
	EndTime() TimeOfDay
	EndHour() int
	EndMinute() int
	Window() Window

	OnDay(d time.Weekday) bool
	OnSunday() bool
	OnMonday() bool
	OnTuesday() bool
	OnWednesday() bool
	OnThursday() bool
	OnFriday() bool
	OnSaturday() bool

	SetRange(r float64) error
	SetRingtoneURI(uri string) error
	SetVibrate(vibrate bool)
	SetMessage(message string) error
	SetBeginTime(hour, minute int) error
	SetEndTime(hour, minute int) error
	// SetWindow sets both bounds, validating them as one unit.
	SetWindow(begin, end TimeOfDay) error

	SetOnDay(d time.Weekday, active bool) error
	SetOnSunday(active bool)
	SetOnMonday(active bool)
	SetOnTuesday(active bool)
	SetOnWednesday(active bool)
	SetOnThursday(active bool)
	SetOnFriday(active bool)
	SetOnSaturday(active bool)

	ResetRange()
	ResetRingtoneURI()
	ResetVibrate()
	ResetMessage()
	ResetBeginTime()
	ResetEndTime()
	ResetWindow()
	// ResetDaysOfWeek semantics vary per tier: the global tier restores every
	// day, overridable tiers go back to delegating.
	ResetDaysOfWeek()
	// ResetFullConfig is the same as calling every individual resetter.
	ResetFullConfig()

	// Values returns a snapshot of what is stored at this tier.
	Values() Values
	// Apply validates v as a whole and stores it, or changes nothing.
	Apply(v Values) error
}

// validateRange rejects negative and non-finite ranges.
func validateRange(r float64) error {
	if r < 0 {
		return invalidf("cannot use a negative range")
	}

	if math.IsNaN(r) || math.IsInf(r, 0) {
		return invalidf("range must be a finite number")
	}

	return nil
}

// validateRingtoneURI accepts any valid UTF-8 text, including the empty URI.
// URI syntax is left to the player.
func validateRingtoneURI(uri string) error {
	if !utf8.ValidString(uri) {
		return invalidf("ringtone URI is not valid UTF-8")
	}

	return nil
}

// validateMessage accepts any valid UTF-8 text, including the empty message.
func validateMessage(message string) error {
	if !utf8.ValidString(message) {
		return invalidf("message is not valid UTF-8")
	}

	return nil
}
