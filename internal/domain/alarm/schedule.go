package alarm

import "time"

const daysPerWeek = 7

// Weekdays holds one flag per day of the week, indexed by time.Weekday.
// A true flag means the alarm may trigger on that day.
type Weekdays [daysPerWeek]bool

// EveryDay returns a Weekdays value with every day enabled.
func EveryDay() Weekdays {
	return Weekdays{true, true, true, true, true, true, true}
}

// On reports whether day d is enabled. Out of range days are never enabled.
func (w Weekdays) On(d time.Weekday) bool {
	if d < time.Sunday || d > time.Saturday {
		return false
	}

	return w[d]
}

// Active returns the enabled days in week order.
func (w Weekdays) Active() []time.Weekday {
	days := make([]time.Weekday, 0, daysPerWeek)

	for d := time.Sunday; d <= time.Saturday; d++ {
		if w[d] {
			days = append(days, d)
		}
	}

	return days
}

// validWeekday checks that d names a real day of the week.
func validWeekday(d time.Weekday) error {
	if d < time.Sunday || d > time.Saturday {
		return invalidf("weekday %d is out of range", int(d))
	}

	return nil
}

// schedule is the day-of-week subsystem of an overridable tier.
//
// It has two states: delegating (own == false), where day queries go to the
// parent tier, and own schedule (own == true), where the stored flags answer.
// UseOwnSchedule switches explicitly; setting any single day forces the
// own schedule state. Leaving the own schedule state keeps the stored flags.
type schedule struct {
	own  bool
	days Weekdays
}

// on resolves day d against the parent when delegating.
func (s *schedule) on(d time.Weekday, parent func(time.Weekday) bool) bool {
	if s.own {
		return s.days.On(d)
	}

	return parent(d)
}

// set stores a single day flag and enters the own schedule state.
func (s *schedule) set(d time.Weekday, active bool) {
	s.own = true
	s.days[d] = active
}
