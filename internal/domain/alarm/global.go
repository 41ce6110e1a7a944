package alarm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Default values of the global configuration.
const (
	DefaultRange       = 50.0
	DefaultVibrate     = true
	DefaultRingtoneURI = ""
	DefaultMessage     = ""
	DefaultOnDay       = true
)

// GlobalConfig is the root tier. It never delegates: every getter returns a
// stored concrete value. One instance is shared by all categories of a
// running application and is passed to them explicitly.
type GlobalConfig struct {
	rangeMetres float64
	ringtoneURI string
	vibrate     bool
	message     string
	// begin is always before end.
	begin TimeOfDay
	end   TimeOfDay
	days  Weekdays
}

var _ Configurable = (*GlobalConfig)(nil)

// NewGlobalConfig returns a global configuration holding the defaults.
func NewGlobalConfig() *GlobalConfig {
	g := new(GlobalConfig)
	g.ResetFullConfig()

	return g
}

// Load replaces the configuration with the values held by p.
// When p has nothing stored the defaults are kept.
func (g *GlobalConfig) Load(ctx context.Context, p Persistence) error {
	v, err := p.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotPersisted) {
			g.ResetFullConfig()
			return nil
		}

		return fmt.Errorf("load global config: %w", err)
	}

	if err = g.Apply(v); err != nil {
		return fmt.Errorf("apply global config: %w", err)
	}

	return nil
}

// Save writes the current configuration to p.
func (g *GlobalConfig) Save(ctx context.Context, p Persistence) error {
	if err := p.Save(ctx, g.Values()); err != nil {
		return fmt.Errorf("save global config: %w", err)
	}

	return nil
}

func (g *GlobalConfig) Range() float64       { return g.rangeMetres }
func (g *GlobalConfig) RingtoneURI() string  { return g.ringtoneURI }
func (g *GlobalConfig) Vibrate() bool        { return g.vibrate }
func (g *GlobalConfig) Message() string      { return g.message }
func (g *GlobalConfig) BeginTime() TimeOfDay { return g.begin }
func (g *GlobalConfig) BeginHour() int       { return g.begin.Hour }
func (g *GlobalConfig) BeginMinute() int     { return g.begin.Minute }
func (g *GlobalConfig) EndTime() TimeOfDay   { return g.end }
func (g *GlobalConfig) EndHour() int         { return g.end.Hour }
func (g *GlobalConfig) EndMinute() int       { return g.end.Minute }

// Window returns the configured daily window.
func (g *GlobalConfig) Window() Window {
	return Window{Begin: g.begin, End: g.end}
}

// OnDay reports whether the alarm may trigger on day d.
func (g *GlobalConfig) OnDay(d time.Weekday) bool { return g.days.On(d) }
func (g *GlobalConfig) OnSunday() bool            { return g.days.On(time.Sunday) }
func (g *GlobalConfig) OnMonday() bool            { return g.days.On(time.Monday) }
func (g *GlobalConfig) OnTuesday() bool           { return g.days.On(time.Tuesday) }
func (g *GlobalConfig) OnWednesday() bool         { return g.days.On(time.Wednesday) }
func (g *GlobalConfig) OnThursday() bool          { return g.days.On(time.Thursday) }
func (g *GlobalConfig) OnFriday() bool            { return g.days.On(time.Friday) }
func (g *GlobalConfig) OnSaturday() bool          { return g.days.On(time.Saturday) }

// SetRange rejects negative ranges.
func (g *GlobalConfig) SetRange(r float64) error {
	if err := validateRange(r); err != nil {
		return err
	}

	g.rangeMetres = r

	return nil
}

// SetRingtoneURI stores uri. The empty URI means "ring silently".
func (g *GlobalConfig) SetRingtoneURI(uri string) error {
	if err := validateRingtoneURI(uri); err != nil {
		return err
	}

	g.ringtoneURI = uri

	return nil
}

func (g *GlobalConfig) SetVibrate(vibrate bool) {
	g.vibrate = vibrate
}

// SetMessage stores message. The empty message means "display nothing".
func (g *GlobalConfig) SetMessage(message string) error {
	if err := validateMessage(message); err != nil {
		return err
	}

	g.message = message

	return nil
}

// SetBeginTime fails with ErrReversedTimes unless the new begin is before the stored end.
func (g *GlobalConfig) SetBeginTime(hour, minute int) error {
	t := At(hour, minute)
	if err := validateBegin(t); err != nil {
		return err
	}

	if err := checkOrder(t, g.end); err != nil {
		return err
	}

	g.begin = t

	return nil
}

// SetEndTime fails with ErrReversedTimes unless the new end is after the stored begin.
func (g *GlobalConfig) SetEndTime(hour, minute int) error {
	t := At(hour, minute)
	if err := validateEnd(t); err != nil {
		return err
	}

	if err := checkOrder(g.begin, t); err != nil {
		return err
	}

	g.end = t

	return nil
}

// SetWindow replaces both bounds at once.
func (g *GlobalConfig) SetWindow(begin, end TimeOfDay) error {
	if err := validateWindow(begin, end); err != nil {
		return err
	}

	g.begin, g.end = begin, end

	return nil
}

// SetOnDay enables or disables day d.
func (g *GlobalConfig) SetOnDay(d time.Weekday, active bool) error {
	if err := validWeekday(d); err != nil {
		return err
	}

	g.days[d] = active

	return nil
}

func (g *GlobalConfig) SetOnSunday(active bool)    { g.days[time.Sunday] = active }
func (g *GlobalConfig) SetOnMonday(active bool)    { g.days[time.Monday] = active }
func (g *GlobalConfig) SetOnTuesday(active bool)   { g.days[time.Tuesday] = active }
func (g *GlobalConfig) SetOnWednesday(active bool) { g.days[time.Wednesday] = active }
func (g *GlobalConfig) SetOnThursday(active bool)  { g.days[time.Thursday] = active }
func (g *GlobalConfig) SetOnFriday(active bool)    { g.days[time.Friday] = active }
func (g *GlobalConfig) SetOnSaturday(active bool)  { g.days[time.Saturday] = active }

func (g *GlobalConfig) ResetRange()       { g.rangeMetres = DefaultRange }
func (g *GlobalConfig) ResetRingtoneURI() { g.ringtoneURI = DefaultRingtoneURI }
func (g *GlobalConfig) ResetVibrate()     { g.vibrate = DefaultVibrate }
func (g *GlobalConfig) ResetMessage()     { g.message = DefaultMessage }

// ResetBeginTime restores 00:00, which precedes any legal end.
func (g *GlobalConfig) ResetBeginTime() { g.begin = StartOfDay }

// ResetEndTime restores 23:60, which follows any legal begin.
func (g *GlobalConfig) ResetEndTime() { g.end = EndOfDay }

// ResetWindow restores the whole day.
func (g *GlobalConfig) ResetWindow() {
	g.ResetBeginTime()
	g.ResetEndTime()
}

// ResetDaysOfWeek enables every day.
func (g *GlobalConfig) ResetDaysOfWeek() {
	for d := range g.days {
		g.days[d] = DefaultOnDay
	}
}

// ResetFullConfig restores every default.
func (g *GlobalConfig) ResetFullConfig() {
	g.ResetRange()
	g.ResetVibrate()
	g.ResetRingtoneURI()
	g.ResetMessage()

	g.ResetBeginTime()
	g.ResetEndTime()
	g.ResetDaysOfWeek()
}

// Values returns a fully populated snapshot.
func (g *GlobalConfig) Values() Values {
	var (
		rangeMetres = g.rangeMetres
		ringtoneURI = g.ringtoneURI
		vibrate     = g.vibrate
		message     = g.message
		begin       = g.begin
		end         = g.end
	)

	return Values{
		Range:       &rangeMetres,
		RingtoneURI: &ringtoneURI,
		Vibrate:     &vibrate,
		Message:     &message,
		Begin:       &begin,
		End:         &end,
		OwnSchedule: true,
		Days:        g.days,
	}
}

// Apply requires every property of v to be set. OwnSchedule is ignored.
func (g *GlobalConfig) Apply(v Values) error {
	if err := v.validateConcrete(); err != nil {
		return err
	}

	g.rangeMetres = *v.Range
	g.ringtoneURI = *v.RingtoneURI
	g.vibrate = *v.Vibrate
	g.message = *v.Message
	g.begin = *v.Begin
	g.end = *v.End
	g.days = v.Days

	return nil
}

// validateWindow checks both bounds and their order.
func validateWindow(begin, end TimeOfDay) error {
	if err := validateBegin(begin); err != nil {
		return err
	}

	if err := validateEnd(end); err != nil {
		return err
	}

	return checkOrder(begin, end)
}
