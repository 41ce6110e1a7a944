package alarm

import "time"

// overrides holds the locally stored properties of a non-terminal tier and
// resolves the unset ones through parent. Category and PointOfInterest embed
// it and differ only in the parent they supply.
type overrides struct {
	parent func() Configurable

	rangeMetres Override[float64]
	ringtoneURI Override[string]
	vibrate     Override[bool]
	message     Override[string]
	begin       Override[TimeOfDay]
	end         Override[TimeOfDay]
	schedule    schedule
}

func (o *overrides) Range() float64 {
	return o.rangeMetres.Resolve(func() float64 { return o.parent().Range() })
}

func (o *overrides) RingtoneURI() string {
	return o.ringtoneURI.Resolve(func() string { return o.parent().RingtoneURI() })
}

func (o *overrides) Vibrate() bool {
	return o.vibrate.Resolve(func() bool { return o.parent().Vibrate() })
}

func (o *overrides) Message() string {
	return o.message.Resolve(func() string { return o.parent().Message() })
}

func (o *overrides) BeginTime() TimeOfDay {
	return o.begin.Resolve(func() TimeOfDay { return o.parent().BeginTime() })
}

func (o *overrides) EndTime() TimeOfDay {
	return o.end.Resolve(func() TimeOfDay { return o.parent().EndTime() })
}

func (o *overrides) BeginHour() int   { return o.BeginTime().Hour }
func (o *overrides) BeginMinute() int { return o.BeginTime().Minute }
func (o *overrides) EndHour() int     { return o.EndTime().Hour }
func (o *overrides) EndMinute() int   { return o.EndTime().Minute }

// Window returns the effective window. When only one bound is local and the
// parent has moved since, the result may be empty; see Window.Valid.
func (o *overrides) Window() Window {
	return Window{Begin: o.BeginTime(), End: o.EndTime()}
}

// UsesOwnSchedule reports whether day queries use the locally stored flags.
func (o *overrides) UsesOwnSchedule() bool {
	return o.schedule.own
}

// UseOwnSchedule switches between the local day flags and the parent's.
// The stored flags are kept either way.
func (o *overrides) UseOwnSchedule(own bool) {
	o.schedule.own = own
}

func (o *overrides) OnDay(d time.Weekday) bool {
	return o.schedule.on(d, func(d time.Weekday) bool { return o.parent().OnDay(d) })
}

func (o *overrides) OnSunday() bool    { return o.OnDay(time.Sunday) }
func (o *overrides) OnMonday() bool    { return o.OnDay(time.Monday) }
func (o *overrides) OnTuesday() bool   { return o.OnDay(time.Tuesday) }
func (o *overrides) OnWednesday() bool { return o.OnDay(time.Wednesday) }
func (o *overrides) OnThursday() bool  { return o.OnDay(time.Thursday) }
func (o *overrides) OnFriday() bool    { return o.OnDay(time.Friday) }
func (o *overrides) OnSaturday() bool  { return o.OnDay(time.Saturday) }

func (o *overrides) SetRange(r float64) error {
	if err := validateRange(r); err != nil {
		return err
	}

	o.rangeMetres.Set(r)

	return nil
}

func (o *overrides) SetRingtoneURI(uri string) error {
	if err := validateRingtoneURI(uri); err != nil {
		return err
	}

	o.ringtoneURI.Set(uri)

	return nil
}

func (o *overrides) SetVibrate(vibrate bool) {
	o.vibrate.Set(vibrate)
}

func (o *overrides) SetMessage(message string) error {
	if err := validateMessage(message); err != nil {
		return err
	}

	o.message.Set(message)

	return nil
}

// SetBeginTime validates against the effective end, which may be inherited.
func (o *overrides) SetBeginTime(hour, minute int) error {
	t := At(hour, minute)
	if err := validateBegin(t); err != nil {
		return err
	}

	if err := checkOrder(t, o.EndTime()); err != nil {
		return err
	}

	o.begin.Set(t)

	return nil
}

// SetEndTime validates against the effective begin, which may be inherited.
func (o *overrides) SetEndTime(hour, minute int) error {
	t := At(hour, minute)
	if err := validateEnd(t); err != nil {
		return err
	}

	if err := checkOrder(o.BeginTime(), t); err != nil {
		return err
	}

	o.end.Set(t)

	return nil
}

// SetWindow overrides both bounds at once.
func (o *overrides) SetWindow(begin, end TimeOfDay) error {
	if err := validateWindow(begin, end); err != nil {
		return err
	}

	o.begin.Set(begin)
	o.end.Set(end)

	return nil
}

// SetOnDay stores the flag for day d and switches to the own schedule.
func (o *overrides) SetOnDay(d time.Weekday, active bool) error {
	if err := validWeekday(d); err != nil {
		return err
	}

	o.schedule.set(d, active)

	return nil
}

func (o *overrides) SetOnSunday(active bool)    { o.schedule.set(time.Sunday, active) }
func (o *overrides) SetOnMonday(active bool)    { o.schedule.set(time.Monday, active) }
func (o *overrides) SetOnTuesday(active bool)   { o.schedule.set(time.Tuesday, active) }
func (o *overrides) SetOnWednesday(active bool) { o.schedule.set(time.Wednesday, active) }
func (o *overrides) SetOnThursday(active bool)  { o.schedule.set(time.Thursday, active) }
func (o *overrides) SetOnFriday(active bool)    { o.schedule.set(time.Friday, active) }
func (o *overrides) SetOnSaturday(active bool)  { o.schedule.set(time.Saturday, active) }

func (o *overrides) ResetRange()       { o.rangeMetres.Reset() }
func (o *overrides) ResetRingtoneURI() { o.ringtoneURI.Reset() }
func (o *overrides) ResetVibrate()     { o.vibrate.Reset() }
func (o *overrides) ResetMessage()     { o.message.Reset() }
func (o *overrides) ResetBeginTime()   { o.begin.Reset() }
func (o *overrides) ResetEndTime()     { o.end.Reset() }

func (o *overrides) ResetWindow() {
	o.ResetBeginTime()
	o.ResetEndTime()
}

// ResetDaysOfWeek is UseOwnSchedule(false).
func (o *overrides) ResetDaysOfWeek() {
	o.UseOwnSchedule(false)
}

func (o *overrides) ResetFullConfig() {
	o.ResetRange()
	o.ResetVibrate()
	o.ResetRingtoneURI()
	o.ResetMessage()

	o.ResetBeginTime()
	o.ResetEndTime()

	o.ResetDaysOfWeek()
}

// Values returns what is stored locally; inherited properties are nil.
func (o *overrides) Values() Values {
	return Values{
		Range:       o.rangeMetres.Ptr(),
		RingtoneURI: o.ringtoneURI.Ptr(),
		Vibrate:     o.vibrate.Ptr(),
		Message:     o.message.Ptr(),
		Begin:       o.begin.Ptr(),
		End:         o.end.Ptr(),
		OwnSchedule: o.schedule.own,
		Days:        o.schedule.days,
	}
}

// Apply replaces every local value with v. Only a begin/end pair that v sets
// together is checked for order; a single bound is not compared with the
// parent, since the parent may legitimately have moved since v was taken.
func (o *overrides) Apply(v Values) error {
	if err := v.validate(); err != nil {
		return err
	}

	o.rangeMetres = overrideFromPtr(v.Range)
	o.ringtoneURI = overrideFromPtr(v.RingtoneURI)
	o.vibrate = overrideFromPtr(v.Vibrate)
	o.message = overrideFromPtr(v.Message)
	o.begin = overrideFromPtr(v.Begin)
	o.end = overrideFromPtr(v.End)
	o.schedule = schedule{own: v.OwnSchedule, days: v.Days}

	return nil
}
