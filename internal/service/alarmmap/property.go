package alarmmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oshokin/alarm-map/internal/domain/alarm"
)

var (
	// ErrUnknownProperty is returned for property names the service does not know.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrUnsupportedProperty is returned when a tier cannot take the operation.
	ErrUnsupportedProperty = errors.New("unsupported property")
)

// Property names accepted by Set and Reset.
const (
	PropertyAll      = "all"
	PropertyRange    = "range"
	PropertyRingtone = "ringtone"
	PropertyVibrate  = "vibrate"
	PropertyMessage  = "message"
	PropertyBegin    = "begin"
	PropertyEnd      = "end"
	PropertyWindow   = "window"
	PropertySchedule = "schedule"
	PropertyDays     = "days"
)

// scheduler is implemented by the tiers that can delegate their schedule.
type scheduler interface {
	UsesOwnSchedule() bool
	UseOwnSchedule(own bool)
}

// setProperty parses value and stores it at cfg.
func setProperty(cfg alarm.Configurable, property, value string) error {
	property = strings.ToLower(strings.TrimSpace(property))

	if day, ok := parseWeekday(property); ok {
		active, err := parseBool(value)
		if err != nil {
			return err
		}

		return cfg.SetOnDay(day, active)
	}

	switch property {
	case PropertyRange:
		r, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%w: range %q is not a number", alarm.ErrInvalidArgument, value)
		}

		return cfg.SetRange(r)
	case PropertyRingtone:
		return cfg.SetRingtoneURI(value)
	case PropertyVibrate:
		vibrate, err := parseBool(value)
		if err != nil {
			return err
		}

		cfg.SetVibrate(vibrate)

		return nil
	case PropertyMessage:
		return cfg.SetMessage(value)
	case PropertyBegin:
		t, err := alarm.ParseTimeOfDay(value)
		if err != nil {
			return err
		}

		return cfg.SetBeginTime(t.Hour, t.Minute)
	case PropertyEnd:
		t, err := alarm.ParseTimeOfDay(value)
		if err != nil {
			return err
		}

		return cfg.SetEndTime(t.Hour, t.Minute)
	case PropertyWindow:
		w, err := alarm.ParseWindow(value)
		if err != nil {
			return err
		}

		return cfg.SetWindow(w.Begin, w.End)
	case PropertySchedule:
		return setSchedule(cfg, value)
	case PropertyDays:
		days, err := parseDays(value)
		if err != nil {
			return err
		}

		for d := time.Sunday; d <= time.Saturday; d++ {
			if err = cfg.SetOnDay(d, days.On(d)); err != nil {
				return err
			}
		}

		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownProperty, property)
	}
}

// setSchedule switches a delegating tier between "own" and "inherit".
func setSchedule(cfg alarm.Configurable, value string) error {
	s, ok := cfg.(scheduler)
	if !ok {
		return fmt.Errorf("%w: the global configuration always uses its own schedule", ErrUnsupportedProperty)
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "own":
		s.UseOwnSchedule(true)
	case "inherit":
		s.UseOwnSchedule(false)
	default:
		own, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%w: schedule must be own or inherit", alarm.ErrInvalidArgument)
		}

		s.UseOwnSchedule(own)
	}

	return nil
}

// resetProperty clears the local value of property at cfg.
func resetProperty(cfg alarm.Configurable, property string) error {
	property = strings.ToLower(strings.TrimSpace(property))

	if _, ok := parseWeekday(property); ok {
		return fmt.Errorf("%w: single days can't be reset, reset %s instead", ErrUnsupportedProperty, PropertyDays)
	}

	switch property {
	case PropertyAll, "":
		cfg.ResetFullConfig()
	case PropertyRange:
		cfg.ResetRange()
	case PropertyRingtone:
		cfg.ResetRingtoneURI()
	case PropertyVibrate:
		cfg.ResetVibrate()
	case PropertyMessage:
		cfg.ResetMessage()
	case PropertyBegin:
		cfg.ResetBeginTime()
	case PropertyEnd:
		cfg.ResetEndTime()
	case PropertyWindow:
		cfg.ResetWindow()
	case PropertySchedule, PropertyDays:
		cfg.ResetDaysOfWeek()
	default:
		return fmt.Errorf("%w %q", ErrUnknownProperty, property)
	}

	return nil
}

// overridden lists the properties v stores locally.
func overridden(v alarm.Values) []string {
	var names []string

	add := func(set bool, name string) {
		if set {
			names = append(names, name)
		}
	}

	add(v.Range != nil, PropertyRange)
	add(v.RingtoneURI != nil, PropertyRingtone)
	add(v.Vibrate != nil, PropertyVibrate)
	add(v.Message != nil, PropertyMessage)
	add(v.Begin != nil, PropertyBegin)
	add(v.End != nil, PropertyEnd)
	add(v.OwnSchedule, PropertyDays)

	return names
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}

	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", alarm.ErrInvalidArgument, s)
	}

	return b, nil
}

// parseWeekday accepts full English day names and their three-letter forms.
func parseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 3 {
		return 0, false
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, true
		}
	}

	return 0, false
}

// parseDays parses a comma separated list of days, "all" or "none".
func parseDays(s string) (alarm.Weekdays, error) {
	var days alarm.Weekdays

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return alarm.EveryDay(), nil
	case "none", "":
		return days, nil
	}

	for part := range strings.SplitSeq(s, ",") {
		d, ok := parseWeekday(part)
		if !ok {
			return days, fmt.Errorf("%w: %q is not a day of the week", alarm.ErrInvalidArgument, strings.TrimSpace(part))
		}

		days[d] = true
	}

	return days, nil
}

// dayNames lists the enabled days in lower case, Sunday first.
func dayNames(days alarm.Weekdays) []string {
	active := days.Active()
	names := make([]string, 0, len(active))

	for _, d := range active {
		names = append(names, strings.ToLower(d.String()))
	}

	return names
}
