package alarmmap

import (
	"time"

	"github.com/oshokin/alarm-map/internal/domain/alarm"
)

// View is the effective configuration of one tier, as printed by the CLI.
type View struct {
	Target      string   `yaml:"target"`
	Name        string   `yaml:"name,omitempty"`
	Category    string   `yaml:"category,omitempty"`
	Latitude    *float64 `yaml:"latitude,omitempty"`
	Longitude   *float64 `yaml:"longitude,omitempty"`
	Range       float64  `yaml:"range"`
	RingtoneURI string   `yaml:"ringtone"`
	Vibrate     bool     `yaml:"vibrate"`
	Message     string   `yaml:"message"`
	Window      string   `yaml:"window"`
	Days        []string `yaml:"days"`
	OwnSchedule *bool    `yaml:"own_schedule,omitempty"`
	Overrides   []string `yaml:"overrides,omitempty"`
	Warnings    []string `yaml:"warnings,omitempty"`
	UpdatedAt   string   `yaml:"updated_at,omitempty"`
	UpdatedBy   string   `yaml:"updated_by,omitempty"`
}

// CategorySummary is one line of the category listing.
type CategorySummary struct {
	ID        int      `yaml:"id"`
	Name      string   `yaml:"name"`
	Members   []int    `yaml:"members,flow"`
	Overrides []string `yaml:"overrides,omitempty,flow"`
}

// POISummary is one line of the point of interest listing.
type POISummary struct {
	ID        int      `yaml:"id"`
	Name      string   `yaml:"name"`
	Category  string   `yaml:"category"`
	Latitude  float64  `yaml:"latitude"`
	Longitude float64  `yaml:"longitude"`
	Overrides []string `yaml:"overrides,omitempty,flow"`
}

// effective resolves every property of cfg through its delegation chain.
func effective(cfg alarm.Configurable) alarm.Values {
	var days alarm.Weekdays

	for d := time.Sunday; d <= time.Saturday; d++ {
		days[d] = cfg.OnDay(d)
	}

	own := true
	if s, ok := cfg.(scheduler); ok {
		own = s.UsesOwnSchedule()
	}

	rangeMetres, ringtone, vibrate, message := cfg.Range(), cfg.RingtoneURI(), cfg.Vibrate(), cfg.Message()
	begin, end := cfg.BeginTime(), cfg.EndTime()

	return alarm.Values{
		Range:       &rangeMetres,
		RingtoneURI: &ringtone,
		Vibrate:     &vibrate,
		Message:     &message,
		Begin:       &begin,
		End:         &end,
		OwnSchedule: own,
		Days:        days,
	}
}

// newView renders cfg for target. Identity fields are filled by the caller.
func newView(target Target, cfg alarm.Configurable) *View {
	window := cfg.Window()

	view := &View{
		Target:      target.String(),
		Range:       cfg.Range(),
		RingtoneURI: cfg.RingtoneURI(),
		Vibrate:     cfg.Vibrate(),
		Message:     cfg.Message(),
		Window:      window.String(),
		Days:        dayNames(effective(cfg).Days),
	}

	if s, ok := cfg.(scheduler); ok {
		own := s.UsesOwnSchedule()
		view.OwnSchedule = &own
		view.Overrides = overridden(cfg.Values())
	}

	if !window.Valid() {
		view.Warnings = append(view.Warnings, "begin time is not before end time, the alarm never triggers")
	}

	return view
}
