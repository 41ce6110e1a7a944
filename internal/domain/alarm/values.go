package alarm

import (
	"context"
	"errors"

	"go.uber.org/multierr"
)

// Values is a snapshot of the properties stored at one tier.
// A nil pointer means the property is inherited from the parent tier.
// Snapshots of the global tier have every pointer set.
type Values struct {
	Range       *float64
	RingtoneURI *string
	Vibrate     *bool
	Message     *string
	Begin       *TimeOfDay
	End         *TimeOfDay
	// OwnSchedule tells whether Days is consulted. Always true for the global tier.
	OwnSchedule bool
	Days        Weekdays
}

// ErrNotPersisted is returned by a Persistence that has nothing stored yet.
var ErrNotPersisted = errors.New("no persisted values")

// Persistence loads and saves the values of one tier.
type Persistence interface {
	Load(ctx context.Context) (Values, error)
	Save(ctx context.Context, v Values) error
}

// Clone returns a deep copy of the values.
func (v Values) Clone() Values {
	return Values{
		Range:       clonePtr(v.Range),
		RingtoneURI: clonePtr(v.RingtoneURI),
		Vibrate:     clonePtr(v.Vibrate),
		Message:     clonePtr(v.Message),
		Begin:       clonePtr(v.Begin),
		End:         clonePtr(v.End),
		OwnSchedule: v.OwnSchedule,
		Days:        v.Days,
	}
}

// validate checks every present field. Present begin/end pairs must be ordered.
func (v Values) validate() error {
	var err error

	if v.Range != nil {
		err = multierr.Append(err, validateRange(*v.Range))
	}

	if v.RingtoneURI != nil {
		err = multierr.Append(err, validateRingtoneURI(*v.RingtoneURI))
	}

	if v.Message != nil {
		err = multierr.Append(err, validateMessage(*v.Message))
	}

	if v.Begin != nil {
		err = multierr.Append(err, validateBegin(*v.Begin))
	}

	if v.End != nil {
		err = multierr.Append(err, validateStoredEnd(*v.End))
	}

	if err == nil && v.Begin != nil && v.End != nil {
		err = checkOrder(*v.Begin, *v.End)
	}

	return err
}

// validateConcrete additionally requires every property to be present.
func (v Values) validateConcrete() error {
	var err error

	missing := func(present bool, name string) {
		if !present {
			err = multierr.Append(err, invalidf("%s must be set", name))
		}
	}

	missing(v.Range != nil, "range")
	missing(v.RingtoneURI != nil, "ringtone URI")
	missing(v.Vibrate != nil, "vibrate")
	missing(v.Message != nil, "message")
	missing(v.Begin != nil, "begin time")
	missing(v.End != nil, "end time")

	if err != nil {
		return err
	}

	return v.validate()
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}
