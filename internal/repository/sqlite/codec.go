package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oshokin/alarm-map/internal/domain/alarm"
)

// errMalformed is returned when a stored column cannot be decoded.
var errMalformed = errors.New("malformed catalog row")

// overrideRow holds the nullable override columns of one row during a scan.
type overrideRow struct {
	rangeMetres sql.NullFloat64
	ringtoneURI sql.NullString
	vibrate     sql.NullBool
	message     sql.NullString
	begin       sql.NullString
	end         sql.NullString
	ownSchedule bool
	days        string
}

// targets returns scan destinations in column order.
func (r *overrideRow) targets() []any {
	return []any{
		&r.rangeMetres, &r.ringtoneURI, &r.vibrate, &r.message,
		&r.begin, &r.end, &r.ownSchedule, &r.days,
	}
}

func (r *overrideRow) values() (alarm.Values, error) {
	v := alarm.Values{OwnSchedule: r.ownSchedule}

	if r.rangeMetres.Valid {
		v.Range = &r.rangeMetres.Float64
	}

	if r.ringtoneURI.Valid {
		v.RingtoneURI = &r.ringtoneURI.String
	}

	if r.vibrate.Valid {
		v.Vibrate = &r.vibrate.Bool
	}

	if r.message.Valid {
		v.Message = &r.message.String
	}

	var err error

	if v.Begin, err = decodeTime(r.begin, "begin_time"); err != nil {
		return alarm.Values{}, err
	}

	if v.End, err = decodeTime(r.end, "end_time"); err != nil {
		return alarm.Values{}, err
	}

	if v.Days, err = decodeDays(r.days); err != nil {
		return alarm.Values{}, err
	}

	return v, nil
}

func decodeTime(s sql.NullString, column string) (*alarm.TimeOfDay, error) {
	if !s.Valid {
		return nil, nil //nolint:nilnil // NULL is a legitimate inherited value.
	}

	t, err := alarm.ParseTimeOfDay(s.String)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errMalformed, column, err)
	}

	return &t, nil
}

// encodeArgs returns the override columns of v in insertion order.
func encodeArgs(v alarm.Values) []any {
	return []any{
		nullable(v.Range), nullable(v.RingtoneURI), nullable(v.Vibrate), nullable(v.Message),
		encodeTime(v.Begin), encodeTime(v.End),
		v.OwnSchedule, encodeDays(v.Days),
	}
}

// nullable turns an inherited (nil) value into SQL NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}

func encodeTime(t *alarm.TimeOfDay) any {
	if t == nil {
		return nil
	}

	return t.String()
}

// encodeDays renders the weekday flags Sunday first, e.g. "0111110".
func encodeDays(days alarm.Weekdays) string {
	var b strings.Builder

	for _, on := range days {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

func decodeDays(s string) (alarm.Weekdays, error) {
	var days alarm.Weekdays

	if len(s) != len(days) {
		return days, fmt.Errorf("%w: days %q must have %d flags", errMalformed, s, len(days))
	}

	for i := range len(days) {
		switch s[i] {
		case '1':
			days[time.Weekday(i)] = true
		case '0':
		default:
			return days, fmt.Errorf("%w: days %q may only contain 0 and 1", errMalformed, s)
		}
	}

	return days, nil
}
