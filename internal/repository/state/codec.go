package state

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/alarm-map/internal/domain/alarm"
)

// Keys of the state file.
const (
	keyRange       = "range"
	keyRingtoneURI = "ringtone_uri"
	keyVibrate     = "vibrate"
	keyMessage     = "message"
	keyBegin       = "begin"
	keyEnd         = "end"
	keyDays        = "days"
	keyUpdatedAt   = "updated_at"
	keyUpdatedBy   = "updated_by"
	keyHostname    = "hostname"
	keyUsername    = "username"
)

// errMalformed is returned when a state file field has the wrong shape.
var errMalformed = errors.New("malformed field")

// toStruct converts a Snapshot into a protobuf Struct. Inherited values are omitted.
func toStruct(snapshot *Snapshot) (*structpb.Struct, error) {
	v := snapshot.Values
	fields := make(map[string]any)

	if v.Range != nil {
		fields[keyRange] = *v.Range
	}

	if v.RingtoneURI != nil {
		fields[keyRingtoneURI] = *v.RingtoneURI
	}

	if v.Vibrate != nil {
		fields[keyVibrate] = *v.Vibrate
	}

	if v.Message != nil {
		fields[keyMessage] = *v.Message
	}

	if v.Begin != nil {
		fields[keyBegin] = v.Begin.String()
	}

	if v.End != nil {
		fields[keyEnd] = v.End.String()
	}

	days := make([]any, len(v.Days))
	for i, on := range v.Days {
		days[i] = on
	}

	fields[keyDays] = days

	if snapshot.UpdatedBy != nil {
		fields[keyUpdatedBy] = map[string]any{
			keyHostname: snapshot.UpdatedBy.Hostname,
			keyUsername: snapshot.UpdatedBy.Username,
		}
	}

	message, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}

	if !snapshot.UpdatedAt.IsZero() {
		updatedAt, tsErr := timestampValue(timestamppb.New(snapshot.UpdatedAt))
		if tsErr != nil {
			return nil, fmt.Errorf("%s: %w", keyUpdatedAt, tsErr)
		}

		message.Fields[keyUpdatedAt] = updatedAt
	}

	return message, nil
}

// timestampValue embeds ts in a Struct using its protobuf JSON form.
func timestampValue(ts *timestamppb.Timestamp) (*structpb.Value, error) {
	raw, err := protojson.Marshal(ts)
	if err != nil {
		return nil, err
	}

	value := new(structpb.Value)
	if err = protojson.Unmarshal(raw, value); err != nil {
		return nil, err
	}

	return value, nil
}

// timestampFromValue is the inverse of timestampValue.
func timestampFromValue(value *structpb.Value) (*timestamppb.Timestamp, error) {
	raw, err := protojson.Marshal(value)
	if err != nil {
		return nil, err
	}

	ts := new(timestamppb.Timestamp)
	if err = protojson.Unmarshal(raw, ts); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformed, err)
	}

	return ts, nil
}

// fromStruct converts a protobuf Struct back into a Snapshot.
//
//nolint:cyclop // One branch per field.
func fromStruct(message *structpb.Struct) (*Snapshot, error) {
	var (
		fields   = message.GetFields()
		snapshot = &Snapshot{
			Values: alarm.Values{OwnSchedule: true},
		}
	)

	if f, ok := fields[keyRange]; ok {
		n, isNumber := f.GetKind().(*structpb.Value_NumberValue)
		if !isNumber {
			return nil, fmt.Errorf("%s: %w", keyRange, errMalformed)
		}

		snapshot.Values.Range = &n.NumberValue
	}

	var err error

	if snapshot.Values.RingtoneURI, err = stringField(fields, keyRingtoneURI); err != nil {
		return nil, err
	}

	if snapshot.Values.Message, err = stringField(fields, keyMessage); err != nil {
		return nil, err
	}

	if f, ok := fields[keyVibrate]; ok {
		b, isBool := f.GetKind().(*structpb.Value_BoolValue)
		if !isBool {
			return nil, fmt.Errorf("%s: %w", keyVibrate, errMalformed)
		}

		snapshot.Values.Vibrate = &b.BoolValue
	}

	if snapshot.Values.Begin, err = timeField(fields, keyBegin); err != nil {
		return nil, err
	}

	if snapshot.Values.End, err = timeField(fields, keyEnd); err != nil {
		return nil, err
	}

	if snapshot.Values.Days, err = daysField(fields); err != nil {
		return nil, err
	}

	if f, ok := fields[keyUpdatedAt]; ok {
		ts, tsErr := timestampFromValue(f)
		if tsErr != nil {
			return nil, fmt.Errorf("%s: %w", keyUpdatedAt, tsErr)
		}

		snapshot.UpdatedAt = ts.AsTime()
	}

	if f, ok := fields[keyUpdatedBy]; ok {
		actor := f.GetStructValue().GetFields()
		snapshot.UpdatedBy = &alarm.Actor{
			Hostname: actor[keyHostname].GetStringValue(),
			Username: actor[keyUsername].GetStringValue(),
		}
	}

	return snapshot, nil
}

func stringField(fields map[string]*structpb.Value, key string) (*string, error) {
	f, ok := fields[key]
	if !ok {
		//nolint:nilnil // An absent field is inherited, not an error.
		return nil, nil
	}

	s, isString := f.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return nil, fmt.Errorf("%s: %w", key, errMalformed)
	}

	return &s.StringValue, nil
}

func timeField(fields map[string]*structpb.Value, key string) (*alarm.TimeOfDay, error) {
	s, err := stringField(fields, key)
	if err != nil || s == nil {
		return nil, err
	}

	t, err := alarm.ParseTimeOfDay(*s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return &t, nil
}

// daysField reads the weekday flags. The file only ever holds the global
// tier, which always has a schedule, so the key is required.
func daysField(fields map[string]*structpb.Value) (alarm.Weekdays, error) {
	var days alarm.Weekdays

	f, ok := fields[keyDays]
	if !ok {
		return days, fmt.Errorf("%s must be set: %w", keyDays, errMalformed)
	}

	list := f.GetListValue().GetValues()
	if len(list) != len(days) {
		return days, fmt.Errorf("%s: want %d entries, got %d: %w", keyDays, len(days), len(list), errMalformed)
	}

	for i, item := range list {
		b, isBool := item.GetKind().(*structpb.Value_BoolValue)
		if !isBool {
			return days, fmt.Errorf("%s[%d]: %w", keyDays, i, errMalformed)
		}

		days[i] = b.BoolValue
	}

	return days, nil
}
