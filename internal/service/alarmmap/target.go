package alarmmap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownTarget is returned when a target string cannot be parsed.
var ErrUnknownTarget = errors.New("unknown target")

// TargetKind tells which tier a target addresses.
type TargetKind int

// Target kinds.
const (
	TargetGlobal TargetKind = iota
	TargetCategory
	TargetPOI
)

const (
	globalTarget   = "global"
	categoryPrefix = "category:"
	poiPrefix      = "poi:"
)

// Target addresses one configuration tier.
type Target struct {
	Kind TargetKind
	// Name is the category name for TargetCategory.
	Name string
	// ID is the point of interest id for TargetPOI.
	ID int
}

// ParseTarget parses "global", "category:<name>" or "poi:<id>".
func ParseTarget(s string) (Target, error) {
	s = strings.TrimSpace(s)

	switch {
	case strings.EqualFold(s, globalTarget):
		return Target{Kind: TargetGlobal}, nil
	case strings.HasPrefix(s, categoryPrefix):
		name := strings.TrimSpace(strings.TrimPrefix(s, categoryPrefix))
		if name == "" {
			return Target{}, fmt.Errorf("%w %q: empty category name", ErrUnknownTarget, s)
		}

		return Target{Kind: TargetCategory, Name: name}, nil
	case strings.HasPrefix(s, poiPrefix):
		id, err := strconv.Atoi(strings.TrimPrefix(s, poiPrefix))
		if err != nil {
			return Target{}, fmt.Errorf("%w %q: malformed point of interest id", ErrUnknownTarget, s)
		}

		return Target{Kind: TargetPOI, ID: id}, nil
	default:
		return Target{}, fmt.Errorf("%w %q", ErrUnknownTarget, s)
	}
}

// String formats the target the way ParseTarget accepts it.
func (t Target) String() string {
	switch t.Kind {
	case TargetCategory:
		return categoryPrefix + t.Name
	case TargetPOI:
		return poiPrefix + strconv.Itoa(t.ID)
	default:
		return globalTarget
	}
}
