// Package alarm contains the alarm configuration model for points of interest.
//
// Configuration is resolved through three tiers: a PointOfInterest delegates
// every unset property to its Category, and a Category delegates to the
// GlobalConfig, which always holds concrete values. All tiers implement
// Configurable, so validation rules live in one place and only the parent
// relationship differs between them.
//
// The package performs no I/O and no locking. Callers that share an entity
// between goroutines must serialise access themselves.
package alarm
