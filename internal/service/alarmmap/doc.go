// Package alarmmap wires the alarm configuration tiers to their storage.
//
// A Service is opened once per process: it loads the settings file, the
// global configuration snapshot and the SQLite catalog, serves reads and
// edits addressed by target ("global", "category:<name>", "poi:<id>"), and
// writes back whatever changed when it is closed.
package alarmmap
