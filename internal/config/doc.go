// Package config defines the settings of the alarm-map binary and provides
// helpers to load, validate and save them in YAML format.
//
// Settings name the global state file, the catalog database and the log
// level. Environment variables prefixed with ALARM_MAP_ override the file.
package config
