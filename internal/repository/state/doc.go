// Package state implements persistence for the global alarm configuration.
//
// The FileRepository stores a Snapshot (the global Values plus who saved it
// and when) as protobuf JSON on disk. It satisfies alarm.Persistence, so
// GlobalConfig.Load and GlobalConfig.Save can use it directly.
package state
