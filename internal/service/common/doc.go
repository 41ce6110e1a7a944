// Package common holds helpers shared by several services.
//
// It detects the current system actor (hostname/username) so persisted
// configuration records who changed it last.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
