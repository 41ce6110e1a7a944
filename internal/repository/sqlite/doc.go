// Package sqlite stores the catalog of categories and points of interest
// in a single SQLite database file.
//
// Each row carries the identity of its tier plus the locally overridden
// alarm properties; NULL columns mean "inherited". The whole catalog is
// loaded at startup and replaced in one transaction on save.
package sqlite
