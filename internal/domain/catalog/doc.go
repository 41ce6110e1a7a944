// Package catalog keeps the categories and points of interest of one
// application in memory and resolves categories for points of interest.
//
// The Catalog is the collaborator that owns category membership: adding a
// point appends it to its category's member list, and a category with
// members cannot be removed, so every point always resolves.
package catalog
