// Package model defines the domain types shared by every layer:
// the Listing record, its Category and the per-category rule table.
package model
