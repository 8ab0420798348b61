// Package repository owns the listing data.
//
// Listings live in process memory only: one ordered sequence plus a
// monotonic id counter, both reachable solely through repository methods.
// Everything is lost on restart.
package repository
