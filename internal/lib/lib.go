// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It holds small shared utilities such as page/limit pagination.
package lib
