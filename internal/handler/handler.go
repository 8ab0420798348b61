// Package handler is the first layer: the entry point for business logic
// after the router.
//
// It binds requests, validates input using the validation package, and
// calls the service layer. It is the interface between the HTTP request
// and the core business logic.
package handler
