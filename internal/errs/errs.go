// Package errs defines the error types returned to API clients.
//
// Handlers return *HTTPError values; the global error handler renders
// them as JSON so every failure has the same shape:
//
//	{"code":"NOT_FOUND","message":"Item not found","status":404,...}
package errs
