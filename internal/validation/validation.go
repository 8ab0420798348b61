// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules declared in struct
// tags (query parameters) and lets payloads run their own checks, then
// turns every failure into a 400 *errs.HTTPError the client can act on.
package validation
