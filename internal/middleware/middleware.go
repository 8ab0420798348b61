// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, CORS, body size limits,
// APM tracing and panic recovery.
package middleware
