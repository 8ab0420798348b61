// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives bound
// request data from handlers, applies the listing rules, filtering,
// search and pagination, and calls the repository to read or mutate data.
package service
