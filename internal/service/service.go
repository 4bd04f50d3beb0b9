// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives parsed request data from the handler, validates it,
// performs the business operation, and calls repository methods
// to read or change the stored records.
package service
