// Package service provides application-level services for managing tasks.
// It sits between the HTTP layer and the store, owning the business
// operations (create, list, get, update, complete, delete) and the
// translation of store signals into service-level errors.
package service
