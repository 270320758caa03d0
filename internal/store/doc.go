// Package store declares how the rest of the application reads and writes
// tasks. Implementations live elsewhere (internal/platform/memory); business
// code depends only on the interfaces and sentinel errors defined here.
package store
