// Package domain holds the task entity and the rules it must satisfy.
// Nothing here imports infrastructure or delivery code; the rest of the
// application depends on this package, never the other way around.
package domain
