// Package api is the HTTP boundary of the task service. Handlers decode
// and validate request payloads before calling the service, and every error
// leaving this package is one of the fixed Portuguese wire messages.
// Layers below this package never see HTTP.
package api
