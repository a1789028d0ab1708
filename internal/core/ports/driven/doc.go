// Package driven defines the outbound ports the core consumes.
//
// Driven ports are narrow contracts over infrastructure the engine needs
// but does not implement: blob storage, the override store, and the
// analysis cache store. Adapters under internal/adapters/driven satisfy
// these interfaces; the core never imports an adapter.
package driven
