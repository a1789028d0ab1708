// Package driving defines the inbound ports the core exposes to a host.
//
// The engine is a library: it carries no network listener or request
// layer of its own. A hosting application (here, the reference CLI under
// cmd/meetlens) drives it through these interfaces.
package driving
