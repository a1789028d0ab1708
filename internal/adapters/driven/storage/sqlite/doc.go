// Package sqlite provides SQLite-backed implementations of the
// persistence ports. One database file holds both manual relevance
// overrides and cached meeting analyses; the wrapper types returned by
// OverrideStore and AnalysisStore share the same connection.
package sqlite
