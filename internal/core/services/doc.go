// Package services implements the meeting intelligence core: artifact
// grouping, deterministic transcript classification, key-moment
// extraction, override-aware caching, and video-to-project relevance
// scoring. Services depend only on domain types and driven ports and are
// constructed once at application start.
package services
