// Package domain defines the core business entities for MeetLens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawArtifact: A stored file before grouping
//   - MeetingRecord: A logical grouping of artifacts sharing a derived key
//   - ClassificationResult: The rule-based classifier's verdict
//   - KeyMoment: A scored, timestamped transcript highlight
//   - OverrideSetting: A persisted manual relevance decision
//   - Suggestion: A scored video-to-project link candidate
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
