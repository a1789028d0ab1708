package domain

import "time"

// ArtifactType identifies the kind of stored meeting artifact.
type ArtifactType string

const (
	// ArtifactVideo is a meeting recording (e.g. an .mp4 file).
	ArtifactVideo ArtifactType = "video"

	// ArtifactTranscript is a plain-text transcript of the meeting.
	ArtifactTranscript ArtifactType = "transcript"

	// ArtifactSummary is a written recap of the meeting.
	ArtifactSummary ArtifactType = "summary"
)

// Valid reports whether the artifact type is a known value.
func (t ArtifactType) Valid() bool {
	switch t {
	case ArtifactVideo, ArtifactTranscript, ArtifactSummary:
		return true
	}
	return false
}

// RawArtifact is a single stored file before grouping.
// The type is derived from the filename, never stored externally.
type RawArtifact struct {
	// Key is the blob storage key.
	Key string

	// Filename is the base name of the stored object.
	Filename string

	// Type is the artifact kind derived from extension and filename keywords.
	Type ArtifactType

	// Size is the object size in bytes.
	Size int64

	// LastModified is the storage-reported modification time.
	LastModified time.Time
}

// ObjectInfo describes a stored object as reported by a blob listing.
type ObjectInfo struct {
	// Key is the blob storage key.
	Key string

	// Size is the object size in bytes.
	Size int64

	// LastModified is the storage-reported modification time.
	LastModified time.Time
}
