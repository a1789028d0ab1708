package services

import (
	"path"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/logger"
)

// knownExtensions are the artifact extensions stripped during group-key
// derivation. Anything else is left in place and sanitised.
var knownExtensions = []string{".mp4", ".txt", ".md"}

var (
	// trailingToken matches a trailing artifact-role token such as
	// "_transcript" or "-recap", case-insensitively.
	trailingToken = regexp.MustCompile(`(?i)[-_](transcript|recap|summary|video)$`)

	// unsafeKeyChars matches everything outside the group-key alphabet.
	unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

	// datePattern matches the first YYYY-MM-DD or YYYY_MM_DD occurrence.
	datePattern = regexp.MustCompile(`(\d{4})[-_](\d{2})[-_](\d{2})`)
)

// ArtifactGrouper turns a flat artifact listing into logical meeting
// records keyed by filename-derived group keys.
type ArtifactGrouper struct{}

// NewArtifactGrouper creates a new grouper.
func NewArtifactGrouper() *ArtifactGrouper {
	return &ArtifactGrouper{}
}

// DetectType derives the artifact type from the filename.
// The type is never stored externally; it is re-derived on every listing.
func (g *ArtifactGrouper) DetectType(filename string) domain.ArtifactType {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".mp4") {
		return domain.ArtifactVideo
	}
	if strings.Contains(lower, "recap") || strings.Contains(lower, "summary") {
		return domain.ArtifactSummary
	}
	return domain.ArtifactTranscript
}

// GroupKey derives the meeting group key for a filename: strip a known
// extension, strip trailing role tokens, and replace everything outside
// [A-Za-z0-9_-] with underscores.
func (g *ArtifactGrouper) GroupKey(filename string) string {
	base := g.strippedBase(filename)
	return unsafeKeyChars.ReplaceAllString(base, "_")
}

// Title derives the display title: the stripped base with separators
// replaced by spaces and each word capitalised. Falls back to
// "Untitled Meeting" when nothing usable remains.
func (g *ArtifactGrouper) Title(filename string) string {
	base := g.strippedBase(filename)
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")

	words := strings.Fields(base)
	if len(words) == 0 {
		return "Untitled Meeting"
	}
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Date extracts the first YYYY[-_]MM[-_]DD occurrence normalised to
// YYYY-MM-DD. Filenames without a date default to the current date.
func (g *ArtifactGrouper) Date(filename string) string {
	m := datePattern.FindStringSubmatch(filename)
	if m == nil {
		return time.Now().Format("2006-01-02")
	}
	return m[1] + "-" + m[2] + "-" + m[3]
}

// Derive builds a RawArtifact from a blob listing entry.
func (g *ArtifactGrouper) Derive(info domain.ObjectInfo) domain.RawArtifact {
	filename := path.Base(info.Key)
	return domain.RawArtifact{
		Key:          info.Key,
		Filename:     filename,
		Type:         g.DetectType(filename),
		Size:         info.Size,
		LastModified: info.LastModified,
	}
}

// Group merges artifacts sharing a derived key into meeting records.
// Artifacts of the same type within one group overwrite earlier ones
// (last-wins); an overwrite is logged but not reported as a conflict.
func (g *ArtifactGrouper) Group(artifacts []domain.RawArtifact) map[string]*domain.MeetingRecord {
	records := make(map[string]*domain.MeetingRecord)

	for i := range artifacts {
		artifact := artifacts[i]
		key := g.GroupKey(artifact.Filename)

		record, ok := records[key]
		if !ok {
			record = &domain.MeetingRecord{
				ID:           key,
				Title:        g.Title(artifact.Filename),
				DateRecorded: g.Date(artifact.Filename),
				Category:     domain.DisplayUncategorized,
			}
			records[key] = record
		}

		switch artifact.Type {
		case domain.ArtifactVideo:
			if record.Video != nil {
				logger.Debug("Group %s: video slot overwritten by %s", key, artifact.Filename)
			}
			record.Video = &artifact
		case domain.ArtifactTranscript:
			if record.Transcript != nil {
				logger.Debug("Group %s: transcript slot overwritten by %s", key, artifact.Filename)
			}
			record.Transcript = &artifact
		case domain.ArtifactSummary:
			if record.Summary != nil {
				logger.Debug("Group %s: summary slot overwritten by %s", key, artifact.Filename)
			}
			record.Summary = &artifact
		}
	}

	return records
}

// strippedBase removes a known extension and any trailing role tokens.
func (g *ArtifactGrouper) strippedBase(filename string) string {
	base := filename
	lower := strings.ToLower(base)
	for _, ext := range knownExtensions {
		if strings.HasSuffix(lower, ext) {
			base = base[:len(base)-len(ext)]
			break
		}
	}

	for {
		stripped := trailingToken.ReplaceAllString(base, "")
		if stripped == base {
			break
		}
		base = stripped
	}

	return base
}
