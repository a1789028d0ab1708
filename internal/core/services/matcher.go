package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

// Factor weights for the composite score. The five sub-scores are never
// averaged: each contributes its weighted value to the raw sum, which is
// normalised by the total weight onto the 0-10 scale and clamped.
const (
	weightTech       = 3.0
	weightTopic      = 2.5
	weightKeyword    = 2.0
	weightComplexity = 1.5
	weightType       = 1.0
	totalWeight      = weightTech + weightTopic + weightKeyword + weightComplexity + weightType
)

// techVocabulary are the technology terms recognised in video text.
var techVocabulary = []string{
	"go", "golang", "python", "typescript", "javascript", "rust", "java",
	"react", "node", "kubernetes", "docker", "terraform",
	"postgres", "postgresql", "redis", "kafka", "sqlite",
	"graphql", "grpc", "rest", "aws", "gcp",
	"microservices", "api", "database",
}

// videoTypeCategories maps a video type to the project categories it
// naturally aligns with; alignment is worth five topic points.
var videoTypeCategories = map[string][]string{
	"architecture": {"architecture", "systems"},
	"technical":    {"ai", "systems", "architecture"},
	"leadership":   {"leadership", "systems"},
	"mentoring":    {"leadership", "systems"},
}

// typeAffinity is the fixed (video type, project category) lookup for
// the type factor. Pairs without a rule score the default.
var typeAffinity = map[string]map[string]float64{
	"architecture": {"architecture": 8, "systems": 7, "ai": 5},
	"technical":    {"ai": 7, "systems": 7, "architecture": 6},
	"leadership":   {"leadership": 8, "systems": 5},
	"mentoring":    {"leadership": 7, "systems": 5},
}

// defaultTypeAffinity applies when no lookup rule matches.
const defaultTypeAffinity = 3

// ProjectVideoMatcher computes multi-factor relevance scores linking
// videos to portfolio project entries. Scoring is pure and deterministic;
// the matcher holds no mutable state.
type ProjectVideoMatcher struct{}

// NewProjectVideoMatcher creates a new matcher.
func NewProjectVideoMatcher() *ProjectVideoMatcher {
	return &ProjectVideoMatcher{}
}

// Score computes the composite suggestion for one video/project pair.
// The returned score is always within [1, 10], whatever the inputs.
func (m *ProjectVideoMatcher) Score(video domain.VideoEntity, project domain.ProjectEntity) domain.Suggestion {
	videoText := strings.ToLower(videoFullText(video))
	projectText := strings.ToLower(projectFullText(project))
	videoKeywords := extractTechKeywords(videoText)

	var reasons []string

	tech, matched := m.techScore(videoKeywords, project)
	if len(matched) > 0 {
		reasons = append(reasons, "shared technologies: "+strings.Join(matched, ", "))
	}

	topic, aligned := m.topicScore(video, project, videoKeywords)
	if aligned {
		reasons = append(reasons, "video type aligns with project category")
	}

	keyword, shared := m.keywordScore(videoText, projectText)
	if shared > 0 {
		reasons = append(reasons, fmt.Sprintf("%d shared domain keywords", shared))
	}

	complexity := m.complexityScore(video, project)
	if complexity >= 8 {
		reasons = append(reasons, "comparable complexity")
	}

	typeScore := m.typeScore(video, project)
	if typeScore > defaultTypeAffinity {
		reasons = append(reasons, "link type affinity")
	}

	raw := tech*weightTech + topic*weightTopic + keyword*weightKeyword +
		complexity*weightComplexity + typeScore*weightType
	score := clampScore(raw / totalWeight)

	return domain.Suggestion{
		ID:         uuid.NewString(),
		VideoID:    video.ID,
		ProjectID:  project.ID,
		Score:      score,
		LinkType:   m.linkType(video, score),
		Confidence: m.confidenceBucket(score, len(reasons)),
		Reasons:    reasons,
	}
}

// techScore awards two points per project tech-stack term fuzzily
// overlapping an extracted video keyword, plus a three-point bonus when
// the project's primary language exactly equals an extracted keyword.
// Capped at ten.
func (m *ProjectVideoMatcher) techScore(videoKeywords []string, project domain.ProjectEntity) (float64, []string) {
	var score float64
	var matched []string

	for _, term := range project.TechStack {
		lowered := strings.ToLower(strings.TrimSpace(term))
		if lowered == "" {
			continue
		}
		for _, keyword := range videoKeywords {
			if fuzzyOverlap(lowered, keyword) {
				score += 2
				matched = append(matched, term)
				break
			}
		}
	}

	language := strings.ToLower(strings.TrimSpace(project.Language))
	if language != "" {
		for _, keyword := range videoKeywords {
			if keyword == language {
				score += 3
				break
			}
		}
	}

	if score > 10 {
		score = 10
	}
	return score, matched
}

// topicScore awards five points when the video type maps to the project
// category, plus one per project topic fuzzily overlapping a video
// keyword. Capped at ten.
func (m *ProjectVideoMatcher) topicScore(
	video domain.VideoEntity, project domain.ProjectEntity, videoKeywords []string,
) (float64, bool) {
	var score float64
	aligned := false

	category := strings.ToLower(project.Category)
	for _, c := range videoTypeCategories[strings.ToLower(video.Type)] {
		if c == category {
			score += 5
			aligned = true
			break
		}
	}

	for _, topic := range project.Topics {
		lowered := strings.ToLower(strings.TrimSpace(topic))
		if lowered == "" {
			continue
		}
		for _, keyword := range videoKeywords {
			if fuzzyOverlap(lowered, keyword) {
				score++
				break
			}
		}
	}

	if score > 10 {
		score = 10
	}
	return score, aligned
}

// keywordScore awards two points per important-vocabulary term present
// in both texts, with a two-point bonus at three or more shared terms.
// Capped at ten. Returns the shared-term count for reason reporting.
func (m *ProjectVideoMatcher) keywordScore(videoText, projectText string) (float64, int) {
	shared := 0
	for _, keyword := range importantKeywords {
		if strings.Contains(videoText, keyword) && strings.Contains(projectText, keyword) {
			shared++
		}
	}

	score := float64(shared * 2)
	if shared >= 3 {
		score += 2
	}
	if score > 10 {
		score = 10
	}
	return score, shared
}

// complexityScore compares derived complexity estimates: close estimates
// score 8, a gap of two scores 5, anything wider scores 2.
func (m *ProjectVideoMatcher) complexityScore(video domain.VideoEntity, project domain.ProjectEntity) float64 {
	projectComplexity := 5
	stackLen := len(project.TechStack)
	if stackLen > 3 {
		stackLen = 3
	}
	projectComplexity += stackLen
	if project.Stars > 10 {
		projectComplexity++
	}
	if project.Stars > 50 {
		projectComplexity++
	}
	if !project.LastUpdated.IsZero() && time.Since(project.LastUpdated) < 30*24*time.Hour {
		projectComplexity++
	}

	videoComplexity := 5
	switch strings.ToLower(video.Type) {
	case "architecture":
		videoComplexity += 2
	case "technical":
		videoComplexity++
	}
	if len(video.KeyMoments) > 3 {
		videoComplexity++
	}
	if len(video.Participants) > 2 {
		videoComplexity++
	}

	diff := projectComplexity - videoComplexity
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 1:
		return 8
	case diff == 2:
		return 5
	default:
		return 2
	}
}

// typeScore looks up the fixed (video type, project category) affinity.
func (m *ProjectVideoMatcher) typeScore(video domain.VideoEntity, project domain.ProjectEntity) float64 {
	if rules, ok := typeAffinity[strings.ToLower(video.Type)]; ok {
		if score, ok := rules[strings.ToLower(project.Category)]; ok {
			return score
		}
	}
	return defaultTypeAffinity
}

// linkType picks the suggested association kind; the first matching rule
// wins.
func (m *ProjectVideoMatcher) linkType(video domain.VideoEntity, score float64) domain.LinkType {
	videoType := strings.ToLower(video.Type)
	switch {
	case videoType == "architecture" || strings.Contains(strings.ToLower(video.Title), "architecture"):
		return domain.LinkArchitectureReview
	case videoType == "technical" || score >= 8:
		return domain.LinkTechnicalDiscussion
	case videoType == "mentoring":
		return domain.LinkMentoringSession
	default:
		return domain.LinkPlanning
	}
}

// confidenceBucket maps a score and its supporting reason count onto a
// coarse reliability tier.
func (m *ProjectVideoMatcher) confidenceBucket(score float64, reasons int) domain.ConfidenceBucket {
	switch {
	case score >= 8 && reasons >= 3:
		return domain.ConfidenceHigh
	case score >= 6 && reasons >= 2:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// videoFullText concatenates the text the matcher considers for a video.
func videoFullText(video domain.VideoEntity) string {
	parts := []string{video.Title, video.Description}
	for _, moment := range video.KeyMoments {
		parts = append(parts, moment.Description)
	}
	return strings.Join(parts, " ")
}

// projectFullText concatenates the text the matcher considers for a project.
func projectFullText(project domain.ProjectEntity) string {
	parts := []string{project.Name, project.Description, project.Category, project.Language}
	parts = append(parts, project.TechStack...)
	parts = append(parts, project.Topics...)
	return strings.Join(parts, " ")
}

// extractTechKeywords returns the vocabulary terms present in the text,
// sorted for deterministic downstream iteration.
func extractTechKeywords(lowerText string) []string {
	var keywords []string
	for _, term := range techVocabulary {
		if containsWord(lowerText, term) {
			keywords = append(keywords, term)
		}
	}
	sort.Strings(keywords)
	return keywords
}

// containsWord reports whether text contains term bounded by
// non-alphanumeric characters, so "go" does not match "google".
func containsWord(text, term string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], term)
		if pos < 0 {
			return false
		}
		start := idx + pos
		end := start + len(term)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// fuzzyOverlap reports substring containment in either direction.
func fuzzyOverlap(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// clampScore rounds to one decimal and clamps to [1, 10].
func clampScore(score float64) float64 {
	score = math.Round(score*10) / 10
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
