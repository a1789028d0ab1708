package services

import (
	"regexp"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

// The classifier and extractor are driven entirely by the declarative
// tables in this file. Rules are independently testable and swappable
// without touching control flow.

// skipPatterns match administrative or social content. The skip gate is
// checked before any topical scoring and is authoritative: one match
// classifies the transcript as skip regardless of technical keyword
// density.
var skipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bstand-?up\b`),
	regexp.MustCompile(`(?i)\bdaily sync\b`),
	regexp.MustCompile(`(?i)\balignment meeting\b`),
	regexp.MustCompile(`(?i)\bhuman resources\b`),
	regexp.MustCompile(`(?i)\bhr\b`),
	regexp.MustCompile(`(?i)\bbudget\b`),
	regexp.MustCompile(`(?i)\bbirthday\b`),
	regexp.MustCompile(`(?i)\bhappy hour\b`),
	regexp.MustCompile(`(?i)\bteam lunch\b`),
	regexp.MustCompile(`(?i)\bsocial event\b`),
	regexp.MustCompile(`(?i)\bvacation\b`),
	regexp.MustCompile(`(?i)\btime off\b`),
	regexp.MustCompile(`(?i)\bpayroll\b`),
}

// CategoryRule binds a category to the patterns that score it.
type CategoryRule struct {
	// Category is the category this rule scores.
	Category domain.Category

	// Patterns are counted across the full text; every match adds one
	// point to the category's score.
	Patterns []*regexp.Regexp
}

// categoryRules is the fixed-order scoring table. Order is load-bearing:
// ties break toward the earliest entry.
var categoryRules = []CategoryRule{
	{
		Category: domain.CategoryArchitectureReview,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\barchitecture\b`),
			regexp.MustCompile(`(?i)\bmicroservices?\b`),
			regexp.MustCompile(`(?i)\bsystem design\b`),
			regexp.MustCompile(`(?i)\bscalab\w*`),
			regexp.MustCompile(`(?i)\bdistributed systems?\b`),
			regexp.MustCompile(`(?i)\binfrastructure\b`),
			regexp.MustCompile(`(?i)\bapi design\b`),
			regexp.MustCompile(`(?i)\bevent[- ]driven\b`),
			regexp.MustCompile(`(?i)\bload balanc\w*`),
		},
	},
	{
		Category: domain.CategoryTechnicalDiscussion,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bimplementation\b`),
			regexp.MustCompile(`(?i)\bdebug\w*`),
			regexp.MustCompile(`(?i)\balgorithm\w*`),
			regexp.MustCompile(`(?i)\bperformance\b`),
			regexp.MustCompile(`(?i)\brefactor\w*`),
			regexp.MustCompile(`(?i)\bframework\b`),
			regexp.MustCompile(`(?i)\bdeployment\b`),
			regexp.MustCompile(`(?i)\boptimi[sz]\w*`),
			regexp.MustCompile(`(?i)\bmemory leak\b`),
		},
	},
	{
		Category: domain.CategoryMentoringSession,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bmentor\w*`),
			regexp.MustCompile(`(?i)\blet me show you\b`),
			regexp.MustCompile(`(?i)\bbest practices?\b`),
			regexp.MustCompile(`(?i)\bwalk you through\b`),
			regexp.MustCompile(`(?i)\bcareer\b`),
			regexp.MustCompile(`(?i)\bguidance\b`),
			regexp.MustCompile(`(?i)\blearning path\b`),
			regexp.MustCompile(`(?i)\bpair programming\b`),
		},
	},
	{
		Category: domain.CategoryLeadershipMoment,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\broadmap\b`),
			regexp.MustCompile(`(?i)\bstakeholders?\b`),
			regexp.MustCompile(`(?i)\bprioriti[sz]\w*`),
			regexp.MustCompile(`(?i)\bstrategy\b`),
			regexp.MustCompile(`(?i)\btrade-?offs?\b`),
			regexp.MustCompile(`(?i)\bdelegat\w*`),
			regexp.MustCompile(`(?i)\bvision\b`),
			regexp.MustCompile(`(?i)\bdirection\b`),
		},
	},
	{
		Category: domain.CategoryCodeReview,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bpull request\b`),
			regexp.MustCompile(`(?i)\bcode review\b`),
			regexp.MustCompile(`(?i)\bmerge\b`),
			regexp.MustCompile(`(?i)\blgtm\b`),
			regexp.MustCompile(`(?i)\bcode quality\b`),
			regexp.MustCompile(`(?i)\bunit tests?\b`),
			regexp.MustCompile(`(?i)\btest coverage\b`),
			regexp.MustCompile(`(?i)\bdiff\b`),
		},
	},
}

// momentRules drive key-moment extraction: one entry per topic group.
// A single sentence may emit one moment per matching group.
var momentRules = []struct {
	Type     domain.MomentType
	Patterns []*regexp.Regexp
}{
	{
		Type: domain.MomentArchitecture,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\barchitecture\b`),
			regexp.MustCompile(`(?i)\bsystem design\b`),
			regexp.MustCompile(`(?i)\bmicroservices?\b`),
			regexp.MustCompile(`(?i)\bscalab\w*`),
			regexp.MustCompile(`(?i)\binfrastructure\b`),
		},
	},
	{
		Type: domain.MomentDecision,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bdecided?\b`),
			regexp.MustCompile(`(?i)\bdecision\b`),
			regexp.MustCompile(`(?i)\bwe (should|will|chose)\b`),
			regexp.MustCompile(`(?i)\bagreed\b`),
			regexp.MustCompile(`(?i)\bgoing with\b`),
		},
	},
	{
		Type: domain.MomentTechnical,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bimplement\w*`),
			regexp.MustCompile(`(?i)\balgorithm\w*`),
			regexp.MustCompile(`(?i)\bperformance\b`),
			regexp.MustCompile(`(?i)\bdebug\w*`),
			regexp.MustCompile(`(?i)\brefactor\w*`),
		},
	},
	{
		Type: domain.MomentLeadership,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bownership\b`),
			regexp.MustCompile(`(?i)\bprioriti[sz]\w*`),
			regexp.MustCompile(`(?i)\broadmap\b`),
			regexp.MustCompile(`(?i)\bstakeholders?\b`),
			regexp.MustCompile(`(?i)\bstrategy\b`),
		},
	},
	{
		Type: domain.MomentMentoring,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bmentor\w*`),
			regexp.MustCompile(`(?i)\blet me show\b`),
			regexp.MustCompile(`(?i)\bbest practices?\b`),
			regexp.MustCompile(`(?i)\bexplain\w*`),
			regexp.MustCompile(`(?i)\blearn\w*`),
		},
	},
}

// importantKeywords is the fixed high-value vocabulary. The extractor
// adds one importance point per occurrence in a sentence; the matcher
// scores keyword overlap between video and project text against it.
var importantKeywords = []string{
	"architecture",
	"scalability",
	"performance",
	"security",
	"database",
	"microservices",
	"design",
	"decision",
	"strategy",
	"mentoring",
	"refactoring",
	"testing",
	"deployment",
	"infrastructure",
	"api",
}

// causalConnectives mark sentences that explain reasoning; their
// presence adds one importance point.
var causalConnectives = []string{"because", "since", "due to", "reason"}
