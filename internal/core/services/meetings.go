package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/ports/driven"
	"github.com/parallax-labs/meetlens/internal/core/ports/driving"
	"github.com/parallax-labs/meetlens/internal/logger"
)

// Ensure MeetingService implements the interface.
var _ driving.MeetingService = (*MeetingService)(nil)

// listingFlightKey coalesces concurrent listing recomputations.
const listingFlightKey = "listing"

// MeetingConfig tunes the meeting pipeline. Zero values fall back to
// the defaults below.
type MeetingConfig struct {
	// Prefix restricts blob listing to a key prefix.
	Prefix string

	// FetchConcurrency bounds the per-meeting enrichment fan-out.
	FetchConcurrency int

	// FetchRatePerSecond limits artifact round-trips against the blob
	// backend.
	FetchRatePerSecond float64

	// SignedURLTTL is the lifetime requested for signed video URLs.
	SignedURLTTL time.Duration

	// StorageTimeout is the hard deadline applied to every storage
	// round-trip in the classification/caching path.
	StorageTimeout time.Duration

	// ListingTTL is the lifetime of the cached meeting listing.
	ListingTTL time.Duration
}

func (c *MeetingConfig) applyDefaults() {
	if c.FetchConcurrency <= 0 {
		c.FetchConcurrency = 8
	}
	if c.FetchRatePerSecond <= 0 {
		c.FetchRatePerSecond = 20
	}
	if c.SignedURLTTL <= 0 {
		c.SignedURLTTL = time.Hour
	}
	if c.StorageTimeout <= 0 {
		c.StorageTimeout = 30 * time.Second
	}
	if c.ListingTTL <= 0 {
		c.ListingTTL = 30 * time.Minute
	}
}

// MeetingService drives the grouping and enrichment pipeline: list
// artifacts, group them into records, merge cached analyses and manual
// overrides, and serve the result through a short-lived listing cache.
//
// Classifier and extractor instances are injected once at construction;
// the service holds no other global state.
type MeetingService struct {
	blob       driven.BlobStore
	overrides  driven.OverrideStore
	analyses   driven.AnalysisStore
	classifier driving.Classifier
	extractor  driving.MomentExtractor
	grouper    *ArtifactGrouper

	cfg     MeetingConfig
	limiter *rate.Limiter
	cache   *listingCache
	flight  singleflight.Group
}

// NewMeetingService creates the meeting pipeline service.
func NewMeetingService(
	blob driven.BlobStore,
	overrides driven.OverrideStore,
	analyses driven.AnalysisStore,
	classifier driving.Classifier,
	extractor driving.MomentExtractor,
	cfg MeetingConfig,
) *MeetingService {
	cfg.applyDefaults()
	return &MeetingService{
		blob:       blob,
		overrides:  overrides,
		analyses:   analyses,
		classifier: classifier,
		extractor:  extractor,
		grouper:    NewArtifactGrouper(),
		cfg:        cfg,
		limiter:    rate.NewLimiter(rate.Limit(cfg.FetchRatePerSecond), cfg.FetchConcurrency),
		cache:      newListingCache(cfg.ListingTTL),
	}
}

// WatchInvalidate subscribes to blob change notifications when the
// configured blob store supports them, invalidating the listing cache on
// every event. The returned channel re-emits each event after the cache
// has been invalidated and closes when ctx is cancelled; it is nil when
// the store cannot watch.
func (s *MeetingService) WatchInvalidate(ctx context.Context) <-chan struct{} {
	watcher, ok := s.blob.(driven.BlobWatcher)
	if !ok {
		return nil
	}
	events, err := watcher.Watch(ctx)
	if err != nil {
		logger.Warn("Blob watch unavailable: %v", err)
		return nil
	}
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		for range events {
			logger.Debug("Blob change event, invalidating listing cache")
			s.cache.Invalidate()
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()
	return out
}

// ListMeetings derives the current meeting records. Results are served
// from the listing cache when fresh; recomputation is coalesced so
// concurrent callers never trigger duplicate scans.
func (s *MeetingService) ListMeetings(ctx context.Context) (*domain.MeetingListing, error) {
	if listing, ok := s.cache.Get(); ok {
		return listing, nil
	}

	result, err, _ := s.flight.Do(listingFlightKey, func() (any, error) {
		listing := s.computeListing(ctx)
		s.cache.Set(listing)
		return listing, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.MeetingListing), nil
}

// computeListing performs the full scan. A fatal listing failure yields
// an empty listing with a diagnostic rather than an error; per-meeting
// failures degrade individual fields and never abort the batch.
func (s *MeetingService) computeListing(ctx context.Context) *domain.MeetingListing {
	logger.Section("Meeting Listing")

	listCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	objects, err := s.blob.List(listCtx, s.cfg.Prefix)
	if err != nil {
		logger.Warn("Blob listing failed: %v", err)
		return &domain.MeetingListing{
			Meetings: []domain.MeetingRecord{},
			Diagnostics: []domain.BatchDiagnostic{{
				Key:    s.cfg.Prefix,
				Stage:  "list",
				Detail: err.Error(),
			}},
		}
	}

	artifacts := make([]domain.RawArtifact, 0, len(objects))
	for _, obj := range objects {
		artifacts = append(artifacts, s.grouper.Derive(obj))
	}
	records := s.grouper.Group(artifacts)
	logger.Debug("Grouped %d artifacts into %d meetings", len(artifacts), len(records))

	meetings := make([]*domain.MeetingRecord, 0, len(records))
	for _, record := range records {
		meetings = append(meetings, record)
	}
	sort.Slice(meetings, func(i, j int) bool {
		if meetings[i].DateRecorded != meetings[j].DateRecorded {
			return meetings[i].DateRecorded > meetings[j].DateRecorded
		}
		return meetings[i].ID < meetings[j].ID
	})

	var mu sync.Mutex
	var diagnostics []domain.BatchDiagnostic
	addDiagnostic := func(d domain.BatchDiagnostic) {
		mu.Lock()
		diagnostics = append(diagnostics, d)
		mu.Unlock()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.FetchConcurrency)
	for _, record := range meetings {
		record := record
		group.Go(func() error {
			s.enrich(groupCtx, record, addDiagnostic)
			return nil
		})
	}
	// Enrichment never returns an error; failures degrade fields.
	_ = group.Wait()

	listing := &domain.MeetingListing{
		Meetings:    make([]domain.MeetingRecord, 0, len(meetings)),
		Diagnostics: diagnostics,
	}
	for _, record := range meetings {
		listing.Meetings = append(listing.Meetings, *record)
	}
	logger.Info("Listing complete: %d meetings, %d diagnostics", len(listing.Meetings), len(diagnostics))
	return listing
}

// enrich populates one record's signed URL, cached insights and merged
// override verdict. Every failure is isolated: the field degrades, a
// diagnostic is recorded, and the record stays in the output.
func (s *MeetingService) enrich(
	ctx context.Context,
	record *domain.MeetingRecord,
	addDiagnostic func(domain.BatchDiagnostic),
) {
	if record.Video != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return
		}
		signCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
		url, err := s.blob.GetSignedURL(signCtx, record.Video.Key, s.cfg.SignedURLTTL)
		cancel()
		if err != nil {
			logger.Debug("Signing failed for %s: %v", record.Video.Key, err)
			addDiagnostic(domain.BatchDiagnostic{Key: record.ID, Stage: "sign", Detail: err.Error()})
		} else {
			record.VideoURL = url
		}
	}

	insights := s.cachedInsights(ctx, record.ID, addDiagnostic)
	verdict := false
	if insights != nil {
		record.Insights = insights
		record.Category = insights.Category.Display()
		record.Participants = insights.Participants
		verdict = insights.PortfolioRelevant
	}

	record.IsPortfolioRelevant = s.resolveRelevance(ctx, record.ID, verdict, addDiagnostic)
}

// cachedInsights looks up the persisted analysis. A miss is normal; a
// malformed payload or any other storage failure is logged and treated
// as a miss so the meeting degrades to uncategorized instead of failing.
func (s *MeetingService) cachedInsights(
	ctx context.Context,
	meetingID string,
	addDiagnostic func(domain.BatchDiagnostic),
) *domain.MeetingInsights {
	getCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	insights, err := s.analyses.Get(getCtx, meetingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		logger.Warn("Analysis lookup failed for %s: %v", meetingID, err)
		addDiagnostic(domain.BatchDiagnostic{Key: meetingID, Stage: "analysis", Detail: err.Error()})
		return nil
	}
	return insights
}

// resolveRelevance merges the classifier verdict with the persisted
// override. The override, when present, always wins; a store failure
// fails open to the classifier verdict.
func (s *MeetingService) resolveRelevance(
	ctx context.Context,
	meetingID string,
	verdict bool,
	addDiagnostic func(domain.BatchDiagnostic),
) bool {
	getCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()

	override, err := s.overrides.Get(getCtx, meetingID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("Override lookup failed for %s: %v", meetingID, err)
			addDiagnostic(domain.BatchDiagnostic{Key: meetingID, Stage: "override", Detail: err.Error()})
		}
		return verdict
	}
	return override.IsPortfolioRelevant
}

// Analyze classifies a meeting's transcript and extracts key moments,
// persisting the result. Concurrent calls for the same meeting are
// single-flighted so they never race to write divergent cache entries.
func (s *MeetingService) Analyze(ctx context.Context, meetingID string) (*domain.MeetingInsights, error) {
	if meetingID == "" {
		return nil, fmt.Errorf("analyze: %w: empty meeting id", domain.ErrInvalidInput)
	}

	result, err, _ := s.flight.Do("analyze:"+meetingID, func() (any, error) {
		return s.analyze(ctx, meetingID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.MeetingInsights), nil
}

func (s *MeetingService) analyze(ctx context.Context, meetingID string) (*domain.MeetingInsights, error) {
	getCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	cached, err := s.analyses.Get(getCtx, meetingID)
	cancel()
	if err == nil {
		logger.Debug("Analysis cache hit for %s", meetingID)
		return cached, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		// Fail open: a broken cache read means recompute, not abort.
		logger.Warn("Analysis cache read failed for %s: %v", meetingID, err)
	}

	record, err := s.findMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	insights := domain.MeetingInsights{AnalyzedAt: time.Now().UTC()}
	if record.Transcript == nil {
		insights.Category = domain.CategorySkip
		insights.Confidence = 0.5
		insights.Reason = "no transcript available"
	} else {
		fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
		content, err := s.blob.GetContent(fetchCtx, record.Transcript.Key)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("fetch transcript %s: %w", record.Transcript.Key, err)
		}

		result := s.classifier.Classify(content, record.Transcript.Filename)
		insights.Category = result.Category
		insights.Confidence = result.Confidence
		insights.Reason = result.Reason
		insights.PortfolioRelevant = result.PortfolioRelevant()
		insights.Participants = parseParticipants(content)
		if !result.IsSkip() {
			insights.KeyMoments = s.extractor.Extract(content)
		}
	}

	putCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	err = s.analyses.Put(putCtx, meetingID, insights)
	cancel()
	if err != nil {
		// A failed cache write degrades to recomputation next time.
		logger.Warn("Analysis cache write failed for %s: %v", meetingID, err)
	}
	s.cache.Invalidate()

	return &insights, nil
}

// SetOverride persists a manual relevance decision and invalidates the
// listing cache so the next listing reflects it immediately.
func (s *MeetingService) SetOverride(ctx context.Context, setting domain.OverrideSetting) error {
	if setting.MeetingID == "" {
		return fmt.Errorf("set override: %w: empty meeting id", domain.ErrInvalidInput)
	}
	setting.UpdatedAt = time.Now().UTC()

	putCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()
	if err := s.overrides.Put(putCtx, setting); err != nil {
		return fmt.Errorf("set override: %w", err)
	}
	s.cache.Invalidate()
	logger.Info("Override set for %s: relevant=%t", setting.MeetingID, setting.IsPortfolioRelevant)
	return nil
}

// GetOverride retrieves the persisted override for a meeting.
func (s *MeetingService) GetOverride(ctx context.Context, meetingID string) (*domain.OverrideSetting, error) {
	getCtx, cancel := context.WithTimeout(ctx, s.cfg.StorageTimeout)
	defer cancel()
	return s.overrides.Get(getCtx, meetingID)
}

// findMeeting locates one derived record by id via the listing pipeline.
func (s *MeetingService) findMeeting(ctx context.Context, meetingID string) (*domain.MeetingRecord, error) {
	listing, err := s.ListMeetings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range listing.Meetings {
		if listing.Meetings[i].ID == meetingID {
			return &listing.Meetings[i], nil
		}
	}
	return nil, fmt.Errorf("meeting %s: %w", meetingID, domain.ErrNotFound)
}

// parseParticipants reads attendee names from a "Participants:" header
// line near the top of a transcript.
func parseParticipants(content string) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if !strings.HasPrefix(lower, "participants:") && !strings.HasPrefix(lower, "attendees:") {
			continue
		}
		_, rest, _ := strings.Cut(trimmed, ":")
		var participants []string
		for _, name := range strings.Split(rest, ",") {
			if name = strings.TrimSpace(name); name != "" {
				participants = append(participants, name)
			}
		}
		return participants
	}
	return nil
}
