package serviceimpl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"event-gallery/domain/models"
	"event-gallery/domain/repositories"
	"event-gallery/domain/services"
	"event-gallery/infrastructure/rediscache"
	"event-gallery/infrastructure/vision"
	"event-gallery/pkg/config"
	"event-gallery/pkg/logger"
)

// MatchClient is the vision gateway surface the search service needs.
// vision.Client satisfies it; tests inject fakes.
type MatchClient interface {
	Configured() bool
	MatchBatch(ctx context.Context, req *vision.MatchRequest) (string, error)
}

type SearchServiceImpl struct {
	mediaRepo     repositories.MediaRepository
	searchLogRepo repositories.SearchLogRepository
	client        MatchClient
	cache         *rediscache.RedisClient
	batchSize     int
	concurrency   int
	cacheTTL      time.Duration
}

func NewSearchService(
	mediaRepo repositories.MediaRepository,
	searchLogRepo repositories.SearchLogRepository,
	client MatchClient,
	cache *rediscache.RedisClient,
	cfg config.SearchConfig,
) services.SearchService {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 15
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &SearchServiceImpl{
		mediaRepo:     mediaRepo,
		searchLogRepo: searchLogRepo,
		client:        client,
		cache:         cache,
		batchSize:     batchSize,
		concurrency:   concurrency,
		cacheTTL:      time.Duration(cfg.CacheTTLSec) * time.Second,
	}
}

// SearchPhotos scans every photo of the event against the search criterion
// and returns the matching media ids, sorted ascending. A failing batch
// contributes zero matches; only a missing event id, an unreachable catalog
// or a missing gateway key abort the whole search.
func (s *SearchServiceImpl) SearchPhotos(ctx context.Context, req *services.PhotoSearchRequest) ([]string, error) {
	started := time.Now()

	if strings.TrimSpace(req.EventID) == "" {
		return nil, services.ErrEventIDRequired
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, services.ErrEventIDRequired
	}

	if cached, ok := s.cacheGet(ctx, req); ok {
		return cached, nil
	}

	photos, err := s.mediaRepo.GetPhotosByEvent(ctx, eventID)
	if err != nil {
		logger.SearchError("catalog_fetch", "Failed to load event photos", err, map[string]interface{}{
			"event_id": req.EventID,
		})
		return nil, services.ErrCatalogUnavailable
	}

	mode := s.mode(req)

	if len(photos) == 0 || mode == vision.ModeNone {
		// Nothing to scan, or nothing to scan for. No model calls.
		s.logSearch(ctx, eventID, mode, 0, 0, 0, 0, started)
		return []string{}, nil
	}

	if !s.client.Configured() {
		return nil, services.ErrSearchNotConfigured
	}

	batches := planBatches(photos, s.batchSize)

	results := make([][]string, len(batches))
	failed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			matched, err := s.matchBatch(gctx, req, batch)
			if err != nil {
				logger.SearchError("batch_failed", "Batch contributed no matches", err, map[string]interface{}{
					"event_id": req.EventID,
					"batch":    i,
					"size":     len(batch),
				})
				return nil
			}
			results[i] = matched
			return nil
		})
	}
	// Workers swallow their own errors, so Wait never returns one.
	_ = g.Wait()

	seen := make(map[string]bool)
	matchedIDs := make([]string, 0)
	for _, batchResult := range results {
		if batchResult == nil {
			failed++
			continue
		}
		for _, id := range batchResult {
			if !seen[id] {
				seen[id] = true
				matchedIDs = append(matchedIDs, id)
			}
		}
	}
	sort.Strings(matchedIDs)

	logger.Search("completed", "Photo search completed", map[string]interface{}{
		"event_id":       req.EventID,
		"mode":           string(mode),
		"photos":         len(photos),
		"batches":        len(batches),
		"failed_batches": failed,
		"matches":        len(matchedIDs),
		"duration_ms":    time.Since(started).Milliseconds(),
	})

	s.cacheSet(ctx, req, matchedIDs)
	s.logSearch(ctx, eventID, mode, len(photos), len(batches), failed, len(matchedIDs), started)

	return matchedIDs, nil
}

func (s *SearchServiceImpl) mode(req *services.PhotoSearchRequest) vision.MatchMode {
	probe := vision.MatchRequest{Query: req.Query, ReferenceImage: req.Image}
	return probe.Mode()
}

// matchBatch runs one batch through the gateway and keeps only ids that
// belong to the batch. Models occasionally echo ids they were never shown.
func (s *SearchServiceImpl) matchBatch(ctx context.Context, req *services.PhotoSearchRequest, batch []models.Media) ([]string, error) {
	matchReq := &vision.MatchRequest{
		Query:          req.Query,
		ReferenceImage: req.Image,
		Photos:         make([]vision.PhotoRef, len(batch)),
	}
	for i, photo := range batch {
		matchReq.Photos[i] = vision.PhotoRef{ID: photo.ID.String(), URL: photo.FileURL}
	}

	raw, err := s.client.MatchBatch(ctx, matchReq)
	if err != nil {
		return nil, err
	}

	ids, err := vision.ParseMatchResponse(raw)
	if err != nil {
		return nil, err
	}

	candidates := make(map[string]bool, len(batch))
	for _, photo := range batch {
		candidates[photo.ID.String()] = true
	}

	matched := make([]string, 0, len(ids))
	for _, id := range ids {
		if candidates[id] {
			matched = append(matched, id)
		}
	}
	return matched, nil
}

// planBatches splits photos into contiguous runs of at most batchSize.
func planBatches(photos []models.Media, batchSize int) [][]models.Media {
	if len(photos) == 0 {
		return nil
	}
	batches := make([][]models.Media, 0, (len(photos)+batchSize-1)/batchSize)
	for start := 0; start < len(photos); start += batchSize {
		end := start + batchSize
		if end > len(photos) {
			end = len(photos)
		}
		batches = append(batches, photos[start:end])
	}
	return batches
}

func (s *SearchServiceImpl) cacheKey(req *services.PhotoSearchRequest) string {
	sum := sha256.Sum256([]byte(req.Query + "|" + req.Image))
	return fmt.Sprintf("search:%s:%s", req.EventID, hex.EncodeToString(sum[:]))
}

func (s *SearchServiceImpl) cacheGet(ctx context.Context, req *services.PhotoSearchRequest) ([]string, bool) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil, false
	}
	key := s.cacheKey(req)
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		if !rediscache.IsMiss(err) {
			logger.CacheWarn("search_get", "Cache lookup failed", err, map[string]interface{}{"key": key})
		}
		return nil, false
	}
	var ids []string
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		logger.CacheWarn("search_decode", "Dropping unreadable cache entry", err, map[string]interface{}{"key": key})
		return nil, false
	}
	logger.Cache("search_hit", "Served search from cache", map[string]interface{}{
		"key":     key,
		"matches": len(ids),
	})
	return ids, true
}

func (s *SearchServiceImpl) cacheSet(ctx context.Context, req *services.PhotoSearchRequest, ids []string) {
	if s.cache == nil || s.cacheTTL <= 0 || len(ids) == 0 {
		return
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		return
	}
	key := s.cacheKey(req)
	if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
		logger.CacheWarn("search_set", "Failed to cache search result", err, map[string]interface{}{"key": key})
	}
}

func (s *SearchServiceImpl) logSearch(ctx context.Context, eventID uuid.UUID, mode vision.MatchMode, photos, batches, failed, matches int, started time.Time) {
	entry := &models.SearchLog{
		EventID:       eventID,
		Mode:          string(mode),
		PhotoCount:    photos,
		BatchCount:    batches,
		FailedBatches: failed,
		MatchCount:    matches,
		DurationMs:    time.Since(started).Milliseconds(),
	}
	if err := s.searchLogRepo.Create(ctx, entry); err != nil {
		logger.SearchError("log_write", "Failed to record search log", err, map[string]interface{}{
			"event_id": eventID.String(),
		})
	}
}
