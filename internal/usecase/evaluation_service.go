package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yyu399/goal-model-v3.1/internal/domain"
)

// EvaluationServiceConfig holds configuration for the evaluation service
type EvaluationServiceConfig struct {
	// CacheTTL is how long a computed result is kept; zero uses the default
	CacheTTL time.Duration
	// MaxBatchSize bounds a single request; zero or negative disables the bound
	MaxBatchSize int
}

// EvaluationService runs the evaluator over collector batches with optional
// result memoization
type EvaluationService struct {
	cache        domain.CacheRepository
	logger       *logrus.Logger
	cacheTTL     time.Duration
	maxBatchSize int
}

// NewEvaluationService creates a new evaluation service. A nil cache
// disables memoization and a nil logger discards output.
func NewEvaluationService(
	cache domain.CacheRepository,
	logger *logrus.Logger,
	config EvaluationServiceConfig,
) *EvaluationService {
	cacheTTL := config.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}

	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}

	return &EvaluationService{
		cache:        cache,
		logger:       logger,
		cacheTTL:     cacheTTL,
		maxBatchSize: config.MaxBatchSize,
	}
}

// EvaluateBatch evaluates every snapshot of a batch and returns the results
// in input order.
// Flow: check bounds -> per match: check cache -> evaluate -> cache -> collect
func (s *EvaluationService) EvaluateBatch(
	ctx context.Context,
	snapshots []domain.MatchSnapshot,
) ([]domain.EvaluationResult, error) {
	if len(snapshots) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if s.maxBatchSize > 0 && len(snapshots) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: %d matches, limit is %d", domain.ErrBatchTooLarge, len(snapshots), s.maxBatchSize)
	}

	start := time.Now()
	hits := 0
	results := make([]domain.EvaluationResult, len(snapshots))
	for i, snapshot := range snapshots {
		result, hit := s.evaluate(ctx, snapshot)
		if hit {
			hits++
		}
		results[i] = result
	}

	s.logger.WithFields(logrus.Fields{
		"component":  "evaluation",
		"matches":    len(snapshots),
		"cache_hits": hits,
		"duration":   time.Since(start).String(),
	}).Info("batch evaluated")

	return results, nil
}

// EvaluateOne evaluates a single snapshot
func (s *EvaluationService) EvaluateOne(ctx context.Context, snapshot domain.MatchSnapshot) (domain.EvaluationResult, error) {
	results, err := s.EvaluateBatch(ctx, []domain.MatchSnapshot{snapshot})
	if err != nil {
		return domain.EvaluationResult{}, err
	}
	return results[0], nil
}

// evaluate returns the result for one snapshot and whether it came from cache
func (s *EvaluationService) evaluate(ctx context.Context, snapshot domain.MatchSnapshot) (domain.EvaluationResult, bool) {
	if s.cache == nil {
		return Evaluate(snapshot), false
	}

	key, err := generateCacheKey(snapshot)
	if err != nil {
		s.logger.WithError(err).Warn("cannot fingerprint snapshot")
		return Evaluate(snapshot), false
	}

	if cached, err := s.getFromCache(ctx, key); err == nil {
		return cached, true
	}

	result := Evaluate(snapshot)
	if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
		// a failed write only costs a recomputation later
		s.logger.WithError(err).WithField("key", key).Warn("cache write failed")
	}
	return result, false
}

// generateCacheKey fingerprints a snapshot.
// Format: "evaluation:{sha256 of the snapshot JSON}"
func generateCacheKey(snapshot domain.MatchSnapshot) (string, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return "evaluation:" + hex.EncodeToString(sum[:]), nil
}

// getFromCache retrieves a result from cache. Backends hand back either the
// stored struct or its decoded JSON form.
func (s *EvaluationService) getFromCache(ctx context.Context, key string) (domain.EvaluationResult, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return domain.EvaluationResult{}, err
	}

	switch v := value.(type) {
	case domain.EvaluationResult:
		return v, nil
	case *domain.EvaluationResult:
		if v == nil {
			return domain.EvaluationResult{}, domain.ErrCacheMiss
		}
		return *v, nil
	case map[string]interface{}:
		return mapToEvaluationResult(v)
	default:
		return domain.EvaluationResult{}, domain.ErrCacheMiss
	}
}

// mapToEvaluationResult converts a map (from JSON cache) to EvaluationResult
func mapToEvaluationResult(data map[string]interface{}) (domain.EvaluationResult, error) {
	var result domain.EvaluationResult

	raw, err := json.Marshal(data)
	if err != nil {
		return result, fmt.Errorf("%w: %v", domain.ErrCacheMiss, err)
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("%w: %v", domain.ErrCacheMiss, err)
	}
	return result, nil
}
