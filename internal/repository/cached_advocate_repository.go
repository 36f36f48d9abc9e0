package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"advocate-directory/internal/domain/entity"
	domainRepo "advocate-directory/internal/domain/repository"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const advocateSnapshotKey = "advocates:snapshot"

// ErrCacheMiss is returned by a SnapshotCache when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// SnapshotCache is the key/value store backing the cached repository.
type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// CachedAdvocateRepository keeps a copy of the inner store's snapshot in a SnapshotCache.
type CachedAdvocateRepository struct {
	inner domainRepo.AdvocateRepository
	cache SnapshotCache
	ttl   time.Duration
	log   *logrus.Logger
}

// NewCachedAdvocateRepository caches the inner snapshot for ttl. Cache
// failures are logged and fall through to the inner store.
func NewCachedAdvocateRepository(inner domainRepo.AdvocateRepository, cache SnapshotCache, ttl time.Duration, log *logrus.Logger) *CachedAdvocateRepository {
	return &CachedAdvocateRepository{
		inner: inner,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

func (r *CachedAdvocateRepository) FindAll(ctx context.Context) ([]entity.Advocate, error) {
	raw, err := r.cache.Get(ctx, advocateSnapshotKey)
	switch {
	case err == nil:
		var advocates []entity.Advocate
		if err := jsoniter.ConfigFastest.Unmarshal(raw, &advocates); err == nil {
			return advocates, nil
		}
		r.log.Warnf("Discarding undecodable advocate snapshot: %+v", err)
	case errors.Is(err, ErrCacheMiss):
		r.log.Debug("Advocate snapshot cache miss")
	default:
		r.log.Warnf("Failed to read advocate snapshot from cache: %+v", err)
	}

	advocates, err := r.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	_ = r.store(ctx, advocates)

	return advocates, nil
}

// Warm reloads the inner snapshot into the cache regardless of what is cached.
func (r *CachedAdvocateRepository) Warm(ctx context.Context) (int, error) {
	advocates, err := r.inner.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load advocates: %w", err)
	}
	if err := r.store(ctx, advocates); err != nil {
		return 0, err
	}
	return len(advocates), nil
}

func (r *CachedAdvocateRepository) store(ctx context.Context, advocates []entity.Advocate) error {
	encoded, err := jsoniter.ConfigFastest.Marshal(advocates)
	if err != nil {
		r.log.Warnf("Failed to encode advocate snapshot: %+v", err)
		return fmt.Errorf("encode advocate snapshot: %w", err)
	}
	if err := r.cache.Set(ctx, advocateSnapshotKey, encoded, r.ttl); err != nil {
		r.log.Warnf("Failed to write advocate snapshot to cache: %+v", err)
		return err
	}
	return nil
}

func (r *CachedAdvocateRepository) Create(ctx context.Context, advocate *entity.Advocate) error {
	if err := r.inner.Create(ctx, advocate); err != nil {
		return err
	}
	if err := r.cache.Del(ctx, advocateSnapshotKey); err != nil {
		r.log.Warnf("Failed to invalidate advocate snapshot: %+v", err)
	}
	return nil
}
