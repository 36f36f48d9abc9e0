package repository_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advocate-directory/internal/domain/entity"
	domainRepo "advocate-directory/internal/domain/repository"
	"advocate-directory/internal/repository"
	"advocate-directory/internal/repository/seed"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	value, ok := c.entries[key]
	if !ok {
		return nil, repository.ErrCacheMiss
	}
	return value, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *memoryCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// countingRepository wraps a store and counts FindAll calls.
type countingRepository struct {
	domainRepo.AdvocateRepository
	mu       sync.Mutex
	findAlls int
	created  []entity.Advocate
	findErr  error
}

func (r *countingRepository) FindAll(ctx context.Context) ([]entity.Advocate, error) {
	r.mu.Lock()
	r.findAlls++
	err := r.findErr
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.AdvocateRepository.FindAll(ctx)
}

func (r *countingRepository) Create(ctx context.Context, advocate *entity.Advocate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, *advocate)
	return nil
}

func (r *countingRepository) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findAlls
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func Test_CachedAdvocateRepository_MissThenHit(t *testing.T) {
	inner := &countingRepository{AdvocateRepository: repository.NewSeedAdvocateRepository()}
	cache := newMemoryCache()
	repo := repository.NewCachedAdvocateRepository(inner, cache, time.Minute, quietLogger())

	first, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls())
	assert.Equal(t, 1, cache.len())
	assert.Equal(t, time.Minute, cache.ttls["advocates:snapshot"])

	second, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls())

	assert.Equal(t, first, second)
	assert.Equal(t, seed.Advocates()[0].LastName, second[0].LastName)
	assert.Equal(t, seed.Advocates()[0].Specialties, second[0].Specialties)
}

func Test_CachedAdvocateRepository_FallsBackOnCacheFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *memoryCache)
	}{
		{name: "get_error", setup: func(c *memoryCache) { c.getErr = errors.New("redis: connection refused") }},
		{name: "undecodable_entry", setup: func(c *memoryCache) { c.entries["advocates:snapshot"] = []byte("{not json") }},
		{name: "set_error", setup: func(c *memoryCache) { c.setErr = errors.New("OOM command not allowed") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inner := &countingRepository{AdvocateRepository: repository.NewSeedAdvocateRepository()}
			cache := newMemoryCache()
			tc.setup(cache)
			repo := repository.NewCachedAdvocateRepository(inner, cache, time.Minute, quietLogger())

			advocates, err := repo.FindAll(context.Background())

			require.NoError(t, err)
			assert.Len(t, advocates, len(seed.Advocates()))
			assert.Equal(t, 1, inner.calls())
		})
	}
}

func Test_CachedAdvocateRepository_InnerFailure(t *testing.T) {
	storeErr := errors.New("database is down")
	inner := &countingRepository{AdvocateRepository: repository.NewSeedAdvocateRepository(), findErr: storeErr}
	repo := repository.NewCachedAdvocateRepository(inner, newMemoryCache(), time.Minute, quietLogger())

	_, err := repo.FindAll(context.Background())
	assert.ErrorIs(t, err, storeErr)

	_, err = repo.Warm(context.Background())
	assert.ErrorIs(t, err, storeErr)
}

func Test_CachedAdvocateRepository_Warm(t *testing.T) {
	inner := &countingRepository{AdvocateRepository: repository.NewSeedAdvocateRepository()}
	cache := newMemoryCache()
	repo := repository.NewCachedAdvocateRepository(inner, cache, time.Minute, quietLogger())

	count, err := repo.Warm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(seed.Advocates()), count)

	_, err = repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls())

	cache.setErr = errors.New("read only replica")
	_, err = repo.Warm(context.Background())
	assert.Error(t, err)
}

func Test_CachedAdvocateRepository_CreateInvalidatesSnapshot(t *testing.T) {
	inner := &countingRepository{AdvocateRepository: repository.NewSeedAdvocateRepository()}
	cache := newMemoryCache()
	repo := repository.NewCachedAdvocateRepository(inner, cache, time.Minute, quietLogger())

	_, err := repo.Warm(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, cache.len())

	require.NoError(t, repo.Create(context.Background(), &entity.Advocate{LastName: "New", PhoneNumber: "5550000000"}))

	assert.Equal(t, 0, cache.len())
	assert.Len(t, inner.created, 1)
}

func Test_SeedAdvocateRepository(t *testing.T) {
	repo := repository.NewSeedAdvocateRepository()

	advocates, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, advocates, 15)

	advocates[0].LastName = "Changed"
	again, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Doe", again[0].LastName)

	assert.ErrorIs(t, repo.Create(context.Background(), &entity.Advocate{}), domainRepo.ErrReadOnlyStore)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
