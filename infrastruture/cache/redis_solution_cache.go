package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix  = "pathfinder"
	solutionKeyFmt = "%s:solution:%s"
	lockKeySuffix  = ":solve_lock"

	lockExpiry = 10 * time.Second
)

// RedisSolutionCache stores solutions as JSON in Redis with a TTL and
// serializes solving of the same grid through a redsync mutex.
type RedisSolutionCache struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisSolutionCache initializes a RedisSolutionCache with the provided Redis client and TTL.
func NewRedisSolutionCache(client *redis.Client, ttlSeconds int) (i.SolutionCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}
	if ttlSeconds <= 0 {
		return nil, errors.New("solution ttl must be positive")
	}

	c := &RedisSolutionCache{
		client: client,
		prefix: defaultPrefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c, nil
}

// Get returns the cached solution for gridHash, or nil when there is none.
func (c *RedisSolutionCache) Get(ctx context.Context, gridHash string) (*dmn.Solution, error) {
	raw, err := c.client.Get(ctx, solutionKey(c.prefix, gridHash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var solution dmn.Solution
	if err := json.Unmarshal(raw, &solution); err != nil {
		return nil, err
	}
	return &solution, nil
}

// Set stores the solution under its grid hash with the cache TTL.
func (c *RedisSolutionCache) Set(ctx context.Context, solution *dmn.Solution) error {
	raw, err := json.Marshal(solution)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, solutionKey(c.prefix, solution.GridHash), raw, c.ttl).Err()
}

// Lock takes the solve lock for gridHash.
func (c *RedisSolutionCache) Lock(ctx context.Context, gridHash string) (func(), error) {
	mutex := c.locker.NewMutex(solutionKey(c.prefix, gridHash)+lockKeySuffix, redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
