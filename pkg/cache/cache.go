package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs
const (
	TTLSitemap = 1 * time.Hour
	TTLDefault = 5 * time.Minute
)

// Key prefixes
const (
	PrefixSitemap = "sitemap:"
	PrefixBlog    = "blog:"
)

// Fixed keys
const (
	KeySitemap = PrefixSitemap + "xml"
	KeyHome    = PrefixBlog + "home"
)

// KeyBlog key of the cached public view of one post
func KeyBlog(slug string) string {
	return PrefixBlog + "slug:" + slug
}

// ErrMiss is returned when a key is absent
var ErrMiss = errors.New("cache miss")

// Service Redis-backed cache for published output
type Service interface {
	// JSON values (post detail, home page)
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Sitemap document (raw XML bytes)
	GetSitemap(ctx context.Context) ([]byte, error)
	SetSitemap(ctx context.Context, doc []byte, ttl time.Duration) error

	// InvalidatePublished drops the sitemap, the home page and the given posts
	InvalidatePublished(ctx context.Context, slugs ...string) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a cache over client. A nil client gives a no-op cache.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get decodes the JSON value at key into dest, or returns ErrMiss
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.getBytes(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Set stores value as JSON
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = TTLDefault
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) del(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// GetSitemap returns the cached sitemap document or ErrMiss
func (c *redisCache) GetSitemap(ctx context.Context) ([]byte, error) {
	return c.getBytes(ctx, KeySitemap)
}

// SetSitemap stores the sitemap document as-is (no JSON wrapping)
func (c *redisCache) SetSitemap(ctx context.Context, doc []byte, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = TTLSitemap
	}
	return c.client.Set(ctx, KeySitemap, doc, ttl).Err()
}

func (c *redisCache) InvalidatePublished(ctx context.Context, slugs ...string) error {
	keys := []string{KeySitemap, KeyHome}
	for _, s := range slugs {
		if s != "" {
			keys = append(keys, KeyBlog(s))
		}
	}
	return c.del(ctx, keys...)
}

func (c *redisCache) getBytes(ctx context.Context, key string) ([]byte, error) {
	if c.client == nil {
		return nil, fmt.Errorf("redis not available")
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return data, err
}
