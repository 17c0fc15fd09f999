// Package profilecache caches user profile lookups in Redis.
package profilecache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/yashx/asha/internal/bot"
)

const firstNameKeyPattern = "user:profile:first_name:%s"

// Cache decorates a ProfileSource with Redis-backed caching so repeated
// greetings do not hit the Graph API every time. With a nil client it is a
// transparent pass-through.
type Cache struct {
	client *redis.Client
	next   bot.ProfileSource
	ttl    time.Duration
	log    *slog.Logger
}

// New constructs a profile cache in front of the given source.
func New(client *redis.Client, next bot.ProfileSource, ttl time.Duration, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.Default()
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Cache{
		client: client,
		next:   next,
		ttl:    ttl,
		log:    log,
	}
}

// FirstName returns the cached first name or falls through to the source.
// Cache failures are logged and never fail the lookup itself.
func (c *Cache) FirstName(ctx context.Context, psid string) (string, error) {
	key := cacheKey(psid)

	if c.client != nil {
		cached, err := c.client.Get(ctx, key).Result()
		if err == nil && cached != "" {
			return cached, nil
		}
		if err != nil && !errors.Is(err, redis.Nil) {
			c.log.Warn("profile cache read failed", slog.String("psid", psid), slog.Any("error", err))
		}
	}

	firstName, err := c.next.FirstName(ctx, psid)
	if err != nil {
		return "", err
	}

	if c.client != nil && firstName != "" {
		if err := c.client.Set(ctx, key, firstName, c.ttl).Err(); err != nil {
			c.log.Warn("profile cache write failed", slog.String("psid", psid), slog.Any("error", err))
		}
	}

	return firstName, nil
}

func cacheKey(psid string) string {
	return fmt.Sprintf(firstNameKeyPattern, psid)
}
