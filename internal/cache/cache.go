package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storyquest/internal/models"
)

// Cache is a best-effort Redis layer: a read cache for story redisplay and a
// rolling per-day story counter used by achievement evaluation. A nil *Cache
// is a valid no-op instance, so memory-mode deployments skip Redis entirely.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies the connection.
func New(addr, password string, ttl time.Duration) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{client: rdb, ttl: ttl}, nil
}

func storyKey(id int64) string {
	return fmt.Sprintf("story:%d", id)
}

// GetStory returns the cached story or (nil, false) on any miss or error.
func (c *Cache) GetStory(ctx context.Context, id int64) (*models.Story, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, storyKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var story models.Story
	if err := json.Unmarshal(payload, &story); err != nil {
		return nil, false
	}
	return &story, true
}

// SetStory stores a story for redisplay; failures are ignored.
func (c *Cache) SetStory(ctx context.Context, story *models.Story) {
	if c == nil || c.client == nil || story == nil {
		return
	}
	payload, err := json.Marshal(story)
	if err != nil {
		return
	}
	c.client.Set(ctx, storyKey(story.ID), payload, c.ttl)
}

// InvalidateStory drops a cached story after an update.
func (c *Cache) InvalidateStory(ctx context.Context, id int64) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, storyKey(id))
}

// IncrDailyStories bumps the user's story count for the given day and
// returns the new count. Returns 0 when Redis is unavailable, which callers
// treat as "count unknown".
func (c *Cache) IncrDailyStories(ctx context.Context, userID int64, day time.Time) int64 {
	if c == nil || c.client == nil {
		return 0
	}
	key := fmt.Sprintf("stories:daily:%d:%s", userID, day.Format("2006-01-02"))
	count, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0
	}
	c.client.Expire(ctx, key, 48*time.Hour)
	return count
}
