package middleware

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"movie_catalog/config"
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Cache serves public GET responses from redis for the configured TTL.
// Without a reachable redis or with caching disabled it degrades to a
// pass-through.
func Cache(rdb *redis.Client, cfg *config.Config) fiber.Handler {
	if rdb == nil || !cfg.CacheEnabled {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := cacheKey(cfg.CachePrefix, c.Method(), c.Path(), string(c.Request().URI().QueryString()))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		raw, err := rdb.Get(ctx, key).Bytes()
		cancel()
		if err == nil {
			var entry cachedResponse
			if json.Unmarshal(raw, &entry) == nil {
				c.Set(fiber.HeaderContentType, entry.ContentType)
				return c.Status(entry.Status).Send(entry.Body)
			}
		}

		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		body := c.Response().Body()
		if status != fiber.StatusOK || len(body) > cfg.CacheMaxBodyBytes {
			return nil
		}

		entry := cachedResponse{
			Status:      status,
			ContentType: string(c.Response().Header.ContentType()),
			Body:        append([]byte(nil), body...),
		}
		if raw, err := json.Marshal(entry); err == nil {
			sctx, scancel := context.WithTimeout(context.Background(), time.Second)
			rdb.Set(sctx, key, raw, cfg.CacheTTL)
			scancel()
		}
		return nil
	}
}

func cacheKey(prefix, method, path, query string) string {
	sum := sha1.Sum([]byte(method + ":" + path + "?" + query))
	return fmt.Sprintf("%s:%x", prefix, sum)
}
