package cache

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
)

const cacheKeyPrefix = "respcache:"

// cachingWriter buffers the response body so it can be stored after the
// handler finishes
type cachingWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache caches successful GET responses in redis for the given
// TTL. Keys are the full request URI, so query parameters produce
// distinct entries. Cache failures fall through to the handler.
func ResponseCache(client *redis.Client, ttl time.Duration, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cacheKeyPrefix + c.Request.RequestURI

		ctx, cancel := context.WithTimeout(c.Request.Context(), 200*time.Millisecond)
		cached, err := client.Get(ctx, key).Bytes()
		cancel()
		if err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}
		if err != redis.Nil {
			logger.Warn("Cache read failed", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
		}

		writer := &cachingWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}

		ctx, cancel = context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		if err := client.Set(ctx, key, writer.body.Bytes(), ttl).Err(); err != nil {
			logger.Warn("Cache write failed", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
}
