package middlewares

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimit is a fixed-window per-user limiter for the AI routes, which
// sit in front of metered model providers. A nil client disables
// limiting entirely; a Redis error fails open so a flaky Redis never
// takes the chat down with it.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if rdb == nil || limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		uid := c.GetUint("userID")
		key := fmt.Sprintf("ratelimit:ai:%d:%d", uid, time.Now().Unix()/int64(window.Seconds()))

		ctx := c.Request.Context()
		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many AI requests, slow down",
			})
			return
		}
		c.Next()
	}
}
