package httpx

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimeout — ограничивает время обработки запроса через контекст.
// d <= 0 — без ограничения.
func RequestTimeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
