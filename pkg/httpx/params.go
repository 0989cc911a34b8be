package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page — окно выборки журнала.
type Page struct {
	Limit  int
	Offset int
}

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParsePage — limit/offset из query.
// Нечисловой limit → defaultLimit; limit всегда в [1, maxLimit]; отрицательный или нечисловой offset → 0.
func ParsePage(c *gin.Context, defaultLimit, maxLimit int) Page {
	page := Page{Limit: defaultLimit}
	if v, ok := queryInt(c, "limit"); ok {
		page.Limit = v
	}
	page.Limit = ClampInt(page.Limit, 1, maxLimit)

	if v, ok := queryInt(c, "offset"); ok && v >= 0 {
		page.Offset = v
	}
	return page
}

func queryInt(c *gin.Context, key string) (int, bool) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}
