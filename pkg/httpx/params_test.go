package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/bloodbank/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Утилита для создания *gin.Context с query-строкой
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/screenings?"+rawQuery, http.NoBody)
	return c
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
		{"equal_min", 1, 1, 10, 1},
		{"equal_max", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := httpx.ClampInt(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		rawQuery     string
		defaultLimit int
		maxLimit     int
		want         httpx.Page
	}{
		{"no_query", "", 20, 100, httpx.Page{Limit: 20}},
		{"default_above_max_clamped", "", 500, 100, httpx.Page{Limit: 100}},
		{"default_zero_clamped", "", 0, 100, httpx.Page{Limit: 1}},

		{"both", "limit=25&offset=10", 20, 100, httpx.Page{Limit: 25, Offset: 10}},
		{"only_offset", "offset=7", 20, 100, httpx.Page{Limit: 20, Offset: 7}},

		{"limit_zero", "limit=0", 20, 100, httpx.Page{Limit: 1}},
		{"limit_negative", "limit=-5", 20, 100, httpx.Page{Limit: 1}},
		{"limit_above_max", "limit=999", 20, 100, httpx.Page{Limit: 100}},

		{"limit_non_int", "limit=foo", 20, 100, httpx.Page{Limit: 20}},
		{"limit_empty", "limit=", 20, 100, httpx.Page{Limit: 20}},
		{"offset_non_int", "offset=bar", 20, 100, httpx.Page{Limit: 20}},
		{"offset_negative", "limit=10&offset=-3", 20, 100, httpx.Page{Limit: 10}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := httpx.ParsePage(ctxWithQuery(tt.rawQuery), tt.defaultLimit, tt.maxLimit)
			if got != tt.want {
				t.Fatalf("got %+v, want %+v (query=%q)", got, tt.want, tt.rawQuery)
			}
		})
	}
}
