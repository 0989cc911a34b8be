//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/bloodbank/internal/cache/memory"
	"github.com/Gunvolt24/bloodbank/internal/domain"
	pgrepo "github.com/Gunvolt24/bloodbank/internal/repo/postgres"
	"github.com/Gunvolt24/bloodbank/internal/testutil"
	rest "github.com/Gunvolt24/bloodbank/internal/transport/http"
	"github.com/Gunvolt24/bloodbank/internal/usecase"
	"github.com/Gunvolt24/bloodbank/pkg/logger"
	"github.com/Gunvolt24/bloodbank/pkg/validate"
)

type stack struct {
	repo *pgrepo.ScreeningRepository
	ts   *httptest.Server
}

// newStack — Postgres в контейнере + реальный сервис + httptest.Server.
func newStack(t *testing.T, ctx context.Context) *stack {
	t.Helper()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(ctx, pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	repo := pgrepo.NewScreeningRepository(pg.Pool)
	svc := usecase.NewScreeningService(repo, cachemem.NewLRUCacheTTL(100, time.Minute), logg, validate.NewScreeningValidator(), nil)

	r := rest.NewRouter(rest.NewHandler(svc, logg), rest.RouterConfig{GinMode: "test", HandlerTimeout: 2 * time.Second})
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return &stack{repo: repo, ts: ts}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, r io.Reader, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r).Decode(v))
}

// 1) POST /screenings — запись в журнал, затем GET по ID
func TestHTTP_ScreenAndGet_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	s := newStack(t, ctx)

	id := "don-" + testutil.UniqSuffix()
	resp := postJSON(t, s.ts.URL+"/api/v1/screenings", map[string]any{
		"donation_id": id, "sex": "female", "haemoglobin": "12.4", "systolic": 120, "diastolic": 80,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decodeBody(t, resp.Body, &created)
	require.Equal(t, false, created["eligible"])
	require.Equal(t, []any{string(domain.ReasonLowHaemoglobin)}, created["reasons"])

	stored, err := s.repo.GetByDonationID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.True(t, stored.Verdict.Has(domain.ReasonLowHaemoglobin))

	get, err := http.Get(s.ts.URL + "/api/v1/screenings/" + id)
	require.NoError(t, err)
	defer get.Body.Close()
	require.Equal(t, http.StatusOK, get.StatusCode)

	var got map[string]any
	decodeBody(t, get.Body, &got)
	require.Equal(t, id, got["donation_id"])
	require.Equal(t, "REJECTED", got["outcome"])
}

// 2) GET /screenings/:id — 404 когда записи нет
func TestHTTP_GetScreening_NotFound_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	s := newStack(t, ctx)

	resp, err := http.Get(s.ts.URL + "/api/v1/screenings/not-existing")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got map[string]any
	decodeBody(t, resp.Body, &got)
	require.Equal(t, "screening not found", got["error"])
}

// 3) POST /eligibility/evaluate — ничего не пишет в журнал
func TestHTTP_EvaluateHasNoSideEffects_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	s := newStack(t, ctx)

	resp := postJSON(t, s.ts.URL+"/api/v1/eligibility/evaluate", map[string]any{
		"donation_id": "don-dry-run", "sex": "male", "haemoglobin": 13, "systolic": 90, "diastolic": 100,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]any
	decodeBody(t, resp.Body, &got)
	require.Equal(t, true, got["eligible"])
	require.Empty(t, got["reasons"])

	stored, err := s.repo.GetByDonationID(ctx, "don-dry-run")
	require.NoError(t, err)
	require.Nil(t, stored)
}

// 4) Невалидная форма — 400, журнал не меняется
func TestHTTP_Screen_Invalid_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	s := newStack(t, ctx)

	resp := postJSON(t, s.ts.URL+"/api/v1/screenings", map[string]any{
		"donation_id": "don-bad", "sex": "male", "haemoglobin": "n/a", "systolic": 120, "diastolic": 80,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	stats, err := s.repo.Stats(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.Total)
}

// 5) Журнал с пагинацией и сводка
func TestHTTP_ListAndStats_TC(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	s := newStack(t, ctx)

	seed := []domain.ScreeningRecord{
		testutil.MakeScreening(),
		testutil.MakeScreening(testutil.LowHaemoglobin),
		testutil.MakeScreening(testutil.HighBloodPressure),
	}
	for i := range seed {
		require.NoError(t, s.repo.Save(ctx, &seed[i]))
	}

	resp, err := http.Get(s.ts.URL + "/api/v1/screenings?limit=2&offset=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	decodeBody(t, resp.Body, &list)
	require.Len(t, list, 2)

	st, err := http.Get(s.ts.URL + "/api/v1/stats/screenings")
	require.NoError(t, err)
	defer st.Body.Close()
	require.Equal(t, http.StatusOK, st.StatusCode)

	var stats struct {
		Total      int            `json:"total"`
		Eligible   int            `json:"eligible"`
		Ineligible int            `json:"ineligible"`
		ByReason   map[string]int `json:"by_reason"`
	}
	decodeBody(t, st.Body, &stats)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 1, stats.Eligible)
	require.Equal(t, 2, stats.Ineligible)
	require.Equal(t, 1, stats.ByReason[string(domain.ReasonLowHaemoglobin)])
	require.Equal(t, 1, stats.ByReason[string(domain.ReasonBloodPressureOutOfRange)])
}
