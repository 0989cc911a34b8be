package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/bloodbank/internal/domain"
	"github.com/Gunvolt24/bloodbank/internal/eligibility"
	"github.com/Gunvolt24/bloodbank/pkg/httpx"
	"github.com/Gunvolt24/bloodbank/pkg/validate"
	"github.com/gin-gonic/gin"
)

// screeningResponse — вердикт в виде, удобном для экрана тестирования.
type screeningResponse struct {
	DonationID  string                     `json:"donation_id,omitempty"`
	Input       domain.DonorScreeningInput `json:"input"`
	Eligible    bool                       `json:"eligible"`
	Reasons     []domain.Reason            `json:"reasons"`
	Outcome     domain.Outcome             `json:"outcome"`
	Message     string                     `json:"message"`
	EvaluatedAt time.Time                  `json:"evaluated_at"`
}

func toResponse(rec *domain.ScreeningRecord) screeningResponse {
	reasons := rec.Verdict.Reasons
	if reasons == nil {
		reasons = []domain.Reason{}
	}
	return screeningResponse{
		DonationID:  rec.DonationID,
		Input:       rec.Input,
		Eligible:    rec.Verdict.Eligible,
		Reasons:     reasons,
		Outcome:     rec.Verdict.Outcome(),
		Message:     rec.Verdict.Message(),
		EvaluatedAt: rec.EvaluatedAt,
	}
}

type statsResponse struct {
	domain.ScreeningStats
	SafeSharePercent float64 `json:"safe_share_percent"`
}

func (h *Handler) getCriteria(c *gin.Context) {
	c.JSON(http.StatusOK, eligibility.CurrentCriteria())
}

func (h *Handler) evaluate(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	rec, err := h.service.Evaluate(c.Request.Context(), form)
	if err != nil {
		h.writeError(c, "Evaluate", err)
		return
	}
	c.JSON(http.StatusOK, toResponse(rec))
}

func (h *Handler) screen(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}
	rec, err := h.service.Screen(c.Request.Context(), form)
	if err != nil {
		h.writeError(c, "Screen", err)
		return
	}
	c.JSON(http.StatusCreated, toResponse(rec))
}

func (h *Handler) getScreening(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty donation id"})
		return
	}
	rec, err := h.service.GetScreening(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "GetScreening", err)
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "screening not found"})
		return
	}
	c.JSON(http.StatusOK, toResponse(rec))
}

func (h *Handler) listScreenings(c *gin.Context) {
	page := httpx.ParsePage(c, defaultListLimit, maxListLimit)

	list, err := h.service.ListScreenings(c.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		h.writeError(c, "ListScreenings", err)
		return
	}
	out := make([]screeningResponse, 0, len(list))
	for _, rec := range list {
		out = append(out, toResponse(rec))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.writeError(c, "Stats", err)
		return
	}
	if stats.ByReason == nil {
		stats.ByReason = map[domain.Reason]int{}
	}
	c.JSON(http.StatusOK, statsResponse{ScreeningStats: stats, SafeSharePercent: stats.SafeShare()})
}

// bindForm — JSON или form-encoded тело (по Content-Type).
func (h *Handler) bindForm(c *gin.Context) (*domain.ScreeningForm, bool) {
	var form domain.ScreeningForm
	if err := c.ShouldBind(&form); err != nil {
		h.writeError(c, "bind", fmt.Errorf("%w: invalid body: %v", validate.ErrInvalidScreening, err))
		return nil, false
	}
	return &form, true
}

// writeError — валидация 400, таймаут 504, остальное 500.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, validate.ErrInvalidScreening):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warnf(ctx, "%s timed out err=%v", op, err)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		h.log.Errorf(ctx, "%s failed err=%v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
