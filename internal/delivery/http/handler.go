package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yyu399/goal-model-v3.1/internal/domain"
	"github.com/yyu399/goal-model-v3.1/internal/usecase"
)

// Version is reported by the health endpoint
const Version = "3.1.0"

// Evaluator is the use case the handlers drive
type Evaluator interface {
	EvaluateBatch(ctx context.Context, snapshots []domain.MatchSnapshot) ([]domain.EvaluationResult, error)
	EvaluateOne(ctx context.Context, snapshot domain.MatchSnapshot) (domain.EvaluationResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	evaluator     Evaluator
	defaultLocale domain.Locale
}

// NewHandler creates a new HTTP handler. A nil evaluator makes the
// evaluation endpoints answer 501.
func NewHandler(evaluator Evaluator, defaultLocale domain.Locale) *Handler {
	if defaultLocale == "" {
		defaultLocale = domain.LocaleEnglish
	}
	return &Handler{
		evaluator:     evaluator,
		defaultLocale: defaultLocale,
	}
}

// ResultCodes carries the machine-readable label codes
type ResultCodes struct {
	GoalRecommendation   domain.GoalRecommendation   `json:"goalRecommendation"`
	CornerRecommendation domain.CornerRecommendation `json:"cornerRecommendation"`
	NextGoalPrediction   domain.NextGoalPrediction   `json:"nextGoalPrediction"`
	OddsMovement         domain.OddsMovement         `json:"oddsMovement"`
}

// ResultView is one row of the result table with localized labels
type ResultView struct {
	Name                 string      `json:"name"`
	Minute               int         `json:"minute"`
	Score                string      `json:"score"`
	TotalCorners         int         `json:"totalCorners"`
	GoalScore            int         `json:"goalScore"`
	GoalRecommendation   string      `json:"goalRecommendation"`
	CornerRecommendation string      `json:"cornerRecommendation"`
	NextGoalPrediction   string      `json:"nextGoalPrediction"`
	OddsMovement         string      `json:"oddsMovement"`
	Codes                ResultCodes `json:"codes"`
}

// EvaluateResponse is the batch endpoint payload
type EvaluateResponse struct {
	Results []ResultView `json:"results"`
	Count   int          `json:"count"`
}

// NewResultView localizes an evaluation result
func NewResultView(r domain.EvaluationResult, locale domain.Locale) ResultView {
	return ResultView{
		Name:                 r.Name,
		Minute:               r.Minute,
		Score:                r.Score,
		TotalCorners:         r.TotalCorners,
		GoalScore:            r.GoalScore,
		GoalRecommendation:   r.GoalRecommendation.Label(locale),
		CornerRecommendation: r.CornerRecommendation.Label(locale),
		NextGoalPrediction:   r.NextGoalPrediction.Label(locale),
		OddsMovement:         r.OddsMovement.Label(locale),
		Codes: ResultCodes{
			GoalRecommendation:   r.GoalRecommendation,
			CornerRecommendation: r.CornerRecommendation,
			NextGoalPrediction:   r.NextGoalPrediction,
			OddsMovement:         r.OddsMovement,
		},
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "inplay-analyzer",
		"version": Version,
	})
}

// Rules returns the thresholds and weights the evaluator applies
func (h *Handler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, usecase.Rules())
}

// EvaluateMatches handles batch evaluation requests
func (h *Handler) EvaluateMatches(c *gin.Context) {
	if h.evaluator == nil {
		h.notConfigured(c)
		return
	}

	locale, err := h.locale(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var request domain.EvaluateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.respondError(c, errors.Join(domain.ErrInvalidRequest, err))
		return
	}

	results, err := h.evaluator.EvaluateBatch(c.Request.Context(), request.Matches)
	if err != nil {
		h.respondError(c, err)
		return
	}

	views := make([]ResultView, len(results))
	for i, r := range results {
		views[i] = NewResultView(r, locale)
	}

	c.JSON(http.StatusOK, EvaluateResponse{Results: views, Count: len(views)})
}

// EvaluateMatch handles single snapshot evaluation requests
func (h *Handler) EvaluateMatch(c *gin.Context) {
	if h.evaluator == nil {
		h.notConfigured(c)
		return
	}

	locale, err := h.locale(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var snapshot domain.MatchSnapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		h.respondError(c, errors.Join(domain.ErrInvalidRequest, err))
		return
	}

	result, err := h.evaluator.EvaluateOne(c.Request.Context(), snapshot)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResultView(result, locale))
}

// locale reads ?lang=, falling back to the configured default
func (h *Handler) locale(c *gin.Context) (domain.Locale, error) {
	lang, ok := c.GetQuery("lang")
	if !ok {
		return h.defaultLocale, nil
	}
	return domain.ParseLocale(lang)
}

func (h *Handler) notConfigured(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"error": "evaluation service not configured",
	})
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrBatchTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrEmptyBatch),
		errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrUnsupportedLocale):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
