package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	StatusGroups(ctx context.Context) ([]domain.StatusGroupCount, error)
	CategoryDistribution(ctx context.Context) ([]domain.CategoryCount, error)
	DailySeries(ctx context.Context, days int) ([]domain.SeriesBucket, error)
	MonthlySeries(ctx context.Context, year int) ([]domain.SeriesBucket, error)
	AgencyBudget(ctx context.Context, agencyID uuid.UUID) (domain.AgencyBudget, error)
}

// StatsHandler serves dashboard aggregation endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type statusGroupResponse struct {
	Group string `json:"group"`
	Count int    `json:"count"`
}

type categoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type seriesBucketResponse struct {
	Bucket     time.Time `json:"bucket"`
	Done       int       `json:"done"`
	InProgress int       `json:"inProgress"`
	Awaiting   int       `json:"awaiting"`
}

type agencyBudgetResponse struct {
	AgencyID    string `json:"agencyId"`
	BudgetTotal int64  `json:"budgetTotal"`
	BudgetUsed  int64  `json:"budgetUsed"`
}

// StatusGroups handles GET /api/v1/stats/status.
func (h *StatsHandler) StatusGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.StatusGroups(r.Context())
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	items := make([]statusGroupResponse, 0, len(groups))
	for _, g := range groups {
		items = append(items, statusGroupResponse{Group: string(g.Group), Count: g.Count})
	}
	writeJSON(w, http.StatusOK, items)
}

// Categories handles GET /api/v1/stats/categories.
func (h *StatsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.CategoryDistribution(r.Context())
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	items := make([]categoryCountResponse, 0, len(counts))
	for _, c := range counts {
		items = append(items, categoryCountResponse{Category: c.Category.String(), Count: c.Count})
	}
	writeJSON(w, http.StatusOK, items)
}

// Daily handles GET /api/v1/stats/daily?days=7.
func (h *StatsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days must be a number")
			return
		}
		days = n
	}

	series, err := h.svc.DailySeries(r.Context(), days)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSeriesResponse(series))
}

// Monthly handles GET /api/v1/stats/monthly?year=2025. Year defaults to the
// current year when absent.
func (h *StatsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	var year int
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "year must be a number")
			return
		}
		year = n
	}

	series, err := h.svc.MonthlySeries(r.Context(), year)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSeriesResponse(series))
}

// AgencyBudget handles GET /api/v1/stats/agencies/{id}/budget.
func (h *StatsHandler) AgencyBudget(w http.ResponseWriter, r *http.Request) {
	agencyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid agency id")
		return
	}

	budget, err := h.svc.AgencyBudget(r.Context(), agencyID)
	if err != nil {
		writeDomainError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, agencyBudgetResponse{
		AgencyID:    budget.AgencyID.String(),
		BudgetTotal: budget.BudgetTotal,
		BudgetUsed:  budget.BudgetUsed,
	})
}

func toSeriesResponse(series []domain.SeriesBucket) []seriesBucketResponse {
	items := make([]seriesBucketResponse, 0, len(series))
	for _, b := range series {
		items = append(items, seriesBucketResponse{
			Bucket:     b.Bucket,
			Done:       b.Done,
			InProgress: b.InProgress,
			Awaiting:   b.Awaiting,
		})
	}
	return items
}
