package rest

import (
	"net/http"

	"github.com/laporkota/backend/internal/transport/middleware"
)

// NewRouter builds the full route table. Authentication and the rest of the
// middleware chain are applied by the caller around the returned mux.
func NewRouter(auth *AuthHandler, reports *ReportHandler, stats *StatsHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", middleware.MetricsHandler())

	mux.HandleFunc("POST /api/v1/auth/register", auth.Register)
	mux.HandleFunc("POST /api/v1/auth/login", auth.Login)

	mux.HandleFunc("POST /api/v1/reports", reports.Create)
	mux.HandleFunc("GET /api/v1/reports", reports.List)
	mux.HandleFunc("GET /api/v1/reports/{id}", reports.Get)
	mux.HandleFunc("DELETE /api/v1/reports/{id}", reports.Delete)
	mux.HandleFunc("POST /api/v1/reports/{id}/support", reports.Support)

	// Workflow commands. Authorization is enforced in the disposition
	// service against the transition table, not per route.
	mux.HandleFunc("POST /api/v1/reports/{id}/dispose", reports.Dispose)
	mux.HandleFunc("POST /api/v1/reports/{id}/reject", reports.Reject)
	mux.HandleFunc("POST /api/v1/reports/{id}/verify", reports.Verify)
	mux.HandleFunc("POST /api/v1/reports/{id}/reject-by-agency", reports.RejectByAgency)
	mux.HandleFunc("POST /api/v1/reports/{id}/budget", reports.SetBudget)
	mux.HandleFunc("POST /api/v1/reports/{id}/spend", reports.AddSpend)
	mux.HandleFunc("POST /api/v1/reports/{id}/complete", reports.Complete)

	mux.HandleFunc("GET /api/v1/stats/status", stats.StatusGroups)
	mux.HandleFunc("GET /api/v1/stats/categories", stats.Categories)
	mux.HandleFunc("GET /api/v1/stats/daily", stats.Daily)
	mux.HandleFunc("GET /api/v1/stats/monthly", stats.Monthly)
	mux.HandleFunc("GET /api/v1/stats/agencies/{id}/budget", stats.AgencyBudget)

	return mux
}
