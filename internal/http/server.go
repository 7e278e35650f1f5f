// Package http exposes the application as a JSON REST API.
package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/divvyhq/divvy/internal/auth"
	"github.com/divvyhq/divvy/internal/middleware"
	"github.com/divvyhq/divvy/internal/service"
)

// Server holds the services the handlers delegate to.
type Server struct {
	auth        *service.AuthService
	groups      *service.GroupService
	expenses    *service.ExpenseService
	settlements *service.SettlementService
}

// NewHandler wires every route and middleware into a single http.Handler.
// Register and login are the only open endpoints besides health and metrics;
// everything else requires a valid bearer token.
func NewHandler(
	authSvc *service.AuthService,
	groupSvc *service.GroupService,
	expenseSvc *service.ExpenseService,
	settlementSvc *service.SettlementService,
	jwtManager *auth.JWTManager,
) http.Handler {
	s := &Server{
		auth:        authSvc,
		groups:      groupSvc,
		expenses:    expenseSvc,
		settlements: settlementSvc,
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /api/v1/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", s.handleLogin)

	api := http.NewServeMux()
	api.HandleFunc("GET /api/v1/auth/me", s.handleCurrentUser)

	api.HandleFunc("POST /api/v1/groups", s.handleCreateGroup)
	api.HandleFunc("GET /api/v1/groups", s.handleListGroups)
	api.HandleFunc("GET /api/v1/groups/{id}", s.handleGetGroup)
	api.HandleFunc("POST /api/v1/groups/{id}/members", s.handleAddMembers)
	api.HandleFunc("DELETE /api/v1/groups/{id}", s.handleDeleteGroup)

	api.HandleFunc("POST /api/v1/groups/{id}/expenses", s.handleAddExpense)
	api.HandleFunc("GET /api/v1/groups/{id}/expenses", s.handleListExpenses)
	api.HandleFunc("DELETE /api/v1/groups/{id}/expenses/{expenseID}", s.handleDeleteExpense)

	api.HandleFunc("GET /api/v1/groups/{id}/balances", s.handleBalances)
	api.HandleFunc("POST /api/v1/groups/{id}/settlements", s.handleConfirmSettlement)
	api.HandleFunc("GET /api/v1/groups/{id}/settlements", s.handleListSettlements)

	// More specific patterns above (register/login) take precedence over
	// this prefix route, so they stay unauthenticated.
	mux.Handle("/api/v1/", middleware.RequireAuth(jwtManager)(api))

	return middleware.Metrics(middleware.Logging(middleware.CORS(mux)))
}
