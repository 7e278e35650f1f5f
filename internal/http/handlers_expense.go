package http

import (
	"fmt"
	"net/http"

	"github.com/divvyhq/divvy/internal/middleware"
	"github.com/divvyhq/divvy/internal/models"
	"github.com/divvyhq/divvy/internal/money"
	"github.com/divvyhq/divvy/internal/service"
)

type expenseResponse struct {
	ID           string   `json:"id"`
	GroupID      string   `json:"group_id"`
	PayerID      string   `json:"payer_id"`
	Amount       string   `json:"amount"`
	AmountCents  int64    `json:"amount_cents"`
	Description  string   `json:"description"`
	SplitBetween []string `json:"split_between"`
	CreatedAt    int64    `json:"created_at"`
}

func toExpenseResponse(e *models.Expense) expenseResponse {
	return expenseResponse{
		ID:           e.ID,
		GroupID:      e.GroupID,
		PayerID:      e.PayerID,
		Amount:       e.Amount.String(),
		AmountCents:  int64(e.Amount),
		Description:  e.Description,
		SplitBetween: e.SplitBetween,
		CreatedAt:    e.CreatedAt,
	}
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PayerID      string   `json:"payer_id"`
		Amount       string   `json:"amount"`
		Description  string   `json:"description"`
		SplitBetween []string `json:"split_between"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: malformed request body", service.ErrInvalidInput))
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		respondError(w, err)
		return
	}

	expense, err := s.expenses.AddExpense(
		r.Context(),
		middleware.GetUserID(r.Context()),
		r.PathValue("id"),
		req.PayerID,
		amount,
		req.Description,
		req.SplitBetween,
	)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.ListExpenses(r.Context(), middleware.GetUserID(r.Context()), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseResponse(e)
	}
	respondJSON(w, http.StatusOK, map[string][]expenseResponse{"expenses": out})
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	err := s.expenses.DeleteExpense(
		r.Context(),
		middleware.GetUserID(r.Context()),
		r.PathValue("id"),
		r.PathValue("expenseID"),
	)
	if err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
