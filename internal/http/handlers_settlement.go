package http

import (
	"fmt"
	"net/http"

	"github.com/divvyhq/divvy/internal/ledger"
	"github.com/divvyhq/divvy/internal/middleware"
	"github.com/divvyhq/divvy/internal/models"
	"github.com/divvyhq/divvy/internal/money"
	"github.com/divvyhq/divvy/internal/service"
)

type balanceResponse struct {
	UserID   string `json:"user_id"`
	Net      string `json:"net"`
	NetCents int64  `json:"net_cents"`
	Status   string `json:"status"`
}

type instructionResponse struct {
	FromUserID  string `json:"from_user_id"`
	ToUserID    string `json:"to_user_id"`
	Amount      string `json:"amount"`
	AmountCents int64  `json:"amount_cents"`
}

type balanceSheetResponse struct {
	GroupID  string                `json:"group_id"`
	Balances []balanceResponse     `json:"balances"`
	Plan     []instructionResponse `json:"suggested_settlements"`
	Snapshot string                `json:"snapshot"`
}

type settlementResponse struct {
	ID          string `json:"id"`
	GroupID     string `json:"group_id"`
	FromUserID  string `json:"from_user_id"`
	ToUserID    string `json:"to_user_id"`
	Amount      string `json:"amount"`
	AmountCents int64  `json:"amount_cents"`
	Note        string `json:"note,omitempty"`
	CreatedBy   string `json:"created_by"`
	CreatedAt   int64  `json:"created_at"`
}

func toSettlementResponse(s *models.Settlement) settlementResponse {
	return settlementResponse{
		ID:          s.ID,
		GroupID:     s.GroupID,
		FromUserID:  s.FromUserID,
		ToUserID:    s.ToUserID,
		Amount:      s.Amount.String(),
		AmountCents: int64(s.Amount),
		Note:        s.Note,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
	}
}

func balanceStatus(net money.Cents) string {
	switch {
	case net > ledger.Epsilon:
		return "creditor"
	case net < -ledger.Epsilon:
		return "debtor"
	default:
		return "settled"
	}
}

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	sheet, err := s.settlements.GroupBalances(r.Context(), middleware.GetUserID(r.Context()), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	balances := make([]balanceResponse, len(sheet.Balances))
	for i, b := range sheet.Balances {
		balances[i] = balanceResponse{
			UserID:   b.MemberID,
			Net:      b.Net.String(),
			NetCents: int64(b.Net),
			Status:   balanceStatus(b.Net),
		}
	}

	plan := make([]instructionResponse, len(sheet.Plan))
	for i, ins := range sheet.Plan {
		plan[i] = instructionResponse{
			FromUserID:  ins.FromUserID,
			ToUserID:    ins.ToUserID,
			Amount:      ins.Amount.String(),
			AmountCents: int64(ins.Amount),
		}
	}

	respondJSON(w, http.StatusOK, balanceSheetResponse{
		GroupID:  sheet.Group.ID,
		Balances: balances,
		Plan:     plan,
		Snapshot: sheet.Snapshot,
	})
}

func (s *Server) handleConfirmSettlement(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FromUserID string `json:"from_user_id"`
		ToUserID   string `json:"to_user_id"`
		Amount     string `json:"amount"`
		Note       string `json:"note"`
		Snapshot   string `json:"snapshot"`
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

	settlement, err := s.settlements.Confirm(
		r.Context(),
		middleware.GetUserID(r.Context()),
		r.PathValue("id"),
		req.FromUserID,
		req.ToUserID,
		amount,
		req.Note,
		req.Snapshot,
	)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toSettlementResponse(settlement))
}

func (s *Server) handleListSettlements(w http.ResponseWriter, r *http.Request) {
	settlements, err := s.settlements.History(r.Context(), middleware.GetUserID(r.Context()), r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}

	out := make([]settlementResponse, len(settlements))
	for i, s := range settlements {
		out[i] = toSettlementResponse(s)
	}
	respondJSON(w, http.StatusOK, map[string][]settlementResponse{"settlements": out})
}
