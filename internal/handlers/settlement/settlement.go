package settlement

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	orderservice "github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/orderservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/settlementservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/utils"
)

//go:generate mockgen -source=settlement.go -destination=mock_settlement.go -package=settlement

type Service interface {
	HandlePaymentConfirmed(ctx context.Context, orderID int) (*domain.SettlementResult, error)
	RecoverFailedTransactions(ctx context.Context, orderID *int) (domain.RecoveryReport, error)
	TransactionStats(ctx context.Context) (domain.TransactionStats, error)
	OrderAudit(ctx context.Context, orderID int) (domain.OrderAudit, error)
}

type PaymentService interface {
	ConfirmPayment(ctx context.Context, orderID int) (*domain.Order, error)
}

type SettlementHandler struct {
	settlementService Service
	paymentService    PaymentService
}

func New(settlementService Service, paymentService PaymentService) *SettlementHandler {
	return &SettlementHandler{
		settlementService: settlementService,
		paymentService:    paymentService,
	}
}

func orderIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	return id, err == nil && id > 0
}

// PaymentConfirmed godoc
//
//	@Summary		Payment confirmed trigger
//	@Description	Marks the order paid and distributes referral bonuses. Repeated calls for a settled order are no-ops.
//	@Tags			Internal
//	@Produce		json
//	@Param			X-Internal-Token	header		string						true	"Shared service token"
//	@Param			orderID				path		int							true	"Order id"
//	@Success		200					{object}	domain.SettlementResult		"Settlement outcome"
//	@Failure		400					{object}	utils.Response				"Invalid order id"
//	@Failure		401					{object}	utils.Response				"Invalid service token"
//	@Failure		404					{object}	utils.Response				"Order not found"
//	@Failure		409					{object}	utils.Response				"Settlement already in progress"
//	@Failure		500					{object}	utils.Response				"Internal server error"
//	@Router			/api/internal/orders/{orderID}/paid [post]
func (h *SettlementHandler) PaymentConfirmed(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	if _, err := h.paymentService.ConfirmPayment(r.Context(), orderID); err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	result, err := h.settlementService.HandlePaymentConfirmed(r.Context(), orderID)
	switch {
	case errors.Is(err, settlementservice.ErrSettlementInProgress):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, settlementservice.ErrOrderNotFound), errors.Is(err, settlementservice.ErrBuyerNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case err != nil:
		zap.L().Error("settlement failed", zap.Int("orderID", orderID), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	default:
		utils.RespondWithJSON(w, http.StatusOK, result)
	}
}

// Recover godoc
//
//	@Summary		Re-run failed settlements
//	@Description	Retries every order with failed settlement audit rows, or only the given order.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			order_id	query		int						false	"Limit recovery to one order"
//	@Success		200			{object}	domain.RecoveryReport	"Recovery report"
//	@Failure		400			{object}	utils.Response			"Invalid order id"
//	@Failure		401			{object}	utils.Response			"User not authorized"
//	@Failure		403			{object}	utils.Response			"Admin role required"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/settlements/recover [post]
func (h *SettlementHandler) Recover(w http.ResponseWriter, r *http.Request) {
	var orderID *int
	if raw := r.URL.Query().Get("order_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
			return
		}
		orderID = &id
	}

	report, err := h.settlementService.RecoverFailedTransactions(r.Context(), orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, report)
}

// Stats godoc
//
//	@Summary		Settlement statistics
//	@Description	Audit rows counted by status plus the most recent entries.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.TransactionStats	"Statistics"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Admin role required"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/settlements/stats [get]
func (h *SettlementHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.settlementService.TransactionStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// OrderAudit godoc
//
//	@Summary		Order settlement audit
//	@Description	Bonus records, audit rows and processing log of one order.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			orderID	path		int					true	"Order id"
//	@Success		200		{object}	domain.OrderAudit	"Audit trail"
//	@Failure		400		{object}	utils.Response		"Invalid order id"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		403		{object}	utils.Response		"Admin role required"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/orders/{orderID}/audit [get]
func (h *SettlementHandler) OrderAudit(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDParam(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	audit, err := h.settlementService.OrderAudit(r.Context(), orderID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, audit)
}
