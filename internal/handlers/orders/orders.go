package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/dto"
	orderservice "github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/orderservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/auth"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/utils"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/validate"
)

//go:generate mockgen -source=orders.go -destination=mock_orders.go -package=orders

type Service interface {
	CreateOrder(ctx context.Context, userID int, total decimal.Decimal, paid bool) (*domain.Order, error)
	GetOrders(ctx context.Context, userID int) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrder godoc
//
//	@Summary		Register an order
//	@Description	Storefront call that records a new order. Point value is derived from the total.
//	@Tags			Internal
//	@Accept			json
//	@Produce		json
//	@Param			X-Internal-Token	header		string						true	"Shared service token"
//	@Param			request				body		dto.CreateOrderRequestDTO	true	"Order payload"
//	@Success		201					{object}	dto.OrderResponseDTO		"Order created"
//	@Failure		400					{object}	utils.Response				"Invalid request body"
//	@Failure		401					{object}	utils.Response				"Invalid service token"
//	@Failure		404					{object}	utils.Response				"Buyer not found"
//	@Failure		500					{object}	utils.Response				"Internal server error"
//	@Router			/api/internal/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order: user_id and a positive total are required")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req.UserID, req.Total, req.Paid)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, orderservice.ErrInvalidTotal):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(*order))
}

// GetOrders godoc
//
//	@Summary		Get orders list for user
//	@Description	Retrieve the orders of the authorized user, newest first
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Success		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orderService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i, order := range orders {
		response[i] = toResponse(order)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponse(order domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:            order.ID,
		UserID:        order.UserID,
		Total:         order.Total.StringFixed(2),
		PVEarned:      order.PVEarned,
		PaymentStatus: string(order.PaymentStatus),
		Status:        order.Status,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
}
