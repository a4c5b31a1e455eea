package dto

import "github.com/shopspring/decimal"

type CreateOrderRequestDTO struct {
	UserID int             `json:"user_id" validate:"gt=0" example:"42"`
	Total  decimal.Decimal `json:"total" validate:"gt=0" swaggertype:"string" example:"1000.00"`
	Paid   bool            `json:"paid" example:"false"`
}

type OrderResponseDTO struct {
	ID            int    `json:"id" example:"7"`
	UserID        int    `json:"user_id" example:"42"`
	Total         string `json:"total" example:"1000.00"`
	PVEarned      int    `json:"pv_earned" example:"5"`
	PaymentStatus string `json:"payment_status" example:"paid"`
	Status        string `json:"status" example:"settled"`
	CreatedAt     string `json:"created_at" example:"2025-08-09T16:09:57+03:00"`
}
