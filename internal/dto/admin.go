package dto

import "github.com/shopspring/decimal"

type RecalculateLevelsResponseDTO struct {
	Updated int `json:"updated" example:"120"`
}

type CommissionRatesDTO struct {
	Rates                []decimal.Decimal `json:"rates" validate:"min=1,max=10,dive,gte=0,lte=100" swaggertype:"array,string" example:"20,5,1"`
	BonusCoinsPercentage decimal.Decimal   `json:"bonus_coins_percentage" validate:"gte=0,lte=100" swaggertype:"string" example:"5"`
}
