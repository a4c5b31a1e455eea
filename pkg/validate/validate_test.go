package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

func TestStruct_CommissionRateConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       domain.CommissionRateConfig
		expectErr bool
	}{
		{
			name: "Default rates",
			cfg: domain.CommissionRateConfig{
				Rates:                []decimal.Decimal{decimal.NewFromInt(20), decimal.NewFromInt(5), decimal.NewFromInt(1)},
				BonusCoinsPercentage: decimal.NewFromInt(5),
			},
			expectErr: false,
		},
		{
			name: "Zero and hundred are allowed",
			cfg: domain.CommissionRateConfig{
				Rates:                []decimal.Decimal{decimal.NewFromInt(100), decimal.Zero},
				BonusCoinsPercentage: decimal.Zero,
			},
			expectErr: false,
		},
		{
			name: "Rate above hundred",
			cfg: domain.CommissionRateConfig{
				Rates: []decimal.Decimal{decimal.RequireFromString("100.5")},
			},
			expectErr: true,
		},
		{
			name: "Negative rate",
			cfg: domain.CommissionRateConfig{
				Rates: []decimal.Decimal{decimal.NewFromInt(20), decimal.NewFromInt(-1)},
			},
			expectErr: true,
		},
		{
			name:      "No tiers",
			cfg:       domain.CommissionRateConfig{},
			expectErr: true,
		},
		{
			name: "Bonus coins out of range",
			cfg: domain.CommissionRateConfig{
				Rates:                []decimal.Decimal{decimal.NewFromInt(20)},
				BonusCoinsPercentage: decimal.NewFromInt(120),
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.cfg)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
