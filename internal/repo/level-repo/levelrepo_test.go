package levelrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_ListLevels(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("FROM mlm_levels ORDER BY level")
	fields := []string{"level", "name", "percentage", "required_referrals", "required_volume"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.MlmLevel
	}{
		{
			name: "Level table",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(fields).
					AddRow(1, "Start", "5", 0, 0).
					AddRow(2, "Bronze", "7", 3, 100))
			},
			result: []domain.MlmLevel{
				{Level: 1, Name: "Start", Percentage: decimal.RequireFromString("5"), RequiredReferrals: 0, RequiredVolume: 0},
				{Level: 2, Name: "Bronze", Percentage: decimal.RequireFromString("7"), RequiredReferrals: 3, RequiredVolume: 100},
			},
		},
		{
			name: "Empty table",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(fields))
			},
		},
		{
			name: "Broken percentage",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(fields).AddRow(1, "Start", "%", 0, 0))
			},
			expectErr: true,
		},
		{
			name: "Stream interrupted",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(fields).
					AddRow(1, "Start", "5", 0, 0).
					RowError(1, errors.New("conn reset")))
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListLevels(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}
