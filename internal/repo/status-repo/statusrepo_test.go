package statusrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/pg"
)

var statusFields = []string{"user_id", "current_level", "total_referrals", "total_earnings", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func TestRepository_GetMlmStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("FROM user_mlm_status WHERE user_id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.MlmStatus
	}{
		{
			name: "Status exists",
			mockSetup: func() {
				rows := pgxmock.NewRows(statusFields).AddRow(4, 2, 6, "310.00", now)
				mock.ExpectQuery(query).WithArgs(4).WillReturnRows(rows)
			},
			result: &domain.MlmStatus{
				UserID:         4,
				CurrentLevel:   2,
				TotalReferrals: 6,
				TotalEarnings:  decimal.RequireFromString("310.00"),
				UpdatedAt:      now,
			},
		},
		{
			name: "No status yet",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(4).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Broken earnings",
			mockSetup: func() {
				rows := pgxmock.NewRows(statusFields).AddRow(4, 2, 6, "n/a", now)
				mock.ExpectQuery(query).WithArgs(4).WillReturnRows(rows)
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(4).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetMlmStatus(context.Background(), 4)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_UpsertMlmStatus(t *testing.T) {
	repo, mock, tx := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta("INSERT INTO user_mlm_status (user_id, current_level, total_referrals, total_earnings, updated_at)")
	status := &domain.MlmStatus{
		UserID:         4,
		CurrentLevel:   3,
		TotalReferrals: 10,
		TotalEarnings:  decimal.RequireFromString("120.5"),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Upserted",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(query).
						WithArgs(4, 3, 10, "120.5").
						WillReturnRows(pgxmock.NewRows(statusFields).AddRow(4, 3, 10, "120.50", now))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(query).
						WithArgs(4, 3, 10, "120.5").
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
		{
			name: "Transaction not started",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("begin transaction: refused"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpsertMlmStatus(context.Background(), status)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 3, result.CurrentLevel)
			assert.Equal(t, "120.5", result.TotalEarnings.String())
			assert.Equal(t, now, result.UpdatedAt)
		})
	}
}
