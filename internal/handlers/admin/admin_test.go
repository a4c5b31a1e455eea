package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/dto"
	settingsrepo "github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo/settings-repo"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/commissionservice"
)

type mocks struct {
	levels  *MockLevelService
	network *MockNetworkService
	rates   *MockRatesService
}

func NewMock(t *testing.T) (*AdminHandler, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		levels:  NewMockLevelService(ctrl),
		network: NewMockNetworkService(ctrl),
		rates:   NewMockRatesService(ctrl),
	}
	return New(m.levels, m.network, m.rates), m
}

func TestRecalculateLevels(t *testing.T) {
	handler, m := NewMock(t)

	m.levels.EXPECT().RecalculateAll(gomock.Any()).Return(120, nil)
	w := httptest.NewRecorder()
	handler.RecalculateLevels(w, httptest.NewRequest(http.MethodPost, "/api/admin/levels/recalculate", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body dto.RecalculateLevelsResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 120, body.Updated)

	m.levels.EXPECT().RecalculateAll(gomock.Any()).Return(3, errors.New("partial"))
	w = httptest.NewRecorder()
	handler.RecalculateLevels(w, httptest.NewRequest(http.MethodPost, "/api/admin/levels/recalculate", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAllNetworkStats(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Every user",
			prepareMock: func() {
				m.network.EXPECT().AllUsersNetworkStats(gomock.Any()).Return([]domain.NetworkStats{
					{UserID: 1, CurrentLevel: 3},
					{UserID: 2, CurrentLevel: 1},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No users",
			prepareMock: func() {
				m.network.EXPECT().AllUsersNetworkStats(gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "[]",
		},
		{
			name: "Service error",
			prepareMock: func() {
				m.network.EXPECT().AllUsersNetworkStats(gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.AllNetworkStats(w, httptest.NewRequest(http.MethodGet, "/api/admin/network/stats", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestUserNetwork(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "User found",
			userID: "4",
			prepareMock: func() {
				m.network.EXPECT().UserNetworkStats(gomock.Any(), 4).Return(domain.NetworkStats{UserID: 4}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid user id",
			userID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Service error",
			userID: "4",
			prepareMock: func() {
				m.network.EXPECT().UserNetworkStats(gomock.Any(), 4).Return(domain.NetworkStats{}, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userID", tt.userID)
			r := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/admin/users/%s/network", tt.userID), nil)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.UserNetwork(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetCommissionRates(t *testing.T) {
	handler, m := NewMock(t)

	m.rates.EXPECT().GetRates(gomock.Any()).Return(&domain.CommissionRateConfig{
		Rates:                []decimal.Decimal{decimal.NewFromInt(20), decimal.NewFromInt(5), decimal.NewFromInt(1)},
		BonusCoinsPercentage: decimal.NewFromInt(5),
	}, nil)
	w := httptest.NewRecorder()
	handler.GetCommissionRates(w, httptest.NewRequest(http.MethodGet, "/api/admin/settings/commission-rates", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rates":["20","5","1"],"bonus_coins_percentage":"5"}`, w.Body.String())

	m.rates.EXPECT().GetRates(gomock.Any()).Return(nil, commissionservice.ErrInvalidRates)
	w = httptest.NewRecorder()
	handler.GetCommissionRates(w, httptest.NewRequest(http.MethodGet, "/api/admin/settings/commission-rates", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateCommissionRates(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Rates replaced",
			body: `{"rates": ["25", "5", "2"], "bonus_coins_percentage": "5"}`,
			prepareMock: func() {
				m.rates.EXPECT().UpdateRates(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, cfg *domain.CommissionRateConfig) error {
						assert.Equal(t, 3, cfg.Tiers())
						assert.Equal(t, "25", cfg.Rates[0].String())
						return nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Malformed body",
			body:         `{"rates": [`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Rate above 100",
			body:         `{"rates": ["120", "5", "2"], "bonus_coins_percentage": "5"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "No levels",
			body:         `{"rates": [], "bonus_coins_percentage": "5"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Store holds a fixed level count",
			body: `{"rates": ["25", "5"], "bonus_coins_percentage": "5"}`,
			prepareMock: func() {
				m.rates.EXPECT().UpdateRates(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("save commission rates: %w", settingsrepo.ErrUnsupportedTiers))
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Store error",
			body: `{"rates": ["25", "5", "2"], "bonus_coins_percentage": "5"}`,
			prepareMock: func() {
				m.rates.EXPECT().UpdateRates(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPut, "/api/admin/settings/commission-rates", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.UpdateCommissionRates(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
