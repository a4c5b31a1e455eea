package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	users := NewMockUserRepo(ctrl)
	service := New(repo, users, 200)
	return service, repo, users
}

func TestCreateOrder(t *testing.T) {
	service, repo, users := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		total         string
		paid          bool
		prepareMock   func()
		expectedOrder *domain.Order
		expectedError error
	}{
		{
			name:   "New paid order with point value",
			userID: 1,
			total:  "1000.00",
			paid:   true,
			prepareMock: func() {
				users.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o *domain.Order) error {
					o.ID = 10
					return nil
				})
			},
			expectedOrder: &domain.Order{
				ID:            10,
				UserID:        1,
				PVEarned:      5,
				PaymentStatus: domain.PaymentPaid,
				Status:        NewOrderStatus,
			},
		},
		{
			name:   "Pending order rounds point value down",
			userID: 1,
			total:  "399.99",
			prepareMock: func() {
				users.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedOrder: &domain.Order{
				UserID:        1,
				PVEarned:      1,
				PaymentStatus: domain.PaymentPending,
				Status:        NewOrderStatus,
			},
		},
		{
			name:          "Zero total",
			userID:        1,
			total:         "0",
			expectedError: ErrInvalidTotal,
		},
		{
			name:   "Unknown user",
			userID: 2,
			total:  "10",
			prepareMock: func() {
				users.EXPECT().FindByID(gomock.Any(), 2).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:   "Cannot save new order",
			userID: 1,
			total:  "10",
			prepareMock: func() {
				users.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			order, err := service.CreateOrder(context.Background(), tt.userID, decimal.RequireFromString(tt.total), tt.paid)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOrder.ID, order.ID)
			assert.Equal(t, tt.expectedOrder.UserID, order.UserID)
			assert.Equal(t, tt.expectedOrder.PVEarned, order.PVEarned)
			assert.Equal(t, tt.expectedOrder.PaymentStatus, order.PaymentStatus)
			assert.Equal(t, tt.expectedOrder.Status, order.Status)
			assert.True(t, order.Total.Equal(decimal.RequireFromString(tt.total)))
		})
	}
}

func TestConfirmPayment(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Pending order becomes paid",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Order{ID: 5, PaymentStatus: domain.PaymentPending}, nil)
				repo.EXPECT().MarkPaid(gomock.Any(), 5).Return(true, nil)
			},
		},
		{
			name: "Already paid order is left alone",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Order{ID: 5, PaymentStatus: domain.PaymentPaid}, nil)
			},
		},
		{
			name: "Order not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name: "Update fails",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Order{ID: 5, PaymentStatus: domain.PaymentPending}, nil)
				repo.EXPECT().MarkPaid(gomock.Any(), 5).Return(false, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			order, err := service.ConfirmPayment(context.Background(), 5)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.PaymentPaid, order.PaymentStatus)
		})
	}
}

func TestGetOrders(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name           string
		userID         int
		prepareMock    func()
		expectedOrders []domain.Order
		expectedError  error
	}{
		{
			name:   "No orders found",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, nil)
			},
		},
		{
			name:   "Orders returned",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Order{{ID: 2}, {ID: 1}}, nil)
			},
			expectedOrders: []domain.Order{{ID: 2}, {ID: 1}},
		},
		{
			name:   "Error fetching orders",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			orders, err := service.GetOrders(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOrders, orders)
			}
		})
	}
}
