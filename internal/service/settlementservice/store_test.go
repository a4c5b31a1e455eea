package settlementservice

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
)

var errInjected = errors.New("injected failure")

// memStore keeps orders, users and the settlement trail in memory with the
// same uniqueness rule as the referrals table.
type memStore struct {
	mu         sync.Mutex
	orders     map[int]*domain.Order
	users      map[int]domain.User
	referrals  []domain.Referral
	txlog      []domain.TxLogEntry
	plog       []domain.ProcessingLogEntry
	rates      *domain.CommissionRateConfig
	failInsert map[int]int
	failRates  int
	nextID     int
}

func newMemStore() *memStore {
	return &memStore{
		orders: map[int]*domain.Order{},
		users:  map[int]domain.User{},
		rates: &domain.CommissionRateConfig{
			Rates:                []decimal.Decimal{decimal.NewFromInt(20), decimal.NewFromInt(5), decimal.NewFromInt(1)},
			BonusCoinsPercentage: decimal.NewFromInt(5),
		},
		failInsert: map[int]int{},
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

func (m *memStore) addUser(id int, name string, referrerID int) {
	u := domain.User{ID: id, FirstName: name}
	if referrerID != 0 {
		u.ReferrerID = &referrerID
	}
	m.users[id] = u
}

func (m *memStore) addOrder(id, userID int, total string, status domain.PaymentStatus) {
	m.orders[id] = &domain.Order{
		ID:            id,
		UserID:        userID,
		Total:         decimal.RequireFromString(total),
		PaymentStatus: status,
		Status:        "new",
	}
}

func (m *memStore) referralsFor(orderID int) []domain.Referral {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Referral
	for _, r := range m.referrals {
		if r.OrderID == orderID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out
}

func (m *memStore) txlogFor(orderID int) []domain.TxLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.TxLogEntry
	for _, e := range m.txlog {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out
}

func (m *memStore) repos() Repos {
	return Repos{
		Orders:        orderStore{m},
		Users:         userStore{m},
		Referrals:     referralStore{m},
		TxLog:         txLogStore{m},
		ProcessingLog: processingLogStore{m},
	}
}

type orderStore struct{ m *memStore }

func (s orderStore) FindByID(_ context.Context, id int) (*domain.Order, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	o, ok := s.m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (s orderStore) UpdateStatus(_ context.Context, id int, status string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if o, ok := s.m.orders[id]; ok {
		o.Status = status
	}
	return nil
}

type userStore struct{ m *memStore }

func (s userStore) FindByID(_ context.Context, id int) (*domain.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	u, ok := s.m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s userStore) FindByReferrerID(ctx context.Context, referrerID int) ([]domain.User, error) {
	return s.FindByReferrerIDs(ctx, []int{referrerID})
}

func (s userStore) FindByReferrerIDs(_ context.Context, referrerIDs []int) ([]domain.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []domain.User
	for _, u := range s.m.users {
		for _, id := range referrerIDs {
			if u.ReferrerID != nil && *u.ReferrerID == id {
				out = append(out, u)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s userStore) GetCommissionRates(context.Context) (*domain.CommissionRateConfig, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if s.m.failRates > 0 {
		s.m.failRates--
		return nil, errInjected
	}
	cp := *s.m.rates
	return &cp, nil
}

func (s userStore) UpdateCommissionRates(_ context.Context, cfg *domain.CommissionRateConfig) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.rates = cfg
	return nil
}

type referralStore struct{ m *memStore }

func (s referralStore) Exists(_ context.Context, orderID, level int) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, r := range s.m.referrals {
		if r.OrderID == orderID && r.Level == level {
			return true, nil
		}
	}
	return false, nil
}

func (s referralStore) Insert(_ context.Context, referral *domain.Referral) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if n := s.m.failInsert[referral.Level]; n > 0 {
		s.m.failInsert[referral.Level] = n - 1
		return false, errInjected
	}
	for _, r := range s.m.referrals {
		if r.OrderID == referral.OrderID && r.Level == referral.Level {
			return false, nil
		}
	}
	referral.ID = s.m.id()
	referral.CreatedAt = time.Now()
	s.m.referrals = append(s.m.referrals, *referral)
	return true, nil
}

func (s referralStore) ListByOrder(_ context.Context, orderID int) ([]domain.Referral, error) {
	return s.m.referralsFor(orderID), nil
}

type txLogStore struct{ m *memStore }

func (s txLogStore) Create(_ context.Context, entry *domain.TxLogEntry) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	entry.ID = s.m.id()
	entry.CreatedAt = time.Now()
	s.m.txlog = append(s.m.txlog, *entry)
	return nil
}

func (s txLogStore) update(id int, fn func(e *domain.TxLogEntry)) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for i := range s.m.txlog {
		if s.m.txlog[i].ID == id {
			fn(&s.m.txlog[i])
		}
	}
}

func (s txLogStore) UpdateStatus(_ context.Context, id int, status domain.TxStatus, meta map[string]any) error {
	s.update(id, func(e *domain.TxLogEntry) {
		e.Status = status
		now := time.Now()
		e.ProcessedAt = &now
	})
	return nil
}

func (s txLogStore) SetNotificationResult(_ context.Context, id int, status domain.TxStatus, sent bool, notifyErr *string) error {
	s.update(id, func(e *domain.TxLogEntry) {
		e.Status = status
		e.NotificationSent = sent
		e.NotificationError = notifyErr
	})
	return nil
}

func (s txLogStore) SupersedeFailed(_ context.Context, orderID, level int) (int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var n int64
	for i := range s.m.txlog {
		e := &s.m.txlog[i]
		if e.OrderID == orderID && e.Level == level && e.Status == domain.TxFailed {
			e.Status = domain.TxSuperseded
			n++
		}
	}
	return n, nil
}

func (s txLogStore) FailedOrderIDs(_ context.Context, orderID *int, limit int) ([]int, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	failed := map[int]bool{}
	for _, e := range s.m.txlog {
		if e.Status == domain.TxFailed {
			failed[e.OrderID] = true
		}
	}
	latest := map[int]domain.ProcessingLogEntry{}
	for _, e := range s.m.plog {
		latest[e.OrderID] = e
	}
	for id, e := range latest {
		reason, _ := e.Details["reason"].(string)
		if e.Status == domain.StageFailed && reason != domain.ReasonOrderNotFound && reason != domain.ReasonBuyerNotFound {
			failed[id] = true
		}
	}

	var out []int
	for id := range failed {
		if orderID == nil || *orderID == id {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s txLogStore) StatusCounts(context.Context) (map[domain.TxStatus]int, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	counts := map[domain.TxStatus]int{}
	for _, e := range s.m.txlog {
		counts[e.Status]++
	}
	return counts, nil
}

func (s txLogStore) Recent(_ context.Context, limit int) ([]domain.TxLogEntry, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []domain.TxLogEntry
	for i := len(s.m.txlog) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.m.txlog[i])
	}
	return out, nil
}

func (s txLogStore) ListByOrder(_ context.Context, orderID int) ([]domain.TxLogEntry, error) {
	return s.m.txlogFor(orderID), nil
}

type processingLogStore struct{ m *memStore }

func (s processingLogStore) Append(_ context.Context, orderID int, stage string, status domain.ProcessingStatus, details map[string]any) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.plog = append(s.m.plog, domain.ProcessingLogEntry{
		ID:        s.m.id(),
		OrderID:   orderID,
		Stage:     stage,
		Status:    status,
		Details:   details,
		CreatedAt: time.Now(),
	})
	return nil
}

func (s processingLogStore) HasCompleted(_ context.Context, orderID int) (bool, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, e := range s.m.plog {
		if e.OrderID == orderID && e.Status == domain.StageCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (s processingLogStore) ListByOrder(_ context.Context, orderID int) ([]domain.ProcessingLogEntry, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var out []domain.ProcessingLogEntry
	for _, e := range s.m.plog {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}
