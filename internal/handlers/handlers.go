package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vitawin1906/vitawin-08-2025-sub000/docs"
	adminhandlers "github.com/vitawin1906/vitawin-08-2025-sub000/internal/handlers/admin"
	networkhandlers "github.com/vitawin1906/vitawin-08-2025-sub000/internal/handlers/network"
	ordershandlers "github.com/vitawin1906/vitawin-08-2025-sub000/internal/handlers/orders"
	settlementhandlers "github.com/vitawin1906/vitawin-08-2025-sub000/internal/handlers/settlement"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type SettlementHandler interface {
	PaymentConfirmed(w http.ResponseWriter, r *http.Request)
	Recover(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	OrderAudit(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	RecalculateLevels(w http.ResponseWriter, r *http.Request)
	AllNetworkStats(w http.ResponseWriter, r *http.Request)
	UserNetwork(w http.ResponseWriter, r *http.Request)
	GetCommissionRates(w http.ResponseWriter, r *http.Request)
	UpdateCommissionRates(w http.ResponseWriter, r *http.Request)
}

type NetworkHandler interface {
	MyNetwork(w http.ResponseWriter, r *http.Request)
	MyLevel(w http.ResponseWriter, r *http.Request)
}

// Security holds what the auth middlewares check requests against.
type Security struct {
	Tokens        auth.TokenValidator
	InternalToken string
}

type Handlers struct {
	OrderHandler      OrderHandler
	SettlementHandler SettlementHandler
	AdminHandler      AdminHandler
	NetworkHandler    NetworkHandler
	Security          Security
}

func New(s *service.Services, security Security) *Handlers {
	return &Handlers{
		OrderHandler:      ordershandlers.New(s.OrderService),
		SettlementHandler: settlementhandlers.New(s.SettlementService, s.OrderService),
		AdminHandler:      adminhandlers.New(s.LevelService, s.NetworkService, s.CommissionService),
		NetworkHandler:    networkhandlers.New(s.NetworkService, s.LevelService),
		Security:          security,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/internal", func(r chi.Router) {
		r.Use(auth.InternalToken(h.Security.InternalToken))
		r.Post("/orders", h.OrderHandler.CreateOrder)
		r.Post("/orders/{orderID}/paid", h.SettlementHandler.PaymentConfirmed)
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Use(auth.Middleware(h.Security.Tokens))
		r.Get("/orders", h.OrderHandler.GetOrders)
		r.Get("/network", h.NetworkHandler.MyNetwork)
		r.Get("/level", h.NetworkHandler.MyLevel)
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.Middleware(h.Security.Tokens), auth.AdminOnly)
		r.Route("/settlements", func(r chi.Router) {
			r.Post("/recover", h.SettlementHandler.Recover)
			r.Get("/stats", h.SettlementHandler.Stats)
		})
		r.Get("/orders/{orderID}/audit", h.SettlementHandler.OrderAudit)
		r.Post("/levels/recalculate", h.AdminHandler.RecalculateLevels)
		r.Get("/network/stats", h.AdminHandler.AllNetworkStats)
		r.Get("/users/{userID}/network", h.AdminHandler.UserNetwork)
		r.Route("/settings/commission-rates", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetCommissionRates)
			r.Put("/", h.AdminHandler.UpdateCommissionRates)
		})
	})

	return r
}
