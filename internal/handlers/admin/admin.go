package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/dto"
	settingsrepo "github.com/vitawin1906/vitawin-08-2025-sub000/internal/repo/settings-repo"
	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/service/commissionservice"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/utils"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/validate"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type LevelService interface {
	RecalculateAll(ctx context.Context) (int, error)
}

type NetworkService interface {
	UserNetworkStats(ctx context.Context, userID int) (domain.NetworkStats, error)
	AllUsersNetworkStats(ctx context.Context) ([]domain.NetworkStats, error)
}

type RatesService interface {
	GetRates(ctx context.Context) (*domain.CommissionRateConfig, error)
	UpdateRates(ctx context.Context, cfg *domain.CommissionRateConfig) error
}

type AdminHandler struct {
	levelService   LevelService
	networkService NetworkService
	ratesService   RatesService
}

func New(levelService LevelService, networkService NetworkService, ratesService RatesService) *AdminHandler {
	return &AdminHandler{
		levelService:   levelService,
		networkService: networkService,
		ratesService:   ratesService,
	}
}

// RecalculateLevels godoc
//
//	@Summary		Recalculate MLM levels
//	@Description	Re-evaluates the level of every user and stores it in the MLM status table.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RecalculateLevelsResponseDTO	"Number of users updated"
//	@Failure		401	{object}	utils.Response						"User not authorized"
//	@Failure		403	{object}	utils.Response						"Admin role required"
//	@Failure		500	{object}	utils.Response						"Internal server error"
//	@Router			/api/admin/levels/recalculate [post]
func (h *AdminHandler) RecalculateLevels(w http.ResponseWriter, r *http.Request) {
	updated, err := h.levelService.RecalculateAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RecalculateLevelsResponseDTO{Updated: updated})
}

// AllNetworkStats godoc
//
//	@Summary		Network statistics of every user
//	@Description	Batch computation over all users. Expensive, meant for reporting.
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		domain.NetworkStats	"Statistics per user"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		403	{object}	utils.Response		"Admin role required"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/network/stats [get]
func (h *AdminHandler) AllNetworkStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.networkService.AllUsersNetworkStats(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if stats == nil {
		stats = []domain.NetworkStats{}
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// UserNetwork godoc
//
//	@Summary		Network statistics of one user
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			userID	path		int					true	"User id"
//	@Success		200		{object}	domain.NetworkStats	"Network statistics"
//	@Failure		400		{object}	utils.Response		"Invalid user id"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		403		{object}	utils.Response		"Admin role required"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/users/{userID}/network [get]
func (h *AdminHandler) UserNetwork(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	stats, err := h.networkService.UserNetworkStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// GetCommissionRates godoc
//
//	@Summary		Current commission rates
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CommissionRatesDTO	"Rates in percent, level 1 first"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Admin role required"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/settings/commission-rates [get]
func (h *AdminHandler) GetCommissionRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.ratesService.GetRates(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CommissionRatesDTO{
		Rates:                rates.Rates,
		BonusCoinsPercentage: rates.BonusCoinsPercentage,
	})
}

// UpdateCommissionRates godoc
//
//	@Summary		Replace commission rates
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CommissionRatesDTO	true	"Rates in percent, level 1 first"
//	@Success		200		{object}	dto.CommissionRatesDTO	"Stored rates"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Admin role required"
//	@Failure		422		{object}	utils.Response			"Rates out of range or unsupported level count"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/settings/commission-rates [put]
func (h *AdminHandler) UpdateCommissionRates(w http.ResponseWriter, r *http.Request) {
	var req dto.CommissionRatesDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Each rate must be between 0 and 100 with 1 to 10 levels")
		return
	}

	cfg := &domain.CommissionRateConfig{
		Rates:                req.Rates,
		BonusCoinsPercentage: req.BonusCoinsPercentage,
	}
	if err := h.ratesService.UpdateRates(r.Context(), cfg); err != nil {
		switch {
		case errors.Is(err, commissionservice.ErrInvalidRates), errors.Is(err, settingsrepo.ErrUnsupportedTiers):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, req)
}
