package network

import (
	"context"
	"net/http"

	"github.com/vitawin1906/vitawin-08-2025-sub000/internal/domain"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/auth"
	"github.com/vitawin1906/vitawin-08-2025-sub000/pkg/utils"
)

//go:generate mockgen -source=network.go -destination=mock_network.go -package=network

type Service interface {
	UserNetworkStats(ctx context.Context, userID int) (domain.NetworkStats, error)
}

type LevelService interface {
	Classify(ctx context.Context, userID int) (domain.LevelStatus, error)
}

type NetworkHandler struct {
	networkService Service
	levelService   LevelService
}

func New(networkService Service, levelService LevelService) *NetworkHandler {
	return &NetworkHandler{
		networkService: networkService,
		levelService:   levelService,
	}
}

// MyNetwork godoc
//
//	@Summary		Get own referral network
//	@Description	Personal and group volume, downline breakdown by depth, earned bonuses and current level.
//	@Tags			Network
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.NetworkStats	"Network statistics"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/network [get]
func (h *NetworkHandler) MyNetwork(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.networkService.UserNetworkStats(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// MyLevel godoc
//
//	@Summary		Get own MLM level
//	@Description	Current level, the next one and progress towards it.
//	@Tags			Network
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	domain.LevelStatus	"Level status"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/user/level [get]
func (h *NetworkHandler) MyLevel(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status, err := h.levelService.Classify(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, status)
}
