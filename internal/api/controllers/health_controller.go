package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"tripgenius/internal/models/response_models"
	"tripgenius/internal/repositories"
	"tripgenius/pkg/utils"
)

type HealthController struct {
	userRepo repositories.UserRepository
	tripRepo repositories.TripRepository
}

func NewHealthController(userRepo repositories.UserRepository, tripRepo repositories.TripRepository) *HealthController {
	return &HealthController{
		userRepo: userRepo,
		tripRepo: tripRepo,
	}
}

// Ping godoc
// @Summary Health check
// @Description Report liveness and store record counts
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /ping [get]
func (h *HealthController) Ping(c *gin.Context) {
	ctx := context.Background()
	users, err := h.userRepo.All(ctx)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	trips, err := h.tripRepo.All(ctx)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.HealthResponse{
		Message:   "pong",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Users:     len(users),
		Trips:     len(trips),
	}, "")
}
