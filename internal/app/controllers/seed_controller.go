package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/app/models/dto"
)

// MsgSeeded is returned once every sample table is populated
const MsgSeeded = "Database seeded successfully"

// Seeder populates the database with sample data
type Seeder interface {
	Run(ctx context.Context) error
}

// SeedController exposes the seed loader
type SeedController struct {
	seeder Seeder
	logger zerolog.Logger
}

// NewSeedController creates a new SeedController
func NewSeedController(seeder Seeder, logger zerolog.Logger) *SeedController {
	return &SeedController{seeder: seeder, logger: logger}
}

// Seed creates the sample tables and rows. Running it again changes nothing.
// @Summary Seed the database
// @Tags seed
// @Produce json
// @Success 200 {object} dto.MessageResponse "Database seeded successfully"
// @Failure 500 {object} dto.FailureResponse
// @Router /seed [get]
func (c *SeedController) Seed(ctx *gin.Context) {
	if err := c.seeder.Run(ctx.Request.Context()); err != nil {
		c.logger.Error().Err(err).Msg("Seeding failed")
		ctx.JSON(http.StatusInternalServerError, dto.FailureResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: MsgSeeded})
}
