package http

import (
	"github.com/patas-felizes/backend/internal/config"
	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/internal/service"
)

type Handler struct {
	services *service.Services

	rateLimit config.RateLimit
	logger    *logger.Logger
}

func NewHandler(services *service.Services, rateLimit config.RateLimit, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		rateLimit: rateLimit,
		logger:    logger,
	}
}
