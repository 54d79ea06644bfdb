package http

import (
	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/service"
	"github.com/StephEngl/KanMind/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}
