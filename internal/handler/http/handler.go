package http

import (
	"github.com/MKhiriev/go-bot-keeper/internal/logger"
	"github.com/MKhiriev/go-bot-keeper/internal/service"
	"github.com/MKhiriev/go-bot-keeper/internal/utils"
)

type Handler struct {
	services *service.Services
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
