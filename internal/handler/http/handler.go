package http

import (
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/service"
)

// Handler serves the REST API of the admin record store. Routes are built by
// Init.
type Handler struct {
	services *service.Services

	// logger is the parent of every request-scoped logger.
	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{services: services, logger: logger}
}
