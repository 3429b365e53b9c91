package get_catalog

import (
	"errors"
	"net/http"

	"github.com/salaluna/offer-service/internal/api/handlers"
	catalogService "github.com/salaluna/offer-service/internal/service/catalog"
)

const (
	msgCatalogUnavailable = "catálogo no disponible, inténtelo más tarde"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSnapshot(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrUnavailable):
			h.logger.Warn("GET /catalog - Catalog unavailable")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogUnavailable)

		default:
			h.logger.Error("GET /catalog - Failed to fetch catalog: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /catalog - Snapshot served: %d packages, %d services",
		len(result.Packages), len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
