package list_client_offers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salaluna/offer-service/internal/api/handlers"
	"github.com/salaluna/offer-service/internal/api/middleware"
	offersService "github.com/salaluna/offer-service/internal/service/offers"
	"github.com/salaluna/offer-service/internal/service/offers/models"
)

const (
	msgInvalidClientID = "identificador de cliente no válido"
	msgInvalidStatus   = "estado de oferta no válido"
	msgAccessDenied    = "acceso denegado"
)

type Handler struct {
	service OffersService
	logger  Logger
}

func NewHandler(service OffersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/offers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.UserID(r)

	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil || clientID <= 0 {
		h.logger.Warn("GET /clients/{clientId}/offers - Invalid client id: %v", mux.Vars(r)["clientId"])
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	// Clients only list their own offer history
	if callerID != clientID {
		h.logger.Warn("GET /clients/{clientId}/offers - Access denied: caller_id=%d, client_id=%d", callerID, clientID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.ListOffersRequest{ClientID: clientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.ListByClient(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, offersService.ErrInvalidInput):
			h.logger.Warn("GET /clients/{clientId}/offers - Invalid status filter: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/{clientId}/offers - Failed to list offers: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{clientId}/offers - Listed %d offers: client_id=%d", result.Total, clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
