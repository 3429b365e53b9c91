package create_offer

import (
	"errors"
	"net/http"

	"github.com/salaluna/offer-service/internal/api/handlers"
	"github.com/salaluna/offer-service/internal/api/middleware"
	"github.com/salaluna/offer-service/internal/domain"
	offersService "github.com/salaluna/offer-service/internal/service/offers"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgCatalogUnavailable = "catálogo no disponible, inténtelo más tarde"
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

// Handle POST /api/v1/offers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.UserID(r)

	var req CreateOfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /offers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /offers - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, offersService.ErrInvalidInput):
			h.logger.Warn("POST /offers - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, domain.ErrExclusivityViolation),
			errors.Is(err, domain.ErrScheduleViolation),
			errors.Is(err, domain.ErrInvalidSelection),
			errors.Is(err, domain.ErrGuestCountBelowMinimum),
			errors.Is(err, domain.ErrPackageNotOffered):
			h.logger.Warn("POST /offers - Selection rejected: client_id=%d, error=%v", clientID, err)
			handlers.RespondUnprocessable(w, err.Error())

		case errors.Is(err, offersService.ErrCatalogUnavailable):
			h.logger.Warn("POST /offers - Catalog unavailable: client_id=%d", clientID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /offers - Failed to create offer: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /offers - Offer created: offer_id=%d, client_id=%d", result.ID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
