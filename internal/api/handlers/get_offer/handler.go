package get_offer

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
	msgInvalidOfferID = "identificador de oferta no válido"
	msgOfferNotFound  = "oferta no encontrada"
	msgAccessDenied   = "acceso denegado"
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

// Handle GET /api/v1/offers/{offerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.UserID(r)

	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil || offerID <= 0 {
		h.logger.Warn("GET /offers/{offerId} - Invalid offer id: %v", mux.Vars(r)["offerId"])
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	result, err := h.service.GetByID(r.Context(), &models.GetOfferRequest{
		OfferID:  offerID,
		ClientID: clientID,
	})
	if err != nil {
		switch {
		case errors.Is(err, offersService.ErrOfferNotFound):
			h.logger.Warn("GET /offers/{offerId} - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, offersService.ErrAccessDenied):
			h.logger.Warn("GET /offers/{offerId} - Access denied: offer_id=%d, client_id=%d", offerID, clientID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /offers/{offerId} - Failed to get offer: offer_id=%d, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offers/{offerId} - Offer fetched: offer_id=%d, client_id=%d", offerID, clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
