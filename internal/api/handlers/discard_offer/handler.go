package discard_offer

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
	msgNotDraft       = "la oferta ya no es un borrador"
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

// Handle PATCH /api/v1/offers/{offerId}/discard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.UserID(r)

	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil || offerID <= 0 {
		h.logger.Warn("PATCH /offers/{offerId}/discard - Invalid offer id: %v", mux.Vars(r)["offerId"])
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	err = h.service.Discard(r.Context(), &models.DiscardOfferRequest{
		OfferID:  offerID,
		ClientID: clientID,
	})
	if err != nil {
		switch {
		case errors.Is(err, offersService.ErrOfferNotFound):
			h.logger.Warn("PATCH /offers/{offerId}/discard - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, offersService.ErrAccessDenied):
			h.logger.Warn("PATCH /offers/{offerId}/discard - Access denied: offer_id=%d, client_id=%d", offerID, clientID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, offersService.ErrNotDraft):
			h.logger.Warn("PATCH /offers/{offerId}/discard - Not a draft: offer_id=%d", offerID)
			handlers.RespondConflict(w, msgNotDraft)

		default:
			h.logger.Error("PATCH /offers/{offerId}/discard - Failed to discard: offer_id=%d, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /offers/{offerId}/discard - Offer discarded: offer_id=%d, client_id=%d", offerID, clientID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
