package submit_offer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salaluna/offer-service/internal/api/handlers"
	"github.com/salaluna/offer-service/internal/api/middleware"
	"github.com/salaluna/offer-service/internal/domain"
	submitOffer "github.com/salaluna/offer-service/internal/usecase/submit_offer"
)

const (
	msgInvalidOfferID     = "identificador de oferta no válido"
	msgOfferNotFound      = "oferta no encontrada"
	msgAccessDenied       = "acceso denegado"
	msgNotDraft           = "la oferta ya no es un borrador"
	msgPriceMismatch      = "el precio calculado no coincide con el servicio de precios"
	msgCatalogUnavailable = "catálogo no disponible, inténtelo más tarde"
)

type Handler struct {
	useCase SubmitOfferUseCase
	logger  Logger
}

func NewHandler(useCase SubmitOfferUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/offers/{offerId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.UserID(r)

	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil || offerID <= 0 {
		h.logger.Warn("POST /offers/{offerId}/submit - Invalid offer id: %v", mux.Vars(r)["offerId"])
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitOffer.Request{
		OfferID:  offerID,
		ClientID: clientID,
	})
	if err != nil {
		var guardErr *domain.StepGuardError

		switch {
		case errors.Is(err, submitOffer.ErrOfferNotFound):
			h.logger.Warn("POST /offers/{offerId}/submit - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, submitOffer.ErrAccessDenied):
			h.logger.Warn("POST /offers/{offerId}/submit - Access denied: offer_id=%d, client_id=%d", offerID, clientID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, submitOffer.ErrNotDraft):
			h.logger.Warn("POST /offers/{offerId}/submit - Not a draft: offer_id=%d", offerID)
			handlers.RespondConflict(w, msgNotDraft)

		case errors.As(err, &guardErr):
			h.logger.Warn("POST /offers/{offerId}/submit - Guard failed at %s: offer_id=%d, reason=%s",
				guardErr.Step, offerID, guardErr.Reason)
			handlers.RespondUnprocessable(w, guardErr.Error())

		case errors.Is(err, domain.ErrCapacityNotConfirmed),
			errors.Is(err, domain.ErrScheduleViolation),
			errors.Is(err, domain.ErrExclusivityViolation):
			h.logger.Warn("POST /offers/{offerId}/submit - Selection violation: offer_id=%d, error=%v", offerID, err)
			handlers.RespondUnprocessable(w, err.Error())

		case errors.Is(err, submitOffer.ErrPriceMismatch):
			h.logger.Warn("POST /offers/{offerId}/submit - Price mismatch: offer_id=%d, error=%v", offerID, err)
			handlers.RespondConflict(w, msgPriceMismatch)

		case errors.Is(err, submitOffer.ErrCatalogUnavailable):
			h.logger.Warn("POST /offers/{offerId}/submit - Catalog unavailable: offer_id=%d", offerID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogUnavailable)

		case errors.Is(err, submitOffer.ErrInvalidInput):
			h.logger.Warn("POST /offers/{offerId}/submit - Invalid input: offer_id=%d, error=%v", offerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /offers/{offerId}/submit - Failed to submit: offer_id=%d, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /offers/{offerId}/submit - Offer submitted: offer_id=%d, total=%.2f, price_confirmed=%t",
		offerID, result.Total, result.PriceConfirmed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
