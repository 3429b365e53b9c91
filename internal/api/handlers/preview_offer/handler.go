package preview_offer

import (
	"errors"
	"net/http"

	"github.com/salaluna/offer-service/internal/api/handlers"
	"github.com/salaluna/offer-service/internal/api/middleware"
	"github.com/salaluna/offer-service/internal/domain"
	previewOffer "github.com/salaluna/offer-service/internal/usecase/preview_offer"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgCatalogUnavailable = "catálogo no disponible, inténtelo más tarde"
)

type Handler struct {
	useCase PreviewOfferUseCase
	logger  Logger
}

func NewHandler(useCase PreviewOfferUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/offers/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.UserID(r)

	var req PreviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /offers/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /offers/preview - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, previewOffer.ErrInvalidInput):
			h.logger.Warn("POST /offers/preview - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, domain.ErrExclusivityViolation),
			errors.Is(err, domain.ErrScheduleViolation),
			errors.Is(err, domain.ErrInvalidSelection),
			errors.Is(err, domain.ErrGuestCountBelowMinimum),
			errors.Is(err, domain.ErrPackageNotOffered):
			h.logger.Warn("POST /offers/preview - Selection rejected: client_id=%d, error=%v", clientID, err)
			handlers.RespondUnprocessable(w, err.Error())

		case errors.Is(err, previewOffer.ErrCatalogUnavailable):
			h.logger.Warn("POST /offers/preview - Catalog unavailable: client_id=%d", clientID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /offers/preview - Failed to preview: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /offers/preview - Preview computed: client_id=%d, total=%.2f", clientID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
