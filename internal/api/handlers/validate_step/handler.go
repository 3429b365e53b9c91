package validate_step

import (
	"errors"
	"net/http"

	"github.com/salaluna/offer-service/internal/api/handlers"
	"github.com/salaluna/offer-service/internal/api/middleware"
	"github.com/salaluna/offer-service/internal/domain"
	validateStep "github.com/salaluna/offer-service/internal/usecase/validate_step"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgCatalogUnavailable = "catálogo no disponible, inténtelo más tarde"
)

type Handler struct {
	useCase ValidateStepUseCase
	logger  Logger
}

func NewHandler(useCase ValidateStepUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/offers/steps/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.UserID(r)

	var req ValidateStepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /offers/steps/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /offers/steps/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateStep.ErrInvalidInput):
			h.logger.Warn("POST /offers/steps/validate - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, domain.ErrExclusivityViolation),
			errors.Is(err, domain.ErrScheduleViolation),
			errors.Is(err, domain.ErrInvalidSelection),
			errors.Is(err, domain.ErrGuestCountBelowMinimum),
			errors.Is(err, domain.ErrPackageNotOffered):
			h.logger.Warn("POST /offers/steps/validate - Selection rejected: client_id=%d, error=%v", clientID, err)
			handlers.RespondUnprocessable(w, err.Error())

		case errors.Is(err, validateStep.ErrCatalogUnavailable):
			h.logger.Warn("POST /offers/steps/validate - Catalog unavailable: client_id=%d", clientID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /offers/steps/validate - Failed to validate: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /offers/steps/validate - Step %s: allowed=%t, client_id=%d",
		req.TargetStep, result.Allowed, clientID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
