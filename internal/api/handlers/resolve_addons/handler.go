package resolve_addons

import (
	"errors"
	"net/http"

	"github.com/salaluna/offer-service/internal/api/handlers"
	"github.com/salaluna/offer-service/internal/api/middleware"
	"github.com/salaluna/offer-service/internal/domain"
	resolveAddons "github.com/salaluna/offer-service/internal/usecase/resolve_addons"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgCatalogUnavailable = "catálogo no disponible, inténtelo más tarde"
)

type Handler struct {
	useCase ResolveAddOnsUseCase
	logger  Logger
}

func NewHandler(useCase ResolveAddOnsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/offers/addons/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.UserID(r)

	var req ResolveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /offers/addons/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /offers/addons/resolve - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveAddons.ErrInvalidInput):
			h.logger.Warn("POST /offers/addons/resolve - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, domain.ErrExclusivityViolation),
			errors.Is(err, domain.ErrScheduleViolation),
			errors.Is(err, domain.ErrInvalidSelection),
			errors.Is(err, domain.ErrGuestCountBelowMinimum),
			errors.Is(err, domain.ErrPackageNotOffered):
			h.logger.Warn("POST /offers/addons/resolve - Selection rejected: client_id=%d, error=%v", clientID, err)
			handlers.RespondUnprocessable(w, err.Error())

		case errors.Is(err, resolveAddons.ErrCatalogUnavailable):
			h.logger.Warn("POST /offers/addons/resolve - Catalog unavailable: client_id=%d", clientID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCatalogUnavailable)

		default:
			h.logger.Error("POST /offers/addons/resolve - Failed to resolve: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /offers/addons/resolve - Resolved %d services: client_id=%d", len(result.Services), clientID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
