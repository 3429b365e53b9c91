package validate_step

import (
	"github.com/salaluna/offer-service/internal/api/handlers"
	validateStep "github.com/salaluna/offer-service/internal/usecase/validate_step"
)

// ValidateStepRequest HTTP request model
type ValidateStepRequest struct {
	Selection  handlers.SelectionPayload `json:"selection"`
	TargetStep string                    `json:"targetStep"` // e.g. "package_and_season"
}

// ValidateStepResponse HTTP response model
type ValidateStepResponse struct {
	Allowed    bool   `json:"allowed"`
	FailedStep string `json:"failedStep,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *ValidateStepRequest) ToUseCaseRequest(clientID int64) (*validateStep.Request, error) {
	selection, err := r.Selection.ToDomainInput(clientID)
	if err != nil {
		return nil, err
	}
	return &validateStep.Request{
		Selection:  selection,
		TargetStep: r.TargetStep,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *validateStep.Response) *ValidateStepResponse {
	return &ValidateStepResponse{
		Allowed:    resp.Allowed,
		FailedStep: resp.FailedStep,
		Reason:     resp.Reason,
	}
}
