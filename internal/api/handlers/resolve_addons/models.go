package resolve_addons

import (
	"github.com/salaluna/offer-service/internal/api/handlers"
	resolveAddons "github.com/salaluna/offer-service/internal/usecase/resolve_addons"
)

// ResolveRequest HTTP request model
type ResolveRequest struct {
	Selection handlers.SelectionPayload `json:"selection"`
}

// ServiceStatusView is one row of the derived add-on listing
type ServiceStatusView struct {
	ServiceID     int64  `json:"serviceId"`
	Name          string `json:"name"`
	Verdict       string `json:"verdict"`
	Reason        string `json:"reason,omitempty"`
	ConflictsWith string `json:"conflictsWith,omitempty"`
}

// ResolveResponse HTTP response model
type ResolveResponse struct {
	Services         []ServiceStatusView `json:"services"`
	ActiveAlternates map[string]int64    `json:"activeAlternates"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *ResolveRequest) ToUseCaseRequest(clientID int64) (*resolveAddons.Request, error) {
	selection, err := r.Selection.ToDomainInput(clientID)
	if err != nil {
		return nil, err
	}
	return &resolveAddons.Request{Selection: selection}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *resolveAddons.Response) *ResolveResponse {
	services := make([]ServiceStatusView, 0, len(resp.Services))
	for _, st := range resp.Services {
		services = append(services, ServiceStatusView{
			ServiceID:     st.ServiceID,
			Name:          st.Name,
			Verdict:       st.Verdict,
			Reason:        st.Reason,
			ConflictsWith: st.ConflictsWith,
		})
	}
	return &ResolveResponse{
		Services:         services,
		ActiveAlternates: resp.ActiveAlternates,
	}
}
