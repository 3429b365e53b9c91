package resolve_addons

import (
	"github.com/salaluna/offer-service/internal/domain"
)

// Request carries the selection to resolve the add-on listing against
type Request struct {
	Selection domain.SelectionInput
}

// ServiceStatus is one row of the derived listing
type ServiceStatus struct {
	ServiceID     int64
	Name          string
	Verdict       string
	Reason        string
	ConflictsWith string
}

// Response is the full derived add-on listing plus the active alternate of
// every bundled dual-exclusive group
type Response struct {
	Services         []ServiceStatus
	ActiveAlternates map[string]int64
}
