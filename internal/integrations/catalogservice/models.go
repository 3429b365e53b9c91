package catalogservice

import (
	"time"

	"github.com/salaluna/offer-service/internal/domain"
)

// snapshotResponse is the wire format of the catalog snapshot
type snapshotResponse struct {
	Packages []packageDTO `json:"packages"`
	Services []serviceDTO `json:"services"`
	Seasons  []seasonDTO  `json:"seasons"`
	Venues   []venueDTO   `json:"venues"`
	Rates    ratesDTO     `json:"rates"`
}

type packageDTO struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	Class              string            `json:"class"`
	BasePrice          float64           `json:"basePrice"`
	VenuePrices        map[int64]float64 `json:"venuePrices,omitempty"`
	BaseDurationHours  int               `json:"baseDurationHours"`
	MinGuests          int               `json:"minGuests"`
	PricePerExtraGuest float64           `json:"pricePerExtraGuest"`
	IncludedServiceIDs []int64           `json:"includedServiceIds"`
}

type serviceDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	BasePrice  float64 `json:"basePrice"`
	Group      string  `json:"exclusivityGroup,omitempty"`
	GroupTier  int     `json:"groupTier,omitempty"`
	Repeatable bool    `json:"repeatable,omitempty"`
}

type seasonDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Months     []int   `json:"months"`
	Adjustment float64 `json:"adjustment"`
}

type venueDTO struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Capacity   int     `json:"capacity"`
	PackageIDs []int64 `json:"packageIds"`
}

type ratesDTO struct {
	IVA        float64 `json:"iva"`
	ServiceFee float64 `json:"serviceFee"`
}

// toDomain converts the wire snapshot into the engine's immutable catalog
func (r *snapshotResponse) toDomain() *domain.Catalog {
	cat := &domain.Catalog{
		Packages: make(map[int64]*domain.Package, len(r.Packages)),
		Services: make(map[int64]*domain.Service, len(r.Services)),
		Seasons:  make(map[int64]*domain.Season, len(r.Seasons)),
		Venues:   make(map[int64]*domain.Venue, len(r.Venues)),
		Rates: domain.Rates{
			IVA:        r.Rates.IVA,
			ServiceFee: r.Rates.ServiceFee,
		},
	}

	for _, p := range r.Packages {
		cat.Packages[p.ID] = &domain.Package{
			ID:                 p.ID,
			Name:               p.Name,
			Class:              domain.PackageClass(p.Class),
			BasePrice:          p.BasePrice,
			VenuePrices:        p.VenuePrices,
			BaseDurationHours:  p.BaseDurationHours,
			MinGuests:          p.MinGuests,
			PricePerExtraGuest: p.PricePerExtraGuest,
			IncludedServiceIDs: p.IncludedServiceIDs,
		}
	}
	for _, s := range r.Services {
		cat.Services[s.ID] = &domain.Service{
			ID:         s.ID,
			Name:       s.Name,
			Category:   s.Category,
			BasePrice:  s.BasePrice,
			Group:      domain.ExclusivityGroup(s.Group),
			GroupTier:  s.GroupTier,
			Repeatable: s.Repeatable,
		}
	}
	for _, s := range r.Seasons {
		months := make([]time.Month, 0, len(s.Months))
		for _, m := range s.Months {
			months = append(months, time.Month(m))
		}
		cat.Seasons[s.ID] = &domain.Season{
			ID:         s.ID,
			Name:       s.Name,
			Months:     months,
			Adjustment: s.Adjustment,
		}
	}
	for _, v := range r.Venues {
		cat.Venues[v.ID] = &domain.Venue{
			ID:         v.ID,
			Name:       v.Name,
			Capacity:   v.Capacity,
			PackageIDs: v.PackageIDs,
		}
	}

	return cat
}

// ErrorResponse is the catalog service's error body
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
