package models

import (
	"sort"

	"github.com/salaluna/offer-service/internal/domain"
)

// PackageView is one offerable package
type PackageView struct {
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

// ServiceView is one individually priced add-on service
type ServiceView struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	BasePrice  float64 `json:"basePrice"`
	Group      string  `json:"group,omitempty"`
	GroupTier  int     `json:"groupTier,omitempty"`
	Repeatable bool    `json:"repeatable,omitempty"`
}

// SeasonView is one seasonal price adjustment window
type SeasonView struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Months     []int   `json:"months"`
	Adjustment float64 `json:"adjustment"`
}

// VenueView is one of the company's own event locations
type VenueView struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Capacity   int     `json:"capacity"`
	PackageIDs []int64 `json:"packageIds"`
}

// RatesView holds the current tax and service-fee percentages
type RatesView struct {
	IVA        float64 `json:"iva"`
	ServiceFee float64 `json:"serviceFee"`
}

// SnapshotResponse is the full catalog view served to wizard frontends
type SnapshotResponse struct {
	Packages []PackageView `json:"packages"`
	Services []ServiceView `json:"services"`
	Seasons  []SeasonView  `json:"seasons"`
	Venues   []VenueView   `json:"venues"`
	Rates    RatesView     `json:"rates"`
}

// FromDomainCatalog converts a snapshot into its view, with deterministic
// ordering by id so the frontend gets stable lists.
func FromDomainCatalog(cat *domain.Catalog) *SnapshotResponse {
	resp := &SnapshotResponse{
		Packages: make([]PackageView, 0, len(cat.Packages)),
		Services: make([]ServiceView, 0, len(cat.Services)),
		Seasons:  make([]SeasonView, 0, len(cat.Seasons)),
		Venues:   make([]VenueView, 0, len(cat.Venues)),
		Rates: RatesView{
			IVA:        cat.Rates.IVA,
			ServiceFee: cat.Rates.ServiceFee,
		},
	}

	for _, p := range cat.Packages {
		resp.Packages = append(resp.Packages, PackageView{
			ID:                 p.ID,
			Name:               p.Name,
			Class:              string(p.Class),
			BasePrice:          p.BasePrice,
			VenuePrices:        p.VenuePrices,
			BaseDurationHours:  p.BaseDurationHours,
			MinGuests:          p.MinGuests,
			PricePerExtraGuest: p.PricePerExtraGuest,
			IncludedServiceIDs: p.IncludedServiceIDs,
		})
	}
	sort.Slice(resp.Packages, func(i, j int) bool { return resp.Packages[i].ID < resp.Packages[j].ID })

	for _, s := range cat.Services {
		resp.Services = append(resp.Services, ServiceView{
			ID:         s.ID,
			Name:       s.Name,
			Category:   s.Category,
			BasePrice:  s.BasePrice,
			Group:      string(s.Group),
			GroupTier:  s.GroupTier,
			Repeatable: s.Repeatable,
		})
	}
	sort.Slice(resp.Services, func(i, j int) bool { return resp.Services[i].ID < resp.Services[j].ID })

	for _, s := range cat.Seasons {
		months := make([]int, 0, len(s.Months))
		for _, m := range s.Months {
			months = append(months, int(m))
		}
		resp.Seasons = append(resp.Seasons, SeasonView{
			ID:         s.ID,
			Name:       s.Name,
			Months:     months,
			Adjustment: s.Adjustment,
		})
	}
	sort.Slice(resp.Seasons, func(i, j int) bool { return resp.Seasons[i].ID < resp.Seasons[j].ID })

	for _, v := range cat.Venues {
		resp.Venues = append(resp.Venues, VenueView{
			ID:         v.ID,
			Name:       v.Name,
			Capacity:   v.Capacity,
			PackageIDs: v.PackageIDs,
		})
	}
	sort.Slice(resp.Venues, func(i, j int) bool { return resp.Venues[i].ID < resp.Venues[j].ID })

	return resp
}
