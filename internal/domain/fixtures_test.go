package domain

import (
	"time"

	"github.com/salaluna/offer-service/pkg/ptr"
)

// Service ids used across the domain tests
const (
	svcPhotobooth360   int64 = 101
	svcPhotoboothPrint int64 = 102
	svcSidra           int64 = 111
	svcChampagne       int64 = 112
	svcLicorBasico     int64 = 121
	svcLicorPremium    int64 = 122
	svcDecorBasica     int64 = 131
	svcDecorPlus       int64 = 132
	svcFoto3h          int64 = 141
	svcFoto5h          int64 = 142
	svcHoraExtra       int64 = 151
	svcMariachi        int64 = 161
)

// Package ids used across the domain tests
const (
	pkgStandard int64 = 1
	pkgPlatinum int64 = 2
	pkgSpecial  int64 = 3
	pkgDiamond  int64 = 4
	pkgDeluxe   int64 = 5
	pkgCustom   int64 = 6
)

const (
	venueSalaLuna int64 = 1
	venueTerraza  int64 = 2
)

const (
	seasonAlta int64 = 1
	seasonBaja int64 = 2
)

func testCatalog() *Catalog {
	bundle := []int64{svcSidra, svcLicorBasico, svcDecorBasica, svcFoto3h}

	return &Catalog{
		Packages: map[int64]*Package{
			pkgStandard: {
				ID: pkgStandard, Name: "Paquete Estándar", Class: ClassStandard,
				BasePrice: 1000, VenuePrices: map[int64]float64{venueTerraza: 900},
				BaseDurationHours: 4, MinGuests: 50, PricePerExtraGuest: 20,
				IncludedServiceIDs: bundle,
			},
			pkgPlatinum: {
				ID: pkgPlatinum, Name: "Paquete Platino", Class: ClassPlatinum,
				BasePrice: 1800, BaseDurationHours: 5, MinGuests: 80, PricePerExtraGuest: 22,
				IncludedServiceIDs: append([]int64{svcPhotobooth360}, bundle...),
			},
			pkgSpecial: {
				ID: pkgSpecial, Name: "Paquete Especial", Class: ClassSpecial,
				BasePrice: 1400, BaseDurationHours: 4, MinGuests: 60, PricePerExtraGuest: 21,
				IncludedServiceIDs: bundle,
			},
			pkgDiamond: {
				ID: pkgDiamond, Name: "Paquete Diamante", Class: ClassDiamond,
				BasePrice: 2500, BaseDurationHours: 6, MinGuests: 100, PricePerExtraGuest: 25,
				IncludedServiceIDs: append([]int64{svcPhotobooth360}, bundle...),
			},
			pkgDeluxe: {
				ID: pkgDeluxe, Name: "Paquete Deluxe", Class: ClassDeluxe,
				BasePrice: 3200, BaseDurationHours: 6, MinGuests: 120, PricePerExtraGuest: 28,
				IncludedServiceIDs: append([]int64{svcPhotobooth360}, bundle...),
			},
			pkgCustom: {
				ID: pkgCustom, Name: "Paquete Personalizado", Class: ClassCustom,
				BasePrice: 800, BaseDurationHours: 4, MinGuests: 30, PricePerExtraGuest: 18,
				IncludedServiceIDs: []int64{svcLicorBasico, svcFoto3h},
			},
		},
		Services: map[int64]*Service{
			svcPhotobooth360:   {ID: svcPhotobooth360, Name: "Photobooth 360°", Category: "entretenimiento", BasePrice: 300, Group: GroupPhotobooth},
			svcPhotoboothPrint: {ID: svcPhotoboothPrint, Name: "Photobooth impresión", Category: "entretenimiento", BasePrice: 250, Group: GroupPhotobooth},
			svcSidra:           {ID: svcSidra, Name: "Sidra", Category: "bebidas", BasePrice: 120, Group: GroupSidra},
			svcChampagne:       {ID: svcChampagne, Name: "Champagne", Category: "bebidas", BasePrice: 200, Group: GroupSidra},
			svcLicorBasico:     {ID: svcLicorBasico, Name: "Licor básico", Category: "bebidas", BasePrice: 350, Group: GroupLicor, GroupTier: 1},
			svcLicorPremium:    {ID: svcLicorPremium, Name: "Licor premium", Category: "bebidas", BasePrice: 600, Group: GroupLicor, GroupTier: 2},
			svcDecorBasica:     {ID: svcDecorBasica, Name: "Decoración básica", Category: "decoración", BasePrice: 400, Group: GroupDecoracion, GroupTier: 1},
			svcDecorPlus:       {ID: svcDecorPlus, Name: "Decoración plus", Category: "decoración", BasePrice: 700, Group: GroupDecoracion, GroupTier: 2},
			svcFoto3h:          {ID: svcFoto3h, Name: "Fotografía 3h", Category: "fotografía", BasePrice: 500, Group: GroupFoto, GroupTier: 1},
			svcFoto5h:          {ID: svcFoto5h, Name: "Fotografía 5h", Category: "fotografía", BasePrice: 800, Group: GroupFoto, GroupTier: 2},
			svcHoraExtra:       {ID: svcHoraExtra, Name: "Hora extra", Category: "tiempo", BasePrice: 150, Repeatable: true},
			svcMariachi:        {ID: svcMariachi, Name: "Mariachi", Category: "entretenimiento", BasePrice: 450},
		},
		Seasons: map[int64]*Season{
			seasonAlta: {ID: seasonAlta, Name: "Temporada alta", Months: []time.Month{time.May, time.June, time.December}, Adjustment: 200},
			seasonBaja: {ID: seasonBaja, Name: "Temporada baja", Months: []time.Month{time.January, time.February}, Adjustment: -100},
		},
		Venues: map[int64]*Venue{
			venueSalaLuna: {ID: venueSalaLuna, Name: "Sala Luna", Capacity: 150,
				PackageIDs: []int64{pkgStandard, pkgPlatinum, pkgSpecial, pkgDiamond, pkgDeluxe, pkgCustom}},
			venueTerraza: {ID: venueTerraza, Name: "Terraza Jardín", Capacity: 80,
				PackageIDs: []int64{pkgStandard, pkgCustom}},
		},
		Rates: Rates{IVA: 0.07, ServiceFee: 0.18},
	}
}

// testSelection builds a selection with a chosen venue and package through the
// mutators, failing the test indirectly if the fixture itself is broken
func testSelection(cat *Catalog, packageID int64) *Selection {
	sel := NewSelection(7)
	if _, err := sel.ChooseVenue(cat, venueSalaLuna); err != nil {
		panic(err)
	}
	if _, err := sel.SetGuestCount(cat, 120); err != nil {
		panic(err)
	}
	if _, err := sel.ChoosePackage(cat, packageID); err != nil {
		panic(err)
	}
	return sel
}

func floatPtr(v float64) *float64 {
	return ptr.Ptr(v)
}
