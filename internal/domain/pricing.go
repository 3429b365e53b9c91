package domain

// PriceBreakdown is the itemized result of pricing a selection. It is derived,
// never stored on the selection, and recomputed after every mutation.
type PriceBreakdown struct {
	BasePrice        float64
	SeasonAdjustment float64
	GuestSubtotal    float64
	AddOnSubtotal    float64
	Subtotal         float64
	Discount         float64
	// DiscountClamped reports that the requested discount exceeded the
	// subtotal and was clamped down to it
	DiscountClamped bool
	TaxableBase     float64
	Tax             float64
	ServiceFee      float64
	Total           float64
}

// CalculatePrice maps a selection and a catalog snapshot to an itemized
// breakdown. It is a pure function: no side effects, deterministic, and
// idempotent for identical inputs. Selections without a chosen package price
// only their add-ons, so partially built drafts can still be previewed.
func CalculatePrice(sel *Selection, cat *Catalog) (*PriceBreakdown, error) {
	b := &PriceBreakdown{}

	// 1. Base price: explicit override, else venue-specific package price,
	// else global package price. External venues contribute no venue surcharge.
	if sel.PackageID != 0 {
		pkg, err := cat.PackageByID(sel.PackageID)
		if err != nil {
			return nil, err
		}

		if sel.BasePriceOverride != nil {
			b.BasePrice = *sel.BasePriceOverride
		} else {
			b.BasePrice = pkg.BasePriceForVenue(sel.VenueID)
		}

		// 3. Extra guests above the package minimum are priced per head
		if extra := sel.GuestCount - pkg.MinGuests; extra > 0 {
			b.GuestSubtotal = float64(extra) * pkg.PricePerExtraGuest
		}
	}

	// 2. Season adjustment: explicit override, else auto-detected by event month
	if sel.SeasonOverrideID != nil {
		season, err := cat.SeasonByID(*sel.SeasonOverrideID)
		if err != nil {
			return nil, err
		}
		b.SeasonAdjustment = season.Adjustment
	} else if season := cat.SeasonForDate(sel.EventDate); season != nil {
		b.SeasonAdjustment = season.Adjustment
	}

	// 4. Add-on lines: unit price override wins over the catalog base price
	for _, line := range sel.AddOns {
		svc, err := cat.ServiceByID(line.ServiceID)
		if err != nil {
			return nil, err
		}
		unit := svc.BasePrice
		if line.UnitPriceOverride != nil {
			unit = *line.UnitPriceOverride
		}
		b.AddOnSubtotal += unit * float64(line.Quantity)
	}

	// 5–7. Subtotal, clamped discount, taxable base
	b.Subtotal = b.BasePrice + b.SeasonAdjustment + b.GuestSubtotal + b.AddOnSubtotal

	b.Discount = sel.Discount
	if b.Discount > b.Subtotal {
		b.Discount = b.Subtotal
		b.DiscountClamped = true
	}

	b.TaxableBase = b.Subtotal - b.Discount

	// 8–9. Catalog-supplied rates, grand total
	b.Tax = b.TaxableBase * cat.Rates.IVA
	b.ServiceFee = b.TaxableBase * cat.Rates.ServiceFee
	b.Total = b.TaxableBase + b.Tax + b.ServiceFee

	return b, nil
}
