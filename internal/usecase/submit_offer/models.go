package submit_offer

import "time"

// Request submits a draft offer
type Request struct {
	OfferID  int64
	ClientID int64
}

// Response reports the submitted offer state
type Response struct {
	OfferID int64
	Status  string
	// PriceConfirmed is false when the pricing mirror was unavailable and the
	// locally computed total is advisory
	PriceConfirmed bool
	Total          float64
	SubmittedAt    time.Time
}
