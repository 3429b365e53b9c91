package preview_offer

import "fmt"

// validateRequest validates the payload shape; domain invariants are enforced
// by the engine during the replay
func validateRequest(req *Request) error {
	if req.Selection.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.Selection.GuestCount < 0 {
		return fmt.Errorf("%w: guestCount must not be negative", ErrInvalidInput)
	}

	if req.Selection.Discount < 0 {
		return fmt.Errorf("%w: discount must not be negative", ErrInvalidInput)
	}

	for _, addOn := range req.Selection.AddOns {
		if addOn.ServiceID <= 0 {
			return fmt.Errorf("%w: add-on serviceID must be positive", ErrInvalidInput)
		}
		if addOn.Quantity < 1 {
			return fmt.Errorf("%w: add-on quantity must be at least 1", ErrInvalidInput)
		}
	}

	return nil
}
