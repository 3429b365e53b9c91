package validate_step

import (
	"github.com/salaluna/offer-service/internal/domain"
)

// Request asks whether a direct jump to the target step is permitted for
// the selection
type Request struct {
	Selection  domain.SelectionInput
	TargetStep string
}

// Response reports the jump verdict. When blocked, FailedStep names the first
// step whose guard does not hold.
type Response struct {
	Allowed    bool
	FailedStep string
	Reason     string
}
