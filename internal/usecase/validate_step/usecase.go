package validate_step

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salaluna/offer-service/internal/domain"
	catalogSvc "github.com/salaluna/offer-service/internal/service/catalog"
)

// UseCase evaluates the wizard step guards: whether a direct jump to the
// target step is permitted for the current selection. Backward movement is
// always free, so callers only ask about forward jumps and submission.
type UseCase struct {
	catalogProvider CatalogProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a step-validation use case
func NewUseCase(catalogProvider CatalogProvider, logger Logger) *UseCase {
	return &UseCase{
		catalogProvider: catalogProvider,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute checks the guards of every step preceding the target. A guard
// failure is a negative answer, not an error: the response names the first
// failing step and the reason.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateStep: client=%d, target=%s", req.Selection.ClientID, req.TargetStep)

	// 1. Validate the payload shape
	if req.Selection.ClientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	target, err := domain.StepFromString(req.TargetStep)
	if err != nil {
		uc.logger.Warn("ValidateStep: unknown target step %q", req.TargetStep)
		return nil, fmt.Errorf("%w: unknown step %q", ErrInvalidInput, req.TargetStep)
	}

	// 2. Fetch the catalog snapshot for this session
	cat, err := uc.catalogProvider.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, catalogSvc.ErrUnavailable) {
			return nil, ErrCatalogUnavailable
		}
		uc.logger.Error("ValidateStep: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch catalog: %v", ErrInternal, err)
	}

	// 3. Replay the selection through the engine's edit operations. A rejected
	// edit that violates a step's rule is still a step answer, not an error.
	sel, _, err := domain.BuildSelection(cat, req.Selection)
	if err != nil {
		if step, ok := stepForViolation(err); ok {
			uc.logger.Info("ValidateStep: jump blocked at %s: %v", step, err)
			return &Response{
				Allowed:    false,
				FailedStep: step.String(),
				Reason:     err.Error(),
			}, nil
		}
		uc.logger.Warn("ValidateStep: selection rejected: %v", err)
		return nil, err
	}

	// 4. Evaluate the guards of all steps preceding the target. The submitted
	// pseudo-step additionally runs the final-submit predicate.
	now := uc.timeProvider.Now()
	if err := evaluateJump(target, sel, cat, now); err != nil {
		var guardErr *domain.StepGuardError
		if errors.As(err, &guardErr) {
			uc.logger.Info("ValidateStep: jump to %s blocked at %s: %s",
				target, guardErr.Step, guardErr.Reason)
			return &Response{
				Allowed:    false,
				FailedStep: guardErr.Step.String(),
				Reason:     guardErr.Reason,
			}, nil
		}
		uc.logger.Error("ValidateStep: guard evaluation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("ValidateStep: jump to %s allowed", target)
	return &Response{Allowed: true}, nil
}

// stepForViolation maps a replayed edit rejection onto the wizard step that
// owns the violated rule
func stepForViolation(err error) (domain.Step, bool) {
	switch {
	case errors.Is(err, domain.ErrScheduleViolation):
		return domain.StepEventDetails, true
	case errors.Is(err, domain.ErrGuestCountBelowMinimum),
		errors.Is(err, domain.ErrPackageNotOffered):
		return domain.StepPackageAndSeason, true
	case errors.Is(err, domain.ErrExclusivityViolation):
		return domain.StepAddOns, true
	}
	return 0, false
}

// evaluateJump runs CanJump for regular steps and the full submit predicate
// for the submitted pseudo-step
func evaluateJump(target domain.Step, sel *domain.Selection, cat *domain.Catalog, now time.Time) error {
	if target == domain.StepSubmitted {
		return domain.CanSubmit(sel, cat, now)
	}
	return domain.CanJump(target, sel, cat, now)
}
