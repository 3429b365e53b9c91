package validate_step

import (
	"context"

	validateStep "github.com/salaluna/offer-service/internal/usecase/validate_step"
)

type ValidateStepUseCase interface {
	Execute(ctx context.Context, req *validateStep.Request) (*validateStep.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
