package resolve_addons

import (
	"context"

	resolveAddons "github.com/salaluna/offer-service/internal/usecase/resolve_addons"
)

type ResolveAddOnsUseCase interface {
	Execute(ctx context.Context, req *resolveAddons.Request) (*resolveAddons.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
