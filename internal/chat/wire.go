//go:build wireinject

package chat

import (
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/chat/internal/service"
	"github.com/ecodeclub/mastersolis/internal/chat/internal/web"
	"github.com/ecodeclub/mastersolis/internal/pkg/flight"
	"github.com/google/wire"
)

func InitModule(ec ecache.Cache, aiModule *ai.Module) *Module {
	wire.Build(
		wire.FieldsOf(new(*ai.Module), "Svc"),
		initLocker,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initLocker(ec ecache.Cache) service.Locker {
	return flight.NewGuard(ec, time.Minute)
}
