//go:build wireinject

package resume

import (
	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/resume/internal/service"
	"github.com/ecodeclub/mastersolis/internal/resume/internal/web"
	"github.com/google/wire"
)

func InitModule(aiModule *ai.Module) *Module {
	wire.Build(
		wire.FieldsOf(new(*ai.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
