//go:build wireinject

package storage

import (
	"github.com/ecodeclub/mastersolis/internal/pkg/snowflake"
	"github.com/ecodeclub/mastersolis/internal/storage/internal/service"
	"github.com/ecodeclub/mastersolis/internal/storage/internal/web"
	"github.com/google/wire"
)

func InitModule(cfg Config, idGen *snowflake.Generator) (*Module, error) {
	wire.Build(
		service.NewCOSService,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
