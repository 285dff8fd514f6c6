//go:build wireinject

package user

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mastersolis/internal/user/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/user/internal/repository/cache"
	"github.com/ecodeclub/mastersolis/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(web.NewHandler,
	cache.NewUserECache,
	initDAO,
	initUserService,
	repository.NewCachedUserRepository)

func InitModule(db *egorm.Component, cache ecache.Cache) *Module {
	wire.Build(ProviderSet,
		wire.Struct(new(Module), "*"))
	return new(Module)
}
