//go:build wireinject

package ai

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/service/llm/handler/record"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	initConfigDAO,
	initRecordDAO,
	cache.NewConfigECache,
	repository.NewCachedConfigRepository,
	repository.NewLLMLogRepo,

	log.NewHandler,
	config.NewBuilder,
	record.NewHandler,
	InitRootHandler,

	llm.NewLLMService,
	service.NewExtractService,
	service.NewRecordService,
	InitDefaultModel,
	InitConfigService,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		ModuleSet,
		InitPlatform,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}
