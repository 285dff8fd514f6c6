//go:build wireinject

package application

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/application/internal/event"
	"github.com/ecodeclub/mastersolis/internal/application/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/application/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/application/internal/service"
	"github.com/ecodeclub/mastersolis/internal/application/internal/web"
	"github.com/ecodeclub/mastersolis/internal/email"
	"github.com/ecodeclub/mastersolis/internal/jobposting"
	"github.com/ecodeclub/mastersolis/internal/pkg/flight"
	"github.com/ecodeclub/mastersolis/internal/pkg/mqx"
	"github.com/ecodeclub/mastersolis/internal/storage"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	jobModule *jobposting.Module,
	aiModule *ai.Module,
	storageModule *storage.Module,
	emailSvc email.Service) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewApplicationRepository,
		wire.FieldsOf(new(*jobposting.Module), "Svc"),
		wire.FieldsOf(new(*ai.Module), "Svc", "ExtractSvc"),
		wire.FieldsOf(new(*storage.Module), "Svc"),
		initProducer,
		initLocker,
		initConfig,
		service.NewIntakeService,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce sync.Once

func initDAO(db *egorm.Component) dao.ApplicationDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMApplicationDAO(db)
}

func initProducer(q mq.MQ) (mqx.Producer[event.ApplicationEvent], error) {
	p, err := mqx.NewGeneralProducer[event.ApplicationEvent](q, event.ApplicationTopic)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// initLocker 提交超时之后锁自动释放
func initLocker(ec ecache.Cache) service.Locker {
	return flight.NewGuard(ec, 2*time.Minute)
}

func initConfig() service.Config {
	cfg := service.DefaultConfig()
	// 没有配置的时候用默认值
	if econf.Get("application") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("application", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
