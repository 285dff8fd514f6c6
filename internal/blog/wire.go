//go:build wireinject

package blog

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/event"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/service"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/web"
	"github.com/ecodeclub/mastersolis/internal/pkg/flight"
	"github.com/ecodeclub/mastersolis/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, aiModule *ai.Module) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewPostRepository,
		wire.FieldsOf(new(*ai.Module), "Svc"),
		initSyncProducer,
		initLocker,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce sync.Once

func initDAO(db *egorm.Component) dao.PostDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMPostDAO(db)
}

func initSyncProducer(q mq.MQ) (mqx.Producer[event.SyncEvent], error) {
	p, err := mqx.NewGeneralProducer[event.SyncEvent](q, event.SyncTopic)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// initLocker 生成摘要最多等一分钟
func initLocker(ec ecache.Cache) service.Locker {
	return flight.NewGuard(ec, time.Minute)
}
