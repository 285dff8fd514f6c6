//go:build wireinject

package jobposting

import (
	"sync"

	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/event"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/service"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/web"
	"github.com/ecodeclub/mastersolis/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewJobRepository,
		initSyncProducer,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce sync.Once

func initDAO(db *egorm.Component) dao.JobDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMJobDAO(db)
}

func initSyncProducer(q mq.MQ) (mqx.Producer[event.SyncEvent], error) {
	p, err := mqx.NewGeneralProducer[event.SyncEvent](q, event.SyncTopic)
	if err != nil {
		return nil, err
	}
	return p, nil
}
