//go:build wireinject

package contact

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/service"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/web"
	"github.com/ecodeclub/mastersolis/internal/email"
	"github.com/ecodeclub/mastersolis/internal/pkg/flight"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, aiModule *ai.Module, emailSvc email.Service) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewContactRepository,
		wire.FieldsOf(new(*ai.Module), "Svc"),
		initLocker,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce sync.Once

func initDAO(db *egorm.Component) dao.ContactDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMContactDAO(db)
}

func initLocker(ec ecache.Cache) service.Locker {
	return flight.NewGuard(ec, time.Minute)
}
