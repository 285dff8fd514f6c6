//go:build wireinject

package showcase

import (
	"sync"

	"github.com/ecodeclub/mastersolis/internal/showcase/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/service"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) *Module {
	wire.Build(
		initProjectDAO,
		initServiceItemDAO,
		initTestimonialDAO,
		initCaseStudyDAO,
		repository.NewProjectRepository,
		repository.NewServiceItemRepository,
		repository.NewTestimonialRepository,
		repository.NewCaseStudyRepository,
		service.NewProjectService,
		service.NewServiceItemService,
		service.NewTestimonialService,
		service.NewCaseStudyService,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce sync.Once

func initTables(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initProjectDAO(db *egorm.Component) dao.DAO[dao.Project] {
	initTables(db)
	return dao.NewProjectDAO(db)
}

func initServiceItemDAO(db *egorm.Component) dao.DAO[dao.ServiceItem] {
	initTables(db)
	return dao.NewServiceItemDAO(db)
}

func initTestimonialDAO(db *egorm.Component) dao.DAO[dao.Testimonial] {
	initTables(db)
	return dao.NewTestimonialDAO(db)
}

func initCaseStudyDAO(db *egorm.Component) dao.DAO[dao.CaseStudy] {
	initTables(db)
	return dao.NewCaseStudyDAO(db)
}
