//go:build wireinject

package search

import (
	"context"
	"sync"

	"github.com/ecodeclub/mastersolis/internal/blog"
	"github.com/ecodeclub/mastersolis/internal/jobposting"
	"github.com/ecodeclub/mastersolis/internal/search/internal/event"
	"github.com/ecodeclub/mastersolis/internal/search/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/search/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/search/internal/service"
	"github.com/ecodeclub/mastersolis/internal/search/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/olivere/elastic/v7"
)

func InitModule(es *elastic.Client, q mq.MQ, jobModule *jobposting.Module, blogModule *blog.Module) (*Module, error) {
	wire.Build(
		initJobDAO,
		initBlogDAO,
		dao.NewAnyESDAO,
		repository.NewSearchRepository,
		repository.NewSyncRepository,
		service.NewSearchService,
		service.NewSyncService,
		web.NewHandler,
		wire.FieldsOf(new(*jobposting.Module), "Svc"),
		wire.FieldsOf(new(*blog.Module), "Svc"),
		initResyncJob,
		initSyncConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var indexOnce sync.Once

func initIndex(es *elastic.Client) {
	indexOnce.Do(func() {
		err := dao.InitES(es)
		if err != nil {
			panic(err)
		}
	})
}

func initJobDAO(es *elastic.Client) dao.JobDAO {
	initIndex(es)
	return dao.NewJobElasticDAO(es)
}

func initBlogDAO(es *elastic.Client) dao.BlogDAO {
	initIndex(es)
	return dao.NewBlogElasticDAO(es)
}

func initResyncJob(jobSvc jobposting.Service, blogSvc blog.Service) *service.ResyncJob {
	return service.NewResyncJob(jobSvc, blogSvc)
}

func initSyncConsumer(svc service.SyncService, q mq.MQ) (*event.SyncConsumer, error) {
	c, err := event.NewSyncConsumer(svc, q)
	if err != nil {
		return nil, err
	}
	c.Start(context.Background())
	return c, nil
}
