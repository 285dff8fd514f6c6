//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/mastersolis/internal/blog"
	"github.com/ecodeclub/mastersolis/internal/jobposting"
	"github.com/ecodeclub/mastersolis/internal/pkg/mqx"
	"github.com/ecodeclub/mastersolis/internal/search"
	"github.com/ecodeclub/mastersolis/internal/search/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/search/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/search/internal/web"
	"github.com/ecodeclub/mastersolis/internal/test"
	testioc "github.com/ecodeclub/mastersolis/internal/test/ioc"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	es       *elastic.Client
	server   *egin.Component
	module   *search.Module
	producer mqx.Producer[search.SyncEvent]
}

func (s *HandlerTestSuite) SetupSuite() {
	s.es = testioc.InitES()
	q := testioc.InitMQ()
	module, err := search.InitModule(s.es, q, &jobposting.Module{}, &blog.Module{})
	require.NoError(s.T(), err)
	s.module = module
	p, err := mqx.NewGeneralProducer[search.SyncEvent](q, search.SyncTopic)
	require.NoError(s.T(), err)
	s.producer = p

	econf.Set("server", map[string]any{"contextTimeout": "5s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, idx := range []string{dao.JobIndexName, dao.BlogIndexName} {
		_, err := s.es.DeleteByQuery(idx).Query(elastic.NewMatchAllQuery()).Refresh("true").Do(ctx)
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := s.es.Refresh(dao.JobIndexName, dao.BlogIndexName).Do(ctx)
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) input(biz string, id int64, doc any) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(doc)
	require.NoError(s.T(), err)
	err = s.module.SyncSvc.Input(ctx, biz, id, string(data))
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) search(req web.SearchReq) test.Result[web.SearchResult] {
	httpReq, err := http.NewRequest(http.MethodPost, "/search", iox.NewJSONReader(req))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SearchResult]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) TestSearch() {
	s.input(search.BizJob, 1, dao.Job{Id: 1, Title: "Senior Golang Engineer", Status: "Active", PostedDate: 1700000000000})
	s.input(search.BizJob, 2, dao.Job{Id: 2, Title: "Golang Intern", Status: "Closed"})
	s.input(search.BizJob, 3, dao.Job{Id: 3, Title: "Designer", Status: "Active"})
	s.input(search.BizBlog, 4, dao.Blog{Id: 4, Title: "Why we love Golang", Published: true})
	s.input(search.BizBlog, 5, dao.Blog{Id: 5, Title: "Golang draft", Published: false})
	s.refresh()

	res := s.search(web.SearchReq{Keyword: "golang"})
	assert.Equal(s.T(), 0, res.Code)
	assert.Equal(s.T(), int64(1), res.Data.JobTotal)
	require.Len(s.T(), res.Data.Jobs, 1)
	assert.Equal(s.T(), int64(1), res.Data.Jobs[0].Id)
	assert.Equal(s.T(), int64(1), res.Data.BlogTotal)
	require.Len(s.T(), res.Data.Blogs, 1)
	assert.Equal(s.T(), int64(4), res.Data.Blogs[0].Id)

	res = s.search(web.SearchReq{Keyword: "golang", Biz: search.BizBlog})
	assert.Empty(s.T(), res.Data.Jobs)
	assert.Len(s.T(), res.Data.Blogs, 1)
}

func (s *HandlerTestSuite) TestSearchInvalid() {
	res := s.search(web.SearchReq{Keyword: "  "})
	assert.Equal(s.T(), errs.InvalidQuery.Code, res.Code)
	res = s.search(web.SearchReq{Keyword: "go", Biz: "order"})
	assert.Equal(s.T(), errs.InvalidQuery.Code, res.Code)
}

func (s *HandlerTestSuite) TestSyncEvent() {
	data, err := json.Marshal(dao.Job{Id: 10, Title: "Kafka Engineer", Status: "Active"})
	require.NoError(s.T(), err)
	err = s.producer.Produce(context.Background(), search.SyncEvent{
		Biz:   search.BizJob,
		BizID: 10,
		Data:  string(data),
	})
	require.NoError(s.T(), err)

	assert.Eventually(s.T(), func() bool {
		s.refresh()
		return s.search(web.SearchReq{Keyword: "kafka"}).Data.JobTotal == 1
	}, 10*time.Second, 200*time.Millisecond)

	err = s.producer.Produce(context.Background(), search.SyncEvent{
		Biz:     search.BizJob,
		BizID:   10,
		Deleted: true,
	})
	require.NoError(s.T(), err)
	assert.Eventually(s.T(), func() bool {
		s.refresh()
		return s.search(web.SearchReq{Keyword: "kafka"}).Data.JobTotal == 0
	}, 10*time.Second, 200*time.Millisecond)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
