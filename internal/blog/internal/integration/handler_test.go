//go:build e2e

package integration

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mastersolis/internal/ai"
	aimocks "github.com/ecodeclub/mastersolis/internal/ai/mocks"
	"github.com/ecodeclub/mastersolis/internal/blog"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/web"
	"github.com/ecodeclub/mastersolis/internal/test"
	testioc "github.com/ecodeclub/mastersolis/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	db           *egorm.Component
	server       *egin.Component
	adminServer  *egin.Component
	dao          dao.PostDAO
	summaryCalls atomic.Int64
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	ctrl := gomock.NewController(s.T())
	llmSvc := aimocks.NewMockService(ctrl)
	llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
			switch req.Biz {
			case ai.BizBlogSEO:
				return ai.LLMResponse{Answer: `{"summary": "Two sentences.", "seo_description": "Meta."}`}, nil
			case ai.BizBlogSummary:
				s.summaryCalls.Add(1)
				// 模拟大模型比较慢
				time.Sleep(100 * time.Millisecond)
				return ai.LLMResponse{Answer: "- key point"}, nil
			}
			return ai.LLMResponse{Answer: "# Generated"}, nil
		}).AnyTimes()

	module, err := blog.InitModule(s.db, testioc.InitCache(), testioc.InitMQ(), &ai.Module{Svc: llmSvc})
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "5s"})

	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server

	adminServer := egin.Load("server").Build()
	adminServer.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  1,
			Data: map[string]string{"role": "admin"},
		}))
	})
	module.AdminHdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer
	s.dao = dao.NewGORMPostDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `blog_posts`").Error
	require.NoError(s.T(), err)
	s.summaryCalls.Store(0)
}

func (s *HandlerTestSuite) seed() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	now := time.Now().UnixMilli()
	posts := []dao.Post{
		{Id: 1, Title: "Scaling Go", Excerpt: "production lessons", Category: "Engineering", Published: true, PublishDate: now - 3000, Content: "go body",
			Tags: sqlx.JsonColumn[[]string]{Valid: true, Val: []string{"go"}}},
		{Id: 2, Title: "Design Systems", Excerpt: "consistency", Category: "Design", Published: true, PublishDate: now - 2000, Content: "design body"},
		{Id: 3, Title: "Draft about Go", Category: "Engineering", Published: false, PublishDate: now},
		{Id: 4, Title: "Cloud Cost", Excerpt: "Save money with GO", Category: "Cloud", Published: true, PublishDate: now - 1000, Content: "cloud body"},
	}
	for _, p := range posts {
		_, err := s.dao.Save(ctx, p)
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestAdminSave() {
	req := web.SavePostReq{
		Post:     web.Post{Title: "Cloud Native", Content: "Kubernetes everywhere", Published: true},
		TagsText: "cloud, k8s, cloud",
	}
	httpReq, err := http.NewRequest(http.MethodPost, "/blog/save", iox.NewJSONReader(req))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.adminServer.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), 200, recorder.Code)
	id := recorder.MustScan().Data

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	post, err := s.dao.FindById(ctx, id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []string{"cloud", "k8s"}, post.Tags.Val)
	assert.Equal(s.T(), "Two sentences.", post.AISummary)
	assert.Equal(s.T(), "Meta.", post.SEODescription)
	assert.True(s.T(), post.PublishDate > 0)
	assert.Equal(s.T(), 1, post.ReadTime)
}

func (s *HandlerTestSuite) TestPublicList() {
	s.seed()
	testCases := []struct {
		name      string
		req       web.ListReq
		wantIds   []int64
		wantTotal int64
	}{
		{name: "只有发布的，按照发布时间倒序", req: web.ListReq{Limit: 10}, wantIds: []int64{4, 2, 1}, wantTotal: 3},
		{name: "搜索标题和摘要", req: web.ListReq{Search: "go", Limit: 10}, wantIds: []int64{4, 1}, wantTotal: 2},
		{name: "分类", req: web.ListReq{Category: "Engineering", Limit: 10}, wantIds: []int64{1}, wantTotal: 1},
		{name: "分类 all", req: web.ListReq{Category: "all", Limit: 1}, wantIds: []int64{4}, wantTotal: 3},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/blog/list", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.PostList]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan().Data
			assert.Equal(t, tc.wantTotal, res.Total)
			ids := make([]int64, 0, len(res.List))
			for _, p := range res.List {
				ids = append(ids, p.Id)
				assert.Empty(t, p.Content)
			}
			assert.Equal(t, tc.wantIds, ids)
		})
	}
}

func (s *HandlerTestSuite) TestDetailIncrViews() {
	s.seed()
	for i := 0; i < 3; i++ {
		req, err := http.NewRequest(http.MethodPost, "/blog/detail", iox.NewJSONReader(web.IdReq{Id: 1}))
		require.NoError(s.T(), err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.Post]()
		s.server.ServeHTTP(recorder, req)
		res := recorder.MustScan().Data
		assert.Equal(s.T(), int64(i+1), res.Views)
		assert.Equal(s.T(), "go body", res.Content)
	}
	// 草稿
	req, err := http.NewRequest(http.MethodPost, "/blog/detail", iox.NewJSONReader(web.IdReq{Id: 3}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Post]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), errs.PostNotFound.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestSummaryOnce() {
	s.seed()
	const n = 5
	var (
		wg    sync.WaitGroup
		codes = make([]int, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req, err := http.NewRequest(http.MethodPost, "/blog/summary", iox.NewJSONReader(web.IdReq{Id: 2}))
			require.NoError(s.T(), err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[string]()
			s.server.ServeHTTP(recorder, req)
			codes[i] = recorder.MustScan().Code
		}(i)
	}
	wg.Wait()
	// 并发请求只调用一次大模型，其余的要么拿到结果，要么被告知正在生成
	assert.Equal(s.T(), int64(1), s.summaryCalls.Load())
	for _, code := range codes {
		assert.Contains(s.T(), []int{0, errs.SummaryInProgress.Code}, code)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	post, err := s.dao.FindById(ctx, 2)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "- key point", post.AISummary)

	// 之后直接返回缓存的
	req, err := http.NewRequest(http.MethodPost, "/blog/summary", iox.NewJSONReader(web.IdReq{Id: 2}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[string]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), "- key point", recorder.MustScan().Data)
	assert.Equal(s.T(), int64(1), s.summaryCalls.Load())
}

func (s *HandlerTestSuite) TestCategories() {
	s.seed()
	req, err := http.NewRequest(http.MethodGet, "/blog/categories", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[[]string]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(s.T(), []string{"Cloud", "Design", "Engineering"}, recorder.MustScan().Data)
}

func TestBlogHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
