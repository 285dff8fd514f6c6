//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mastersolis/internal/jobposting"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/web"
	"github.com/ecodeclub/mastersolis/internal/test"
	testioc "github.com/ecodeclub/mastersolis/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	db          *egorm.Component
	server      *egin.Component
	adminServer *egin.Component
	dao         dao.JobDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	module, err := jobposting.InitModule(s.db, testioc.InitMQ())
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})

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
	s.dao = dao.NewGORMJobDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `job_postings`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestAdminSave() {
	req := web.SaveJobReq{
		Job: web.Job{
			Title:          "Senior Go Engineer",
			Department:     "Engineering",
			Location:       "Remote",
			EmploymentType: "Full-time",
		},
		ResponsibilitiesText: "Design services\n\nReview code\r\n",
		RequirementsText:     "5+ years Go",
		SkillsText:           "Go, MySQL, Go, ,Kafka",
	}
	httpReq, err := http.NewRequest(http.MethodPost, "/job/save", iox.NewJSONReader(req))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.adminServer.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), 200, recorder.Code)
	id := recorder.MustScan().Data
	require.True(s.T(), id > 0)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	job, err := s.dao.FindById(ctx, id)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Active", job.Status)
	assert.True(s.T(), job.PostedDate > 0)
	assert.Equal(s.T(), []string{"Design services", "Review code"}, job.Responsibilities.Val)
	assert.Equal(s.T(), []string{"5+ years Go"}, job.Requirements.Val)
	assert.Equal(s.T(), []string{"Go", "MySQL", "Kafka"}, job.Skills.Val)
}

func (s *HandlerTestSuite) TestAdminSaveInvalid() {
	req := web.SaveJobReq{
		Job: web.Job{Title: "Go Engineer", EmploymentType: "Freelance"},
	}
	httpReq, err := http.NewRequest(http.MethodPost, "/job/save", iox.NewJSONReader(req))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.adminServer.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), errs.InvalidInput.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestPublicListAndDetail() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	now := time.Now().UnixMilli()
	jobs := []dao.JobPosting{
		{Id: 1, Title: "旧的职位", EmploymentType: "Full-time", Status: "Active", PostedDate: now - 2000},
		{Id: 2, Title: "关闭的职位", EmploymentType: "Contract", Status: "Closed", PostedDate: now - 1000},
		{Id: 3, Title: "新的职位", EmploymentType: "Part-time", Status: "Active", PostedDate: now},
		{Id: 4, Title: "草稿", EmploymentType: "Internship", Status: "Draft", PostedDate: now},
	}
	for _, j := range jobs {
		_, err := s.dao.Save(ctx, j)
		require.NoError(s.T(), err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, "/job/list", iox.NewJSONReader(web.Page{Limit: 10}))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.JobList]()
	s.server.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), 200, recorder.Code)
	list := recorder.MustScan().Data
	assert.Equal(s.T(), int64(2), list.Total)
	require.Len(s.T(), list.List, 2)
	assert.Equal(s.T(), int64(3), list.List[0].Id)
	assert.Equal(s.T(), int64(1), list.List[1].Id)

	testCases := []struct {
		name     string
		id       int64
		wantCode int
	}{
		{name: "Active 职位可见", id: 1},
		{name: "关闭的职位不可见", id: 2, wantCode: errs.JobNotFound.Code},
		{name: "草稿不可见", id: 4, wantCode: errs.JobNotFound.Code},
		{name: "不存在", id: 100, wantCode: errs.JobNotFound.Code},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			httpReq, err := http.NewRequest(http.MethodPost, "/job/detail", iox.NewJSONReader(web.IdReq{Id: tc.id}))
			require.NoError(t, err)
			httpReq.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Job]()
			s.server.ServeHTTP(recorder, httpReq)
			require.Equal(t, 200, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode == 0 {
				assert.Equal(t, tc.id, res.Data.Id)
			}
		})
	}
}

func (s *HandlerTestSuite) TestAdminClose() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := s.dao.Save(ctx, dao.JobPosting{Id: 7, Title: "Go", EmploymentType: "Full-time", Status: "Active"})
	require.NoError(s.T(), err)
	httpReq, err := http.NewRequest(http.MethodPost, "/job/close", iox.NewJSONReader(web.IdReq{Id: 7}))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(recorder, httpReq)
	require.Equal(s.T(), 200, recorder.Code)
	job, err := s.dao.FindById(ctx, 7)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Closed", job.Status)
}

func TestJobHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
