//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mastersolis/internal/ai"
	aimocks "github.com/ecodeclub/mastersolis/internal/ai/mocks"
	"github.com/ecodeclub/mastersolis/internal/contact"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/repository/dao"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/web"
	"github.com/ecodeclub/mastersolis/internal/email"
	emailmocks "github.com/ecodeclub/mastersolis/internal/email/mocks"
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
	db          *egorm.Component
	server      *egin.Component
	adminServer *egin.Component
	dao         dao.ContactDAO
	mails       chan email.Mail
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.mails = make(chan email.Mail, 10)
	ctrl := gomock.NewController(s.T())
	llmSvc := aimocks.NewMockService(ctrl)
	llmSvc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ai.LLMResponse{Answer: "Dear visitor"}, nil).AnyTimes()
	mailSvc := emailmocks.NewMockService(ctrl)
	mailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, m email.Mail) error {
			s.mails <- m
			return nil
		}).AnyTimes()

	module, err := contact.InitModule(s.db, testioc.InitCache(), &ai.Module{Svc: llmSvc}, mailSvc)
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
	s.dao = dao.NewGORMContactDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `contact_submissions`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestSubmit() {
	testCases := []struct {
		name     string
		req      web.SubmitReq
		wantCode int
		wantMail bool
	}{
		{
			name: "提交成功",
			req: web.SubmitReq{
				Name: "Alice", Email: "alice@a.com", Subject: "Website",
				Message: "We need a new site", BudgetRange: "$10k-$25k",
			},
			wantMail: true,
		},
		{
			name:     "缺少主题",
			req:      web.SubmitReq{Name: "Alice", Email: "alice@a.com", Message: "hi"},
			wantCode: errs.InvalidInput.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/contact/submit", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
			if !tc.wantMail {
				return
			}
			select {
			case m := <-s.mails:
				assert.Equal(t, tc.req.Email, m.To)
				assert.Equal(t, "Dear visitor", string(m.Body))
			case <-time.After(3 * time.Second):
				t.Fatal("没有发送确认邮件")
			}
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			cs, err := s.dao.List(ctx, "", 0, 10)
			require.NoError(t, err)
			require.Len(t, cs, 1)
			assert.Equal(t, "New", cs[0].Status)
			assert.Equal(t, "$10k-$25k", cs[0].BudgetRange)
		})
	}
}

func (s *HandlerTestSuite) TestAdmin() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	id, err := s.dao.Insert(ctx, dao.Contact{Name: "Bob", Email: "bob@b.com", Subject: "s", Message: "m", Status: "New"})
	require.NoError(s.T(), err)

	req, err := http.NewRequest(http.MethodPost, "/contact/status",
		iox.NewJSONReader(web.StatusReq{Id: id, Status: "Responded"}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), 0, recorder.MustScan().Code)

	req, err = http.NewRequest(http.MethodPost, "/contact/list",
		iox.NewJSONReader(web.ListReq{Status: "Responded", Limit: 10}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	listRecorder := test.NewJSONResponseRecorder[web.ContactList]()
	s.adminServer.ServeHTTP(listRecorder, req)
	require.Equal(s.T(), 200, listRecorder.Code)
	res := listRecorder.MustScan().Data
	assert.Equal(s.T(), int64(1), res.Total)
	assert.Equal(s.T(), "Responded", res.List[0].Status)

	req, err = http.NewRequest(http.MethodPost, "/contact/status",
		iox.NewJSONReader(web.StatusReq{Id: id + 100, Status: "Closed"}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[any]()
	s.adminServer.ServeHTTP(recorder, req)
	assert.Equal(s.T(), errs.ContactNotFound.Code, recorder.MustScan().Code)
}

func TestContactHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
