// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mastersolis/internal/test"
	testioc "github.com/ecodeclub/mastersolis/internal/test/ioc"
	"github.com/ecodeclub/mastersolis/internal/user"
	"github.com/ecodeclub/mastersolis/internal/user/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/user/internal/web"
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
	db     *egorm.Component
	server *egin.Component
	module *user.Module
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	econf.Set("user.admins", []map[string]any{
		{"email": "admin@mastersolis.com", "password": "hello#world123", "nickname": "Admin"},
	})
	s.module = user.InitModule(s.db, testioc.InitCache())
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	s.module.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid: 1,
		}))
	})
	s.module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestLogin() {
	testCases := []struct {
		name     string
		req      web.LoginReq
		wantCode int
		wantResp test.Result[web.Profile]
	}{
		{
			name: "管理员登录成功",
			req:  web.LoginReq{Email: "Admin@Mastersolis.com", Password: "hello#world123"},
			wantCode: 200,
			wantResp: test.Result[web.Profile]{
				Data: web.Profile{Email: "admin@mastersolis.com", Nickname: "Admin", Role: "admin"},
			},
		},
		{
			name:     "密码错误",
			req:      web.LoginReq{Email: "admin@mastersolis.com", Password: "wrong"},
			wantCode: 200,
			wantResp: test.Result[web.Profile]{
				Code: errs.InvalidCredentials.Code,
				Msg:  errs.InvalidCredentials.Msg,
			},
		},
		{
			name:     "缺少密码",
			req:      web.LoginReq{Email: "admin@mastersolis.com"},
			wantCode: 200,
			wantResp: test.Result[web.Profile]{
				Code: errs.InvalidInput.Code,
				Msg:  errs.InvalidInput.Msg,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/users/login", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			// id 是自增的，不比较
			res.Data.Id = 0
			assert.Equal(t, tc.wantResp, res)
		})
	}
}

func (s *HandlerTestSuite) TestMe() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	admin, err := s.module.Svc.Login(ctx, "admin@mastersolis.com", "hello#world123")
	require.NoError(s.T(), err)
	// 中间件里面放的是 uid = 1，TRUNCATE 之后第一个管理员就是 1
	require.Equal(s.T(), int64(1), admin.Id)

	req, err := http.NewRequest(http.MethodGet, "/users/me", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	assert.Equal(s.T(), web.Profile{
		Id:       1,
		Email:    "admin@mastersolis.com",
		Nickname: "Admin",
		Role:     "admin",
	}, recorder.MustScan().Data)
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
