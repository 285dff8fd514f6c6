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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mastersolis/internal/application"
	"github.com/ecodeclub/mastersolis/internal/blog"
	"github.com/ecodeclub/mastersolis/internal/chat"
	"github.com/ecodeclub/mastersolis/internal/contact"
	"github.com/ecodeclub/mastersolis/internal/jobposting"
	"github.com/ecodeclub/mastersolis/internal/pkg/middleware"
	"github.com/ecodeclub/mastersolis/internal/resume"
	"github.com/ecodeclub/mastersolis/internal/search"
	"github.com/ecodeclub/mastersolis/internal/showcase"
	"github.com/ecodeclub/mastersolis/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	jobHdl *jobposting.Handler,
	appHdl *application.Handler,
	blogHdl *blog.Handler,
	contactHdl *contact.Handler,
	showcaseHdl *showcase.Handler,
	chatHdl *chat.Handler,
	searchHdl *search.Handler,
	resumeHdl *resume.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.web").Build()
	res.Use(corsMiddleware())
	res.Use(middleware.NewMetricsBuilder("web").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	jobHdl.PublicRoutes(res.Engine)
	appHdl.PublicRoutes(res.Engine)
	blogHdl.PublicRoutes(res.Engine)
	contactHdl.PublicRoutes(res.Engine)
	showcaseHdl.PublicRoutes(res.Engine)
	chatHdl.PublicRoutes(res.Engine)
	searchHdl.PublicRoutes(res.Engine)
	resumeHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	return res
}
