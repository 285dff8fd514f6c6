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
	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/application"
	"github.com/ecodeclub/mastersolis/internal/blog"
	"github.com/ecodeclub/mastersolis/internal/contact"
	"github.com/ecodeclub/mastersolis/internal/dashboard"
	"github.com/ecodeclub/mastersolis/internal/jobposting"
	"github.com/ecodeclub/mastersolis/internal/pkg/middleware"
	"github.com/ecodeclub/mastersolis/internal/showcase"
	"github.com/ecodeclub/mastersolis/internal/storage"
	"github.com/ecodeclub/mastersolis/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(sp session.Provider,
	jobHdl *jobposting.AdminHandler,
	appHdl *application.AdminHandler,
	blogHdl *blog.AdminHandler,
	contactHdl *contact.AdminHandler,
	showcaseHdl *showcase.AdminHandler,
	dashboardHdl *dashboard.AdminHandler,
	aiHdl *ai.AdminHandler,
	storageHdl *storage.AdminHandler,
) AdminServer {
	session.SetDefaultProvider(sp)
	res := egin.Load("server.admin").Build()
	res.Use(corsMiddleware())
	res.Use(middleware.NewMetricsBuilder("admin").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(user.RoleKey, user.RoleAdmin.String()).Build())
	jobHdl.PrivateRoutes(res.Engine)
	appHdl.PrivateRoutes(res.Engine)
	blogHdl.PrivateRoutes(res.Engine)
	contactHdl.PrivateRoutes(res.Engine)
	showcaseHdl.PrivateRoutes(res.Engine)
	dashboardHdl.PrivateRoutes(res.Engine)
	aiHdl.PrivateRoutes(res.Engine)
	storageHdl.PrivateRoutes(res.Engine)
	return res
}
