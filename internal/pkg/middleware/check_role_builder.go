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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckRoleMiddlewareBuilder 校验 session 里面的角色
// 没有登录返回 401，角色不对返回 403
type CheckRoleMiddlewareBuilder struct {
	key    string
	roles  map[string]struct{}
	sp     session.Provider
	logger *elog.Component
}

func NewCheckRoleMiddlewareBuilder(key string, roles ...string) *CheckRoleMiddlewareBuilder {
	m := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		m[r] = struct{}{}
	}
	return &CheckRoleMiddlewareBuilder{
		key:    key,
		roles:  m,
		logger: elog.DefaultLogger.With(elog.FieldComponent("middleware.role")),
	}
}

func (c *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		role := claims.Get(c.key).StringOrDefault("")
		if _, ok := c.roles[role]; !ok {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Error("非法访问",
				elog.Int64("uid", claims.Uid),
				elog.String("role", role),
				elog.String("path", ctx.Request.URL.Path))
			return
		}
	}
}
