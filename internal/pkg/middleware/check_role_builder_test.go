package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mastersolis/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRoleMiddlewareBuilder_Build(t *testing.T) {
	testCases := []struct {
		name     string
		sess     session.Session
		wantCode int
	}{
		{
			name:     "未登录",
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "不是管理员",
			sess: session.NewMemorySession(session.Claims{
				Uid:  2,
				Data: map[string]string{"role": "user"},
			}),
			wantCode: http.StatusForbidden,
		},
		{
			name: "没有角色",
			sess: session.NewMemorySession(session.Claims{
				Uid:  3,
				Data: map[string]string{},
			}),
			wantCode: http.StatusForbidden,
		},
		{
			name: "管理员",
			sess: session.NewMemorySession(session.Claims{
				Uid:  1,
				Data: map[string]string{"role": "admin"},
			}),
			wantCode: http.StatusOK,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				if tc.sess != nil {
					ctx.Set(session.CtxSessionKey, tc.sess)
				}
			})
			builder := NewCheckRoleMiddlewareBuilder("role", "admin")
			builder.sp = &test.SessionProvider{}
			server.Use(builder.Build())
			server.GET("/dashboard/stats", func(ctx *gin.Context) {
				ctx.String(http.StatusOK, "ok")
			})
			req, err := http.NewRequest(http.MethodGet, "/dashboard/stats", nil)
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
