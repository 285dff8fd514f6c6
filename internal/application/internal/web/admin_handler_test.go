package web

import (
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/mastersolis/internal/application/internal/domain"
	appmocks "github.com/ecodeclub/mastersolis/internal/application/mocks"
	"github.com/ecodeclub/mastersolis/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_List(t *testing.T) {
	testCases := []struct {
		name       string
		req        ListReq
		wantOffset int
		wantLimit  int
	}{
		{
			name:       "正常分页",
			req:        ListReq{Offset: 20, Limit: 10},
			wantOffset: 20,
			wantLimit:  10,
		},
		{
			name:      "没有传 limit",
			req:       ListReq{FilterReq: FilterReq{Status: "New"}},
			wantLimit: 20,
		},
		{
			name:       "limit 超过上限",
			req:        ListReq{Offset: -3, Limit: 99999},
			wantOffset: 0,
			wantLimit:  100,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := appmocks.NewMockService(ctrl)
			svc.EXPECT().List(gomock.Any(), tc.req.toDomain(), tc.wantOffset, tc.wantLimit).
				DoAndReturn(func(ctx context.Context, filter domain.Filter, offset int, limit int) ([]domain.Application, int64, error) {
					return []domain.Application{{Id: 1, FullName: "Alice", Status: domain.StatusNew}}, 1, nil
				})
			server := gin.New()
			NewAdminHandler(svc).PrivateRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/application/list", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[ApplicationList]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, 0, res.Code)
			assert.Equal(t, int64(1), res.Data.Total)
		})
	}
}
