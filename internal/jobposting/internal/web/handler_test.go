package web

import (
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/domain"
	jobmocks "github.com/ecodeclub/mastersolis/internal/jobposting/mocks"
	"github.com/ecodeclub/mastersolis/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_List(t *testing.T) {
	testCases := []struct {
		name       string
		req        Page
		wantOffset int
		wantLimit  int
	}{
		{
			name:       "正常分页",
			req:        Page{Offset: 10, Limit: 5},
			wantOffset: 10,
			wantLimit:  5,
		},
		{
			name:       "没有传 limit",
			req:        Page{},
			wantOffset: 0,
			wantLimit:  20,
		},
		{
			name:       "limit 超过上限",
			req:        Page{Offset: 3, Limit: 100000},
			wantOffset: 3,
			wantLimit:  100,
		},
		{
			name:       "负数",
			req:        Page{Offset: -1, Limit: -5},
			wantOffset: 0,
			wantLimit:  20,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := jobmocks.NewMockService(ctrl)
			svc.EXPECT().ListActive(gomock.Any(), tc.wantOffset, tc.wantLimit).
				DoAndReturn(func(ctx context.Context, offset int, limit int) ([]domain.JobPosting, int64, error) {
					return []domain.JobPosting{{Id: 1, Title: "Go Engineer"}}, 1, nil
				})
			server := gin.New()
			NewHandler(svc).PublicRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/job/list", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[JobList]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, 0, res.Code)
			assert.Equal(t, int64(1), res.Data.Total)
		})
	}
}
