package web

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/mastersolis/internal/search/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/search/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/search/internal/service"
	searchmocks "github.com/ecodeclub/mastersolis/internal/search/mocks"
	"github.com/ecodeclub/mastersolis/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Search(t *testing.T) {
	posted := time.UnixMilli(1700000000000)
	testCases := []struct {
		name     string
		req      SearchReq
		mock     func(svc *searchmocks.MockSearchService)
		wantCode int
		wantData SearchResult
	}{
		{
			name: "搜索全部",
			req:  SearchReq{Keyword: "golang", Limit: 5},
			mock: func(svc *searchmocks.MockSearchService) {
				svc.EXPECT().Search(gomock.Any(), domain.Query{Keyword: "golang", Limit: 5}).
					Return(domain.Result{
						Jobs: []domain.Job{
							{Id: 1, Title: "Go Engineer", Skills: []string{"go"}, PostedDate: posted},
						},
						JobTotal: 1,
						Blogs: []domain.Blog{
							{Id: 2, Title: "Golang tips", Tags: []string{"go"}, PublishDate: posted},
						},
						BlogTotal: 1,
					}, nil)
			},
			wantData: SearchResult{
				Jobs:      []Job{{Id: 1, Title: "Go Engineer", Skills: []string{"go"}, PostedDate: posted.UnixMilli()}},
				JobTotal:  1,
				Blogs:     []Blog{{Id: 2, Title: "Golang tips", Tags: []string{"go"}, PublishDate: posted.UnixMilli()}},
				BlogTotal: 1,
			},
		},
		{
			name: "非法查询",
			req:  SearchReq{Biz: "order"},
			mock: func(svc *searchmocks.MockSearchService) {
				svc.EXPECT().Search(gomock.Any(), domain.Query{Biz: "order"}).
					Return(domain.Result{}, service.ErrInvalidQuery)
			},
			wantCode: errs.InvalidQuery.Code,
		},
		{
			name: "系统错误",
			req:  SearchReq{Keyword: "go"},
			mock: func(svc *searchmocks.MockSearchService) {
				svc.EXPECT().Search(gomock.Any(), gomock.Any()).
					Return(domain.Result{}, errors.New("mock es error"))
			},
			wantCode: errs.SystemError.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := searchmocks.NewMockSearchService(ctrl)
			tc.mock(svc)
			server := gin.New()
			NewHandler(svc).PublicRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/search", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[SearchResult]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}
