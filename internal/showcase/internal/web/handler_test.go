package web

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/showcase/internal/service"
	showcasemocks "github.com/ecodeclub/mastersolis/internal/showcase/mocks"
	"github.com/ecodeclub/mastersolis/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Home(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	testCases := []struct {
		name     string
		mock     func(svc *showcasemocks.MockService)
		wantCode int
		wantData Home
	}{
		{
			name: "成功",
			mock: func(svc *showcasemocks.MockService) {
				svc.EXPECT().Home(gomock.Any()).Return(domain.Home{
					Services:     []domain.ServiceItem{{Id: 1, Title: "Cloud", DisplayOrder: 9, Ctime: now, Utime: now}},
					Testimonials: []domain.Testimonial{{Id: 2, ClientName: "Ann", Rating: 5, Ctime: now, Utime: now}},
					Projects:     []domain.Project{{Id: 3, Title: "CRM", Featured: true, CompletionDate: now, Ctime: now, Utime: now}},
				}, nil)
			},
			wantData: Home{
				Services:     []ServiceItem{{Id: 1, Title: "Cloud", DisplayOrder: 9, Ctime: now.UnixMilli(), Utime: now.UnixMilli()}},
				Testimonials: []Testimonial{{Id: 2, ClientName: "Ann", Rating: 5, Ctime: now.UnixMilli(), Utime: now.UnixMilli()}},
				Projects: []Project{{Id: 3, Title: "CRM", Featured: true, CompletionDate: now.UnixMilli(),
					Ctime: now.UnixMilli(), Utime: now.UnixMilli()}},
			},
		},
		{
			name: "查询失败",
			mock: func(svc *showcasemocks.MockService) {
				svc.EXPECT().Home(gomock.Any()).Return(domain.Home{}, errors.New("mock db error"))
			},
			wantCode: errs.SystemError.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := showcasemocks.NewMockService(ctrl)
			tc.mock(svc)
			server := gin.New()
			NewHandler(svc, nil, nil, nil, nil).PublicRoutes(server)
			req, err := http.NewRequest(http.MethodGet, "/home", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Home]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}

func TestAdminHandler_SaveInvalid(t *testing.T) {
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: 1}))
	})
	// 校验不通过的时候不会访问存储
	NewAdminHandler(nil, nil, service.NewTestimonialService(nil), nil).PrivateRoutes(server)
	req, err := http.NewRequest(http.MethodPost, "/showcase/testimonials/save",
		iox.NewJSONReader(Testimonial{ClientName: "Ann", Content: "good", Rating: 7}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, errs.InvalidInput.Code, recorder.MustScan().Code)
}
