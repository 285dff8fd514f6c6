package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/mastersolis/internal/resume/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/resume/internal/errs"
	"github.com/ecodeclub/mastersolis/internal/resume/internal/service"
	resumemocks "github.com/ecodeclub/mastersolis/internal/resume/mocks"
	"github.com/ecodeclub/mastersolis/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Suggest(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *resumemocks.MockService)
		wantCode int
		wantData Suggestion
	}{
		{
			name: "成功",
			mock: func(svc *resumemocks.MockService) {
				svc.EXPECT().Suggest(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.Resume) (domain.Suggestion, error) {
						assert.Equal(t, "Jane Doe", r.FullName)
						assert.Equal(t, []domain.Experience{{Title: "Go Engineer", Current: true}}, r.Experience)
						return domain.Suggestion{Summary: "Strong engineer.", Skills: []string{"Kafka"}, PowerWords: []string{"Led"}}, nil
					})
			},
			wantData: Suggestion{Summary: "Strong engineer.", Skills: []string{"Kafka"}, PowerWords: []string{"Led"}},
		},
		{
			name: "大模型失败",
			mock: func(svc *resumemocks.MockService) {
				svc.EXPECT().Suggest(gomock.Any(), gomock.Any()).Return(domain.Suggestion{}, service.ErrSuggestFailed)
			},
			wantCode: errs.SuggestFailed.Code,
		},
		{
			name: "没有姓名",
			mock: func(svc *resumemocks.MockService) {
				svc.EXPECT().Suggest(gomock.Any(), gomock.Any()).Return(domain.Suggestion{}, domain.ErrInvalidResume)
			},
			wantCode: errs.InvalidResume.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := resumemocks.NewMockService(ctrl)
			tc.mock(svc)
			server := gin.New()
			NewHandler(svc).PublicRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/resume/suggest", iox.NewJSONReader(Resume{
				FullName:   "Jane Doe",
				Experience: []Experience{{Title: "Go Engineer", Current: true}},
			}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Suggestion]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}

func TestHandler_Render(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *resumemocks.MockService)
		wantType string
		wantBody string
		wantDisp string
	}{
		{
			name: "下载",
			mock: func(svc *resumemocks.MockService) {
				svc.EXPECT().Render(gomock.Any(), gomock.Any()).
					Return(domain.Document{FileName: "Jane_Doe_Resume.html", Content: []byte("<html></html>")}, nil)
			},
			wantType: "text/html; charset=utf-8",
			wantBody: "<html></html>",
			wantDisp: `attachment; filename="Jane_Doe_Resume.html"`,
		},
		{
			name: "没有姓名",
			mock: func(svc *resumemocks.MockService) {
				svc.EXPECT().Render(gomock.Any(), gomock.Any()).Return(domain.Document{}, domain.ErrInvalidResume)
			},
			wantType: "application/json; charset=utf-8",
		},
		{
			name: "渲染失败",
			mock: func(svc *resumemocks.MockService) {
				svc.EXPECT().Render(gomock.Any(), gomock.Any()).Return(domain.Document{}, errors.New("mock error"))
			},
			wantType: "application/json; charset=utf-8",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := resumemocks.NewMockService(ctrl)
			tc.mock(svc)
			server := gin.New()
			NewHandler(svc).PublicRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/resume/render", iox.NewJSONReader(Resume{FullName: "Jane Doe"}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantType, recorder.Header().Get("Content-Type"))
			assert.Equal(t, tc.wantDisp, recorder.Header().Get("Content-Disposition"))
			if tc.wantBody != "" {
				assert.Equal(t, tc.wantBody, recorder.Body.String())
			}
		})
	}
}
