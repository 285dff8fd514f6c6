package service

import (
	"context"
	"errors"
	"testing"

	aimocks "github.com/ecodeclub/mastersolis/internal/ai/mocks"
	"github.com/ecodeclub/mastersolis/internal/ai/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/pkg/doctext"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestExtractService_ExtractResume(t *testing.T) {
	testCases := []struct {
		name   string
		file   domain.ResumeFile
		textOf func(filename string, data []byte) (string, error)
		mock   func(ctrl *gomock.Controller) *aimocks.MockService

		wantData domain.ResumeData
		wantErr  error
	}{
		{
			name: "抽取成功",
			file: domain.ResumeFile{Name: "cv.pdf", Data: []byte("pdf")},
			textOf: func(filename string, data []byte) (string, error) {
				return "Jane Doe jane@example.com Go, Kafka", nil
			},
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
						assert.Equal(t, domain.BizResumeExtract, req.Biz)
						assert.Equal(t, []string{"Jane Doe jane@example.com Go, Kafka"}, req.Input)
						return domain.LLMResponse{Answer: `{"name":"Jane Doe","email":"jane@example.com",
"phone":"","skills":[" Go ","","Kafka"],"experience":"5 years","education":"BSc","certifications":[]}`}, nil
					})
				return svc
			},
			wantData: domain.ResumeData{
				Name:           "Jane Doe",
				Email:          "jane@example.com",
				Skills:         []string{"Go", "Kafka"},
				Experience:     "5 years",
				Education:      "BSc",
				Certifications: []string{},
			},
		},
		{
			name: "不支持的格式",
			file: domain.ResumeFile{Name: "cv.doc", Data: []byte("doc")},
			textOf: doctext.Extract,
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				return aimocks.NewMockService(ctrl)
			},
			wantErr: doctext.ErrUnsupportedType,
		},
		{
			name: "大模型返回非法 JSON",
			file: domain.ResumeFile{Name: "cv.docx", Data: []byte("docx")},
			textOf: func(filename string, data []byte) (string, error) {
				return "resume", nil
			},
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{Answer: "sorry"}, nil)
				return svc
			},
			wantErr: ErrMalformedAnswer,
		},
		{
			name: "大模型调用失败",
			file: domain.ResumeFile{Name: "cv.docx", Data: []byte("docx")},
			textOf: func(filename string, data []byte) (string, error) {
				return "resume", nil
			},
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{}, context.DeadlineExceeded)
				return svc
			},
			wantErr: context.DeadlineExceeded,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewExtractService(tc.mock(ctrl)).(*extractService)
			svc.textOf = tc.textOf
			data, err := svc.ExtractResume(context.Background(), tc.file)
			assert.True(t, errors.Is(err, tc.wantErr), err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantData, data)
		})
	}
}
