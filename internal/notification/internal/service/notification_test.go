package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/mastersolis/internal/notification/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/sms/client"
	smsmocks "github.com/ecodeclub/mastersolis/internal/sms/client/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeRobot struct {
	contents []string
	err      error
}

func (f *fakeRobot) SendMarkdown(ctx context.Context, content string) error {
	f.contents = append(f.contents, content)
	return f.err
}

func TestService_NotifyNewApplication(t *testing.T) {
	high, low := 90, 50
	cfg := domain.Config{
		ScoreThreshold: 80,
		Phones:         []string{"13800000000"},
		SMSTemplateID:  "SMS_1",
	}
	testCases := []struct {
		name      string
		cfg       domain.Config
		app       domain.NewApplication
		robotErr  error
		mock      func(c *smsmocks.MockClient)
		wantErr   bool
		wantRobot int
	}{
		{
			name: "高分发短信",
			cfg:  cfg,
			app:  domain.NewApplication{ApplicationId: 1, FullName: "Jane", JobTitle: "Go", Score: &high},
			mock: func(c *smsmocks.MockClient) {
				c.EXPECT().Send(gomock.Any(), client.SendReq{
					PhoneNumbers: []string{"13800000000"},
					TemplateID:   "SMS_1",
					TemplateParam: map[string]string{
						"name":  "Jane",
						"job":   "Go",
						"score": "90",
					},
				}).Return(client.SendResp{PhoneNumbers: map[string]client.SendRespStatus{
					"13800000000": {Code: client.OK},
				}}, nil)
			},
			wantRobot: 1,
		},
		{
			name:      "低分不发短信",
			cfg:       cfg,
			app:       domain.NewApplication{ApplicationId: 2, Score: &low},
			mock:      func(c *smsmocks.MockClient) {},
			wantRobot: 1,
		},
		{
			name:      "没有评分不发短信",
			cfg:       cfg,
			app:       domain.NewApplication{ApplicationId: 3},
			mock:      func(c *smsmocks.MockClient) {},
			wantRobot: 1,
		},
		{
			name:      "没有配置短信",
			cfg:       domain.Config{ScoreThreshold: 80},
			app:       domain.NewApplication{ApplicationId: 4, Score: &high},
			mock:      func(c *smsmocks.MockClient) {},
			wantRobot: 1,
		},
		{
			name:     "机器人失败依旧发短信",
			cfg:      cfg,
			app:      domain.NewApplication{ApplicationId: 5, Score: &high},
			robotErr: errors.New("mock robot error"),
			mock: func(c *smsmocks.MockClient) {
				c.EXPECT().Send(gomock.Any(), gomock.Any()).Return(client.SendResp{PhoneNumbers: map[string]client.SendRespStatus{
					"13800000000": {Code: client.OK},
				}}, nil)
			},
			wantErr:   true,
			wantRobot: 1,
		},
		{
			name: "短信部分失败",
			cfg:  cfg,
			app:  domain.NewApplication{ApplicationId: 6, Score: &high},
			mock: func(c *smsmocks.MockClient) {
				c.EXPECT().Send(gomock.Any(), gomock.Any()).Return(client.SendResp{PhoneNumbers: map[string]client.SendRespStatus{
					"13800000000": {Code: "isv.BUSINESS_LIMIT_CONTROL", Message: "limited"},
				}}, nil)
			},
			wantErr:   true,
			wantRobot: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			smsClient := smsmocks.NewMockClient(ctrl)
			tc.mock(smsClient)
			r := &fakeRobot{err: tc.robotErr}
			svc := NewService(r, smsClient, tc.cfg)
			err := svc.NotifyNewApplication(context.Background(), tc.app)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, r.contents, tc.wantRobot)
		})
	}
}
