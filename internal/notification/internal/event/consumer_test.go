package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mastersolis/internal/application"
	"github.com/ecodeclub/mastersolis/internal/notification/internal/domain"
	notificationmocks "github.com/ecodeclub/mastersolis/internal/notification/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestApplicationConsumer_Handle(t *testing.T) {
	score := 88
	ctime := time.UnixMilli(1700000000000)
	testCases := []struct {
		name    string
		evt     application.ApplicationEvent
		mock    func(svc *notificationmocks.MockService)
		wantErr error
	}{
		{
			name: "新申请",
			evt: application.ApplicationEvent{
				Type:          application.TypeCreated,
				ApplicationId: 1,
				JobTitle:      "Go Engineer",
				FullName:      "Jane",
				Email:         "jane@example.com",
				Score:         &score,
				Summary:       "good",
				Ctime:         ctime.UnixMilli(),
			},
			mock: func(svc *notificationmocks.MockService) {
				svc.EXPECT().NotifyNewApplication(gomock.Any(), domain.NewApplication{
					ApplicationId: 1,
					JobTitle:      "Go Engineer",
					FullName:      "Jane",
					Email:         "jane@example.com",
					Score:         &score,
					Summary:       "good",
					Ctime:         ctime,
				}).Return(nil)
			},
		},
		{
			name: "其它事件忽略",
			evt:  application.ApplicationEvent{Type: "updated"},
			mock: func(svc *notificationmocks.MockService) {},
		},
		{
			name: "通知失败",
			evt:  application.ApplicationEvent{Type: application.TypeCreated, ApplicationId: 2},
			mock: func(svc *notificationmocks.MockService) {
				svc.EXPECT().NotifyNewApplication(gomock.Any(), gomock.Any()).
					Return(errors.New("mock robot error"))
			},
			wantErr: errors.New("mock robot error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := notificationmocks.NewMockService(ctrl)
			tc.mock(svc)
			c := &ApplicationConsumer{svc: svc}
			err := c.Handle(context.Background(), tc.evt)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
