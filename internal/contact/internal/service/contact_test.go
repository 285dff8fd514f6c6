package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/mastersolis/internal/ai"
	aimocks "github.com/ecodeclub/mastersolis/internal/ai/mocks"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/repository"
	repomocks "github.com/ecodeclub/mastersolis/internal/contact/internal/repository/mocks"
	"github.com/ecodeclub/mastersolis/internal/email"
	emailmocks "github.com/ecodeclub/mastersolis/internal/email/mocks"
	"github.com/ecodeclub/mastersolis/internal/pkg/flight"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeLocker struct {
	busy bool
	keys []string
}

func (f *fakeLocker) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	f.keys = append(f.keys, key)
	if f.busy {
		return flight.ErrInFlight
	}
	return fn(ctx)
}

func TestService_Submit(t *testing.T) {
	form := domain.Contact{Name: " Bob ", Email: "bob@b.com", Subject: "Quote", Message: "Need an app"}
	testCases := []struct {
		name    string
		contact domain.Contact
		busy    bool
		mock    func(repo *repomocks.MockContactRepository, llm *aimocks.MockService, mail *emailmocks.MockService)
		wantId  int64
		wantErr error
	}{
		{
			name:    "提交成功",
			contact: form,
			mock: func(repo *repomocks.MockContactRepository, llm *aimocks.MockService, mail *emailmocks.MockService) {
				repo.EXPECT().Create(gomock.Any(), domain.Contact{
					Name: "Bob", Email: "bob@b.com", Subject: "Quote", Message: "Need an app",
					Status: domain.StatusNew,
				}).Return(int64(1), nil)
				llm.EXPECT().Invoke(gomock.Any(), ai.LLMRequest{
					Biz:   ai.BizContactEmail,
					Input: []string{"Bob", "bob@b.com", "Need an app"},
				}).Return(ai.LLMResponse{Answer: "Dear Bob"}, nil)
				mail.EXPECT().SendMail(gomock.Any(), email.Mail{
					From:    "Mastersolis Infotech",
					To:      "bob@b.com",
					Subject: "Thank you for contacting Mastersolis - We've received your message",
					Body:    []byte("Dear Bob"),
				}).Return(nil)
			},
			wantId: 1,
		},
		{
			name:    "起草失败用默认模板，发送失败不影响",
			contact: form,
			mock: func(repo *repomocks.MockContactRepository, llm *aimocks.MockService, mail *emailmocks.MockService) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{}, errors.New("mock error"))
				mail.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, m email.Mail) error {
						assert.Equal(t, FallbackReply("Bob"), string(m.Body))
						return errors.New("mock smtp error")
					})
			},
			wantId: 2,
		},
		{
			name:    "保存失败不发邮件",
			contact: form,
			mock: func(repo *repomocks.MockContactRepository, llm *aimocks.MockService, mail *emailmocks.MockService) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
			},
			wantErr: errors.New("mock db error"),
		},
		{
			name:    "缺少留言内容",
			contact: domain.Contact{Name: "Bob", Email: "bob@b.com", Subject: "Quote"},
			mock: func(repo *repomocks.MockContactRepository, llm *aimocks.MockService, mail *emailmocks.MockService) {
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "正在提交",
			contact: form,
			busy:    true,
			mock: func(repo *repomocks.MockContactRepository, llm *aimocks.MockService, mail *emailmocks.MockService) {
			},
			wantErr: ErrSubmissionInProgress,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockContactRepository(ctrl)
			llm := aimocks.NewMockService(ctrl)
			mail := emailmocks.NewMockService(ctrl)
			tc.mock(repo, llm, mail)
			locker := &fakeLocker{busy: tc.busy}
			svc := NewService(repo, llm, mail, locker)
			id, err := svc.Submit(context.Background(), tc.contact, "token")
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				assert.EqualError(t, err, tc.wantErr.Error())
			}
			if tc.wantErr == nil {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockContactRepository(ctrl)
	svc := NewService(repo, aimocks.NewMockService(ctrl), emailmocks.NewMockService(ctrl), &fakeLocker{})

	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), 1, "Archived"), ErrInvalidStatus)

	repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), domain.StatusResponded).Return(nil)
	assert.NoError(t, svc.UpdateStatus(context.Background(), 1, domain.StatusResponded))

	repo.EXPECT().UpdateStatus(gomock.Any(), int64(2), domain.StatusClosed).Return(repository.ErrContactNotFound)
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), 2, domain.StatusClosed), ErrContactNotFound)
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockContactRepository(ctrl)
	repo.EXPECT().Count(gomock.Any(), domain.Status("")).Return(int64(9), nil)
	repo.EXPECT().Count(gomock.Any(), domain.StatusNew).Return(int64(3), nil)
	svc := NewService(repo, aimocks.NewMockService(ctrl), emailmocks.NewMockService(ctrl), &fakeLocker{})
	res, err := svc.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Stats{Total: 9, New: 3}, res)
}
