package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/event"
	"github.com/ecodeclub/mastersolis/internal/jobposting/internal/repository"
	repomocks "github.com/ecodeclub/mastersolis/internal/jobposting/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProducer struct {
	events []event.SyncEvent
	err    error
}

func (f *fakeProducer) Produce(_ context.Context, evt event.SyncEvent) error {
	f.events = append(f.events, evt)
	return f.err
}

func TestService_Save(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	posted := time.UnixMilli(1600000000000)
	testCases := []struct {
		name     string
		job      domain.JobPosting
		mock     func(ctrl *gomock.Controller) repository.JobRepository
		wantId   int64
		wantErr  error
		wantEvts int
	}{
		{
			name: "新建职位，默认 Active，发布时间是当前时间",
			job: domain.JobPosting{
				Title:          " Go 工程师 ",
				EmploymentType: domain.EmploymentTypeFullTime,
				Skills:         []string{"Go", "Go", " MySQL "},
			},
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), domain.JobPosting{
					Title:          "Go 工程师",
					EmploymentType: domain.EmploymentTypeFullTime,
					Skills:         []string{"Go", "MySQL"},
					Status:         domain.StatusActive,
					PostedDate:     now,
				}).Return(int64(1), nil)
				return repo
			},
			wantId:   1,
			wantEvts: 1,
		},
		{
			name: "更新职位，保留原本的发布时间",
			job: domain.JobPosting{
				Id:             2,
				Title:          "实习生",
				EmploymentType: domain.EmploymentTypeInternship,
				Status:         domain.StatusDraft,
			},
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(2)).
					Return(domain.JobPosting{Id: 2, PostedDate: posted}, nil)
				repo.EXPECT().Save(gomock.Any(), domain.JobPosting{
					Id:             2,
					Title:          "实习生",
					EmploymentType: domain.EmploymentTypeInternship,
					Skills:         []string{},
					Status:         domain.StatusDraft,
					PostedDate:     posted,
				}).Return(int64(2), nil)
				return repo
			},
			wantId:   2,
			wantEvts: 1,
		},
		{
			name: "非法的用工类型",
			job:  domain.JobPosting{Title: "Go 工程师", EmploymentType: "Freelance"},
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				return repomocks.NewMockJobRepository(ctrl)
			},
			wantErr: ErrInvalidJob,
		},
		{
			name: "非法的状态",
			job:  domain.JobPosting{Title: "Go 工程师", EmploymentType: domain.EmploymentTypeContract, Status: "Archived"},
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				return repomocks.NewMockJobRepository(ctrl)
			},
			wantErr: ErrInvalidJob,
		},
		{
			name: "标题为空",
			job:  domain.JobPosting{Title: "  ", EmploymentType: domain.EmploymentTypeContract},
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				return repomocks.NewMockJobRepository(ctrl)
			},
			wantErr: ErrInvalidJob,
		},
		{
			name: "保存失败，不同步搜索",
			job:  domain.JobPosting{Title: "Go 工程师", EmploymentType: domain.EmploymentTypeFullTime, PostedDate: posted},
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return repo
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			producer := &fakeProducer{}
			svc := NewService(tc.mock(ctrl), producer).(*service)
			svc.now = func() time.Time { return now }
			id, err := svc.Save(context.Background(), tc.job)
			if errors.Is(tc.wantErr, ErrInvalidJob) {
				assert.ErrorIs(t, err, ErrInvalidJob)
			} else {
				assert.Equal(t, tc.wantErr, err)
			}
			assert.Equal(t, tc.wantId, id)
			require.Len(t, producer.events, tc.wantEvts)
			if tc.wantEvts > 0 {
				assert.Equal(t, tc.wantId, producer.events[0].BizID)
				assert.Equal(t, "job", producer.events[0].Biz)
				assert.False(t, producer.events[0].Deleted)
			}
		})
	}
}

func TestService_ActiveDetail(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.JobRepository
		wantJob domain.JobPosting
		wantErr error
	}{
		{
			name: "Active 的职位",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.JobPosting{Id: 1, Status: domain.StatusActive}, nil)
				return repo
			},
			wantJob: domain.JobPosting{Id: 1, Status: domain.StatusActive},
		},
		{
			name: "已经关闭的职位",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.JobPosting{Id: 1, Status: domain.StatusClosed}, nil)
				return repo
			},
			wantErr: ErrJobNotFound,
		},
		{
			name: "草稿",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.JobPosting{Id: 1, Status: domain.StatusDraft}, nil)
				return repo
			},
			wantErr: ErrJobNotFound,
		},
		{
			name: "不存在",
			mock: func(ctrl *gomock.Controller) repository.JobRepository {
				repo := repomocks.NewMockJobRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.JobPosting{}, repository.ErrJobNotFound)
				return repo
			},
			wantErr: ErrJobNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), &fakeProducer{})
			job, err := svc.ActiveDetail(context.Background(), 1)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantJob, job)
		})
	}
}

func TestService_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), int64(3)).
		Return(domain.JobPosting{Id: 3, Status: domain.StatusActive}, nil)
	repo.EXPECT().UpdateStatus(gomock.Any(), int64(3), domain.StatusClosed).Return(nil)
	producer := &fakeProducer{}
	svc := NewService(repo, producer)
	err := svc.Close(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, producer.events, 1)
	assert.Contains(t, producer.events[0].Data, `"status":"Closed"`)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
	// 同步失败不影响删除
	producer := &fakeProducer{err: errors.New("mock mq error")}
	svc := NewService(repo, producer)
	err := svc.Delete(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, producer.events, 1)
	assert.Equal(t, event.SyncEvent{Biz: "job", BizID: 3, Deleted: true}, producer.events[0])
}

func TestService_ResyncSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockJobRepository(ctrl)
	first := make([]domain.JobPosting, 100)
	for i := range first {
		first[i] = domain.JobPosting{Id: int64(i + 1)}
	}
	repo.EXPECT().List(gomock.Any(), 0, 100).Return(first, nil)
	repo.EXPECT().List(gomock.Any(), 100, 100).Return([]domain.JobPosting{{Id: 101}}, nil)
	producer := &fakeProducer{}
	svc := NewService(repo, producer)
	err := svc.ResyncSearch(context.Background())
	require.NoError(t, err)
	assert.Len(t, producer.events, 101)
}
