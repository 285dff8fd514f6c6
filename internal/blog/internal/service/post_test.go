package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mastersolis/internal/ai"
	aimocks "github.com/ecodeclub/mastersolis/internal/ai/mocks"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/event"
	"github.com/ecodeclub/mastersolis/internal/blog/internal/repository"
	repomocks "github.com/ecodeclub/mastersolis/internal/blog/internal/repository/mocks"
	"github.com/ecodeclub/mastersolis/internal/pkg/flight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProducer struct {
	events []event.SyncEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.SyncEvent) error {
	f.events = append(f.events, evt)
	return nil
}

type fakeLocker struct {
	busy bool
}

func (f *fakeLocker) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if f.busy {
		return flight.ErrInFlight
	}
	return fn(ctx)
}

func newTestService(repo repository.PostRepository, llm ai.LLMService, locker Locker) (*service, *fakeProducer) {
	producer := &fakeProducer{}
	svc := NewService(repo, llm, producer, locker).(*service)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc, producer
}

func TestService_Save(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	old := time.UnixMilli(1600000000000)
	testCases := []struct {
		name       string
		post       domain.Post
		mock       func(ctrl *gomock.Controller) (*repomocks.MockPostRepository, *aimocks.MockService)
		wantId     int64
		wantErr    error
		wantEvents int
	}{
		{
			name: "新建，顺便生成摘要和 SEO",
			post: domain.Post{Title: "Cloud", Content: "Cloud native is great", Tags: []string{"cloud", " cloud"}},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockPostRepository, *aimocks.MockService) {
				repo := repomocks.NewMockPostRepository(ctrl)
				llm := aimocks.NewMockService(ctrl)
				llm.EXPECT().Invoke(gomock.Any(), ai.LLMRequest{
					Biz:   ai.BizBlogSEO,
					Input: []string{"Cloud", "Cloud native is great"},
				}).Return(ai.LLMResponse{Answer: `{"summary": "Short.", "seo_description": "SEO."}`}, nil)
				repo.EXPECT().Save(gomock.Any(), domain.Post{
					Title:          "Cloud",
					Content:        "Cloud native is great",
					Tags:           []string{"cloud"},
					ReadTime:       1,
					PublishDate:    now,
					AISummary:      "Short.",
					SEODescription: "SEO.",
				}).Return(int64(1), nil)
				return repo, llm
			},
			wantId:     1,
			wantEvents: 1,
		},
		{
			name: "新建，AI 失败照样保存",
			post: domain.Post{Title: "Cloud", Content: "Cloud native"},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockPostRepository, *aimocks.MockService) {
				repo := repomocks.NewMockPostRepository(ctrl)
				llm := aimocks.NewMockService(ctrl)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{}, errors.New("mock error"))
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, post domain.Post) (int64, error) {
						assert.Empty(t, post.AISummary)
						return 2, nil
					})
				return repo, llm
			},
			wantId:     2,
			wantEvents: 1,
		},
		{
			name: "新建，已经有摘要就不调用 AI",
			post: domain.Post{Title: "Cloud", Content: "Cloud native", AISummary: "given"},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockPostRepository, *aimocks.MockService) {
				repo := repomocks.NewMockPostRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(3), nil)
				return repo, aimocks.NewMockService(ctrl)
			},
			wantId:     3,
			wantEvents: 1,
		},
		{
			name: "更新，保留 AI 字段和发布时间",
			post: domain.Post{Id: 4, Title: "Cloud v2", Content: "new"},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockPostRepository, *aimocks.MockService) {
				repo := repomocks.NewMockPostRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(4)).Return(domain.Post{
					Id: 4, AISummary: "old summary", SEODescription: "old seo", PublishDate: old,
				}, nil)
				repo.EXPECT().Save(gomock.Any(), domain.Post{
					Id: 4, Title: "Cloud v2", Content: "new", Tags: []string{}, ReadTime: 1,
					AISummary: "old summary", SEODescription: "old seo", PublishDate: old,
				}).Return(int64(4), nil)
				return repo, aimocks.NewMockService(ctrl)
			},
			wantId:     4,
			wantEvents: 1,
		},
		{
			name: "更新不存在的文章",
			post: domain.Post{Id: 5, Title: "x"},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockPostRepository, *aimocks.MockService) {
				repo := repomocks.NewMockPostRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(5)).Return(domain.Post{}, repository.ErrPostNotFound)
				return repo, aimocks.NewMockService(ctrl)
			},
			wantErr: ErrPostNotFound,
		},
		{
			name: "没有标题",
			post: domain.Post{Title: "  "},
			mock: func(ctrl *gomock.Controller) (*repomocks.MockPostRepository, *aimocks.MockService) {
				return repomocks.NewMockPostRepository(ctrl), aimocks.NewMockService(ctrl)
			},
			wantErr: ErrInvalidPost,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, llm := tc.mock(ctrl)
			svc, producer := newTestService(repo, llm, &fakeLocker{})
			id, err := svc.Save(context.Background(), tc.post)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
			assert.Len(t, producer.events, tc.wantEvents)
		})
	}
}

func TestService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	llm := aimocks.NewMockService(ctrl)
	svc, _ := newTestService(repomocks.NewMockPostRepository(ctrl), llm, &fakeLocker{})

	_, err := svc.Generate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidPost)

	llm.EXPECT().Invoke(gomock.Any(), ai.LLMRequest{Biz: ai.BizBlogGenerate, Input: []string{"Go"}}).
		Return(ai.LLMResponse{Answer: "# Go\n\nbody"}, nil)
	content, err := svc.Generate(context.Background(), " Go ")
	require.NoError(t, err)
	assert.Equal(t, "# Go\n\nbody", content)

	llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{}, errors.New("mock error"))
	_, err = svc.Generate(context.Background(), "Go")
	assert.ErrorIs(t, err, ErrAIFailed)
}

func TestService_View(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPostRepository(ctrl)
	svc, _ := newTestService(repo, aimocks.NewMockService(ctrl), &fakeLocker{})

	repo.EXPECT().IncrViews(gomock.Any(), int64(1)).Return(true, nil)
	repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Post{Id: 1, Published: true, Views: 8}, nil)
	post, err := svc.View(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), post.Views)

	// 草稿对外不可见
	repo.EXPECT().IncrViews(gomock.Any(), int64(2)).Return(false, nil)
	_, err = svc.View(context.Background(), 2)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestService_Summary(t *testing.T) {
	published := domain.Post{Id: 1, Published: true, Content: "body"}
	testCases := []struct {
		name    string
		busy    bool
		mock    func(repo *repomocks.MockPostRepository, llm *aimocks.MockService)
		want    string
		wantErr error
	}{
		{
			name: "已经有摘要",
			mock: func(repo *repomocks.MockPostRepository, llm *aimocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Post{Id: 1, Published: true, AISummary: "cached"}, nil)
			},
			want: "cached",
		},
		{
			name: "第一次生成",
			mock: func(repo *repomocks.MockPostRepository, llm *aimocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(published, nil).Times(2)
				llm.EXPECT().Invoke(gomock.Any(), ai.LLMRequest{Biz: ai.BizBlogSummary, Input: []string{"body"}}).
					Return(ai.LLMResponse{Answer: "- point\n"}, nil)
				repo.EXPECT().SetSummaryIfEmpty(gomock.Any(), int64(1), "- point").Return(true, nil)
			},
			want: "- point",
		},
		{
			name: "别人先写入了，返回数据库里面的",
			mock: func(repo *repomocks.MockPostRepository, llm *aimocks.MockService) {
				gomock.InOrder(
					repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(published, nil).Times(2),
					repo.EXPECT().FindById(gomock.Any(), int64(1)).
						Return(domain.Post{Id: 1, Published: true, AISummary: "winner"}, nil),
				)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{Answer: "loser"}, nil)
				repo.EXPECT().SetSummaryIfEmpty(gomock.Any(), int64(1), "loser").Return(false, nil)
			},
			want: "winner",
		},
		{
			name: "正在生成",
			busy: true,
			mock: func(repo *repomocks.MockPostRepository, llm *aimocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(published, nil)
			},
			wantErr: ErrSummaryInProgress,
		},
		{
			name: "草稿",
			mock: func(repo *repomocks.MockPostRepository, llm *aimocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Post{Id: 1}, nil)
			},
			wantErr: ErrPostNotFound,
		},
		{
			name: "AI 失败不写入",
			mock: func(repo *repomocks.MockPostRepository, llm *aimocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(published, nil).Times(2)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{}, errors.New("mock error"))
			},
			wantErr: ErrAIFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockPostRepository(ctrl)
			llm := aimocks.NewMockService(ctrl)
			tc.mock(repo, llm)
			svc, _ := newTestService(repo, llm, &fakeLocker{busy: tc.busy})
			summary, err := svc.Summary(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, summary)
		})
	}
}

func TestService_ResyncSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockPostRepository(ctrl)
	first := make([]domain.Post, 100)
	for i := range first {
		first[i] = domain.Post{Id: int64(i + 1)}
	}
	gomock.InOrder(
		repo.EXPECT().List(gomock.Any(), 0, 100).Return(first, nil),
		repo.EXPECT().List(gomock.Any(), 100, 100).Return([]domain.Post{{Id: 101}}, nil),
	)
	svc, producer := newTestService(repo, aimocks.NewMockService(ctrl), &fakeLocker{})
	require.NoError(t, svc.ResyncSearch(context.Background()))
	assert.Len(t, producer.events, 101)
	assert.Equal(t, "blog", producer.events[100].Biz)
}
