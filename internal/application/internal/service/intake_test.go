package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/mastersolis/internal/ai"
	aimocks "github.com/ecodeclub/mastersolis/internal/ai/mocks"
	"github.com/ecodeclub/mastersolis/internal/application/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/application/internal/event"
	repomocks "github.com/ecodeclub/mastersolis/internal/application/internal/repository/mocks"
	"github.com/ecodeclub/mastersolis/internal/email"
	emailmocks "github.com/ecodeclub/mastersolis/internal/email/mocks"
	"github.com/ecodeclub/mastersolis/internal/jobposting"
	jobmocks "github.com/ecodeclub/mastersolis/internal/jobposting/mocks"
	"github.com/ecodeclub/mastersolis/internal/pkg/flight"
	"github.com/ecodeclub/mastersolis/internal/storage"
	storagemocks "github.com/ecodeclub/mastersolis/internal/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProducer struct {
	events []event.ApplicationEvent
}

func (f *fakeProducer) Produce(_ context.Context, evt event.ApplicationEvent) error {
	f.events = append(f.events, evt)
	return nil
}

// fakeLocker 记录用过的 key，inFlight 里面的 key 直接返回 ErrInFlight
type fakeLocker struct {
	keys     []string
	inFlight map[string]bool
}

func (f *fakeLocker) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	f.keys = append(f.keys, key)
	if f.inFlight[key] {
		return flight.ErrInFlight
	}
	return fn(ctx)
}

type intakeMocks struct {
	repo     *repomocks.MockApplicationRepository
	job      *jobmocks.MockService
	storage  *storagemocks.MockService
	extract  *aimocks.MockExtractService
	llm      *aimocks.MockService
	email    *emailmocks.MockService
	producer *fakeProducer
	locker   *fakeLocker
}

func newIntakeMocks(ctrl *gomock.Controller) intakeMocks {
	return intakeMocks{
		repo:     repomocks.NewMockApplicationRepository(ctrl),
		job:      jobmocks.NewMockService(ctrl),
		storage:  storagemocks.NewMockService(ctrl),
		extract:  aimocks.NewMockExtractService(ctrl),
		llm:      aimocks.NewMockService(ctrl),
		email:    emailmocks.NewMockService(ctrl),
		producer: &fakeProducer{},
		locker:   &fakeLocker{},
	}
}

func (m intakeMocks) service(cfg Config) IntakeService {
	return NewIntakeService(m.repo, m.job, m.storage, m.extract, m.llm,
		m.email, m.producer, m.locker, cfg)
}

var testJob = jobposting.JobPosting{
	Id:                 7,
	Title:              "Go Engineer",
	ExperienceRequired: "3+ years",
	Skills:             []string{"Go", "MySQL"},
	Requirements:       []string{"Distributed systems"},
	Status:             jobposting.StatusActive,
}

func validSubmission() domain.Submission {
	return domain.Submission{
		JobId:           7,
		FullName:        "Alice",
		Email:           "alice@example.com",
		Phone:           "123456",
		ExperienceYears: 5,
		Education:       "BSc",
		Skills:          "Go, MySQL, ,Go",
		CoverLetter:     "Hi",
		Resume: domain.Resume{
			Name:        "alice.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4"),
		},
	}
}

const scoreAnswer = "```json\n{\"score\": 84.6, \"summary\": \"Strong Go background.\"}\n```"

func TestIntakeService_Apply(t *testing.T) {
	testCases := []struct {
		name       string
		sub        func() domain.Submission
		mock       func(m intakeMocks)
		wantId     int64
		wantErr    error
		// 失败的时候错误信息里面带上是哪一步
		wantStep   string
		wantEvents int
	}{
		{
			name: "全部成功",
			sub:  validSubmission,
			mock: func(m intakeMocks) {
				m.job.EXPECT().ActiveDetail(gomock.Any(), int64(7)).Return(testJob, nil)
				m.storage.EXPECT().Upload(gomock.Any(), storage.File{
					Name: "alice.pdf", ContentType: "application/pdf",
					Data: []byte("%PDF-1.4"), Kind: storage.KindResume,
				}).Return("https://cos/resumes/1.pdf", nil)
				m.extract.EXPECT().ExtractResume(gomock.Any(), gomock.Any()).
					Return(ai.ResumeData{Name: "Alice", Skills: []string{"Go"}}, nil)
				m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						switch req.Biz {
						case ai.BizApplicationScore:
							return ai.LLMResponse{Answer: scoreAnswer}, nil
						case ai.BizApplicationEmail:
							assert.Equal(t, []string{"Alice", "Go Engineer"}, req.Input)
							return ai.LLMResponse{Answer: "Dear Alice, thanks!"}, nil
						}
						return ai.LLMResponse{}, errors.New("unexpected biz")
					}).Times(2)
				m.repo.EXPECT().Create(gomock.Any(), domain.Application{
					JobId:           7,
					JobTitle:        "Go Engineer",
					FullName:        "Alice",
					Email:           "alice@example.com",
					Phone:           "123456",
					ExperienceYears: 5,
					Education:       "BSc",
					CoverLetter:     "Hi",
					Skills:          []string{"Go", "MySQL"},
					ResumeURL:       "https://cos/resumes/1.pdf",
					ExtractedData:   &domain.ExtractedData{Name: "Alice", Skills: []string{"Go"}},
					Assessment:      &domain.AIAssessment{Score: 85, Summary: "Strong Go background."},
					Status:          domain.StatusNew,
				}).Return(int64(11), nil)
				m.email.EXPECT().SendMail(gomock.Any(), email.Mail{
					From:    "Mastersolis Careers",
					To:      "alice@example.com",
					Subject: "Application Received - Go Engineer at Mastersolis Infotech",
					Body:    []byte("Dear Alice, thanks!"),
				}).Return(nil)
			},
			wantId:     11,
			wantEvents: 1,
		},
		{
			name: "上传失败，不创建申请",
			sub:  validSubmission,
			mock: func(m intakeMocks) {
				m.job.EXPECT().ActiveDetail(gomock.Any(), int64(7)).Return(testJob, nil)
				m.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).
					Return("", errors.New("mock cos error"))
			},
			wantErr:  domain.ErrUploadFailed,
			wantStep: StepUpload,
		},
		{
			name: "上传超时",
			sub:  validSubmission,
			mock: func(m intakeMocks) {
				m.job.EXPECT().ActiveDetail(gomock.Any(), int64(7)).Return(testJob, nil)
				m.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).
					Return("", context.DeadlineExceeded)
			},
			wantErr:  domain.ErrTimeout,
			wantStep: StepUpload,
		},
		{
			name: "解析失败，评分成功",
			sub:  validSubmission,
			mock: func(m intakeMocks) {
				m.job.EXPECT().ActiveDetail(gomock.Any(), int64(7)).Return(testJob, nil)
				m.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("https://cos/resumes/1.pdf", nil)
				m.extract.EXPECT().ExtractResume(gomock.Any(), gomock.Any()).
					Return(ai.ResumeData{}, errors.New("mock unreadable pdf"))
				m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						if req.Biz == ai.BizApplicationScore {
							return ai.LLMResponse{Answer: `{"score": 72, "summary": "Solid."}`}, nil
						}
						return ai.LLMResponse{Answer: "Dear Alice"}, nil
					}).Times(2)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, app domain.Application) (int64, error) {
						assert.Nil(t, app.ExtractedData)
						assert.Equal(t, &domain.AIAssessment{Score: 72, Summary: "Solid."}, app.Assessment)
						return 12, nil
					})
				m.email.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantId:     12,
			wantEvents: 1,
		},
		{
			name: "评分结果不合法，评分和总结都不保存，邮件失败也不影响",
			sub:  validSubmission,
			mock: func(m intakeMocks) {
				m.job.EXPECT().ActiveDetail(gomock.Any(), int64(7)).Return(testJob, nil)
				m.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("https://cos/resumes/1.pdf", nil)
				m.extract.EXPECT().ExtractResume(gomock.Any(), gomock.Any()).
					Return(ai.ResumeData{Name: "Alice"}, nil)
				m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						if req.Biz == ai.BizApplicationScore {
							return ai.LLMResponse{Answer: `{"score": 130}`}, nil
						}
						return ai.LLMResponse{}, errors.New("mock llm error")
					}).Times(2)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, app domain.Application) (int64, error) {
						assert.NotNil(t, app.ExtractedData)
						assert.Nil(t, app.Assessment)
						return 13, nil
					})
				m.email.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, mail email.Mail) error {
						// 起草失败用默认模板
						assert.Equal(t, FallbackConfirmation("Alice", "Go Engineer"), string(mail.Body))
						return errors.New("mock smtp error")
					})
			},
			wantId:     13,
			wantEvents: 1,
		},
		{
			name: "保存失败，不发邮件",
			sub:  validSubmission,
			mock: func(m intakeMocks) {
				m.job.EXPECT().ActiveDetail(gomock.Any(), int64(7)).Return(testJob, nil)
				m.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("https://cos/resumes/1.pdf", nil)
				m.extract.EXPECT().ExtractResume(gomock.Any(), gomock.Any()).
					Return(ai.ResumeData{}, errors.New("mock error"))
				m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{}, errors.New("mock error"))
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("mock db error"))
			},
			wantErr:  domain.ErrPersistFailed,
			wantStep: StepPersist,
		},
		{
			name: "职位已经关闭",
			sub:  validSubmission,
			mock: func(m intakeMocks) {
				m.job.EXPECT().ActiveDetail(gomock.Any(), int64(7)).
					Return(jobposting.JobPosting{}, jobposting.ErrJobNotFound)
			},
			wantErr: domain.ErrJobNotAvailable,
		},
		{
			name: "缺少必填字段，不发起任何调用",
			sub: func() domain.Submission {
				sub := validSubmission()
				sub.Phone = ""
				return sub
			},
			mock:    func(m intakeMocks) {},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "没有简历",
			sub: func() domain.Submission {
				sub := validSubmission()
				sub.Resume = domain.Resume{}
				return sub
			},
			mock:    func(m intakeMocks) {},
			wantErr: domain.ErrResumeRequired,
		},
		{
			name: "不支持的简历格式",
			sub: func() domain.Submission {
				sub := validSubmission()
				sub.Resume.Name = "alice.png"
				return sub
			},
			mock:    func(m intakeMocks) {},
			wantErr: domain.ErrUnsupportedResume,
		},
		{
			name: "同一个表单正在提交",
			sub: func() domain.Submission {
				sub := validSubmission()
				sub.FormToken = "busy"
				return sub
			},
			mock: func(m intakeMocks) {
				m.locker.inFlight = map[string]bool{"application:busy": true}
			},
			wantErr: domain.ErrSubmissionInProgress,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newIntakeMocks(ctrl)
			tc.mock(m)
			svc := m.service(DefaultConfig())
			id, err := svc.Apply(context.Background(), tc.sub())
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantStep != "" {
				assert.Contains(t, err.Error(), tc.wantStep+": ")
			}
			assert.Equal(t, tc.wantId, id)
			assert.Len(t, m.producer.events, tc.wantEvents)
		})
	}
}

// 没有去重，两次一样的提交得到两条记录
func TestIntakeService_ApplyTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newIntakeMocks(ctrl)
	m.job.EXPECT().ActiveDetail(gomock.Any(), int64(7)).Return(testJob, nil).Times(2)
	m.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("https://cos/resumes/1.pdf", nil).Times(2)
	m.extract.EXPECT().ExtractResume(gomock.Any(), gomock.Any()).Return(ai.ResumeData{}, nil).Times(2)
	m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).Return(ai.LLMResponse{Answer: `{"score": 50, "summary": "ok"}`}, nil).Times(4)
	gomock.InOrder(
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil),
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil),
	)
	m.email.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	svc := m.service(DefaultConfig())
	sub := validSubmission()
	sub.FormToken = "form-1"
	id1, err := svc.Apply(context.Background(), sub)
	require.NoError(t, err)
	id2, err := svc.Apply(context.Background(), sub)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, []string{"application:form-1", "application:form-1"}, m.locker.keys)
}

func TestIntakeService_EnrichTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newIntakeMocks(ctrl)
	cfg := DefaultConfig()
	cfg.Timeouts.Extract = 10 * time.Millisecond
	m.job.EXPECT().ActiveDetail(gomock.Any(), int64(7)).Return(testJob, nil)
	m.storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return("https://cos/resumes/1.pdf", nil)
	m.extract.EXPECT().ExtractResume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, f ai.ResumeFile) (ai.ResumeData, error) {
			<-ctx.Done()
			return ai.ResumeData{}, ctx.Err()
		})
	m.llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ai.LLMResponse{Answer: `{"score": 90, "summary": "Great."}`}, nil).Times(2)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, app domain.Application) (int64, error) {
			assert.Nil(t, app.ExtractedData)
			assert.Equal(t, 90, app.Assessment.Score)
			return 1, nil
		})
	m.email.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
	id, err := m.service(cfg).Apply(context.Background(), validSubmission())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestParseAssessment(t *testing.T) {
	testCases := []struct {
		name    string
		answer  string
		want    *domain.AIAssessment
		wantErr error
	}{
		{name: "整数", answer: `{"score": 70, "summary": " Good fit. "}`, want: &domain.AIAssessment{Score: 70, Summary: "Good fit."}},
		{name: "小数四舍五入", answer: `{"score": 69.5, "summary": "ok"}`, want: &domain.AIAssessment{Score: 70, Summary: "ok"}},
		{name: "边界 0", answer: `{"score": 0, "summary": "no"}`, want: &domain.AIAssessment{Score: 0, Summary: "no"}},
		{name: "边界 100", answer: `{"score": 100, "summary": "yes"}`, want: &domain.AIAssessment{Score: 100, Summary: "yes"}},
		{name: "超出范围", answer: `{"score": 100.4, "summary": "yes"}`, wantErr: ErrInvalidAssessment},
		{name: "负数", answer: `{"score": -1, "summary": "yes"}`, wantErr: ErrInvalidAssessment},
		{name: "没有分数", answer: `{"summary": "yes"}`, wantErr: ErrInvalidAssessment},
		{name: "没有总结", answer: `{"score": 50, "summary": "  "}`, wantErr: ErrInvalidAssessment},
		{name: "分数是字符串", answer: `{"score": "50", "summary": "yes"}`, wantErr: ai.ErrMalformedAnswer},
		{name: "不是 JSON", answer: `I think 80`, wantErr: ai.ErrMalformedAnswer},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ParseAssessment(tc.answer)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestParseSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "React", "SQL"}, ParseSkills(" Go,React,, SQL ,Go"))
	assert.Equal(t, []string{}, ParseSkills(""))
}
