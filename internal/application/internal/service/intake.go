// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/application/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/application/internal/event"
	"github.com/ecodeclub/mastersolis/internal/application/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/email"
	"github.com/ecodeclub/mastersolis/internal/jobposting"
	"github.com/ecodeclub/mastersolis/internal/pkg/flight"
	"github.com/ecodeclub/mastersolis/internal/pkg/listx"
	"github.com/ecodeclub/mastersolis/internal/pkg/mqx"
	"github.com/ecodeclub/mastersolis/internal/storage"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	StepUpload  = "upload"
	StepExtract = "extract"
	StepScore   = "score"
	StepPersist = "persist"
	StepDraft   = "draft"
	StepSend    = "send"

	mailFrom = "Mastersolis Careers"
)

// Locker 同一个 key 同一时刻只允许一个请求
type Locker interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

//go:generate mockgen -source=./intake.go -package=svcmocks -destination=mocks/intake.mock.go IntakeService
type IntakeService interface {
	// Apply 提交申请，返回申请的 ID。
	// 简历解析和评分失败不影响提交，邮件发送失败也不影响
	Apply(ctx context.Context, sub domain.Submission) (int64, error)
}

type intakeService struct {
	repo       repository.ApplicationRepository
	jobSvc     jobposting.Service
	storageSvc storage.Service
	extractSvc ai.ExtractService
	llmSvc     ai.LLMService
	emailSvc   email.Service
	producer   mqx.Producer[event.ApplicationEvent]
	locker     Locker
	cfg        Config
	logger     *elog.Component
}

func NewIntakeService(repo repository.ApplicationRepository,
	jobSvc jobposting.Service,
	storageSvc storage.Service,
	extractSvc ai.ExtractService,
	llmSvc ai.LLMService,
	emailSvc email.Service,
	producer mqx.Producer[event.ApplicationEvent],
	locker Locker,
	cfg Config) IntakeService {
	return &intakeService{
		repo:       repo,
		jobSvc:     jobSvc,
		storageSvc: storageSvc,
		extractSvc: extractSvc,
		llmSvc:     llmSvc,
		emailSvc:   emailSvc,
		producer:   producer,
		locker:     locker,
		cfg:        cfg,
		logger:     elog.DefaultLogger.With(elog.FieldComponent("application.intake")),
	}
}

func (s *intakeService) Apply(ctx context.Context, sub domain.Submission) (int64, error) {
	// 校验失败不发起任何调用
	if field := sub.MissingField(); field != "" {
		return 0, fmt.Errorf("%w: 缺少 %s", domain.ErrInvalidInput, field)
	}
	if sub.Resume.Empty() {
		return 0, domain.ErrResumeRequired
	}
	if !sub.Resume.Supported(s.cfg.MaxResumeSize) {
		return 0, fmt.Errorf("%w: %s %d bytes", domain.ErrUnsupportedResume, sub.Resume.Name, len(sub.Resume.Data))
	}
	var id int64
	key := ""
	if sub.FormToken != "" {
		key = "application:" + sub.FormToken
	}
	err := s.locker.Do(ctx, key, func(ctx context.Context) error {
		var err error
		id, err = s.apply(ctx, sub)
		return err
	})
	if errors.Is(err, flight.ErrInFlight) {
		return 0, domain.ErrSubmissionInProgress
	}
	return id, err
}

func (s *intakeService) apply(ctx context.Context, sub domain.Submission) (int64, error) {
	job, err := s.jobSvc.ActiveDetail(ctx, sub.JobId)
	if errors.Is(err, jobposting.ErrJobNotFound) {
		return 0, fmt.Errorf("%w: job_id=%d", domain.ErrJobNotAvailable, sub.JobId)
	}
	if err != nil {
		return 0, fmt.Errorf("查询职位失败: %w", err)
	}

	resumeURL, err := s.upload(ctx, sub.Resume)
	if err != nil {
		return 0, err
	}

	app := domain.Application{
		JobId:           job.Id,
		JobTitle:        job.Title,
		FullName:        strings.TrimSpace(sub.FullName),
		Email:           strings.TrimSpace(sub.Email),
		Phone:           strings.TrimSpace(sub.Phone),
		LinkedinURL:     strings.TrimSpace(sub.LinkedinURL),
		PortfolioURL:    strings.TrimSpace(sub.PortfolioURL),
		ExperienceYears: sub.ExperienceYears,
		Education:       sub.Education,
		CoverLetter:     sub.CoverLetter,
		Skills:          ParseSkills(sub.Skills),
		ResumeURL:       resumeURL,
		Status:          domain.StatusNew,
	}
	app.ExtractedData, app.Assessment = s.enrich(ctx, job, sub)

	app.Id, err = s.repo.Create(ctx, app)
	if err != nil {
		return 0, stepError(ctx, StepPersist, domain.ErrPersistFailed, err)
	}
	app.Ctime = time.Now()

	// 申请已经保存了，后面的步骤失败只记录日志
	s.notify(context.WithoutCancel(ctx), job, app)
	return app.Id, nil
}

func (s *intakeService) upload(ctx context.Context, resume domain.Resume) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeouts.Upload)
	defer cancel()
	url, err := s.storageSvc.Upload(ctx, storage.File{
		Name:        resume.Name,
		ContentType: resume.ContentType,
		Data:        resume.Data,
		Kind:        storage.KindResume,
	})
	if err != nil {
		return "", stepError(ctx, StepUpload, domain.ErrUploadFailed, err)
	}
	return url, nil
}

// enrich 简历解析和评分并发执行，各自失败互不影响
func (s *intakeService) enrich(ctx context.Context, job jobposting.JobPosting,
	sub domain.Submission) (*domain.ExtractedData, *domain.AIAssessment) {
	var (
		eg         errgroup.Group
		extracted  *domain.ExtractedData
		assessment *domain.AIAssessment
	)
	eg.Go(func() error {
		data, err := s.extract(ctx, sub.Resume)
		if err != nil {
			s.logger.Warn("解析简历失败", elog.String("step", StepExtract),
				elog.Int64("jobId", job.Id), elog.FieldErr(err))
			return nil
		}
		extracted = data
		return nil
	})
	eg.Go(func() error {
		res, err := s.score(ctx, job, sub)
		if err != nil {
			s.logger.Warn("评估候选人失败", elog.String("step", StepScore),
				elog.Int64("jobId", job.Id), elog.FieldErr(err))
			return nil
		}
		assessment = res
		return nil
	})
	_ = eg.Wait()
	return extracted, assessment
}

func (s *intakeService) extract(ctx context.Context, resume domain.Resume) (*domain.ExtractedData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeouts.Extract)
	defer cancel()
	data, err := s.extractSvc.ExtractResume(ctx, ai.ResumeFile{
		Name: resume.Name,
		Data: resume.Data,
	})
	if err != nil {
		return nil, stepError(ctx, StepExtract, nil, err)
	}
	res := domain.ExtractedData(data)
	return &res, nil
}

func (s *intakeService) score(ctx context.Context, job jobposting.JobPosting,
	sub domain.Submission) (*domain.AIAssessment, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeouts.Score)
	defer cancel()
	resp, err := s.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz: ai.BizApplicationScore,
		Input: []string{
			job.Title,
			strings.Join(job.Skills, ", "),
			job.ExperienceRequired,
			strings.Join(job.Requirements, ", "),
			sub.FullName,
			strconv.Itoa(sub.ExperienceYears),
			sub.Skills,
			sub.Education,
			sub.CoverLetter,
		},
	})
	if err != nil {
		return nil, stepError(ctx, StepScore, nil, err)
	}
	return ParseAssessment(resp.Answer)
}

// notify 起草确认邮件，发送，再通知招聘团队
func (s *intakeService) notify(ctx context.Context, job jobposting.JobPosting, app domain.Application) {
	body := s.draft(ctx, job, app)
	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeouts.Send)
	err := s.emailSvc.SendMail(sendCtx, email.Mail{
		From:    mailFrom,
		To:      app.Email,
		Subject: fmt.Sprintf("Application Received - %s at Mastersolis Infotech", job.Title),
		Body:    []byte(body),
	})
	if err != nil {
		s.logger.Error("发送申请确认邮件失败",
			elog.Int64("id", app.Id),
			elog.FieldErr(stepError(sendCtx, StepSend, nil, err)))
	}
	cancel()

	err = s.producer.Produce(ctx, event.NewCreatedEvent(app))
	if err != nil {
		s.logger.Error("发送申请事件失败", elog.Int64("id", app.Id), elog.FieldErr(err))
	}
}

func (s *intakeService) draft(ctx context.Context, job jobposting.JobPosting, app domain.Application) string {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeouts.Draft)
	defer cancel()
	resp, err := s.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizApplicationEmail,
		Input: []string{app.FullName, job.Title},
	})
	if err == nil && strings.TrimSpace(resp.Answer) != "" {
		return resp.Answer
	}
	if err == nil {
		err = errors.New("邮件内容为空")
	}
	s.logger.Warn("起草确认邮件失败，使用默认模板",
		elog.Int64("id", app.Id),
		elog.FieldErr(stepError(ctx, StepDraft, nil, err)))
	return FallbackConfirmation(app.FullName, job.Title)
}

// stepError 超时的时候包装 ErrTimeout，否则包装 kind
func stepError(ctx context.Context, step string, kind error, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", domain.ErrTimeout, step, err)
	}
	if kind == nil {
		return fmt.Errorf("%s: %w", step, err)
	}
	return fmt.Errorf("%w: %s: %w", kind, step, err)
}

// ParseSkills 逗号分隔，去掉空白和重复的
func ParseSkills(skills string) []string {
	return listx.Set(listx.Split(skills, ","))
}

var ErrInvalidAssessment = errors.New("评估结果不合法")

type assessmentAnswer struct {
	Score   *float64 `json:"score"`
	Summary string   `json:"summary"`
}

// ParseAssessment 分数必须在 [0, 100]，小数四舍五入，总结不能为空
func ParseAssessment(answer string) (*domain.AIAssessment, error) {
	var res assessmentAnswer
	if err := ai.UnmarshalAnswer(answer, &res); err != nil {
		return nil, err
	}
	if res.Score == nil || math.IsNaN(*res.Score) || *res.Score < 0 || *res.Score > 100 {
		return nil, fmt.Errorf("%w: score=%v", ErrInvalidAssessment, res.Score)
	}
	summary := strings.TrimSpace(res.Summary)
	if summary == "" {
		return nil, fmt.Errorf("%w: summary 为空", ErrInvalidAssessment)
	}
	return &domain.AIAssessment{
		Score:   int(math.Round(*res.Score)),
		Summary: summary,
	}, nil
}

func FallbackConfirmation(name, jobTitle string) string {
	return fmt.Sprintf(`Dear %s,

Thank you for applying for the %s position at Mastersolis Infotech. We have received your application and our team will review it carefully.

If your profile matches what we are looking for, we will contact you within 5-7 business days to schedule an interview.

Best regards,
Mastersolis Recruitment Team`, name, jobTitle)
}
