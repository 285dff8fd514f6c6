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
	"strings"
	"time"

	"github.com/ecodeclub/mastersolis/internal/ai"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/domain"
	"github.com/ecodeclub/mastersolis/internal/contact/internal/repository"
	"github.com/ecodeclub/mastersolis/internal/email"
	"github.com/ecodeclub/mastersolis/internal/pkg/flight"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	mailFrom    = "Mastersolis Infotech"
	mailSubject = "Thank you for contacting Mastersolis - We've received your message"
)

var (
	ErrInvalidInput         = errors.New("留言信息不完整")
	ErrContactNotFound      = errors.New("留言不存在")
	ErrInvalidStatus        = errors.New("非法的状态")
	ErrSubmissionInProgress = errors.New("同一个表单正在提交")
)

type Stats struct {
	Total int64
	New   int64
}

// Locker 同一个 key 同一时刻只允许一个请求
type Locker interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

//go:generate mockgen -source=./contact.go -package=contactmocks -destination=../../mocks/contact.mock.go Service
type Service interface {
	// Submit 保存留言之后回复确认邮件，邮件失败不影响提交
	Submit(ctx context.Context, c domain.Contact, formToken string) (int64, error)
	// List status 为空表示全部
	List(ctx context.Context, status domain.Status, offset int, limit int) ([]domain.Contact, int64, error)
	Detail(ctx context.Context, id int64) (domain.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo     repository.ContactRepository
	llmSvc   ai.LLMService
	emailSvc email.Service
	locker   Locker
	// 起草和发送邮件各自的超时时间
	draftTimeout time.Duration
	sendTimeout  time.Duration
	logger       *elog.Component
}

func NewService(repo repository.ContactRepository,
	llmSvc ai.LLMService,
	emailSvc email.Service,
	locker Locker) Service {
	return &service{
		repo:         repo,
		llmSvc:       llmSvc,
		emailSvc:     emailSvc,
		locker:       locker,
		draftTimeout: 30 * time.Second,
		sendTimeout:  15 * time.Second,
		logger:       elog.DefaultLogger.With(elog.FieldComponent("contact")),
	}
}

func (s *service) Submit(ctx context.Context, c domain.Contact, formToken string) (int64, error) {
	if field := c.MissingField(); field != "" {
		return 0, fmt.Errorf("%w: 缺少 %s", ErrInvalidInput, field)
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Status = domain.StatusNew
	key := ""
	if formToken != "" {
		key = "contact:" + formToken
	}
	var id int64
	err := s.locker.Do(ctx, key, func(ctx context.Context) error {
		var err error
		id, err = s.repo.Create(ctx, c)
		if err != nil {
			return err
		}
		c.Id = id
		s.reply(context.WithoutCancel(ctx), c)
		return nil
	})
	if errors.Is(err, flight.ErrInFlight) {
		return 0, ErrSubmissionInProgress
	}
	return id, err
}

// reply 起草失败的时候用默认模板，发送失败只记录日志
func (s *service) reply(ctx context.Context, c domain.Contact) {
	body := s.draft(ctx, c)
	ctx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()
	err := s.emailSvc.SendMail(ctx, email.Mail{
		From:    mailFrom,
		To:      c.Email,
		Subject: mailSubject,
		Body:    []byte(body),
	})
	if err != nil {
		s.logger.Error("发送留言确认邮件失败", elog.Int64("id", c.Id), elog.FieldErr(err))
	}
}

func (s *service) draft(ctx context.Context, c domain.Contact) string {
	ctx, cancel := context.WithTimeout(ctx, s.draftTimeout)
	defer cancel()
	resp, err := s.llmSvc.Invoke(ctx, ai.LLMRequest{
		Biz:   ai.BizContactEmail,
		Input: []string{c.Name, c.Email, c.Message},
	})
	if err == nil && strings.TrimSpace(resp.Answer) != "" {
		return resp.Answer
	}
	s.logger.Warn("起草留言确认邮件失败，使用默认模板", elog.Int64("id", c.Id), elog.FieldErr(err))
	return FallbackReply(c.Name)
}

func FallbackReply(name string) string {
	return fmt.Sprintf(`Dear %s,

Thank you for reaching out to Mastersolis Infotech. We have received your message and our team will review it and get back to you within 24 hours.

Best regards,
The Mastersolis Team`, name)
}

func (s *service) List(ctx context.Context, status domain.Status, offset int, limit int) ([]domain.Contact, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	var (
		eg    errgroup.Group
		res   []domain.Contact
		total int64
	)
	eg.Go(func() error {
		var err error
		res, err = s.repo.List(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, status)
		return err
	})
	return res, total, eg.Wait()
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Contact, error) {
	c, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrContactNotFound) {
		return domain.Contact{}, ErrContactNotFound
	}
	return c, err
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	err := s.repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrContactNotFound) {
		return ErrContactNotFound
	}
	return err
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	var (
		eg  errgroup.Group
		res Stats
	)
	eg.Go(func() error {
		var err error
		res.Total, err = s.repo.Count(ctx, "")
		return err
	})
	eg.Go(func() error {
		var err error
		res.New, err = s.repo.Count(ctx, domain.StatusNew)
		return err
	})
	return res, eg.Wait()
}
