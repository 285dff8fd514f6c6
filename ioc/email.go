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

package ioc

import (
	"crypto/tls"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mastersolis/internal/email"
	"github.com/ecodeclub/mastersolis/internal/email/aliyun"
	"github.com/ecodeclub/mastersolis/internal/email/failover"
	emailretry "github.com/ecodeclub/mastersolis/internal/email/retry"
	"github.com/ecodeclub/mastersolis/internal/email/smtp"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/gomail.v2"
)

const (
	emailProviderAliyun = "aliyun"
	emailProviderSMTP   = "smtp"
)

type emailConfig struct {
	// Providers 按顺序轮询，为空的时候只打日志不发送
	Providers []string `yaml:"providers"`
	Aliyun    struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		AccountName     string `yaml:"accountName"`
	} `yaml:"aliyun"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"smtp"`
	MaxRetries int32 `yaml:"maxRetries"`
}

func InitEmailService() email.Service {
	var cfg emailConfig
	err := econf.UnmarshalKey("email", &cfg)
	if err != nil {
		panic(err)
	}
	if len(cfg.Providers) == 0 {
		return email.NewNoOpService()
	}
	svcs := make([]email.Service, 0, len(cfg.Providers))
	for _, p := range cfg.Providers {
		svc, err := newEmailProvider(p, cfg)
		if err != nil {
			panic(err)
		}
		svcs = append(svcs, withEmailRetry(svc, cfg.MaxRetries))
	}
	if len(svcs) == 1 {
		return svcs[0]
	}
	return failover.NewService(svcs)
}

func newEmailProvider(name string, cfg emailConfig) (email.Service, error) {
	switch name {
	case emailProviderAliyun:
		return aliyun.NewDirectMail(cfg.Aliyun.AccessKeyID, cfg.Aliyun.AccessKeySecret, cfg.Aliyun.AccountName)
	case emailProviderSMTP:
		d := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		d.TLSConfig = &tls.Config{ServerName: cfg.SMTP.Host}
		return smtp.NewService(d), nil
	default:
		return nil, fmt.Errorf("未知的邮件服务 %s", name)
	}
}

func withEmailRetry(svc email.Service, maxRetries int32) email.Service {
	if maxRetries <= 0 {
		return svc
	}
	return emailretry.NewService(svc, func() retry.Strategy {
		s, _ := retry.NewExponentialBackoffRetryStrategy(time.Second, 10*time.Second, maxRetries)
		return s
	})
}
