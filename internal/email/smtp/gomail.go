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

package smtp

import (
	"bytes"
	"context"
	"io"

	"github.com/ecodeclub/mastersolis/internal/email"
	"gopkg.in/gomail.v2"
)

var _ email.Service = (*Service)(nil)

// Service 通过 SMTP 发送，发件地址就是登录用户名
type Service struct {
	d *gomail.Dialer
}

func NewService(d *gomail.Dialer) *Service {
	return &Service{d: d}
}

func (s *Service) SendMail(ctx context.Context, mail email.Mail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.d.Username, mail.From)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	contentType := mail.ContentType
	if contentType == "" {
		contentType = email.ContentTypePlain
	}
	m.SetBody(contentType, string(mail.Body))
	for _, att := range mail.Attachments {
		content := att.Content
		m.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(content))
			return err
		}))
	}
	return s.d.DialAndSend(m)
}
