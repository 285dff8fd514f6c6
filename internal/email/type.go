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

package email

import "context"

//go:generate mockgen -source=./type.go -package=emailmocks -destination=./mocks/email.mock.go Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

const (
	ContentTypePlain = "text/plain"
	ContentTypeHTML  = "text/html"
)

type Mail struct {
	// 发件人的展示名称，发件地址由具体的实现决定
	From    string
	To      string
	Subject string
	Body    []byte
	// 默认是 text/plain
	ContentType string
	Attachments []Attachment
}

func (m Mail) IsHTML() bool {
	return m.ContentType == ContentTypeHTML
}

type Attachment struct {
	Filename string
	Content  []byte
}
