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

package client

import (
	"context"
	"errors"
)

const (
	OK = "OK"
)

var (
	ErrSendFailed       = errors.New("发送短信失败")
	ErrInvalidParameter = errors.New("参数无效")
)

//go:generate mockgen -source=./types.go -destination=./mocks/sms.mock.go -package=smsmocks Client
type Client interface {
	// Send 发送短信
	Send(ctx context.Context, req SendReq) (SendResp, error)
}

type SendReq struct {
	PhoneNumbers []string
	TemplateID   string
	// 模板参数, key-value 形式
	TemplateParam map[string]string
}

type SendResp struct {
	RequestID    string
	PhoneNumbers map[string]SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}
