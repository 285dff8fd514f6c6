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

package aliyun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"
	"github.com/ecodeclub/mastersolis/internal/email"
)

var _ email.Service = (*DirectMail)(nil)

// DirectMail 阿里云邮件推送
type DirectMail struct {
	client *dm20151123.Client
	// 在控制台配置的发信地址
	accountName string
}

func NewDirectMail(accessKeyID, accessKeySecret, accountName string) (*DirectMail, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭证失败: %w", err)
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云邮件推送客户端失败: %w", err)
	}
	return &DirectMail{
		client:      client,
		accountName: accountName,
	}, nil
}

func (a *DirectMail) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailAdvanceRequest{
		AccountName: tea.String(a.accountName),
		FromAlias:   tea.String(mail.From),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		ReplyToAddress: tea.Bool(false),
	}
	if mail.IsHTML() {
		request.HtmlBody = tea.String(string(mail.Body))
	} else {
		request.TextBody = tea.String(string(mail.Body))
	}
	if len(mail.Attachments) > 0 {
		attachments := make([]*dm20151123.SingleSendMailAdvanceRequestAttachments, 0, len(mail.Attachments))
		for idx := range mail.Attachments {
			att := &dm20151123.SingleSendMailAdvanceRequestAttachments{}
			att.SetAttachmentName(mail.Attachments[idx].Filename)
			att.SetAttachmentUrlObject(bytes.NewReader(mail.Attachments[idx].Content))
			attachments = append(attachments, att)
		}
		request.Attachments = attachments
	}
	runtime := &util.RuntimeOptions{}
	// SDK 不支持 context，只能提前检查一下
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := a.client.SingleSendMailAdvance(request, runtime)
	if err != nil {
		return a.wrapError(err)
	}
	return nil
}

func (a *DirectMail) wrapError(err error) error {
	var sdkErr *tea.SDKError
	if !errors.As(err, &sdkErr) {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	msg := fmt.Sprintf("阿里云邮件推送API错误: %s", tea.StringValue(sdkErr.Message))
	if sdkErr.Data != nil {
		var data map[string]any
		if json.NewDecoder(strings.NewReader(tea.StringValue(sdkErr.Data))).Decode(&data) == nil {
			if recommend, ok := data["Recommend"]; ok {
				msg += fmt.Sprintf(" | 建议: %v", recommend)
			}
			if requestId, ok := data["RequestId"]; ok {
				msg += fmt.Sprintf(" | RequestId: %v", requestId)
			}
		}
	}
	return errors.New(msg)
}
