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

package robot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// maxContentBytes 企业微信 markdown 消息内容最多 4096 字节
const maxContentBytes = 4096

type Robot interface {
	SendMarkdown(ctx context.Context, content string) error
}

type Markdown struct {
	Content string `json:"content"`
}

type WechatRobotMessage struct {
	MsgType  string   `json:"msgtype"`
	Markdown Markdown `json:"markdown"`
}

type wechatResp struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

type WechatRobot struct {
	webhookURL string
	client     *http.Client
}

func NewWechatRobot(webhookURL string, client *http.Client) *WechatRobot {
	return &WechatRobot{
		webhookURL: webhookURL,
		client:     client,
	}
}

func (r *WechatRobot) SendMarkdown(ctx context.Context, content string) error {
	data, err := json.Marshal(&WechatRobotMessage{
		MsgType:  "markdown",
		Markdown: Markdown{Content: truncate(content, maxContentBytes)},
	})
	if err != nil {
		return fmt.Errorf("序列化微信Robot消息失败: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.webhookURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("向微信发送请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("微信处理请求失败: %s", http.StatusText(resp.StatusCode))
	}
	var res wechatResp
	err = json.NewDecoder(resp.Body).Decode(&res)
	if err != nil {
		return fmt.Errorf("解析微信响应失败: %w", err)
	}
	if res.ErrCode != 0 {
		return fmt.Errorf("微信处理请求失败: %d %s", res.ErrCode, res.ErrMsg)
	}
	return nil
}

// truncate 按字节截断，不会切断一个完整的字符
func truncate(content string, limit int) string {
	if limit < 0 {
		panic("limit 不能为负数")
	}
	if len(content) <= limit {
		return content
	}
	end := limit
	for end > 0 && !utf8.RuneStart(content[end]) {
		end--
	}
	return content[:end]
}

// NopRobot 没有配置机器人的时候使用
type NopRobot struct{}

func (NopRobot) SendMarkdown(ctx context.Context, content string) error {
	return nil
}
