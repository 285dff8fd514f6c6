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
	"github.com/ecodeclub/mastersolis/internal/sms/client"
	"github.com/gotomicro/ego/core/econf"
)

// InitSMSClient 没有配置阿里云的时候只打日志
func InitSMSClient() client.Client {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		SignName        string `yaml:"signName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.AccessKeyID == "" {
		return client.NewConsoleClient()
	}
	aliClient, err := client.NewAliyunSMS(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.SignName)
	if err != nil {
		panic(err)
	}
	return aliClient
}
