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

import "time"

type Config struct {
	// 简历最大的字节数
	MaxResumeSize int64 `yaml:"maxResumeSize"`
	// StrictStatus 为 true 的时候按照 domain.StatusTransitions 校验状态流转
	StrictStatus bool     `yaml:"strictStatus"`
	Timeouts     Timeouts `yaml:"timeouts"`
}

// Timeouts 每一个外部调用自己的超时时间
type Timeouts struct {
	Upload  time.Duration `yaml:"upload"`
	Extract time.Duration `yaml:"extract"`
	Score   time.Duration `yaml:"score"`
	Draft   time.Duration `yaml:"draft"`
	Send    time.Duration `yaml:"send"`
}

func DefaultConfig() Config {
	return Config{
		MaxResumeSize: 10 << 20,
		Timeouts: Timeouts{
			Upload:  30 * time.Second,
			Extract: 60 * time.Second,
			Score:   60 * time.Second,
			Draft:   30 * time.Second,
			Send:    15 * time.Second,
		},
	}
}
