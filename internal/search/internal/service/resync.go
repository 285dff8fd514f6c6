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
)

// Resyncer 把自己的全部数据重新发送一遍同步事件
type Resyncer interface {
	ResyncSearch(ctx context.Context) error
}

// ResyncJob 定时全量同步，兜底消息丢失的情况
type ResyncJob struct {
	resyncers []Resyncer
}

func NewResyncJob(resyncers ...Resyncer) *ResyncJob {
	return &ResyncJob{resyncers: resyncers}
}

func (j *ResyncJob) Name() string {
	return "search_resync"
}

// Run 某一个业务失败不影响其它业务
func (j *ResyncJob) Run(ctx context.Context) error {
	var errs []error
	for _, r := range j.resyncers {
		if err := r.ResyncSearch(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
