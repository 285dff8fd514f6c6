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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type ConfigDAO interface {
	GetConfig(ctx context.Context, biz string) (BizConfig, error)
	GetById(ctx context.Context, id int64) (BizConfig, error)
	Save(ctx context.Context, cfg BizConfig) (int64, error)
	// InsertIgnore biz 已经存在就什么都不做，返回是否真的插入了
	InsertIgnore(ctx context.Context, cfg BizConfig) (bool, error)
	List(ctx context.Context) ([]BizConfig, error)
}

type GORMConfigDAO struct {
	db *egorm.Component
}

func NewGORMConfigDAO(db *egorm.Component) ConfigDAO {
	return &GORMConfigDAO{db: db}
}

func (dao *GORMConfigDAO) GetConfig(ctx context.Context, biz string) (BizConfig, error) {
	var res BizConfig
	err := dao.db.WithContext(ctx).Where("biz = ?", biz).First(&res).Error
	return res, err
}

func (dao *GORMConfigDAO) GetById(ctx context.Context, id int64) (BizConfig, error) {
	var res BizConfig
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMConfigDAO) Save(ctx context.Context, cfg BizConfig) (int64, error) {
	now := time.Now().UnixMilli()
	cfg.Ctime = now
	cfg.Utime = now
	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "biz"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"model", "price", "temperature", "top_p", "max_tokens", "json_mode",
			"max_input", "system_prompt", "prompt_template", "utime",
		}),
	}).Create(&cfg).Error
	if err != nil {
		return 0, err
	}
	if cfg.Id == 0 {
		// 走了更新分支的时候 MySQL 不一定回填 id
		var res BizConfig
		err = dao.db.WithContext(ctx).Select("id").Where("biz = ?", cfg.Biz).First(&res).Error
		return res.Id, err
	}
	return cfg.Id, nil
}

func (dao *GORMConfigDAO) InsertIgnore(ctx context.Context, cfg BizConfig) (bool, error) {
	now := time.Now().UnixMilli()
	cfg.Ctime = now
	cfg.Utime = now
	res := dao.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&cfg)
	return res.RowsAffected > 0, res.Error
}

func (dao *GORMConfigDAO) List(ctx context.Context) ([]BizConfig, error) {
	var res []BizConfig
	err := dao.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}

type BizConfig struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:AI biz 配置表ID"`
	Biz         string `gorm:"type:varchar(256);uniqueIndex;not null;comment:业务类型名"`
	MaxInput    int    `gorm:"comment:最大输入长度"`
	Model       string `gorm:"type:varchar(256)"`
	Price       int64
	Temperature float64
	TopP        float64
	MaxTokens   int64
	JSONMode    bool `gorm:"column:json_mode;comment:是否要求只返回 JSON"`
	// 系统 prompt
	SystemPrompt   string `gorm:"type:text"`
	PromptTemplate string `gorm:"type:text"`
	Ctime          int64
	Utime          int64
}

func (c BizConfig) TableName() string {
	return "ai_biz_configs"
}
