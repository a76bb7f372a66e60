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
	// Save 按 biz 覆盖
	Save(ctx context.Context, c BizConfig) (int64, error)
	// InitConfigs 已经存在的 biz 保持不变
	InitConfigs(ctx context.Context, cs []BizConfig) error
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

func (dao *GORMConfigDAO) Save(ctx context.Context, c BizConfig) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	db := dao.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "biz"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"model", "temperature", "system_prompt", "max_input",
			"prompt_template", "timeout_ms", "utime",
		}),
	}).Create(&c).Error
	if err != nil {
		return 0, err
	}
	var res BizConfig
	err = db.Select("id").Where("biz = ?", c.Biz).First(&res).Error
	return res.Id, err
}

func (dao *GORMConfigDAO) InitConfigs(ctx context.Context, cs []BizConfig) error {
	now := time.Now().UnixMilli()
	for i := range cs {
		cs[i].Ctime, cs[i].Utime = now, now
	}
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "biz"}},
		DoNothing: true,
	}).Create(&cs).Error
}

func (dao *GORMConfigDAO) List(ctx context.Context) ([]BizConfig, error) {
	var res []BizConfig
	err := dao.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}

type BizConfig struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:AI biz 配置表ID"`
	Biz         string `gorm:"type:varchar(256);uniqueIndex:unq_ai_biz;not null;comment:业务类型名"`
	Model       string `gorm:"type:varchar(256)"`
	Temperature float64
	// 系统 prompt
	SystemPrompt   string `gorm:"type:text"`
	MaxInput       int    `gorm:"comment:最大输入长度"`
	PromptTemplate string `gorm:"type:text"`
	TimeoutMs      int64  `gorm:"comment:单次调用超时,毫秒"`
	Ctime          int64
	Utime          int64
}

func (c BizConfig) TableName() string {
	return "ai_biz_configs"
}
