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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentDAO interface {
	// Create 同一个回答只会有一条评估，并发评估的时候以先写入的为准
	Create(ctx context.Context, a Assessment) (Assessment, error)
	FindByResponseId(ctx context.Context, responseId int64) (Assessment, error)
}

type GORMAssessmentDAO struct {
	db *egorm.Component
}

func NewGORMAssessmentDAO(db *egorm.Component) AssessmentDAO {
	return &GORMAssessmentDAO{db: db}
}

func (dao *GORMAssessmentDAO) Create(ctx context.Context, a Assessment) (Assessment, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "response_id"}},
			DoNothing: true,
		}).Create(&a)
		if res.Error != nil || res.RowsAffected > 0 {
			return res.Error
		}
		return tx.Where("response_id = ?", a.ResponseId).First(&a).Error
	})
	return a, err
}

func (dao *GORMAssessmentDAO) FindByResponseId(ctx context.Context, responseId int64) (Assessment, error) {
	var res Assessment
	err := dao.db.WithContext(ctx).Where("response_id = ?", responseId).First(&res).Error
	return res, err
}
