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

type ResponseDAO interface {
	// Create 同一个案例下带了相同幂等键并且已经提交过的，返回已有的记录
	Create(ctx context.Context, r UserResponse) (UserResponse, error)
	FindById(ctx context.Context, id int64) (UserResponse, error)
}

type GORMResponseDAO struct {
	db *egorm.Component
}

func NewGORMResponseDAO(db *egorm.Component) ResponseDAO {
	return &GORMResponseDAO{db: db}
}

func (dao *GORMResponseDAO) Create(ctx context.Context, r UserResponse) (UserResponse, error) {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if !r.RequestKey.Valid {
			return tx.Create(&r).Error
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&r)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		// 重复提交
		return tx.Where("uid = ? AND case_id = ? AND request_key = ?", r.Uid, r.CaseId, r.RequestKey.String).
			First(&r).Error
	})
	return r, err
}

func (dao *GORMResponseDAO) FindById(ctx context.Context, id int64) (UserResponse, error) {
	var res UserResponse
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}
