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

type CaseDAO interface {
	SaveCaseType(ctx context.Context, ct CaseType) (int64, error)
	// InitCaseTypes 已经存在的同名类型保持不变
	InitCaseTypes(ctx context.Context, cts []CaseType) error
	FindCaseType(ctx context.Context, id int64) (CaseType, error)
	ListCaseTypes(ctx context.Context) ([]CaseType, error)
	ListCaseTypesByStatus(ctx context.Context, status uint8) ([]CaseType, error)

	Create(ctx context.Context, c Case) (int64, error)
	FindById(ctx context.Context, id int64) (Case, error)
	List(ctx context.Context, offset, limit int) ([]Case, error)
	Count(ctx context.Context) (int64, error)
}

type GORMCaseDAO struct {
	db *egorm.Component
}

func NewGORMCaseDAO(db *egorm.Component) CaseDAO {
	return &GORMCaseDAO{db: db}
}

func (dao *GORMCaseDAO) SaveCaseType(ctx context.Context, ct CaseType) (int64, error) {
	now := time.Now().UnixMilli()
	ct.Ctime, ct.Utime = now, now
	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "difficulty_level", "description", "status", "utime",
		}),
	}).Create(&ct).Error
	return ct.Id, err
}

func (dao *GORMCaseDAO) InitCaseTypes(ctx context.Context, cts []CaseType) error {
	now := time.Now().UnixMilli()
	for i := range cts {
		cts[i].Ctime, cts[i].Utime = now, now
	}
	return dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&cts).Error
}

func (dao *GORMCaseDAO) FindCaseType(ctx context.Context, id int64) (CaseType, error) {
	var res CaseType
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMCaseDAO) ListCaseTypes(ctx context.Context) ([]CaseType, error) {
	var res []CaseType
	err := dao.db.WithContext(ctx).Order("difficulty_level ASC, id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMCaseDAO) ListCaseTypesByStatus(ctx context.Context, status uint8) ([]CaseType, error) {
	var res []CaseType
	err := dao.db.WithContext(ctx).Where("status = ?", status).
		Order("difficulty_level ASC, id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMCaseDAO) Create(ctx context.Context, c Case) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (dao *GORMCaseDAO) FindById(ctx context.Context, id int64) (Case, error) {
	var res Case
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMCaseDAO) List(ctx context.Context, offset, limit int) ([]Case, error) {
	var res []Case
	err := dao.db.WithContext(ctx).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMCaseDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := dao.db.WithContext(ctx).Model(&Case{}).Count(&res).Error
	return res, err
}
