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
	"database/sql"

	"github.com/ecodeclub/ekit/sqlx"
)

type CaseType struct {
	Id              int64  `gorm:"primaryKey;autoIncrement"`
	Name            string `gorm:"type:varchar(128);not null;uniqueIndex:unq_case_type_name"`
	DifficultyLevel int    `gorm:"not null;comment:难度 1-12"`
	Description     string `gorm:"type:text"`
	Status          uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_case_type_status;comment:1=启用 2=停用"`
	Ctime           int64
	Utime           int64
}

func (CaseType) TableName() string {
	return "case_types"
}

type Case struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	Uid         int64  `gorm:"not null;index:idx_case_uid;comment:生成案例的用户"`
	Title       string `gorm:"type:varchar(512);not null"`
	Description string `gorm:"type:text;not null"`
	CaseTypeId  int64  `gorm:"not null"`
	Tid         string `gorm:"type:varchar(128);not null;uniqueIndex:unq_case_tid"`
	Ctime       int64
	Utime       int64
}

func (Case) TableName() string {
	return "cases"
}

type UserResponse struct {
	Id               int64  `gorm:"primaryKey;autoIncrement"`
	Uid              int64  `gorm:"not null;uniqueIndex:unq_response_uid_case_key,priority:1"`
	CaseId           int64  `gorm:"not null;index:idx_response_case;uniqueIndex:unq_response_uid_case_key,priority:2"`
	Text             string `gorm:"type:text;not null"`
	TimeSpentSeconds int64  `gorm:"not null"`
	TimeEstimated    bool   `gorm:"not null;default:false;comment:用时是否为估算值"`
	// 幂等键，为空的时候不参与唯一索引，同一个 key 只在同一个案例下生效
	RequestKey sql.NullString `gorm:"type:varchar(128);uniqueIndex:unq_response_uid_case_key,priority:3"`
	Ctime      int64
	Utime      int64
}

func (UserResponse) TableName() string {
	return "user_responses"
}

type Assessment struct {
	Id               int64                               `gorm:"primaryKey;autoIncrement"`
	ResponseId       int64                               `gorm:"not null;uniqueIndex:unq_assessment_response"`
	CaseId           int64                               `gorm:"not null"`
	Uid              int64                               `gorm:"not null;index:idx_assessment_uid"`
	Scores           sqlx.JsonColumn[map[string]float64] `gorm:"type:text;comment:各维度得分"`
	Total            float64                             `gorm:"not null"`
	Feedback         string                              `gorm:"type:text"`
	ImprovementAreas sqlx.JsonColumn[[]string]           `gorm:"type:text"`
	RawAnswer        string                              `gorm:"type:text"`
	Tid              string                              `gorm:"type:varchar(128)"`
	Ctime            int64
	Utime            int64
}

func (Assessment) TableName() string {
	return "assessments"
}
