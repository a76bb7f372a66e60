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

package web

import (
	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
)

type CaseType struct {
	Id              int64  `json:"id"`
	Name            string `json:"name"`
	DifficultyLevel int    `json:"difficulty_level"`
	Description     string `json:"description,omitempty"`
	// 只有管理后台会用到
	Status uint8 `json:"status,omitempty"`
}

func newCaseType(ct domain.CaseType) CaseType {
	return CaseType{
		Id:              ct.Id,
		Name:            ct.Name,
		DifficultyLevel: ct.DifficultyLevel,
		Description:     ct.Description,
	}
}

func (ct CaseType) toDomain() domain.CaseType {
	return domain.CaseType{
		Id:              ct.Id,
		Name:            ct.Name,
		DifficultyLevel: ct.DifficultyLevel,
		Description:     ct.Description,
		Status:          domain.CaseTypeStatus(ct.Status),
	}
}

type GenerateCaseReq struct {
	// 0 表示随机
	CaseTypeId int64 `json:"case_type_id"`
}

type Case struct {
	Id          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CaseType    CaseType `json:"case_type"`
}

func newCase(c domain.Case) Case {
	return Case{
		Id:          c.Id,
		Title:       c.Title,
		Description: c.Description,
		CaseType:    newCaseType(c.CaseType),
	}
}

type SubmitResponseReq struct {
	CaseId       int64  `json:"case_id"`
	ResponseText string `json:"response_text"`
	// 客户端没有计时的时候不传
	TimeSpentSeconds *int64 `json:"time_spent_seconds"`
	RequestKey       string `json:"request_key"`
}

type UserResponse struct {
	Id               int64 `json:"id"`
	CaseId           int64 `json:"case_id"`
	TimeSpentSeconds int64 `json:"time_spent_seconds"`
	TimeEstimated    bool  `json:"time_estimated"`
}

func newUserResponse(r domain.UserResponse) UserResponse {
	return UserResponse{
		Id:               r.Id,
		CaseId:           r.CaseId,
		TimeSpentSeconds: r.TimeSpentSeconds,
		TimeEstimated:    r.TimeEstimated,
	}
}

type AssessResponseReq struct {
	CaseId         int64 `json:"case_id"`
	UserResponseId int64 `json:"user_response_id"`
}

type Assessment struct {
	Id               int64              `json:"id"`
	CaseId           int64              `json:"case_id"`
	UserResponseId   int64              `json:"user_response_id"`
	Scores           map[string]float64 `json:"scores"`
	TotalScore       float64            `json:"total_score"`
	Feedback         string             `json:"feedback"`
	ImprovementAreas []string           `json:"improvement_areas"`
}

func newAssessment(a domain.Assessment) Assessment {
	scores := make(map[string]float64, len(a.Scores))
	for d, s := range a.Scores {
		scores[string(d)] = s
	}
	areas := a.ImprovementAreas
	if areas == nil {
		areas = []string{}
	}
	return Assessment{
		Id:               a.Id,
		CaseId:           a.CaseId,
		UserResponseId:   a.ResponseId,
		Scores:           scores,
		TotalScore:       a.Total,
		Feedback:         a.Feedback,
		ImprovementAreas: areas,
	}
}

type SaveCaseTypeReq struct {
	CaseType CaseType `json:"case_type"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type AdminCase struct {
	Case
	Uid   int64 `json:"uid"`
	Ctime int64 `json:"ctime"`
}

type CaseList struct {
	Total int64       `json:"total"`
	Cases []AdminCase `json:"cases"`
}

type CaseId struct {
	Id int64 `json:"id"`
}
