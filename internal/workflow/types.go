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

package workflow

// Session 显式传递的登录态，不依赖任何全局状态
type Session struct {
	Uid   int64
	Token string
}

// Usage 对应 GET /check-case-limit 的返回值
type Usage struct {
	CanGenerate        bool   `json:"canGenerate"`
	CasesUsedThisWeek  int64  `json:"casesUsedThisWeek"`
	WeeklyLimit        int64  `json:"weeklyLimit"`
	CasesUsedThisMonth int64  `json:"casesUsedThisMonth"`
	MonthlyLimit       int64  `json:"monthlyLimit"`
	TariffName         string `json:"tariffName"`
	ResetDate          string `json:"resetDate"`
	Reason             string `json:"reason,omitempty"`
}

type CaseType struct {
	Id              int64  `json:"id"`
	Name            string `json:"name"`
	DifficultyLevel int    `json:"difficulty_level"`
}

type Case struct {
	Id          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CaseType    CaseType `json:"case_type"`
}

type SubmitRequest struct {
	CaseId           int64  `json:"case_id"`
	ResponseText     string `json:"response_text"`
	TimeSpentSeconds *int64 `json:"time_spent_seconds,omitempty"`
	RequestKey       string `json:"request_key,omitempty"`
}

type ResponseRef struct {
	Id               int64 `json:"id"`
	CaseId           int64 `json:"case_id"`
	TimeSpentSeconds int64 `json:"time_spent_seconds"`
	TimeEstimated    bool  `json:"time_estimated"`
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
