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
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
)

var errNoJSONObject = errors.New("回答中没有 JSON 对象")

// extractJSON LLM 经常会把 JSON 包在 ```json 里面，或者前后带上解释
func extractJSON(answer string) (string, error) {
	start := strings.Index(answer, "{")
	end := strings.LastIndex(answer, "}")
	if start < 0 || end < start {
		return "", errNoJSONObject
	}
	return answer[start : end+1], nil
}

type generatedCase struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func parseGeneratedCase(answer string) (generatedCase, error) {
	raw, err := extractJSON(answer)
	if err != nil {
		return generatedCase{}, err
	}
	var res generatedCase
	if err = json.Unmarshal([]byte(raw), &res); err != nil {
		return generatedCase{}, err
	}
	res.Title = strings.TrimSpace(res.Title)
	res.Description = strings.TrimSpace(res.Description)
	if res.Title == "" || res.Description == "" {
		return generatedCase{}, errors.New("title 或者 description 为空")
	}
	return res, nil
}

type assessmentAnswer struct {
	Scores           map[string]any `json:"scores"`
	Feedback         string         `json:"feedback"`
	ImprovementAreas []string       `json:"improvement_areas"`
}

type parsedAssessment struct {
	Scores           map[domain.Dimension]float64
	Feedback         string
	ImprovementAreas []string
}

// parseAssessment 缺维度、分数不是数字或者超出范围都算失败，
// LLM 返回的 total 字段直接忽略
func parseAssessment(answer string) (parsedAssessment, error) {
	raw, err := extractJSON(answer)
	if err != nil {
		return parsedAssessment{}, err
	}
	var ans assessmentAnswer
	if err = json.Unmarshal([]byte(raw), &ans); err != nil {
		return parsedAssessment{}, err
	}
	scores := make(map[domain.Dimension]float64, len(domain.Dimensions()))
	for _, d := range domain.Dimensions() {
		val, ok := ans.Scores[string(d)]
		if !ok {
			return parsedAssessment{}, fmt.Errorf("缺少维度 %s", d)
		}
		score, ok := val.(float64)
		if !ok {
			return parsedAssessment{}, fmt.Errorf("维度 %s 的分数不是数字: %v", d, val)
		}
		if score < domain.MinScore || score > domain.MaxScore {
			return parsedAssessment{}, fmt.Errorf("维度 %s 的分数 %v 超出范围", d, score)
		}
		scores[d] = score
	}
	feedback := strings.TrimSpace(ans.Feedback)
	if feedback == "" {
		return parsedAssessment{}, errors.New("feedback 为空")
	}
	areas := make([]string, 0, len(ans.ImprovementAreas))
	for _, a := range ans.ImprovementAreas {
		if a = strings.TrimSpace(a); a != "" {
			areas = append(areas, a)
		}
	}
	return parsedAssessment{
		Scores:           scores,
		Feedback:         feedback,
		ImprovementAreas: areas,
	}, nil
}
