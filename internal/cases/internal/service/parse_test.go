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
	"testing"

	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeneratedCase(t *testing.T) {
	testCases := []struct {
		name    string
		answer  string
		want    generatedCase
		wantErr bool
	}{
		{
			name:   "纯 JSON",
			answer: `{"title": "Coffee Chain", "description": "A coffee chain is losing money."}`,
			want:   generatedCase{Title: "Coffee Chain", Description: "A coffee chain is losing money."},
		},
		{
			name:   "代码块包裹",
			answer: "Here is your case:\n```json\n{\"title\": \" Airline \", \"description\": \"Should the airline enter Asia?\"}\n```",
			want:   generatedCase{Title: "Airline", Description: "Should the airline enter Asia?"},
		},
		{
			name:    "缺少描述",
			answer:  `{"title": "Airline"}`,
			wantErr: true,
		},
		{
			name:    "不是 JSON",
			answer:  "Sorry, I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "JSON 不完整",
			answer:  `{"title": "Airline", "description": }`,
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := parseGeneratedCase(tc.answer)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestParseAssessment(t *testing.T) {
	testCases := []struct {
		name    string
		answer  string
		want    parsedAssessment
		wantErr bool
	}{
		{
			name: "正常",
			answer: "```json\n" + `{"scores": {"problem_structuring": 8, "analytical_rigor": 6.5, "strategic_thinking": 7,
"recommendation_quality": 5, "communication": 9}, "total": 100, "feedback": " Good structure. ",
"improvement_areas": ["Quantify impact", " "]}` + "\n```",
			want: parsedAssessment{
				Scores: map[domain.Dimension]float64{
					domain.DimensionProblemStructuring:    8,
					domain.DimensionAnalyticalRigor:       6.5,
					domain.DimensionStrategicThinking:     7,
					domain.DimensionRecommendationQuality: 5,
					domain.DimensionCommunication:         9,
				},
				Feedback:         "Good structure.",
				ImprovementAreas: []string{"Quantify impact"},
			},
		},
		{
			name: "缺少维度",
			answer: `{"scores": {"problem_structuring": 8, "analytical_rigor": 6, "strategic_thinking": 7,
"recommendation_quality": 5}, "feedback": "ok", "improvement_areas": []}`,
			wantErr: true,
		},
		{
			name: "分数超出范围",
			answer: `{"scores": {"problem_structuring": 11, "analytical_rigor": 6, "strategic_thinking": 7,
"recommendation_quality": 5, "communication": 9}, "feedback": "ok"}`,
			wantErr: true,
		},
		{
			name: "分数是字符串",
			answer: `{"scores": {"problem_structuring": "8", "analytical_rigor": 6, "strategic_thinking": 7,
"recommendation_quality": 5, "communication": 9}, "feedback": "ok"}`,
			wantErr: true,
		},
		{
			name: "没有反馈",
			answer: `{"scores": {"problem_structuring": 8, "analytical_rigor": 6, "strategic_thinking": 7,
"recommendation_quality": 5, "communication": 9}}`,
			wantErr: true,
		},
		{
			name:    "无法解析",
			answer:  "The candidate did well overall, 7/10.",
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := parseAssessment(tc.answer)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}
