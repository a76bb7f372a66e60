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

package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalOf(t *testing.T) {
	testCases := []struct {
		name   string
		scores map[Dimension]float64
		want   float64
	}{
		{
			name: "整数平均",
			scores: map[Dimension]float64{
				DimensionProblemStructuring:    8,
				DimensionAnalyticalRigor:       6,
				DimensionStrategicThinking:     7,
				DimensionRecommendationQuality: 5,
				DimensionCommunication:         9,
			},
			want: 7,
		},
		{
			name: "保留一位小数",
			scores: map[Dimension]float64{
				DimensionProblemStructuring:    8,
				DimensionAnalyticalRigor:       7,
				DimensionStrategicThinking:     7,
				DimensionRecommendationQuality: 7,
				DimensionCommunication:         7.5,
			},
			want: 7.3,
		},
		{
			name: "全是满分",
			scores: map[Dimension]float64{
				DimensionProblemStructuring:    10,
				DimensionAnalyticalRigor:       10,
				DimensionStrategicThinking:     10,
				DimensionRecommendationQuality: 10,
				DimensionCommunication:         10,
			},
			want: 10,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalOf(tc.scores))
		})
	}
}

func TestEstimateTimeSpent(t *testing.T) {
	assert.Equal(t, int64(60), EstimateTimeSpent(strings.Repeat("a", 50)))
	assert.Equal(t, int64(60), EstimateTimeSpent("  "+strings.Repeat("a", 1000)+"  "))
	assert.Equal(t, int64(180), EstimateTimeSpent(strings.Repeat("a", 3000)))
}

func TestSubmission_TrimmedLength(t *testing.T) {
	s := Submission{Text: "\n  " + strings.Repeat("案", 50) + "  \t"}
	assert.Equal(t, 50, s.TrimmedLength())
}

func TestCaseType_Validate(t *testing.T) {
	assert.NoError(t, CaseType{Name: "Pricing", DifficultyLevel: 1}.Validate())
	assert.NoError(t, CaseType{Name: "Pricing", DifficultyLevel: 12}.Validate())
	assert.ErrorIs(t, CaseType{Name: "Pricing", DifficultyLevel: 13}.Validate(), ErrInvalidCaseType)
	assert.ErrorIs(t, CaseType{Name: "Pricing"}.Validate(), ErrInvalidCaseType)
	assert.ErrorIs(t, CaseType{DifficultyLevel: 3}.Validate(), ErrInvalidCaseType)
	for _, ct := range DefaultCaseTypes() {
		assert.NoError(t, ct.Validate())
	}
}
