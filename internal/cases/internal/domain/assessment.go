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
	"math"
	"time"
)

type Dimension string

const (
	DimensionProblemStructuring    Dimension = "problem_structuring"
	DimensionAnalyticalRigor       Dimension = "analytical_rigor"
	DimensionStrategicThinking     Dimension = "strategic_thinking"
	DimensionRecommendationQuality Dimension = "recommendation_quality"
	DimensionCommunication         Dimension = "communication"
)

const (
	MinScore = 0.0
	MaxScore = 10.0
)

// Dimensions 评分维度，顺序固定
func Dimensions() []Dimension {
	return []Dimension{
		DimensionProblemStructuring,
		DimensionAnalyticalRigor,
		DimensionStrategicThinking,
		DimensionRecommendationQuality,
		DimensionCommunication,
	}
}

type Assessment struct {
	Id               int64
	ResponseId       int64
	CaseId           int64
	Uid              int64
	Scores           map[Dimension]float64
	Total            float64
	Feedback         string
	ImprovementAreas []string
	// LLM 的原始回答
	RawAnswer string
	Tid       string
	Ctime     time.Time
}

// TotalOf 五个维度的平均分，保留一位小数
func TotalOf(scores map[Dimension]float64) float64 {
	dims := Dimensions()
	var sum float64
	for _, d := range dims {
		sum += scores[d]
	}
	return math.Round(sum/float64(len(dims))*10) / 10
}
