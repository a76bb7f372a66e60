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
	"github.com/ecodeclub/caselab/internal/onboarding/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type StepSummary struct {
	Number int    `json:"number"`
	Key    string `json:"key"`
	Title  string `json:"title"`
	Icon   string `json:"icon"`
}

// Step 不会暴露正确答案
type Step struct {
	StepSummary
	MiniCase string   `json:"mini_case"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func newStepSummary(s domain.Step) StepSummary {
	return StepSummary{
		Number: s.Number,
		Key:    s.Key,
		Title:  s.Title,
		Icon:   s.Icon,
	}
}

func newStep(s domain.Step) *Step {
	return &Step{
		StepSummary: newStepSummary(s),
		MiniCase:    s.MiniCase,
		Question:    s.Question,
		Options: slice.Map(s.Options, func(idx int, src domain.Option) string {
			return src.Text
		}),
	}
}

type Feedback struct {
	Selected      int    `json:"selected"`
	Correct       bool   `json:"correct"`
	Text          string `json:"text"`
	LearningPoint string `json:"learning_point"`
}

type Progress struct {
	Step       int  `json:"step"`
	TotalSteps int  `json:"total_steps"`
	Completed  bool `json:"completed"`
	CanProceed bool `json:"can_proceed"`
	// 完成之后没有当前步骤
	Current  *Step     `json:"current,omitempty"`
	Feedback *Feedback `json:"feedback,omitempty"`
}

func newProgress(e *domain.Engine) Progress {
	res := Progress{
		Step:       e.Progress().Step,
		TotalSteps: domain.StepCount,
		Completed:  e.Completed(),
		CanProceed: e.CanProceed(),
	}
	if e.Completed() {
		return res
	}
	res.Current = newStep(e.CurrentStep())
	if fb, ok := e.Feedback(); ok {
		res.Feedback = &Feedback{
			Selected:      fb.Selected,
			Correct:       fb.Correct,
			Text:          fb.Text,
			LearningPoint: fb.LearningPoint,
		}
	}
	return res
}

type SelectReq struct {
	Option int `json:"option"`
}

type SkipReq struct {
	Confirmed bool `json:"confirmed"`
}
