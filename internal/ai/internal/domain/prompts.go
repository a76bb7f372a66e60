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

import "time"

const caseGeneratePrompt = `Create a realistic management consulting case for interview practice.
Case type: %s
Difficulty: %s on a scale from 1 (easiest) to 12 (hardest).

Describe the client, the situation, the relevant facts and figures, and end with the question the candidate must answer.
Reply with a single JSON object and nothing else:
{"title": "<short case title>", "description": "<full case narrative>"}`

const caseAssessPrompt = `You are a consulting interviewer scoring a candidate's written answer to a case.

Case title: %s

Case description:
%s

Candidate answer:
%s

Score each dimension from 0 to 10: problem_structuring, analytical_rigor, strategic_thinking, recommendation_quality, communication.
Reply with a single JSON object and nothing else:
{"scores": {"problem_structuring": 0, "analytical_rigor": 0, "strategic_thinking": 0, "recommendation_quality": 0, "communication": 0},
 "feedback": "<overall feedback>",
 "improvement_areas": ["<short label>"]}`

// DefaultConfigs 启动时写入，已经存在的配置不会被覆盖
func DefaultConfigs(model string) []BizConfig {
	return []BizConfig{
		{
			Biz:            BizCaseGenerate,
			Model:          model,
			Temperature:    0.9,
			SystemPrompt:   "You write business cases for consulting interview preparation.",
			MaxInput:       256,
			PromptTemplate: caseGeneratePrompt,
			Timeout:        time.Minute,
		},
		{
			Biz:            BizCaseAssess,
			Model:          model,
			Temperature:    0.2,
			SystemPrompt:   "You are a strict but fair consulting case interviewer.",
			MaxInput:       10000,
			PromptTemplate: caseAssessPrompt,
			Timeout:        time.Minute,
		},
	}
}
