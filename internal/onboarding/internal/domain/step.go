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
	"errors"
	"fmt"
)

const StepCount = 5

type Option struct {
	Text    string
	Correct bool
}

// Step 引导流程中的一步，每一步对应一个分析方法
type Step struct {
	Number            int
	Key               string
	Title             string
	Icon              string
	MiniCase          string
	Question          string
	Options           []Option
	CorrectFeedback   string
	IncorrectFeedback string
	LearningPoint     string
}

func (s Step) IsCorrect(option int) bool {
	return option >= 0 && option < len(s.Options) && s.Options[option].Correct
}

var errInvalidStep = errors.New("引导步骤内容不合法")

// Validate 2 到 3 个选项，并且只有一个是正确的
func (s Step) Validate() error {
	if len(s.Options) < 2 || len(s.Options) > 3 {
		return fmt.Errorf("%w 第 %d 步有 %d 个选项", errInvalidStep, s.Number, len(s.Options))
	}
	correct := 0
	for _, o := range s.Options {
		if o.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w 第 %d 步有 %d 个正确选项", errInvalidStep, s.Number, correct)
	}
	if s.Title == "" || s.Question == "" || s.LearningPoint == "" {
		return fmt.Errorf("%w 第 %d 步缺少内容", errInvalidStep, s.Number)
	}
	return nil
}

func validateSteps(steps []Step) error {
	if len(steps) != StepCount {
		return fmt.Errorf("%w 需要 %d 步，实际 %d 步", errInvalidStep, StepCount, len(steps))
	}
	for i, s := range steps {
		if s.Number != i+1 {
			return fmt.Errorf("%w 第 %d 步的序号是 %d", errInvalidStep, i+1, s.Number)
		}
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	if err := validateSteps(steps); err != nil {
		panic(err)
	}
}

// Steps 返回副本，调用方修改不会影响内置内容
func Steps() []Step {
	res := make([]Step, len(steps))
	for i, s := range steps {
		s.Options = append([]Option(nil), s.Options...)
		res[i] = s
	}
	return res
}

func StepAt(number int) (Step, bool) {
	if number < 1 || number > len(steps) {
		return Step{}, false
	}
	return Steps()[number-1], true
}

var steps = []Step{
	{
		Number: 1,
		Key:    "understand",
		Title:  "Understand the problem",
		Icon:   "search",
		MiniCase: "A regional bakery chain tells you: \"Our profits dropped 15% this year and we want to open " +
			"five new stores to fix it.\"",
		Question: "What should you do first?",
		Options: []Option{
			{Text: "Start designing the expansion plan for the five stores"},
			{Text: "Clarify the objective and confirm what is driving the profit decline", Correct: true},
			{Text: "Benchmark the bakery against national competitors"},
		},
		CorrectFeedback:   "Right. The client proposed a solution before the problem was understood.",
		IncorrectFeedback: "Not quite. Jumping in before you know what the client actually needs risks solving the wrong problem.",
		LearningPoint:     "Always restate the objective and clarify the problem before analysing anything.",
	},
	{
		Number: 2,
		Key:    "structure",
		Title:  "Structure your approach",
		Icon:   "layers",
		MiniCase: "The bakery's profit fell. You want to find out why, and you have limited time with the " +
			"finance team.",
		Question: "Which structure is the most useful starting point?",
		Options: []Option{
			{Text: "Profit = Revenue - Costs, then break each branch down further", Correct: true},
			{Text: "A list of every idea the team can brainstorm"},
		},
		CorrectFeedback:   "Exactly. A MECE profit tree makes sure nothing is missed and nothing overlaps.",
		IncorrectFeedback: "A brainstorm list has overlaps and gaps. A structured tree keeps the analysis complete.",
		LearningPoint:     "Break the problem into mutually exclusive, collectively exhaustive parts.",
	},
	{
		Number: 3,
		Key:    "analyze",
		Title:  "Analyze the data",
		Icon:   "bar-chart",
		MiniCase: "Revenue is flat. Flour costs rose 4%, while rent rose 30% after leases in the city " +
			"centre were renewed.",
		Question: "Where should you focus your analysis?",
		Options: []Option{
			{Text: "Flour, because it is the main ingredient"},
			{Text: "Rent, because it moved the most and likely explains the decline", Correct: true},
			{Text: "Revenue, because growth is always the answer"},
		},
		CorrectFeedback:   "Yes. Follow the numbers to the driver with the biggest impact.",
		IncorrectFeedback: "That is not where the numbers point. Prioritise the driver with the largest change.",
		LearningPoint:     "Let the data tell you where to dig, and prioritise by impact.",
	},
	{
		Number: 4,
		Key:    "synthesize",
		Title:  "Synthesize the findings",
		Icon:   "puzzle",
		MiniCase: "You found that city-centre stores now lose money because of rent, while suburban stores " +
			"remain profitable.",
		Question: "How do you summarise this for the CEO?",
		Options: []Option{
			{Text: "Walk through every spreadsheet you built, in order"},
			{Text: "Lead with the answer: city-centre rent is eroding profit, suburban stores are healthy", Correct: true},
		},
		CorrectFeedback:   "Great. Executives want the \"so what\" first, supported by the key facts.",
		IncorrectFeedback: "Too much detail hides the message. Lead with the insight, then support it.",
		LearningPoint:     "Synthesis means turning analysis into a clear message, answer first.",
	},
	{
		Number: 5,
		Key:    "recommend",
		Title:  "Make a recommendation",
		Icon:   "flag",
		MiniCase: "The CEO asks what to do next. Two city-centre leases can be exited within " +
			"six months.",
		Question: "Which recommendation is strongest?",
		Options: []Option{
			{Text: "Open five new city-centre stores as originally planned"},
			{Text: "Exit the two unprofitable leases and redirect investment to suburban locations, tracking margin monthly", Correct: true},
			{Text: "Wait another year to collect more data"},
		},
		CorrectFeedback:   "Well done. The recommendation is specific, actionable and tied to the evidence.",
		IncorrectFeedback: "A strong recommendation follows from the evidence and tells the client exactly what to do.",
		LearningPoint:     "Recommend a concrete action, explain the evidence behind it and say how to measure success.",
	},
}
