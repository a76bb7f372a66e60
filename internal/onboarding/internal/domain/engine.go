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

var (
	ErrAlreadyAnswered  = errors.New("这一步已经作答，不能修改")
	ErrInvalidOption    = errors.New("选项不存在")
	ErrNoSelection      = errors.New("还没有选择选项")
	ErrSkipNotConfirmed = errors.New("跳过引导需要确认")
	ErrCompleted        = errors.New("引导已经完成")
	ErrNotCompleted     = errors.New("引导还没有完成")
	ErrInvalidProgress  = errors.New("引导进度数据不合法")
)

// Progress 引导进度的快照，用于保存和恢复
type Progress struct {
	Step      int  `json:"step"`
	Completed bool `json:"completed"`
	// key 是步骤序号，value 是选项下标
	Selections map[int]int `json:"selections"`
}

type Feedback struct {
	Selected      int
	Correct       bool
	Text          string
	LearningPoint string
}

// Engine 引导流程的状态机。每一步必须先选择才能继续，选择之后不能修改；
// 第五步之后进入 completed
type Engine struct {
	step       int
	completed  bool
	selections map[int]int
}

func NewEngine() *Engine {
	return &Engine{
		step:       1,
		selections: make(map[int]int, StepCount),
	}
}

// Restore 从快照恢复，快照不合法的时候返回 ErrInvalidProgress
func Restore(p Progress) (*Engine, error) {
	if p.Step < 1 || p.Step > StepCount {
		return nil, fmt.Errorf("%w step: %d", ErrInvalidProgress, p.Step)
	}
	e := NewEngine()
	e.step = p.Step
	e.completed = p.Completed
	for number, option := range p.Selections {
		s, ok := StepAt(number)
		if !ok || option < 0 || option >= len(s.Options) {
			return nil, fmt.Errorf("%w step: %d, option: %d", ErrInvalidProgress, number, option)
		}
		e.selections[number] = option
	}
	return e, nil
}

func (e *Engine) Progress() Progress {
	selections := make(map[int]int, len(e.selections))
	for k, v := range e.selections {
		selections[k] = v
	}
	return Progress{
		Step:       e.step,
		Completed:  e.completed,
		Selections: selections,
	}
}

func (e *Engine) CurrentStep() Step {
	s, _ := StepAt(e.step)
	return s
}

func (e *Engine) Completed() bool {
	return e.completed
}

// Selected 当前步骤选中的选项
func (e *Engine) Selected() (int, bool) {
	if e.completed {
		return 0, false
	}
	option, ok := e.selections[e.step]
	return option, ok
}

func (e *Engine) CanProceed() bool {
	_, ok := e.Selected()
	return ok
}

// Select 只能选择一次
func (e *Engine) Select(option int) (Feedback, error) {
	if e.completed {
		return Feedback{}, ErrCompleted
	}
	if _, ok := e.selections[e.step]; ok {
		return Feedback{}, fmt.Errorf("%w step: %d", ErrAlreadyAnswered, e.step)
	}
	s := e.CurrentStep()
	if option < 0 || option >= len(s.Options) {
		return Feedback{}, fmt.Errorf("%w step: %d, option: %d", ErrInvalidOption, e.step, option)
	}
	e.selections[e.step] = option
	fb, _ := e.Feedback()
	return fb, nil
}

// Feedback 选择之后才会有反馈
func (e *Engine) Feedback() (Feedback, bool) {
	option, ok := e.Selected()
	if !ok {
		return Feedback{}, false
	}
	s := e.CurrentStep()
	fb := Feedback{
		Selected:      option,
		Correct:       s.IsCorrect(option),
		LearningPoint: s.LearningPoint,
	}
	if fb.Correct {
		fb.Text = s.CorrectFeedback
	} else {
		fb.Text = s.IncorrectFeedback
	}
	return fb, true
}

// Next 第五步之后是 completed，不会有第六步
func (e *Engine) Next() error {
	if e.completed {
		return ErrCompleted
	}
	if !e.CanProceed() {
		return fmt.Errorf("%w step: %d", ErrNoSelection, e.step)
	}
	if e.step == StepCount {
		e.completed = true
		return nil
	}
	e.step++
	return nil
}

func (e *Engine) Skip(confirmed bool) error {
	if e.completed {
		return ErrCompleted
	}
	if !confirmed {
		return ErrSkipNotConfirmed
	}
	e.completed = true
	return nil
}

// Restart 回到第一步，之前的选择全部丢弃
func (e *Engine) Restart() error {
	if !e.completed {
		return ErrNotCompleted
	}
	e.step = 1
	e.completed = false
	e.selections = make(map[int]int, StepCount)
	return nil
}
