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

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

const (
	MinResponseLength = 50
	MaxResponseLength = 10000
)

type State uint8

const (
	StateStart State = iota
	StateCase
	StateResponse
	StateAssessment
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateCase:
		return "case"
	case StateResponse:
		return "response"
	case StateAssessment:
		return "assessment"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Machine 一个用户一次练习的流程：生成案例、作答、评估。
// 同一时间只允许一个请求在执行，并发调用会拿到 ErrBusy
type Machine struct {
	backend Backend
	sess    Session
	policy  RetryPolicy
	now     func() time.Time
	newKey  func() string
	logger  *elog.Component

	mu    sync.Mutex
	busy  bool
	state State

	current    Case
	startedAt  time.Time
	assessment Assessment

	submitted *ResponseRef
	// submitted 对应的回答，评估失败后再次提交相同内容的时候直接复用
	submittedText string
	// 提交失败的时候服务端可能已经保存了，相同内容重试要带上同一个 key
	pendingKey  string
	pendingText string
}

type Option func(m *Machine)

func WithRetryPolicy(p RetryPolicy) Option {
	return func(m *Machine) {
		m.policy = p
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

func WithRequestKeyGenerator(fn func() string) Option {
	return func(m *Machine) {
		m.newKey = fn
	}
}

func NewMachine(backend Backend, sess Session, opts ...Option) *Machine {
	m := &Machine{
		backend: backend,
		sess:    sess,
		policy:  DefaultRetryPolicy(),
		now:     time.Now,
		newKey:  shortuuid.New,
		logger:  elog.DefaultLogger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) Case() Case {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Machine) Assessment() Assessment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.assessment
}

// acquire 检查状态并且占用 Machine，调用方必须调用 release
func (m *Machine) acquire(allowed ...State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return ErrBusy
	}
	for _, s := range allowed {
		if m.state == s {
			m.busy = true
			return nil
		}
	}
	return fmt.Errorf("%w state: %s", ErrInvalidTransition, m.state)
}

func (m *Machine) release(update func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if update != nil {
		update()
	}
	m.busy = false
}

// GenerateCase 先查询额度，额度不够直接返回，不会调用生成接口。
// 生成遇到网络错误会按照 RetryPolicy 重试
func (m *Machine) GenerateCase(ctx context.Context, caseTypeId int64) (Case, error) {
	if err := m.acquire(StateStart, StateFailed); err != nil {
		return Case{}, err
	}
	usage, err := m.backend.CheckLimit(ctx, m.sess)
	if err != nil {
		m.logger.Error("查询额度失败", elog.FieldErr(err), elog.Int64("uid", m.sess.Uid))
		m.release(func() { m.state = StateFailed })
		return Case{}, toUserError(err)
	}
	if !usage.CanGenerate {
		m.release(func() { m.state = StateStart })
		return Case{}, quotaError(usage)
	}

	c, err := Retry(ctx, m.policy, func(ctx context.Context) (Case, error) {
		c, err := m.backend.GenerateCase(ctx, m.sess, caseTypeId)
		if err != nil {
			m.logger.Warn("生成案例失败", elog.FieldErr(err), elog.Int64("uid", m.sess.Uid))
		}
		return c, err
	})
	if err != nil {
		m.release(func() { m.state = StateFailed })
		return Case{}, toUserError(err)
	}
	m.release(func() {
		m.current = c
		m.submitted = nil
		m.submittedText = ""
		m.pendingKey, m.pendingText = "", ""
		m.state = StateCase
	})
	return c, nil
}

// BeginResponse 开始作答，同时开始计时
func (m *Machine) BeginResponse() error {
	if err := m.acquire(StateCase); err != nil {
		return err
	}
	m.release(func() {
		m.startedAt = m.now()
		m.state = StateResponse
	})
	return nil
}

// Submit 校验通过之后提交回答并且请求评估。
// 任何一步失败都停留在 response 状态，用户可以再次提交
func (m *Machine) Submit(ctx context.Context, text string) (Assessment, error) {
	if err := m.acquire(StateResponse); err != nil {
		return Assessment{}, err
	}
	if err := validateResponse(text); err != nil {
		m.release(nil)
		return Assessment{}, err
	}

	m.mu.Lock()
	c, ref, startedAt := m.current, m.submitted, m.startedAt
	reuse := ref != nil && m.submittedText == text
	key := m.pendingKey
	if m.pendingText != text {
		key = ""
	}
	m.mu.Unlock()

	if !reuse {
		if key == "" {
			key = m.newKey()
		}
		elapsed := int64(m.now().Sub(startedAt) / time.Second)
		r, err := m.backend.SubmitResponse(ctx, m.sess, SubmitRequest{
			CaseId:           c.Id,
			ResponseText:     text,
			TimeSpentSeconds: &elapsed,
			RequestKey:       key,
		})
		if err != nil {
			m.logger.Error("提交回答失败", elog.FieldErr(err), elog.Int64("uid", m.sess.Uid), elog.Int64("cid", c.Id))
			m.release(func() {
				m.pendingKey, m.pendingText = key, text
			})
			return Assessment{}, toUserError(err)
		}
		ref = &r
	}

	a, err := m.backend.AssessResponse(ctx, m.sess, c.Id, ref.Id)
	if err != nil {
		m.logger.Error("评估回答失败", elog.FieldErr(err), elog.Int64("uid", m.sess.Uid), elog.Int64("rid", ref.Id))
		m.release(func() {
			m.submitted = ref
			m.submittedText = text
			m.pendingKey, m.pendingText = "", ""
		})
		return Assessment{}, toUserError(err)
	}
	m.release(func() {
		m.submitted = ref
		m.submittedText = text
		m.pendingKey, m.pendingText = "", ""
		m.assessment = a
		m.state = StateAssessment
	})
	return a, nil
}

// Reset 开始新的一轮
func (m *Machine) Reset() error {
	if err := m.acquire(StateAssessment, StateFailed); err != nil {
		return err
	}
	m.release(func() {
		m.current = Case{}
		m.submitted = nil
		m.submittedText = ""
		m.pendingKey, m.pendingText = "", ""
		m.assessment = Assessment{}
		m.startedAt = time.Time{}
		m.state = StateStart
	})
	return nil
}

func validateResponse(text string) error {
	l := utf8.RuneCountInString(strings.TrimSpace(text))
	if l < MinResponseLength {
		return &UserError{
			Kind:    KindValidation,
			Message: fmt.Sprintf("Your response must be at least %d characters (currently %d).", MinResponseLength, l),
		}
	}
	if l > MaxResponseLength {
		return &UserError{
			Kind:    KindValidation,
			Message: fmt.Sprintf("Your response must be at most %d characters (currently %d).", MaxResponseLength, l),
		}
	}
	return nil
}
