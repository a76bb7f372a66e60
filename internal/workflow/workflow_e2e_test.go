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

package workflow_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecodeclub/caselab/internal/ai"
	aimocks "github.com/ecodeclub/caselab/internal/ai/mocks"
	"github.com/ecodeclub/caselab/internal/cases"
	"github.com/ecodeclub/caselab/internal/tariff"
	"github.com/ecodeclub/caselab/internal/test"
	testioc "github.com/ecodeclub/caselab/internal/test/ioc"
	"github.com/ecodeclub/caselab/internal/workflow"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	freshUid     = int64(1)
	exhaustedUid = int64(2)
)

var tokens = map[string]int64{
	"token-1": freshUid,
	"token-2": exhaustedUid,
}

// WorkflowE2ETestSuite 真实的 tariff 和 cases 模块，只有 LLM 是 mock 的
type WorkflowE2ETestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	quota  tariff.Service
	server *httptest.Server
}

func (s *WorkflowE2ETestSuite) SetupSuite() {
	t := s.T()
	// tariff 模块初始化需要 stripe 和 tariff 的配置
	testioc.LoadConfig()
	session.SetDefaultProvider(&test.SessionProvider{})
	db := testioc.InitSQLite(t)
	s.ctrl = gomock.NewController(t)
	llm := aimocks.NewMockService(s.ctrl)
	llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
			// 额度用完的用户不应该走到生成
			assert.Equal(t, freshUid, req.Uid)
			switch req.Biz {
			case ai.BizCaseGenerate:
				return ai.LLMResponse{Answer: fmt.Sprintf(
					`{"title": "%s case", "description": "A client asks for help."}`, req.Input[0])}, nil
			case ai.BizCaseAssess:
				return ai.LLMResponse{Answer: "```json\n" + `{"scores": {"problem_structuring": 8,
"analytical_rigor": 7, "strategic_thinking": 6, "recommendation_quality": 7, "communication": 9},
"feedback": "Well structured.", "improvement_areas": ["Quantify the upside"]}` + "\n```"}, nil
			}
			return ai.LLMResponse{}, fmt.Errorf("unknown biz %s", req.Biz)
		}).AnyTimes()

	tariffModule, err := tariff.InitModule(db, testioc.InitMQ())
	require.NoError(t, err)
	s.quota = tariffModule.Svc
	casesModule, err := cases.InitModule(db, &ai.Module{Svc: llm}, tariffModule)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		uid, ok := tokens[strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")]
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: uid}))
	})
	tariffModule.Hdl.PrivateRoutes(server)
	casesModule.Hdl.PrivateRoutes(server)
	s.server = httptest.NewServer(server)
}

func (s *WorkflowE2ETestSuite) TearDownSuite() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *WorkflowE2ETestSuite) TestFullCycle() {
	t := s.T()
	ctx := context.Background()
	m := workflow.NewMachine(workflow.NewHTTPBackend(s.server.URL), workflow.Session{Uid: freshUid, Token: "token-1"})

	c, err := m.GenerateCase(ctx, 0)
	require.NoError(t, err)
	assert.True(t, c.Id > 0)
	assert.Equal(t, c.CaseType.Name+" case", c.Title)
	assert.Equal(t, workflow.StateCase, m.State())

	require.NoError(t, m.BeginResponse())
	a, err := m.Submit(ctx, strings.Repeat("r", 60))
	require.NoError(t, err)
	assert.Equal(t, workflow.StateAssessment, m.State())
	assert.Len(t, a.Scores, 5)
	assert.Equal(t, 7.4, a.TotalScore)
	assert.Equal(t, []string{"Quantify the upside"}, a.ImprovementAreas)

	// 生成成功之后额度已经确认
	d := s.quota.Check(ctx, freshUid)
	assert.True(t, d.Allowed())
	assert.Equal(t, int64(1), d.Usage().WeeklyUsed)

	require.NoError(t, m.Reset())
	assert.Equal(t, workflow.StateStart, m.State())
}

func (s *WorkflowE2ETestSuite) TestQuotaExhausted() {
	t := s.T()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		tid := fmt.Sprintf("seed-%d", i)
		d, err := s.quota.Reserve(ctx, exhaustedUid, tid)
		require.NoError(t, err)
		require.True(t, d.Allowed())
		require.NoError(t, s.quota.Confirm(ctx, exhaustedUid, tid))
	}

	m := workflow.NewMachine(workflow.NewHTTPBackend(s.server.URL), workflow.Session{Uid: exhaustedUid, Token: "token-2"})
	_, err := m.GenerateCase(ctx, 0)
	var ue *workflow.UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, workflow.KindQuota, ue.Kind)
	assert.Contains(t, ue.Message, "on the free plan")
	assert.Equal(t, workflow.StateStart, m.State())
}

func (s *WorkflowE2ETestSuite) TestUnauthorized() {
	t := s.T()
	m := workflow.NewMachine(workflow.NewHTTPBackend(s.server.URL), workflow.Session{Uid: 9, Token: "expired"})
	_, err := m.GenerateCase(context.Background(), 0)
	var ue *workflow.UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, workflow.KindAuth, ue.Kind)
	assert.Equal(t, workflow.StateFailed, m.State())
}

func TestWorkflowE2E(t *testing.T) {
	suite.Run(t, new(WorkflowE2ETestSuite))
}
