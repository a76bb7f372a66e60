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
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/ecodeclub/caselab/internal/cases/internal/errs"
	"github.com/ecodeclub/caselab/internal/cases/internal/service"
	casemocks "github.com/ecodeclub/caselab/internal/cases/mocks"
	"github.com/ecodeclub/caselab/internal/tariff"
	tariffmocks "github.com/ecodeclub/caselab/internal/tariff/mocks"
	"github.com/ecodeclub/caselab/internal/test"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = 123

func newServer(hdl *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	hdl.PublicRoutes(server)
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: uid}))
	})
	hdl.PrivateRoutes(server)
	return server
}

var freeUsage = tariff.Usage{
	TariffName:   "free",
	WeeklyUsed:   2,
	WeeklyLimit:  5,
	MonthlyUsed:  2,
	MonthlyLimit: 20,
	ResetDate:    time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
}

var generatedCase = domain.Case{
	Id:          11,
	Uid:         uid,
	Title:       "Coffee Chain",
	Description: "A coffee chain is losing money.",
	CaseType:    domain.CaseType{Id: 2, Name: "Pricing", DifficultyLevel: 5},
}

func TestHandler_GenerateCase(t *testing.T) {
	testCases := []struct {
		name     string
		req      GenerateCaseReq
		mock     func(ctrl *gomock.Controller) (tariff.Service, service.GenerateService)
		wantCode int
		wantBiz  int
	}{
		{
			name: "生成成功并确认额度",
			req:  GenerateCaseReq{CaseTypeId: 2},
			mock: func(ctrl *gomock.Controller) (tariff.Service, service.GenerateService) {
				quota := tariffmocks.NewMockService(ctrl)
				genSvc := casemocks.NewMockGenerateService(ctrl)
				var tid string
				quota.EXPECT().Reserve(gomock.Any(), int64(uid), gomock.Any()).DoAndReturn(
					func(ctx context.Context, uid int64, gotTid string) (tariff.Decision, error) {
						tid = gotTid
						return tariff.QuotaOk{U: freeUsage}, nil
					})
				genSvc.EXPECT().Generate(gomock.Any(), int64(uid), int64(2), gomock.Any()).DoAndReturn(
					func(ctx context.Context, uid, caseTypeId int64, gotTid string) (domain.Case, error) {
						// 预占和生成用同一个 tid
						assert.Equal(t, tid, gotTid)
						return generatedCase, nil
					})
				quota.EXPECT().Confirm(gomock.Any(), int64(uid), gomock.Any()).DoAndReturn(
					func(ctx context.Context, uid int64, gotTid string) error {
						assert.Equal(t, tid, gotTid)
						return nil
					})
				return quota, genSvc
			},
			wantCode: http.StatusOK,
		},
		{
			name: "额度用完不调用生成",
			mock: func(ctrl *gomock.Controller) (tariff.Service, service.GenerateService) {
				quota := tariffmocks.NewMockService(ctrl)
				u := freeUsage
				u.WeeklyUsed = 5
				quota.EXPECT().Reserve(gomock.Any(), int64(uid), gomock.Any()).
					Return(tariff.QuotaDenied{U: u, Reason: tariff.ReasonWeeklyLimit}, nil)
				return quota, casemocks.NewMockGenerateService(ctrl)
			},
			wantCode: http.StatusTooManyRequests,
			wantBiz:  errs.QuotaExceeded.Code,
		},
		{
			name: "生成失败释放额度",
			mock: func(ctrl *gomock.Controller) (tariff.Service, service.GenerateService) {
				quota := tariffmocks.NewMockService(ctrl)
				genSvc := casemocks.NewMockGenerateService(ctrl)
				quota.EXPECT().Reserve(gomock.Any(), int64(uid), gomock.Any()).
					Return(tariff.QuotaOk{U: freeUsage}, nil)
				genSvc.EXPECT().Generate(gomock.Any(), int64(uid), int64(0), gomock.Any()).
					Return(domain.Case{}, fmt.Errorf("%w: %w", service.ErrGenerationFailed, context.DeadlineExceeded))
				quota.EXPECT().Cancel(gomock.Any(), int64(uid), gomock.Any()).Return(nil)
				return quota, genSvc
			},
			wantCode: http.StatusBadGateway,
			wantBiz:  errs.GenerationFailed.Code,
		},
		{
			name: "类型不存在释放额度",
			req:  GenerateCaseReq{CaseTypeId: 100},
			mock: func(ctrl *gomock.Controller) (tariff.Service, service.GenerateService) {
				quota := tariffmocks.NewMockService(ctrl)
				genSvc := casemocks.NewMockGenerateService(ctrl)
				quota.EXPECT().Reserve(gomock.Any(), int64(uid), gomock.Any()).
					Return(tariff.QuotaOk{U: freeUsage}, nil)
				genSvc.EXPECT().Generate(gomock.Any(), int64(uid), int64(100), gomock.Any()).
					Return(domain.Case{}, service.ErrCaseTypeNotFound)
				quota.EXPECT().Cancel(gomock.Any(), int64(uid), gomock.Any()).Return(nil)
				return quota, genSvc
			},
			wantCode: http.StatusNotFound,
			wantBiz:  errs.CaseTypeNotFound.Code,
		},
		{
			name: "没有可用类型",
			mock: func(ctrl *gomock.Controller) (tariff.Service, service.GenerateService) {
				quota := tariffmocks.NewMockService(ctrl)
				genSvc := casemocks.NewMockGenerateService(ctrl)
				quota.EXPECT().Reserve(gomock.Any(), int64(uid), gomock.Any()).
					Return(tariff.QuotaOk{U: freeUsage}, nil)
				genSvc.EXPECT().Generate(gomock.Any(), int64(uid), int64(0), gomock.Any()).
					Return(domain.Case{}, service.ErrNoCaseType)
				quota.EXPECT().Cancel(gomock.Any(), int64(uid), gomock.Any()).Return(nil)
				return quota, genSvc
			},
			wantCode: http.StatusServiceUnavailable,
			wantBiz:  errs.NoCaseType.Code,
		},
		{
			name: "保存失败",
			mock: func(ctrl *gomock.Controller) (tariff.Service, service.GenerateService) {
				quota := tariffmocks.NewMockService(ctrl)
				genSvc := casemocks.NewMockGenerateService(ctrl)
				quota.EXPECT().Reserve(gomock.Any(), int64(uid), gomock.Any()).
					Return(tariff.QuotaOk{U: freeUsage}, nil)
				genSvc.EXPECT().Generate(gomock.Any(), int64(uid), int64(0), gomock.Any()).
					Return(domain.Case{}, fmt.Errorf("%w: %w", service.ErrStorageFailed, errors.New("mock db error")))
				quota.EXPECT().Cancel(gomock.Any(), int64(uid), gomock.Any()).Return(nil)
				return quota, genSvc
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "兜底放行不确认额度",
			mock: func(ctrl *gomock.Controller) (tariff.Service, service.GenerateService) {
				quota := tariffmocks.NewMockService(ctrl)
				genSvc := casemocks.NewMockGenerateService(ctrl)
				u := freeUsage
				u.Fallback = true
				quota.EXPECT().Reserve(gomock.Any(), int64(uid), gomock.Any()).
					Return(tariff.QuotaOk{U: u}, nil)
				genSvc.EXPECT().Generate(gomock.Any(), int64(uid), int64(0), gomock.Any()).
					Return(generatedCase, nil)
				return quota, genSvc
			},
			wantCode: http.StatusOK,
		},
		{
			name: "确认失败仍然返回案例",
			mock: func(ctrl *gomock.Controller) (tariff.Service, service.GenerateService) {
				quota := tariffmocks.NewMockService(ctrl)
				genSvc := casemocks.NewMockGenerateService(ctrl)
				quota.EXPECT().Reserve(gomock.Any(), int64(uid), gomock.Any()).
					Return(tariff.QuotaOk{U: freeUsage}, nil)
				genSvc.EXPECT().Generate(gomock.Any(), int64(uid), int64(0), gomock.Any()).
					Return(generatedCase, nil)
				quota.EXPECT().Confirm(gomock.Any(), int64(uid), gomock.Any()).Return(errors.New("mock error"))
				return quota, genSvc
			},
			wantCode: http.StatusOK,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			quota, genSvc := tc.mock(ctrl)
			server := newServer(NewHandler(nil, genSvc, nil, nil, quota))

			req, err := http.NewRequest(http.MethodPost, "/generate-case", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Case]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode == http.StatusInternalServerError {
				return
			}
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, res.Code)
			if tc.wantCode == http.StatusOK {
				assert.Equal(t, newCase(generatedCase), res.Data)
			}
		})
	}
}

func TestHandler_GenerateCaseDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quota := tariffmocks.NewMockService(ctrl)
	u := freeUsage
	u.MonthlyUsed = 20
	quota.EXPECT().Reserve(gomock.Any(), int64(uid), gomock.Any()).
		Return(tariff.QuotaDenied{U: u, Reason: tariff.ReasonMonthlyLimit}, nil)
	server := newServer(NewHandler(nil, casemocks.NewMockGenerateService(ctrl), nil, nil, quota))

	req, err := http.NewRequest(http.MethodPost, "/generate-case", bytes.NewBufferString(`{}`))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[tariff.UsageVO]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusTooManyRequests, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, errs.QuotaExceeded.Code, res.Code)
	assert.Equal(t, "Case generation limit reached on the free plan. Your quota resets on 2026-10-19.", res.Msg)
	assert.Equal(t, tariff.NewUsageVO(tariff.QuotaDenied{U: u, Reason: tariff.ReasonMonthlyLimit}), res.Data)
}

func TestHandler_SubmitResponse(t *testing.T) {
	elapsed := int64(420)
	text := strings.Repeat("a", 60)
	testCases := []struct {
		name     string
		req      SubmitResponseReq
		mock     func(ctrl *gomock.Controller) service.ResponseService
		wantCode int
		wantBiz  int
		wantData UserResponse
	}{
		{
			name: "提交成功",
			req:  SubmitResponseReq{CaseId: 11, ResponseText: text, TimeSpentSeconds: &elapsed, RequestKey: "k1"},
			mock: func(ctrl *gomock.Controller) service.ResponseService {
				svc := casemocks.NewMockResponseService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), domain.Submission{
					Uid: uid, CaseId: 11, Text: text, ElapsedSeconds: &elapsed, RequestKey: "k1",
				}).Return(domain.UserResponse{Id: 3, CaseId: 11, TimeSpentSeconds: 420}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantData: UserResponse{Id: 3, CaseId: 11, TimeSpentSeconds: 420},
		},
		{
			name: "没有计时",
			req:  SubmitResponseReq{CaseId: 11, ResponseText: text},
			mock: func(ctrl *gomock.Controller) service.ResponseService {
				svc := casemocks.NewMockResponseService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), domain.Submission{Uid: uid, CaseId: 11, Text: text}).
					Return(domain.UserResponse{Id: 4, CaseId: 11, TimeSpentSeconds: 60, TimeEstimated: true}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantData: UserResponse{Id: 4, CaseId: 11, TimeSpentSeconds: 60, TimeEstimated: true},
		},
		{
			name: "太短",
			req:  SubmitResponseReq{CaseId: 11, ResponseText: "short"},
			mock: func(ctrl *gomock.Controller) service.ResponseService {
				svc := casemocks.NewMockResponseService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.UserResponse{}, service.ErrResponseTooShort)
				return svc
			},
			wantCode: http.StatusBadRequest,
			wantBiz:  errs.ResponseTooShort.Code,
		},
		{
			name: "太长",
			req:  SubmitResponseReq{CaseId: 11, ResponseText: text},
			mock: func(ctrl *gomock.Controller) service.ResponseService {
				svc := casemocks.NewMockResponseService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.UserResponse{}, service.ErrResponseTooLong)
				return svc
			},
			wantCode: http.StatusBadRequest,
			wantBiz:  errs.ResponseTooLong.Code,
		},
		{
			name: "用时非法",
			req:  SubmitResponseReq{CaseId: 11, ResponseText: text},
			mock: func(ctrl *gomock.Controller) service.ResponseService {
				svc := casemocks.NewMockResponseService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.UserResponse{}, service.ErrInvalidElapsed)
				return svc
			},
			wantCode: http.StatusBadRequest,
			wantBiz:  errs.InvalidElapsed.Code,
		},
		{
			name: "案例不存在",
			req:  SubmitResponseReq{CaseId: 12, ResponseText: text},
			mock: func(ctrl *gomock.Controller) service.ResponseService {
				svc := casemocks.NewMockResponseService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.UserResponse{}, service.ErrCaseNotFound)
				return svc
			},
			wantCode: http.StatusNotFound,
			wantBiz:  errs.CaseNotFound.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(NewHandler(nil, nil, tc.mock(ctrl), nil, nil))

			req, err := http.NewRequest(http.MethodPost, "/submit-response", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[UserResponse]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}

func TestHandler_AssessResponse(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.AssessmentService
		wantCode int
		wantBiz  int
		wantData Assessment
	}{
		{
			name: "评估成功",
			mock: func(ctrl *gomock.Controller) service.AssessmentService {
				svc := casemocks.NewMockAssessmentService(ctrl)
				svc.EXPECT().Assess(gomock.Any(), int64(uid), int64(11), int64(3)).Return(domain.Assessment{
					Id:         5,
					ResponseId: 3,
					CaseId:     11,
					Scores: map[domain.Dimension]float64{
						domain.DimensionProblemStructuring: 8,
						domain.DimensionCommunication:      6,
					},
					Total:    7,
					Feedback: "Good",
				}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantData: Assessment{
				Id:             5,
				CaseId:         11,
				UserResponseId: 3,
				Scores: map[string]float64{
					"problem_structuring": 8,
					"communication":       6,
				},
				TotalScore:       7,
				Feedback:         "Good",
				ImprovementAreas: []string{},
			},
		},
		{
			name: "回答不存在",
			mock: func(ctrl *gomock.Controller) service.AssessmentService {
				svc := casemocks.NewMockAssessmentService(ctrl)
				svc.EXPECT().Assess(gomock.Any(), int64(uid), int64(11), int64(3)).
					Return(domain.Assessment{}, service.ErrResponseNotFound)
				return svc
			},
			wantCode: http.StatusNotFound,
			wantBiz:  errs.ResponseNotFound.Code,
		},
		{
			name: "LLM 评估失败",
			mock: func(ctrl *gomock.Controller) service.AssessmentService {
				svc := casemocks.NewMockAssessmentService(ctrl)
				svc.EXPECT().Assess(gomock.Any(), int64(uid), int64(11), int64(3)).
					Return(domain.Assessment{}, fmt.Errorf("%w: %w", service.ErrAssessmentFailed, errors.New("bad json")))
				return svc
			},
			wantCode: http.StatusBadGateway,
			wantBiz:  errs.AssessmentFailed.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(NewHandler(nil, nil, nil, tc.mock(ctrl), nil))

			req, err := http.NewRequest(http.MethodPost, "/assess-response",
				iox.NewJSONReader(AssessResponseReq{CaseId: 11, UserResponseId: 3}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Assessment]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}

func TestHandler_CaseTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := casemocks.NewMockService(ctrl)
	svc.EXPECT().ListActiveCaseTypes(gomock.Any()).Return([]domain.CaseType{
		{Id: 1, Name: "Market Entry", DifficultyLevel: 4, Description: "desc", Status: domain.CaseTypeStatusActive},
		{Id: 2, Name: "Turnaround", DifficultyLevel: 12},
	}, nil)
	server := newServer(NewHandler(svc, nil, nil, nil, nil))

	req, err := http.NewRequest(http.MethodGet, "/case-types", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[[]CaseType]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []CaseType{
		{Id: 1, Name: "Market Entry", DifficultyLevel: 4, Description: "desc"},
		{Id: 2, Name: "Turnaround", DifficultyLevel: 12},
	}, recorder.MustScan().Data)
}
