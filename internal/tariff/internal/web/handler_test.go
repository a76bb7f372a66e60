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
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/caselab/internal/tariff/internal/domain"
	"github.com/ecodeclub/caselab/internal/tariff/internal/errs"
	"github.com/ecodeclub/caselab/internal/tariff/internal/event"
	evtmocks "github.com/ecodeclub/caselab/internal/tariff/internal/event/mocks"
	"github.com/ecodeclub/caselab/internal/tariff/internal/service"
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

func TestHandler_CheckCaseLimit(t *testing.T) {
	resetDate := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name     string
		decision domain.Decision
		wantResp Usage
	}{
		{
			name: "可以生成",
			decision: domain.QuotaOk{U: domain.Usage{
				TariffName:   domain.TariffFree,
				WeeklyUsed:   1,
				WeeklyLimit:  5,
				MonthlyUsed:  7,
				MonthlyLimit: 20,
				ResetDate:    resetDate,
			}},
			wantResp: Usage{
				CanGenerate:        true,
				CasesUsedThisWeek:  1,
				WeeklyLimit:        5,
				CasesUsedThisMonth: 7,
				MonthlyLimit:       20,
				TariffName:         domain.TariffFree,
				ResetDate:          "2026-10-19",
			},
		},
		{
			name: "周额度用完",
			decision: domain.QuotaDenied{U: domain.Usage{
				TariffName:   domain.TariffFree,
				WeeklyUsed:   5,
				WeeklyLimit:  5,
				MonthlyUsed:  5,
				MonthlyLimit: 20,
				ResetDate:    resetDate,
			}, Reason: domain.ReasonWeeklyLimit},
			wantResp: Usage{
				CasesUsedThisWeek:  5,
				WeeklyLimit:        5,
				CasesUsedThisMonth: 5,
				MonthlyLimit:       20,
				TariffName:         domain.TariffFree,
				ResetDate:          "2026-10-19",
				Reason:             "weekly_limit_reached",
			},
		},
		{
			name: "不限",
			decision: domain.QuotaOk{U: domain.Usage{
				TariffName:   domain.TariffUnlimited,
				WeeklyUsed:   300,
				WeeklyLimit:  domain.Unbounded,
				MonthlyUsed:  900,
				MonthlyLimit: domain.Unbounded,
				ResetDate:    resetDate,
			}},
			wantResp: Usage{
				CanGenerate:        true,
				CasesUsedThisWeek:  300,
				WeeklyLimit:        -1,
				CasesUsedThisMonth: 900,
				MonthlyLimit:       -1,
				TariffName:         domain.TariffUnlimited,
				ResetDate:          "2026-10-19",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := tariffmocks.NewMockService(ctrl)
			svc.EXPECT().Check(gomock.Any(), int64(uid)).Return(tc.decision)
			server := newServer(NewHandler(svc, nil, nil))

			req, err := http.NewRequest(http.MethodGet, "/check-case-limit", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Usage]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan().Data)
		})
	}
}

func TestHandler_Webhook(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (service.BillingService, event.TariffEventProducer)
		wantCode int
	}{
		{
			name: "订阅变更",
			mock: func(ctrl *gomock.Controller) (service.BillingService, event.TariffEventProducer) {
				billing := tariffmocks.NewMockBillingService(ctrl)
				billing.EXPECT().ParseWebhook([]byte(`{"id":"evt_1"}`), "t=1,v1=abc").
					Return(domain.UserTariff{
						Uid:            12,
						Tariff:         domain.Tariff{Name: domain.TariffPro},
						SubscriptionId: "sub_1",
						Status:         domain.SubscriptionActive,
					}, true, nil)
				producer := evtmocks.NewMockTariffEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), event.TariffUpdateEvent{
					Uid:            12,
					Tariff:         domain.TariffPro,
					SubscriptionId: "sub_1",
					Status:         "active",
				}).Return(nil)
				return billing, producer
			},
			wantCode: http.StatusOK,
		},
		{
			name: "不关心的事件",
			mock: func(ctrl *gomock.Controller) (service.BillingService, event.TariffEventProducer) {
				billing := tariffmocks.NewMockBillingService(ctrl)
				billing.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
					Return(domain.UserTariff{}, false, nil)
				return billing, evtmocks.NewMockTariffEventProducer(ctrl)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "签名错误",
			mock: func(ctrl *gomock.Controller) (service.BillingService, event.TariffEventProducer) {
				billing := tariffmocks.NewMockBillingService(ctrl)
				billing.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
					Return(domain.UserTariff{}, false, service.ErrInvalidSignature)
				return billing, evtmocks.NewMockTariffEventProducer(ctrl)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "发送事件失败",
			mock: func(ctrl *gomock.Controller) (service.BillingService, event.TariffEventProducer) {
				billing := tariffmocks.NewMockBillingService(ctrl)
				billing.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
					Return(domain.UserTariff{Uid: 12, Tariff: domain.Tariff{Name: domain.TariffPro}}, true, nil)
				producer := evtmocks.NewMockTariffEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				return billing, producer
			},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			billing, producer := tc.mock(ctrl)
			server := newServer(NewHandler(tariffmocks.NewMockService(ctrl), billing, producer))
			req, err := http.NewRequest(http.MethodPost, "/tariff/webhook", bytes.NewBufferString(`{"id":"evt_1"}`))
			require.NoError(t, err)
			req.Header.Set("Stripe-Signature", "t=1,v1=abc")
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestHandler_Checkout(t *testing.T) {
	testCases := []struct {
		name     string
		tariff   string
		mock     func(ctrl *gomock.Controller) service.BillingService
		wantCode int
		wantResp test.Result[CheckoutResp]
	}{
		{
			name:   "成功",
			tariff: domain.TariffPro,
			mock: func(ctrl *gomock.Controller) service.BillingService {
				billing := tariffmocks.NewMockBillingService(ctrl)
				billing.EXPECT().CreateCheckout(gomock.Any(), int64(uid), domain.TariffPro).
					Return("https://checkout.stripe.com/c/pay/cs_test", nil)
				return billing
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[CheckoutResp]{
				Data: CheckoutResp{URL: "https://checkout.stripe.com/c/pay/cs_test"},
			},
		},
		{
			name:   "免费套餐不能购买",
			tariff: domain.TariffFree,
			mock: func(ctrl *gomock.Controller) service.BillingService {
				billing := tariffmocks.NewMockBillingService(ctrl)
				billing.EXPECT().CreateCheckout(gomock.Any(), int64(uid), domain.TariffFree).
					Return("", service.ErrNotPurchasable)
				return billing
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[CheckoutResp]{
				Code: errs.UnknownTariff.Code,
				Msg:  errs.UnknownTariff.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			server := newServer(NewHandler(tariffmocks.NewMockService(ctrl), tc.mock(ctrl), nil))
			req, err := http.NewRequest(http.MethodPost, "/tariff/checkout", iox.NewJSONReader(CheckoutReq{Tariff: tc.tariff}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[CheckoutResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := tariffmocks.NewMockService(ctrl)
	svc.EXPECT().ListTariffs(gomock.Any()).Return(domain.DefaultTariffs(), nil)
	server := newServer(NewHandler(svc, nil, nil))
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "/tariff/list", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[[]Tariff]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []Tariff{
		{Name: "free", WeeklyLimit: 5, MonthlyLimit: 20},
		{Name: "pro", WeeklyLimit: 25, MonthlyLimit: 100, Purchasable: true},
		{Name: "unlimited", WeeklyLimit: -1, MonthlyLimit: -1, Purchasable: true},
	}, recorder.MustScan().Data)
}
