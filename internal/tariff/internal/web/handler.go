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
	"errors"
	"net/http"

	"github.com/ecodeclub/caselab/internal/tariff/internal/domain"
	"github.com/ecodeclub/caselab/internal/tariff/internal/errs"
	"github.com/ecodeclub/caselab/internal/tariff/internal/event"
	"github.com/ecodeclub/caselab/internal/tariff/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	billing  service.BillingService
	producer event.TariffEventProducer
	logger   *elog.Component
}

func NewHandler(svc service.Service, billing service.BillingService, producer event.TariffEventProducer) *Handler {
	return &Handler{
		svc:      svc,
		billing:  billing,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/check-case-limit", ginx.S(h.CheckCaseLimit))
	server.POST("/tariff/checkout", ginx.BS[CheckoutReq](h.Checkout))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/tariff/list", ginx.W(h.List))
	server.POST("/tariff/webhook", ginx.W(h.Webhook))
}

func (h *Handler) CheckCaseLimit(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	d := h.svc.Check(ctx.Request.Context(), sess.Claims().Uid)
	return ginx.Result{Data: NewUsage(d)}, nil
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	ts, err := h.svc.ListTariffs(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(ts, func(idx int, src domain.Tariff) Tariff {
		return newTariff(src)
	})}, nil
}

func (h *Handler) Checkout(ctx *ginx.Context, req CheckoutReq, sess session.Session) (ginx.Result, error) {
	url, err := h.billing.CreateCheckout(ctx.Request.Context(), sess.Claims().Uid, req.Tariff)
	switch {
	case errors.Is(err, service.ErrUnknownTariff), errors.Is(err, service.ErrNotPurchasable):
		return ginx.Result{Code: errs.UnknownTariff.Code, Msg: errs.UnknownTariff.Msg}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: CheckoutResp{URL: url}}, nil
}

// Webhook Stripe 回调，签名不对返回 400，其余失败返回 500 让 Stripe 重试
func (h *Handler) Webhook(ctx *ginx.Context) (ginx.Result, error) {
	payload, err := ctx.GetRawData()
	if err != nil {
		return h.badRequest(ctx, err)
	}
	ut, ok, err := h.billing.ParseWebhook(payload, ctx.GetHeader("Stripe-Signature"))
	if err != nil {
		return h.badRequest(ctx, err)
	}
	if !ok {
		return ginx.Result{}, nil
	}
	err = h.producer.Produce(ctx.Request.Context(), event.TariffUpdateEvent{
		Uid:            ut.Uid,
		Tariff:         ut.Tariff.Name,
		SubscriptionId: ut.SubscriptionId,
		Status:         string(ut.Status),
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) badRequest(ctx *ginx.Context, err error) (ginx.Result, error) {
	h.logger.Warn("非法的 Stripe 回调", elog.FieldErr(err))
	ctx.JSON(http.StatusBadRequest, ginx.Result{Code: errs.InvalidEvent.Code, Msg: errs.InvalidEvent.Msg})
	return ginx.Result{}, ginx.ErrNoResponse
}
