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

	"github.com/ecodeclub/caselab/internal/onboarding/internal/domain"
	"github.com/ecodeclub/caselab/internal/onboarding/internal/errs"
	"github.com/ecodeclub/caselab/internal/onboarding/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/onboarding/steps", ginx.W(h.Steps))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/onboarding")
	g.GET("/state", ginx.S(h.State))
	g.POST("/select", ginx.BS[SelectReq](h.Select))
	g.POST("/next", ginx.S(h.Next))
	g.POST("/skip", ginx.BS[SkipReq](h.Skip))
	g.POST("/restart", ginx.S(h.Restart))
}

func (h *Handler) Steps(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{Data: slice.Map(domain.Steps(), func(idx int, src domain.Step) StepSummary {
		return newStepSummary(src)
	})}, nil
}

func (h *Handler) State(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	e, err := h.svc.State(ctx.Request.Context(), sess.Claims().Uid)
	return h.result(e, err)
}

func (h *Handler) Select(ctx *ginx.Context, req SelectReq, sess session.Session) (ginx.Result, error) {
	e, err := h.svc.Select(ctx.Request.Context(), sess.Claims().Uid, req.Option)
	return h.result(e, err)
}

func (h *Handler) Next(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	e, err := h.svc.Next(ctx.Request.Context(), sess.Claims().Uid)
	return h.result(e, err)
}

func (h *Handler) Skip(ctx *ginx.Context, req SkipReq, sess session.Session) (ginx.Result, error) {
	e, err := h.svc.Skip(ctx.Request.Context(), sess.Claims().Uid, req.Confirmed)
	return h.result(e, err)
}

func (h *Handler) Restart(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	e, err := h.svc.Restart(ctx.Request.Context(), sess.Claims().Uid)
	return h.result(e, err)
}

// result 业务错误的时候同样返回当前进度，前端直接刷新即可
func (h *Handler) result(e *domain.Engine, err error) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case err == nil:
		return ginx.Result{Data: newProgress(e)}, nil
	case errors.Is(err, domain.ErrAlreadyAnswered):
		code = errs.AlreadyAnswered
	case errors.Is(err, domain.ErrInvalidOption):
		code = errs.InvalidOption
	case errors.Is(err, domain.ErrNoSelection):
		code = errs.NoSelection
	case errors.Is(err, domain.ErrSkipNotConfirmed):
		code = errs.SkipNotConfirmed
	case errors.Is(err, domain.ErrCompleted):
		code = errs.Completed
	case errors.Is(err, domain.ErrNotCompleted):
		code = errs.NotCompleted
	default:
		return ginx.Result{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg}, err
	}
	res := ginx.Result{Code: code.Code, Msg: code.Msg}
	if e != nil {
		res.Data = newProgress(e)
	}
	return res, nil
}
