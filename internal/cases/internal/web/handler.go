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
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/ecodeclub/caselab/internal/cases/internal/errs"
	"github.com/ecodeclub/caselab/internal/cases/internal/service"
	"github.com/ecodeclub/caselab/internal/tariff"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc       service.Service
	genSvc    service.GenerateService
	respSvc   service.ResponseService
	assessSvc service.AssessmentService
	quota     tariff.Service
	logger    *elog.Component
}

func NewHandler(svc service.Service,
	genSvc service.GenerateService,
	respSvc service.ResponseService,
	assessSvc service.AssessmentService,
	quota tariff.Service) *Handler {
	return &Handler{
		svc:       svc,
		genSvc:    genSvc,
		respSvc:   respSvc,
		assessSvc: assessSvc,
		quota:     quota,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/generate-case", ginx.BS[GenerateCaseReq](h.GenerateCase))
	server.POST("/submit-response", ginx.BS[SubmitResponseReq](h.SubmitResponse))
	server.POST("/assess-response", ginx.BS[AssessResponseReq](h.AssessResponse))
	server.GET("/case-types", ginx.W(h.CaseTypes))
}

// GenerateCase 先预占额度，生成成功确认，失败释放。额度不够的时候不会调用 LLM
func (h *Handler) GenerateCase(ctx *ginx.Context, req GenerateCaseReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	tid := shortuuid.New()
	decision, err := h.quota.Reserve(ctx.Request.Context(), uid, tid)
	if err != nil {
		return systemErrorResult, err
	}
	if denied, ok := decision.(tariff.QuotaDenied); ok {
		u := denied.Usage()
		return h.abort(ctx, http.StatusTooManyRequests, ginx.Result{
			Code: errs.QuotaExceeded.Code,
			Msg: fmt.Sprintf("%s on the %s plan. Your quota resets on %s.",
				errs.QuotaExceeded.Msg, u.TariffName, u.ResetDate.Format(time.DateOnly)),
			Data: tariff.NewUsageVO(decision),
		})
	}

	c, err := h.genSvc.Generate(ctx.Request.Context(), uid, req.CaseTypeId, tid)
	if err != nil {
		h.release(ctx.Request.Context(), decision, uid, tid)
		return h.generateError(ctx, err)
	}
	h.confirm(ctx.Request.Context(), decision, uid, tid)
	return ginx.Result{Data: newCase(c)}, nil
}

func (h *Handler) generateError(ctx *ginx.Context, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrCaseTypeNotFound):
		return h.abort(ctx, http.StatusNotFound, codeResult(errs.CaseTypeNotFound))
	case errors.Is(err, service.ErrNoCaseType):
		h.logger.Error("没有可用的案例类型", elog.FieldErr(err))
		return h.abort(ctx, http.StatusServiceUnavailable, codeResult(errs.NoCaseType))
	case errors.Is(err, service.ErrGenerationFailed):
		h.logger.Error("生成案例失败", elog.FieldErr(err))
		return h.abort(ctx, http.StatusBadGateway, codeResult(errs.GenerationFailed))
	case errors.Is(err, service.ErrStorageFailed):
		return codeResult(errs.StorageFailed), err
	default:
		return systemErrorResult, err
	}
}

// 兜底放行的时候没有预占记录，不需要确认或者释放
func (h *Handler) confirm(ctx context.Context, d tariff.Decision, uid int64, tid string) {
	if d.Usage().Fallback {
		return
	}
	if err := h.quota.Confirm(context.WithoutCancel(ctx), uid, tid); err != nil {
		h.logger.Error("确认额度失败", elog.FieldErr(err), elog.Int64("uid", uid), elog.String("tid", tid))
	}
}

func (h *Handler) release(ctx context.Context, d tariff.Decision, uid int64, tid string) {
	if d.Usage().Fallback {
		return
	}
	if err := h.quota.Cancel(context.WithoutCancel(ctx), uid, tid); err != nil {
		h.logger.Error("释放额度失败", elog.FieldErr(err), elog.Int64("uid", uid), elog.String("tid", tid))
	}
}

func (h *Handler) SubmitResponse(ctx *ginx.Context, req SubmitResponseReq, sess session.Session) (ginx.Result, error) {
	r, err := h.respSvc.Submit(ctx.Request.Context(), domain.Submission{
		Uid:            sess.Claims().Uid,
		CaseId:         req.CaseId,
		Text:           req.ResponseText,
		ElapsedSeconds: req.TimeSpentSeconds,
		RequestKey:     req.RequestKey,
	})
	switch {
	case err == nil:
		return ginx.Result{Data: newUserResponse(r)}, nil
	case errors.Is(err, service.ErrResponseTooShort):
		return h.abort(ctx, http.StatusBadRequest, codeResult(errs.ResponseTooShort))
	case errors.Is(err, service.ErrResponseTooLong):
		return h.abort(ctx, http.StatusBadRequest, codeResult(errs.ResponseTooLong))
	case errors.Is(err, service.ErrInvalidElapsed):
		return h.abort(ctx, http.StatusBadRequest, codeResult(errs.InvalidElapsed))
	case errors.Is(err, service.ErrCaseNotFound):
		return h.abort(ctx, http.StatusNotFound, codeResult(errs.CaseNotFound))
	case errors.Is(err, service.ErrStorageFailed):
		return codeResult(errs.StorageFailed), err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) AssessResponse(ctx *ginx.Context, req AssessResponseReq, sess session.Session) (ginx.Result, error) {
	a, err := h.assessSvc.Assess(ctx.Request.Context(), sess.Claims().Uid, req.CaseId, req.UserResponseId)
	switch {
	case err == nil:
		return ginx.Result{Data: newAssessment(a)}, nil
	case errors.Is(err, service.ErrResponseNotFound):
		return h.abort(ctx, http.StatusNotFound, codeResult(errs.ResponseNotFound))
	case errors.Is(err, service.ErrCaseNotFound):
		return h.abort(ctx, http.StatusNotFound, codeResult(errs.CaseNotFound))
	case errors.Is(err, service.ErrAssessmentFailed):
		h.logger.Error("评估回答失败", elog.FieldErr(err), elog.Int64("rid", req.UserResponseId))
		return h.abort(ctx, http.StatusBadGateway, codeResult(errs.AssessmentFailed))
	case errors.Is(err, service.ErrStorageFailed):
		return codeResult(errs.StorageFailed), err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) CaseTypes(ctx *ginx.Context) (ginx.Result, error) {
	cts, err := h.svc.ListActiveCaseTypes(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(cts, func(idx int, src domain.CaseType) CaseType {
		return newCaseType(src)
	})}, nil
}

func (h *Handler) abort(ctx *ginx.Context, status int, res ginx.Result) (ginx.Result, error) {
	ctx.JSON(status, res)
	return ginx.Result{}, ginx.ErrNoResponse
}
