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

	"github.com/ecodeclub/caselab/internal/cases/internal/domain"
	"github.com/ecodeclub/caselab/internal/cases/internal/errs"
	"github.com/ecodeclub/caselab/internal/cases/internal/repository"
	"github.com/ecodeclub/caselab/internal/cases/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/case-type/save", ginx.B[SaveCaseTypeReq](h.SaveCaseType))
	server.POST("/case-type/list", ginx.W(h.ListCaseTypes))
	server.POST("/cases/list", ginx.B[Page](h.ListCases))
	server.POST("/cases/detail", ginx.B[CaseId](h.Detail))
}

func (h *AdminHandler) SaveCaseType(ctx *ginx.Context, req SaveCaseTypeReq) (ginx.Result, error) {
	id, err := h.svc.SaveCaseType(ctx.Request.Context(), req.CaseType.toDomain())
	switch {
	case errors.Is(err, domain.ErrInvalidCaseType):
		return codeResult(errs.InvalidCaseType), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) ListCaseTypes(ctx *ginx.Context) (ginx.Result, error) {
	cts, err := h.svc.ListCaseTypes(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(cts, func(idx int, src domain.CaseType) CaseType {
		res := newCaseType(src)
		res.Status = src.Status.ToUint8()
		return res
	})}, nil
}

func (h *AdminHandler) ListCases(ctx *ginx.Context, req Page) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > maxPageSize {
		req.Limit = maxPageSize
	}
	cs, total, err := h.svc.ListCases(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CaseList{
		Total: total,
		Cases: slice.Map(cs, func(idx int, src domain.Case) AdminCase {
			return newAdminCase(src)
		}),
	}}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req CaseId) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx.Request.Context(), req.Id)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return codeResult(errs.CaseNotFound), nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newAdminCase(c)}, nil
}

func newAdminCase(c domain.Case) AdminCase {
	return AdminCase{
		Case:  newCase(c),
		Uid:   c.Uid,
		Ctime: c.Ctime.UnixMilli(),
	}
}
