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
	"time"

	"github.com/ecodeclub/caselab/internal/ai/internal/domain"
	"github.com/ecodeclub/caselab/internal/ai/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.ConfigService
}

func NewAdminHandler(svc service.ConfigService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/ai/config")
	g.POST("/save", ginx.B[ConfigRequest](h.Save))
	g.GET("/list", ginx.W(h.List))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req ConfigRequest) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, domain.BizConfig{
		Id:             req.Config.Id,
		Biz:            req.Config.Biz,
		MaxInput:       req.Config.MaxInput,
		Model:          req.Config.Model,
		Temperature:    req.Config.Temperature,
		SystemPrompt:   req.Config.SystemPrompt,
		PromptTemplate: req.Config.PromptTemplate,
		Timeout:        time.Duration(req.Config.Timeout) * time.Millisecond,
	})
	switch {
	case errors.Is(err, service.ErrInvalidConfig):
		return invalidConfigResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	configs, err := h.svc.List(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(configs, func(idx int, c domain.BizConfig) Config {
			return Config{
				Id:             c.Id,
				Biz:            c.Biz,
				MaxInput:       c.MaxInput,
				Model:          c.Model,
				Temperature:    c.Temperature,
				SystemPrompt:   c.SystemPrompt,
				PromptTemplate: c.PromptTemplate,
				Timeout:        c.Timeout.Milliseconds(),
				Utime:          c.Utime,
			}
		}),
	}, nil
}
