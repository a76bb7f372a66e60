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

package biz

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/caselab/internal/ai/internal/domain"
	"github.com/ecodeclub/caselab/internal/ai/internal/service/llm/handler"
)

var (
	ErrUnknownBiz   = errors.New("未知的业务")
	ErrInvalidInput = errors.New("输入参数个数不对")
	ErrInputTooLong = errors.New("输入太长")
)

// FacadeHandler 按照 biz 分发到对应的处理链路
type FacadeHandler struct {
	bizMap map[string]handler.Handler
}

var _ handler.Handler = &FacadeHandler{}

func NewHandler(bizMap map[string]handler.Handler) *FacadeHandler {
	return &FacadeHandler{
		bizMap: bizMap,
	}
}

func (f *FacadeHandler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	h, ok := f.bizMap[req.Biz]
	if !ok {
		return domain.LLMResponse{}, fmt.Errorf("%w biz: %s", ErrUnknownBiz, req.Biz)
	}
	return h.Handle(ctx, req)
}
