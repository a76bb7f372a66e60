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

	"github.com/ecodeclub/caselab/internal/ai/internal/domain"
	"github.com/ecodeclub/caselab/internal/ai/internal/service/llm/handler"
)

// CaseGenerateBizHandlerBuilder Input 依次是案例类型和难度
type CaseGenerateBizHandlerBuilder struct {
}

var _ handler.Builder = &CaseGenerateBizHandlerBuilder{}

func NewCaseGenerateBizHandlerBuilder() *CaseGenerateBizHandlerBuilder {
	return &CaseGenerateBizHandlerBuilder{}
}

func (b *CaseGenerateBizHandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		if err := checkArity(req.Input, 2); err != nil {
			return domain.LLMResponse{}, err
		}
		if err := checkLength(req.Input[0], req.Config.MaxInput); err != nil {
			return domain.LLMResponse{}, err
		}
		return next.Handle(ctx, req)
	})
}
