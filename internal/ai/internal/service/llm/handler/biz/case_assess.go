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

// CaseAssessBizHandlerBuilder Input 依次是案例标题、案例描述和用户的回答
type CaseAssessBizHandlerBuilder struct {
}

var _ handler.Builder = &CaseAssessBizHandlerBuilder{}

func NewCaseAssessBizHandlerBuilder() *CaseAssessBizHandlerBuilder {
	return &CaseAssessBizHandlerBuilder{}
}

func (b *CaseAssessBizHandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		if err := checkArity(req.Input, 3); err != nil {
			return domain.LLMResponse{}, err
		}
		// 只限制用户的回答，案例本身是我们生成的
		if err := checkLength(req.Input[2], req.Config.MaxInput); err != nil {
			return domain.LLMResponse{}, err
		}
		return next.Handle(ctx, req)
	})
}
