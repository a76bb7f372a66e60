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

package handler

import (
	"context"

	"github.com/ecodeclub/caselab/internal/ai/internal/domain"
	"github.com/lithammer/shortuuid/v4"
)

// Chain 把 builders 依次套在 root 外面，builders[0] 最先执行，nil 会被跳过
func Chain(root Handler, builders ...Builder) Handler {
	for i := len(builders) - 1; i >= 0; i-- {
		if builders[i] == nil {
			continue
		}
		root = builders[i].Next(root)
	}
	return HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		// 日志和调用记录都靠 tid 关联
		if req.Tid == "" {
			req.Tid = shortuuid.New()
		}
		return root.Handle(ctx, req)
	})
}
