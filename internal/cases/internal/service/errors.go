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

package service

import "errors"

var (
	ErrNoCaseType       = errors.New("没有启用的案例类型")
	ErrCaseTypeNotFound = errors.New("案例类型不存在或者已经停用")
	// ErrGenerationFailed LLM 调用失败或者返回的内容无法解析，可以重试
	ErrGenerationFailed = errors.New("生成案例失败")
	// ErrStorageFailed 落库失败，需要告警
	ErrStorageFailed    = errors.New("保存失败")
	ErrResponseTooShort = errors.New("回答太短")
	ErrResponseTooLong  = errors.New("回答太长")
	ErrInvalidElapsed   = errors.New("用时不能为负数")
	ErrCaseNotFound     = errors.New("案例不存在")
	ErrResponseNotFound = errors.New("回答不存在")
	// ErrAssessmentFailed 不会用兜底的分数代替
	ErrAssessmentFailed = errors.New("评估失败")
)
