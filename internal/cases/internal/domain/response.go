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

package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MinResponseLength 去掉首尾空白以后最少的字符数
const MinResponseLength = 50

const (
	// 按照每分钟阅读加书写 1000 个字符估算
	estimatedRunesPerMinute = 1000
	minEstimatedSeconds     = 60
)

// Submission 用户提交的答案，ElapsedSeconds 为 nil 说明客户端没有计时
type Submission struct {
	Uid            int64
	CaseId         int64
	Text           string
	ElapsedSeconds *int64
	RequestKey     string
}

func (s Submission) TrimmedLength() int {
	return utf8.RuneCountInString(strings.TrimSpace(s.Text))
}

type UserResponse struct {
	Id               int64
	Uid              int64
	CaseId           int64
	Text             string
	TimeSpentSeconds int64
	// 为 true 的时候 TimeSpentSeconds 是估算出来的
	TimeEstimated bool
	RequestKey    string
	Ctime         time.Time
}

// EstimateTimeSpent 客户端没有计时的时候按照回答长度估算用时
func EstimateTimeSpent(text string) int64 {
	runes := int64(utf8.RuneCountInString(strings.TrimSpace(text)))
	return max(minEstimatedSeconds, runes*60/estimatedRunesPerMinute)
}

// MaxResponseLength 和评估时允许的最长输入保持一致
const MaxResponseLength = 10000
