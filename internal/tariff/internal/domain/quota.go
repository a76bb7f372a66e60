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

import "time"

// Usage 某个用户当前窗口内的使用情况
type Usage struct {
	TariffName   string
	WeeklyUsed   int64
	WeeklyLimit  Limit
	MonthlyUsed  int64
	MonthlyLimit Limit
	ResetDate    time.Time
	// Fallback 为 true 说明套餐查询失败，用的是兜底的免费套餐
	Fallback bool
}

type DenyReason string

const (
	ReasonWeeklyLimit  DenyReason = "weekly_limit_reached"
	ReasonMonthlyLimit DenyReason = "monthly_limit_reached"
)

// Decision 额度判定的结果，只有 QuotaOk 和 QuotaDenied 两种
type Decision interface {
	Usage() Usage
	Allowed() bool
	decision()
}

type QuotaOk struct {
	U Usage
}

func (q QuotaOk) Usage() Usage {
	return q.U
}

func (q QuotaOk) Allowed() bool {
	return true
}

func (QuotaOk) decision() {}

type QuotaDenied struct {
	U      Usage
	Reason DenyReason
}

func (q QuotaDenied) Usage() Usage {
	return q.U
}

func (q QuotaDenied) Allowed() bool {
	return false
}

func (QuotaDenied) decision() {}

// Decide 周和月两个额度都有剩余才允许生成
func Decide(u Usage) Decision {
	if !u.WeeklyLimit.Allows(u.WeeklyUsed) {
		return QuotaDenied{U: u, Reason: ReasonWeeklyLimit}
	}
	if !u.MonthlyLimit.Allows(u.MonthlyUsed) {
		return QuotaDenied{U: u, Reason: ReasonMonthlyLimit}
	}
	return QuotaOk{U: u}
}
