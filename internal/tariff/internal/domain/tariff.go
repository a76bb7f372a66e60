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

const (
	TariffFree      = "free"
	TariffPro       = "pro"
	TariffUnlimited = "unlimited"
)

// Limit 每周期允许生成的案例数，Unbounded 表示不限
type Limit int64

const Unbounded Limit = -1

func (l Limit) IsUnbounded() bool {
	return l == Unbounded
}

// Allows used 是已经用掉的次数
func (l Limit) Allows(used int64) bool {
	return l.IsUnbounded() || used < int64(l)
}

func (l Limit) ToInt64() int64 {
	return int64(l)
}

type Tariff struct {
	Id           int64
	Name         string
	WeeklyLimit  Limit
	MonthlyLimit Limit
	// Stripe 里面 price 的 lookup key
	PriceLookupKey string
}

// FreeTariff 查询失败的时候兜底使用
func FreeTariff() Tariff {
	return Tariff{
		Name:         TariffFree,
		WeeklyLimit:  5,
		MonthlyLimit: 20,
	}
}

// DefaultTariffs 启动的时候写入的内置套餐
func DefaultTariffs() []Tariff {
	return []Tariff{
		FreeTariff(),
		{Name: TariffPro, WeeklyLimit: 25, MonthlyLimit: 100, PriceLookupKey: "caselab_pro_monthly"},
		{Name: TariffUnlimited, WeeklyLimit: Unbounded, MonthlyLimit: Unbounded, PriceLookupKey: "caselab_unlimited_monthly"},
	}
}

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

type UserTariff struct {
	Uid            int64
	Tariff         Tariff
	SubscriptionId string
	Status         SubscriptionStatus
}

type ReservationStatus uint8

const (
	ReservationStatusReserved ReservationStatus = iota + 1
	ReservationStatusConfirmed
	ReservationStatusCancelled
)

func (s ReservationStatus) ToUint8() uint8 {
	return uint8(s)
}

type Reservation struct {
	Id     int64
	Uid    int64
	Tid    string
	Status ReservationStatus
	Ctime  time.Time
}

// Period 统计窗口，周一零点开始的自然周和自然月
type Period struct {
	WeekStart  time.Time
	MonthStart time.Time
	// 下一次周额度重置的时间
	ResetDate time.Time
}

func PeriodOf(now time.Time) Period {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// time.Sunday = 0，换算成周一为第一天
	offset := (int(day.Weekday()) + 6) % 7
	return Period{
		WeekStart:  day.AddDate(0, 0, -offset),
		MonthStart: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		ResetDate:  NextResetDate(now),
	}
}

// NextResetDate 严格晚于今天的下一个周一。
// 今天就是周一的话，返回下周一
func NextResetDate(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := (8 - int(day.Weekday())) % 7
	if days == 0 {
		days = 7
	}
	return day.AddDate(0, 0, days)
}
