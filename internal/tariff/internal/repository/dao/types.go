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

package dao

// Tariff 套餐，limit 为 -1 表示不限
type Tariff struct {
	Id             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(64);not null;uniqueIndex:unq_tariff_name"`
	WeeklyLimit    int64  `gorm:"not null;comment:每周可生成案例数,-1表示不限"`
	MonthlyLimit   int64  `gorm:"not null;comment:每月可生成案例数,-1表示不限"`
	PriceLookupKey string `gorm:"type:varchar(128);comment:Stripe price lookup key"`
	Ctime          int64
	Utime          int64
}

func (Tariff) TableName() string {
	return "tariffs"
}

// UserTariff 每个用户只有一条记录，没有记录说明是免费用户
type UserTariff struct {
	Id             int64  `gorm:"primaryKey;autoIncrement"`
	Uid            int64  `gorm:"not null;uniqueIndex:unq_user_tariff_uid"`
	TariffName     string `gorm:"type:varchar(64);not null"`
	SubscriptionId string `gorm:"type:varchar(128)"`
	Status         string `gorm:"type:varchar(32)"`
	Version        int64  `gorm:"not null;default:1"`
	Ctime          int64
	Utime          int64
}

func (UserTariff) TableName() string {
	return "user_tariffs"
}

// GenerationReservation 一次案例生成占用的额度
type GenerationReservation struct {
	Id     int64  `gorm:"primaryKey;autoIncrement"`
	Uid    int64  `gorm:"not null;index:idx_reservation_uid_ctime,priority:1"`
	Tid    string `gorm:"type:varchar(128);not null;uniqueIndex:unq_reservation_tid"`
	Status uint8  `gorm:"type:tinyint unsigned;not null;comment:1=预占 2=确认 3=取消"`
	Ctime  int64  `gorm:"index:idx_reservation_uid_ctime,priority:2"`
	Utime  int64
}

func (GenerationReservation) TableName() string {
	return "generation_reservations"
}
