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

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	statusReserved  uint8 = 1
	statusConfirmed uint8 = 2
	statusCancelled uint8 = 3
)

var (
	ErrRecordNotFound          = gorm.ErrRecordNotFound
	ErrReservationNotFound     = errors.New("额度预占记录不存在或者状态已经变更")
	ErrUserTariffChangedBefore = errors.New("用户套餐已被并发修改")
)

// Snapshot 事务内读到的用户套餐和已用次数
type Snapshot struct {
	UserTariff UserTariff
	Tariff     Tariff
	Weekly     int64
	Monthly    int64
}

type TariffDAO interface {
	Seed(ctx context.Context, tariffs []Tariff) error
	FindTariffByName(ctx context.Context, name string) (Tariff, error)
	ListTariffs(ctx context.Context) ([]Tariff, error)
	FindUserTariff(ctx context.Context, uid int64) (UserTariff, error)
	UpsertUserTariff(ctx context.Context, ut UserTariff) error
	CountSince(ctx context.Context, uid int64, since int64) (int64, error)
	// Reserve 锁住用户套餐行再统计，allow 返回 true 才会写入 r
	Reserve(ctx context.Context, r GenerationReservation, defaultTariff string,
		weekStart, monthStart int64, allow func(s Snapshot) bool) (Snapshot, bool, error)
	UpdateReservationStatus(ctx context.Context, uid int64, tid string, from, to uint8) error
	FindStaleReservations(ctx context.Context, before int64, limit int) ([]GenerationReservation, error)
}

type tariffGORMDAO struct {
	db *egorm.Component
}

func NewTariffGORMDAO(db *egorm.Component) TariffDAO {
	return &tariffGORMDAO{db: db}
}

func (d *tariffGORMDAO) Seed(ctx context.Context, tariffs []Tariff) error {
	now := time.Now().UnixMilli()
	for i := range tariffs {
		tariffs[i].Ctime, tariffs[i].Utime = now, now
	}
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"weekly_limit", "monthly_limit", "price_lookup_key", "utime",
		}),
	}).Create(&tariffs).Error
}

func (d *tariffGORMDAO) FindTariffByName(ctx context.Context, name string) (Tariff, error) {
	var t Tariff
	err := d.db.WithContext(ctx).Where("name = ?", name).First(&t).Error
	return t, err
}

func (d *tariffGORMDAO) ListTariffs(ctx context.Context) ([]Tariff, error) {
	var res []Tariff
	err := d.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *tariffGORMDAO) FindUserTariff(ctx context.Context, uid int64) (UserTariff, error) {
	var ut UserTariff
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&ut).Error
	return ut, err
}

func (d *tariffGORMDAO) UpsertUserTariff(ctx context.Context, ut UserTariff) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		ut.Ctime, ut.Utime, ut.Version = now, now, 1
		created, err := d.ensureUserTariff(tx, ut)
		if err != nil || created {
			return err
		}
		var current UserTariff
		if err = tx.Where("uid = ?", ut.Uid).First(&current).Error; err != nil {
			return err
		}
		res := tx.Model(&UserTariff{}).
			Where("uid = ? AND version = ?", ut.Uid, current.Version).
			Updates(map[string]any{
				"tariff_name":     ut.TariffName,
				"subscription_id": ut.SubscriptionId,
				"status":          ut.Status,
				"version":         current.Version + 1,
				"utime":           now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w uid: %d", ErrUserTariffChangedBefore, ut.Uid)
		}
		return nil
	})
}

func (d *tariffGORMDAO) CountSince(ctx context.Context, uid int64, since int64) (int64, error) {
	return d.countSince(d.db.WithContext(ctx), uid, since)
}

func (d *tariffGORMDAO) countSince(db *gorm.DB, uid int64, since int64) (int64, error) {
	var cnt int64
	err := db.Model(&GenerationReservation{}).
		Where("uid = ? AND status <> ? AND ctime >= ?", uid, statusCancelled, since).
		Count(&cnt).Error
	return cnt, err
}

func (d *tariffGORMDAO) Reserve(ctx context.Context, r GenerationReservation, defaultTariff string,
	weekStart, monthStart int64, allow func(s Snapshot) bool) (Snapshot, bool, error) {
	var (
		snapshot Snapshot
		ok       bool
	)
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		// 确保有一行可以锁，并发插入的时候唯一索引冲突就让给先插入的那个
		_, err := d.ensureUserTariff(tx, UserTariff{
			Uid:        r.Uid,
			TariffName: defaultTariff,
			Version:    1,
			Ctime:      now,
			Utime:      now,
		})
		if err != nil {
			return err
		}
		// 同一个用户的并发生成请求在这里排队
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("uid = ?", r.Uid).First(&snapshot.UserTariff).Error
		if err != nil {
			return err
		}
		err = tx.Where("name = ?", snapshot.UserTariff.TariffName).First(&snapshot.Tariff).Error
		if err != nil {
			return fmt.Errorf("查找套餐 %s 失败: %w", snapshot.UserTariff.TariffName, err)
		}
		snapshot.Weekly, err = d.countSince(tx, r.Uid, weekStart)
		if err != nil {
			return err
		}
		snapshot.Monthly, err = d.countSince(tx, r.Uid, monthStart)
		if err != nil {
			return err
		}
		ok = allow(snapshot)
		if !ok {
			return nil
		}
		r.Status = statusReserved
		r.Ctime, r.Utime = now, now
		return tx.Create(&r).Error
	})
	return snapshot, ok, err
}

// ensureUserTariff 已经存在的话什么都不做，返回值表示是否新建
func (d *tariffGORMDAO) ensureUserTariff(tx *gorm.DB, ut UserTariff) (bool, error) {
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoNothing: true,
	}).Create(&ut)
	return res.RowsAffected > 0, res.Error
}

func (d *tariffGORMDAO) UpdateReservationStatus(ctx context.Context, uid int64, tid string, from, to uint8) error {
	res := d.db.WithContext(ctx).Model(&GenerationReservation{}).
		Where("uid = ? AND tid = ? AND status = ?", uid, tid, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w uid: %d, tid: %s", ErrReservationNotFound, uid, tid)
	}
	return nil
}

func (d *tariffGORMDAO) FindStaleReservations(ctx context.Context, before int64, limit int) ([]GenerationReservation, error) {
	var res []GenerationReservation
	err := d.db.WithContext(ctx).
		Where("status = ? AND ctime < ?", statusReserved, before).
		Order("id ASC").Limit(limit).Find(&res).Error
	return res, err
}
