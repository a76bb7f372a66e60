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

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/caselab/internal/tariff/internal/domain"
	"github.com/ecodeclub/caselab/internal/tariff/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRecordNotFound      = dao.ErrRecordNotFound
	ErrReservationNotFound = dao.ErrReservationNotFound
)

type TariffRepository interface {
	Seed(ctx context.Context, tariffs []domain.Tariff) error
	FindTariff(ctx context.Context, name string) (domain.Tariff, error)
	ListTariffs(ctx context.Context) ([]domain.Tariff, error)
	// FindUserTariff 用户没有记录的时候返回 free 套餐
	FindUserTariff(ctx context.Context, uid int64) (domain.UserTariff, error)
	SaveUserTariff(ctx context.Context, ut domain.UserTariff) error
	// Usage 统计 period 内的使用次数，limit 和 reset date 由调用方补齐
	Usage(ctx context.Context, uid int64, period domain.Period) (weekly int64, monthly int64, err error)
	Reserve(ctx context.Context, r domain.Reservation, period domain.Period,
		decide func(u domain.Usage) domain.Decision) (domain.Decision, error)
	Confirm(ctx context.Context, uid int64, tid string) error
	Cancel(ctx context.Context, uid int64, tid string) error
	FindStaleReservations(ctx context.Context, before int64, limit int) ([]domain.Reservation, error)
}

type tariffRepository struct {
	dao dao.TariffDAO
}

func NewTariffRepository(d dao.TariffDAO) TariffRepository {
	return &tariffRepository{dao: d}
}

func (r *tariffRepository) Seed(ctx context.Context, tariffs []domain.Tariff) error {
	return r.dao.Seed(ctx, slice.Map(tariffs, func(idx int, src domain.Tariff) dao.Tariff {
		return r.toTariffEntity(src)
	}))
}

func (r *tariffRepository) FindTariff(ctx context.Context, name string) (domain.Tariff, error) {
	t, err := r.dao.FindTariffByName(ctx, name)
	return r.toDomainTariff(t), err
}

func (r *tariffRepository) ListTariffs(ctx context.Context) ([]domain.Tariff, error) {
	ts, err := r.dao.ListTariffs(ctx)
	return slice.Map(ts, func(idx int, src dao.Tariff) domain.Tariff {
		return r.toDomainTariff(src)
	}), err
}

func (r *tariffRepository) FindUserTariff(ctx context.Context, uid int64) (domain.UserTariff, error) {
	ut, err := r.dao.FindUserTariff(ctx, uid)
	name := ut.TariffName
	switch {
	case errors.Is(err, dao.ErrRecordNotFound):
		name = domain.TariffFree
	case err != nil:
		return domain.UserTariff{}, err
	}
	t, err := r.dao.FindTariffByName(ctx, name)
	if err != nil {
		return domain.UserTariff{}, err
	}
	return domain.UserTariff{
		Uid:            uid,
		Tariff:         r.toDomainTariff(t),
		SubscriptionId: ut.SubscriptionId,
		Status:         domain.SubscriptionStatus(ut.Status),
	}, nil
}

func (r *tariffRepository) SaveUserTariff(ctx context.Context, ut domain.UserTariff) error {
	return r.dao.UpsertUserTariff(ctx, dao.UserTariff{
		Uid:            ut.Uid,
		TariffName:     ut.Tariff.Name,
		SubscriptionId: ut.SubscriptionId,
		Status:         string(ut.Status),
	})
}

func (r *tariffRepository) Usage(ctx context.Context, uid int64, period domain.Period) (int64, int64, error) {
	var (
		eg      errgroup.Group
		weekly  int64
		monthly int64
	)
	eg.Go(func() error {
		var err error
		weekly, err = r.dao.CountSince(ctx, uid, period.WeekStart.UnixMilli())
		return err
	})
	eg.Go(func() error {
		var err error
		monthly, err = r.dao.CountSince(ctx, uid, period.MonthStart.UnixMilli())
		return err
	})
	err := eg.Wait()
	return weekly, monthly, err
}

func (r *tariffRepository) Reserve(ctx context.Context, rsv domain.Reservation, period domain.Period,
	decide func(u domain.Usage) domain.Decision) (domain.Decision, error) {
	var decision domain.Decision
	_, _, err := r.dao.Reserve(ctx, dao.GenerationReservation{
		Uid: rsv.Uid,
		Tid: rsv.Tid,
	}, domain.TariffFree, period.WeekStart.UnixMilli(), period.MonthStart.UnixMilli(),
		func(s dao.Snapshot) bool {
			decision = decide(domain.Usage{
				TariffName:   s.Tariff.Name,
				WeeklyUsed:   s.Weekly,
				WeeklyLimit:  domain.Limit(s.Tariff.WeeklyLimit),
				MonthlyUsed:  s.Monthly,
				MonthlyLimit: domain.Limit(s.Tariff.MonthlyLimit),
				ResetDate:    period.ResetDate,
			})
			return decision.Allowed()
		})
	return decision, err
}

func (r *tariffRepository) Confirm(ctx context.Context, uid int64, tid string) error {
	return r.dao.UpdateReservationStatus(ctx, uid, tid,
		domain.ReservationStatusReserved.ToUint8(), domain.ReservationStatusConfirmed.ToUint8())
}

func (r *tariffRepository) Cancel(ctx context.Context, uid int64, tid string) error {
	return r.dao.UpdateReservationStatus(ctx, uid, tid,
		domain.ReservationStatusReserved.ToUint8(), domain.ReservationStatusCancelled.ToUint8())
}

func (r *tariffRepository) FindStaleReservations(ctx context.Context, before int64, limit int) ([]domain.Reservation, error) {
	rs, err := r.dao.FindStaleReservations(ctx, before, limit)
	return slice.Map(rs, func(idx int, src dao.GenerationReservation) domain.Reservation {
		return domain.Reservation{
			Id:     src.Id,
			Uid:    src.Uid,
			Tid:    src.Tid,
			Status: domain.ReservationStatus(src.Status),
			Ctime:  time.UnixMilli(src.Ctime),
		}
	}), err
}

func (r *tariffRepository) toTariffEntity(t domain.Tariff) dao.Tariff {
	return dao.Tariff{
		Id:             t.Id,
		Name:           t.Name,
		WeeklyLimit:    t.WeeklyLimit.ToInt64(),
		MonthlyLimit:   t.MonthlyLimit.ToInt64(),
		PriceLookupKey: t.PriceLookupKey,
	}
}

func (r *tariffRepository) toDomainTariff(t dao.Tariff) domain.Tariff {
	return domain.Tariff{
		Id:             t.Id,
		Name:           t.Name,
		WeeklyLimit:    domain.Limit(t.WeeklyLimit),
		MonthlyLimit:   domain.Limit(t.MonthlyLimit),
		PriceLookupKey: t.PriceLookupKey,
	}
}
