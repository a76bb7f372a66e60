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

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/caselab/internal/tariff/internal/domain"
	"github.com/ecodeclub/caselab/internal/tariff/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUnknownTariff       = errors.New("未知套餐")
	ErrReservationNotFound = repository.ErrReservationNotFound
)

//go:generate mockgen -source=./service.go -destination=../../mocks/tariff.mock.go -package=tariffmocks Service
type Service interface {
	// Check 每次都从存储里读最新的套餐，读失败按免费套餐放行
	Check(ctx context.Context, uid int64) domain.Decision
	// Reserve 原子地检查并占用一次生成额度，tid 是这次生成的唯一标识
	Reserve(ctx context.Context, uid int64, tid string) (domain.Decision, error)
	Confirm(ctx context.Context, uid int64, tid string) error
	Cancel(ctx context.Context, uid int64, tid string) error
	ChangeTariff(ctx context.Context, ut domain.UserTariff) error
	ListTariffs(ctx context.Context) ([]domain.Tariff, error)
	FindTariff(ctx context.Context, name string) (domain.Tariff, error)
	// CloseStaleReservations 返回取消掉的预占数量
	CloseStaleReservations(ctx context.Context, before time.Time, limit int) (int, error)
}

type service struct {
	repo   repository.TariffRepository
	loc    *time.Location
	now    func() time.Time
	logger *elog.Component
}

func NewService(repo repository.TariffRepository, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:   repo,
		loc:    loc,
		now:    time.Now,
		logger: elog.DefaultLogger,
	}
}

func (s *service) period() domain.Period {
	return domain.PeriodOf(s.now().In(s.loc))
}

func (s *service) Check(ctx context.Context, uid int64) domain.Decision {
	p := s.period()
	ut, err := s.repo.FindUserTariff(ctx, uid)
	if err != nil {
		return s.fallback(uid, p, err)
	}
	weekly, monthly, err := s.repo.Usage(ctx, uid, p)
	if err != nil {
		return s.fallback(uid, p, err)
	}
	return domain.Decide(domain.Usage{
		TariffName:   ut.Tariff.Name,
		WeeklyUsed:   weekly,
		WeeklyLimit:  ut.Tariff.WeeklyLimit,
		MonthlyUsed:  monthly,
		MonthlyLimit: ut.Tariff.MonthlyLimit,
		ResetDate:    p.ResetDate,
	})
}

func (s *service) fallback(uid int64, p domain.Period, err error) domain.Decision {
	s.logger.Warn("查询用户套餐失败，使用免费套餐放行",
		elog.Int64("uid", uid), elog.FieldErr(err))
	free := domain.FreeTariff()
	return domain.QuotaOk{U: domain.Usage{
		TariffName:   free.Name,
		WeeklyLimit:  free.WeeklyLimit,
		MonthlyLimit: free.MonthlyLimit,
		ResetDate:    p.ResetDate,
		Fallback:     true,
	}}
}

func (s *service) Reserve(ctx context.Context, uid int64, tid string) (domain.Decision, error) {
	p := s.period()
	d, err := s.repo.Reserve(ctx, domain.Reservation{Uid: uid, Tid: tid}, p, domain.Decide)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return s.fallback(uid, p, err), nil
	}
	return d, nil
}

func (s *service) Confirm(ctx context.Context, uid int64, tid string) error {
	return s.repo.Confirm(ctx, uid, tid)
}

func (s *service) Cancel(ctx context.Context, uid int64, tid string) error {
	return s.repo.Cancel(ctx, uid, tid)
}

func (s *service) ChangeTariff(ctx context.Context, ut domain.UserTariff) error {
	t, err := s.repo.FindTariff(ctx, ut.Tariff.Name)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrUnknownTariff, ut.Tariff.Name)
	}
	if err != nil {
		return err
	}
	ut.Tariff = t
	return s.repo.SaveUserTariff(ctx, ut)
}

func (s *service) ListTariffs(ctx context.Context) ([]domain.Tariff, error) {
	return s.repo.ListTariffs(ctx)
}

func (s *service) FindTariff(ctx context.Context, name string) (domain.Tariff, error) {
	t, err := s.repo.FindTariff(ctx, name)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Tariff{}, fmt.Errorf("%w: %s", ErrUnknownTariff, name)
	}
	return t, err
}

func (s *service) CloseStaleReservations(ctx context.Context, before time.Time, limit int) (int, error) {
	if limit <= 0 {
		limit = 100
	}
	closed := 0
	for {
		rs, err := s.repo.FindStaleReservations(ctx, before.UnixMilli(), limit)
		if err != nil {
			return closed, fmt.Errorf("查找超时的额度预占失败: %w", err)
		}
		for _, r := range rs {
			err = s.repo.Cancel(ctx, r.Uid, r.Tid)
			// 并发确认了也没关系
			if err != nil && !errors.Is(err, ErrReservationNotFound) {
				return closed, fmt.Errorf("取消超时的额度预占失败: %w", err)
			}
			if err == nil {
				closed++
			}
		}
		if len(rs) < limit {
			return closed, nil
		}
	}
}
