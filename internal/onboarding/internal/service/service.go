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

	"github.com/ecodeclub/caselab/internal/onboarding/internal/domain"
	"github.com/ecodeclub/caselab/internal/onboarding/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/onboarding.mock.go -package=onboardingmocks Service
type Service interface {
	State(ctx context.Context, uid int64) (*domain.Engine, error)
	Select(ctx context.Context, uid int64, option int) (*domain.Engine, error)
	Next(ctx context.Context, uid int64) (*domain.Engine, error)
	Skip(ctx context.Context, uid int64, confirmed bool) (*domain.Engine, error)
	Restart(ctx context.Context, uid int64) (*domain.Engine, error)
}

type service struct {
	cache  cache.ProgressCache
	logger *elog.Component
}

func NewService(c cache.ProgressCache) Service {
	return &service{
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (s *service) State(ctx context.Context, uid int64) (*domain.Engine, error) {
	return s.load(ctx, uid), nil
}

func (s *service) Select(ctx context.Context, uid int64, option int) (*domain.Engine, error) {
	return s.apply(ctx, uid, func(e *domain.Engine) error {
		_, err := e.Select(option)
		return err
	})
}

func (s *service) Next(ctx context.Context, uid int64) (*domain.Engine, error) {
	return s.apply(ctx, uid, func(e *domain.Engine) error {
		return e.Next()
	})
}

func (s *service) Skip(ctx context.Context, uid int64, confirmed bool) (*domain.Engine, error) {
	return s.apply(ctx, uid, func(e *domain.Engine) error {
		return e.Skip(confirmed)
	})
}

func (s *service) Restart(ctx context.Context, uid int64) (*domain.Engine, error) {
	return s.apply(ctx, uid, func(e *domain.Engine) error {
		return e.Restart()
	})
}

func (s *service) apply(ctx context.Context, uid int64, fn func(e *domain.Engine) error) (*domain.Engine, error) {
	e := s.load(ctx, uid)
	if err := fn(e); err != nil {
		return e, err
	}
	// 保存失败只是丢失进度，不影响这一次的结果
	if err := s.cache.Set(ctx, uid, e.Progress()); err != nil {
		s.logger.Warn("保存引导进度失败", elog.FieldErr(err), elog.Int64("uid", uid))
	}
	return e, nil
}

// load 缓存里面没有或者数据不合法都从第一步开始
func (s *service) load(ctx context.Context, uid int64) *domain.Engine {
	p, err := s.cache.Get(ctx, uid)
	if err != nil {
		if !errors.Is(err, cache.ErrProgressNotFound) {
			s.logger.Warn("读取引导进度失败", elog.FieldErr(err), elog.Int64("uid", uid))
		}
		return domain.NewEngine()
	}
	e, err := domain.Restore(p)
	if err != nil {
		s.logger.Warn("引导进度数据不合法", elog.FieldErr(err), elog.Int64("uid", uid))
		return domain.NewEngine()
	}
	return e
}
