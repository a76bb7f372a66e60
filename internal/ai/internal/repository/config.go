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

	"github.com/ecodeclub/caselab/internal/ai/internal/domain"
	"github.com/ecodeclub/caselab/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/caselab/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var ErrConfigNotFound = dao.ErrRecordNotFound

type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
	Save(ctx context.Context, cfg domain.BizConfig) (int64, error)
	InitConfigs(ctx context.Context, cfgs []domain.BizConfig) error
	List(ctx context.Context) ([]domain.BizConfig, error)
}

// CachedConfigRepository 每次调用 LLM 都要读配置，所以放在缓存里
type CachedConfigRepository struct {
	dao    dao.ConfigDAO
	cache  cache.ConfigCache
	logger *elog.Component
}

func NewCachedConfigRepository(d dao.ConfigDAO, c cache.ConfigCache) ConfigRepository {
	return &CachedConfigRepository{dao: d, cache: c, logger: elog.DefaultLogger}
}

func (repo *CachedConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	cfg, err := repo.cache.Get(ctx, biz)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, cache.ErrConfigNotFound) {
		repo.logger.Warn("读取 AI 配置缓存失败", elog.String("biz", biz), elog.FieldErr(err))
	}
	res, err := repo.dao.GetConfig(ctx, biz)
	if err != nil {
		return domain.BizConfig{}, err
	}
	cfg = repo.toDomain(res)
	if err = repo.cache.Set(ctx, cfg); err != nil {
		repo.logger.Warn("回写 AI 配置缓存失败", elog.String("biz", biz), elog.FieldErr(err))
	}
	return cfg, nil
}

func (repo *CachedConfigRepository) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(cfg))
	if err != nil {
		return 0, err
	}
	// 删掉就可以，下次读的时候回写
	if err = repo.cache.Delete(ctx, cfg.Biz); err != nil {
		repo.logger.Warn("删除 AI 配置缓存失败", elog.String("biz", cfg.Biz), elog.FieldErr(err))
	}
	return id, nil
}

func (repo *CachedConfigRepository) InitConfigs(ctx context.Context, cfgs []domain.BizConfig) error {
	return repo.dao.InitConfigs(ctx, slice.Map(cfgs, func(idx int, src domain.BizConfig) dao.BizConfig {
		return repo.toEntity(src)
	}))
}

func (repo *CachedConfigRepository) List(ctx context.Context) ([]domain.BizConfig, error) {
	res, err := repo.dao.List(ctx)
	return slice.Map(res, func(idx int, src dao.BizConfig) domain.BizConfig {
		return repo.toDomain(src)
	}), err
}

func (repo *CachedConfigRepository) toDomain(c dao.BizConfig) domain.BizConfig {
	return domain.BizConfig{
		Id:             c.Id,
		Biz:            c.Biz,
		Model:          c.Model,
		Temperature:    c.Temperature,
		SystemPrompt:   c.SystemPrompt,
		MaxInput:       c.MaxInput,
		PromptTemplate: c.PromptTemplate,
		Timeout:        time.Duration(c.TimeoutMs) * time.Millisecond,
		Utime:          c.Utime,
	}
}

func (repo *CachedConfigRepository) toEntity(c domain.BizConfig) dao.BizConfig {
	return dao.BizConfig{
		Id:             c.Id,
		Biz:            c.Biz,
		Model:          c.Model,
		Temperature:    c.Temperature,
		SystemPrompt:   c.SystemPrompt,
		MaxInput:       c.MaxInput,
		PromptTemplate: c.PromptTemplate,
		TimeoutMs:      c.Timeout.Milliseconds(),
	}
}
