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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/caselab/internal/ai/internal/domain"
	"github.com/ecodeclub/ecache"
	pkgerrors "github.com/pkg/errors"
)

const expiration = 10 * time.Minute

var ErrConfigNotFound = errors.New("缓存中没有 AI 配置")

//go:generate mockgen -source=./config.go -destination=../../../mocks/config_cache.mock.go -package=aimocks ConfigCache
type ConfigCache interface {
	Get(ctx context.Context, biz string) (domain.BizConfig, error)
	Set(ctx context.Context, cfg domain.BizConfig) error
	Delete(ctx context.Context, biz string) error
}

type configCache struct {
	ec ecache.Cache
}

func NewConfigCache(ec ecache.Cache) ConfigCache {
	return &configCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "ai:config:",
		},
	}
}

func (c *configCache) Get(ctx context.Context, biz string) (domain.BizConfig, error) {
	val := c.ec.Get(ctx, c.key(biz))
	if val.KeyNotFound() {
		return domain.BizConfig{}, ErrConfigNotFound
	}
	if val.Err != nil {
		return domain.BizConfig{}, val.Err
	}
	str, err := val.String()
	if err != nil {
		return domain.BizConfig{}, err
	}
	var res domain.BizConfig
	err = json.Unmarshal([]byte(str), &res)
	return res, pkgerrors.Wrap(err, "反序列化 AI 配置失败")
}

func (c *configCache) Set(ctx context.Context, cfg domain.BizConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return pkgerrors.Wrap(err, "序列化 AI 配置失败")
	}
	return c.ec.Set(ctx, c.key(cfg.Biz), string(data), expiration)
}

func (c *configCache) Delete(ctx context.Context, biz string) error {
	_, err := c.ec.Delete(ctx, c.key(biz))
	return err
}

func (c *configCache) key(biz string) string {
	return fmt.Sprintf("biz:%s", biz)
}
