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
	"strconv"
	"time"

	"github.com/ecodeclub/caselab/internal/onboarding/internal/domain"
	"github.com/ecodeclub/ecache"
	pkgerrors "github.com/pkg/errors"
)

// 引导进度只是临时数据，过期之后从第一步重新开始
const expiration = 2 * time.Hour

var ErrProgressNotFound = errors.New("没有引导进度")

//go:generate mockgen -source=./progress.go -destination=../../../mocks/progress_cache.mock.go -package=onboardingmocks ProgressCache
type ProgressCache interface {
	Get(ctx context.Context, uid int64) (domain.Progress, error)
	Set(ctx context.Context, uid int64, p domain.Progress) error
}

type progressCache struct {
	ec ecache.Cache
}

func NewProgressCache(ec ecache.Cache) ProgressCache {
	return &progressCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "onboarding:progress:",
		},
	}
}

func (c *progressCache) Get(ctx context.Context, uid int64) (domain.Progress, error) {
	val := c.ec.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return domain.Progress{}, ErrProgressNotFound
	}
	if val.Err != nil {
		return domain.Progress{}, val.Err
	}
	str, err := val.String()
	if err != nil {
		return domain.Progress{}, err
	}
	var res domain.Progress
	err = json.Unmarshal([]byte(str), &res)
	return res, pkgerrors.Wrap(err, "反序列化引导进度失败")
}

func (c *progressCache) Set(ctx context.Context, uid int64, p domain.Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return pkgerrors.Wrap(err, "序列化引导进度失败")
	}
	return c.ec.Set(ctx, c.key(uid), string(data), expiration)
}

func (c *progressCache) key(uid int64) string {
	return strconv.FormatInt(uid, 10)
}
