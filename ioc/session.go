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

package ioc

import (
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/ginx/session/cookie"
	"github.com/ecodeclub/ginx/session/header"
	"github.com/ecodeclub/ginx/session/mixin"
	sessredis "github.com/ecodeclub/ginx/session/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

// InitSession 前端优先走 Authorization 头，浏览器直接访问的时候退化成 cookie
func InitSession(cmd redis.Cmdable) session.Provider {
	type Config struct {
		EncryptedKey string `yaml:"sessionEncryptedKey"`
		Expiration   string `yaml:"expiration"`
		Cookie       struct {
			Domain string `yaml:"domain"`
		} `yaml:"cookie"`
	}
	cfg := Config{Expiration: "24h"}
	err := econf.UnmarshalKey("session", &cfg)
	if err != nil {
		panic(err)
	}
	expiration, err := time.ParseDuration(cfg.Expiration)
	if err != nil {
		panic(err)
	}
	sp := sessredis.NewSessionProvider(cmd, cfg.EncryptedKey, expiration)
	sp.TokenCarrier = mixin.NewTokenCarrier(
		header.NewTokenCarrier(),
		&cookie.TokenCarrier{
			MaxAge:   int(expiration.Seconds()),
			Name:     "caselab_sid",
			Secure:   true,
			HttpOnly: true,
			Domain:   cfg.Cookie.Domain,
		},
	)
	return sp
}
