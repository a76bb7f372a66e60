//go:build wireinject

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

package tariff

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/caselab/internal/tariff/internal/domain"
	"github.com/ecodeclub/caselab/internal/tariff/internal/event"
	"github.com/ecodeclub/caselab/internal/tariff/internal/job"
	"github.com/ecodeclub/caselab/internal/tariff/internal/repository"
	"github.com/ecodeclub/caselab/internal/tariff/internal/repository/dao"
	"github.com/ecodeclub/caselab/internal/tariff/internal/service"
	"github.com/ecodeclub/caselab/internal/tariff/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		InitService,
		initBillingService,
		event.NewTariffEventProducer,
		web.NewHandler,
		initConsumer,
		initCloseStaleReservationsJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		repo := repository.NewTariffRepository(dao.NewTariffGORMDAO(db))
		err = repo.Seed(context.Background(), domain.DefaultTariffs())
		if err != nil {
			elog.DefaultLogger.Error("写入内置套餐失败", elog.FieldErr(err))
		}
		svc = service.NewService(repo, loadLocation())
	})
	return svc
}

func loadLocation() *time.Location {
	name := econf.GetString("tariff.location")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func initBillingService(svc service.Service) service.BillingService {
	var cfg service.StripeConfig
	err := econf.UnmarshalKey("stripe", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewStripeBillingService(svc, cfg)
}

func initConsumer(svc service.Service, q mq.MQ) *event.TariffEventConsumer {
	c, err := event.NewTariffEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

func initCloseStaleReservationsJob(svc service.Service) *job.CloseStaleReservationsJob {
	const (
		timeout = 10 * time.Minute
		limit   = 100
	)
	return job.NewCloseStaleReservationsJob(svc, timeout, limit)
}
