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
	"github.com/ecodeclub/caselab/internal/tariff/internal/domain"
	"github.com/ecodeclub/caselab/internal/tariff/internal/event"
	"github.com/ecodeclub/caselab/internal/tariff/internal/job"
	"github.com/ecodeclub/caselab/internal/tariff/internal/service"
	"github.com/ecodeclub/caselab/internal/tariff/internal/web"
)

type Module struct {
	Svc                       Service
	Hdl                       *Handler
	CloseStaleReservationsJob *CloseStaleReservationsJob
	C                         *event.TariffEventConsumer
}

type Service = service.Service
type Handler = web.Handler
type CloseStaleReservationsJob = job.CloseStaleReservationsJob

type Tariff = domain.Tariff
type UserTariff = domain.UserTariff
type Limit = domain.Limit
type Usage = domain.Usage
type Decision = domain.Decision
type QuotaOk = domain.QuotaOk
type QuotaDenied = domain.QuotaDenied
type DenyReason = domain.DenyReason

// UsageVO 额度查询的 HTTP 返回值，生成案例被拒绝的时候也用它
type UsageVO = web.Usage

const (
	Unbounded          = domain.Unbounded
	ReasonWeeklyLimit  = domain.ReasonWeeklyLimit
	ReasonMonthlyLimit = domain.ReasonMonthlyLimit
)

func NewUsageVO(d Decision) UsageVO {
	return web.NewUsage(d)
}
