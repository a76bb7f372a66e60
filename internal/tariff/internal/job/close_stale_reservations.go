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

package job

import (
	"context"
	"time"

	"github.com/ecodeclub/caselab/internal/tariff/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseStaleReservationsJob)(nil)

// CloseStaleReservationsJob 生成过程中进程挂了，预占会一直停在 reserved，这里统一取消
type CloseStaleReservationsJob struct {
	svc     service.Service
	timeout time.Duration
	limit   int
	logger  *elog.Component
}

func NewCloseStaleReservationsJob(svc service.Service, timeout time.Duration, limit int) *CloseStaleReservationsJob {
	return &CloseStaleReservationsJob{
		svc:     svc,
		timeout: timeout,
		limit:   limit,
		logger:  elog.DefaultLogger,
	}
}

func (j *CloseStaleReservationsJob) Name() string {
	return "CloseStaleReservationsJob"
}

func (j *CloseStaleReservationsJob) Run(ctx context.Context) error {
	cnt, err := j.svc.CloseStaleReservations(ctx, time.Now().Add(-j.timeout), j.limit)
	if cnt > 0 {
		j.logger.Info("取消超时的额度预占", elog.Int("count", cnt))
	}
	return err
}
