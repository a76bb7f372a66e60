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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/caselab/internal/tariff/internal/domain"
	"github.com/ecodeclub/caselab/internal/tariff/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type TariffEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewTariffEventConsumer(svc service.Service, q mq.MQ) (*TariffEventConsumer, error) {
	const groupID = "tariff"
	consumer, err := q.Consumer(TariffUpdateEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &TariffEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *TariffEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费套餐变更事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *TariffEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt TariffUpdateEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.svc.ChangeTariff(ctx, domain.UserTariff{
		Uid:            evt.Uid,
		Tariff:         domain.Tariff{Name: evt.Tariff},
		SubscriptionId: evt.SubscriptionId,
		Status:         domain.SubscriptionStatus(evt.Status),
	})
	if err != nil {
		return fmt.Errorf("变更用户套餐失败 uid: %d, tariff: %s: %w", evt.Uid, evt.Tariff, err)
	}
	return nil
}

func (c *TariffEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
