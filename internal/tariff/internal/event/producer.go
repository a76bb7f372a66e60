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
	"strconv"

	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go TariffEventProducer
type TariffEventProducer interface {
	Produce(ctx context.Context, evt TariffUpdateEvent) error
}

type tariffEventProducer struct {
	producer mq.Producer
}

func NewTariffEventProducer(q mq.MQ) (TariffEventProducer, error) {
	p, err := q.Producer(TariffUpdateEventName)
	if err != nil {
		return nil, err
	}
	return &tariffEventProducer{producer: p}, nil
}

func (p *tariffEventProducer) Produce(ctx context.Context, evt TariffUpdateEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	// 同一个用户的事件进同一个分区
	_, err = p.producer.Produce(ctx, &mq.Message{
		Key:   []byte(strconv.FormatInt(evt.Uid, 10)),
		Value: data,
	})
	return err
}
