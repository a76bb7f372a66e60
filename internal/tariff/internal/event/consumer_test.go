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
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/caselab/internal/tariff/internal/domain"
	tariffmocks "github.com/ecodeclub/caselab/internal/tariff/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTariffEventConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		evt     TariffUpdateEvent
		mock    func(ctrl *gomock.Controller) *tariffmocks.MockService
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "升级",
			evt: TariffUpdateEvent{
				Uid:            12,
				Tariff:         domain.TariffPro,
				SubscriptionId: "sub_1",
				Status:         "active",
			},
			mock: func(ctrl *gomock.Controller) *tariffmocks.MockService {
				svc := tariffmocks.NewMockService(ctrl)
				svc.EXPECT().ChangeTariff(gomock.Any(), domain.UserTariff{
					Uid:            12,
					Tariff:         domain.Tariff{Name: domain.TariffPro},
					SubscriptionId: "sub_1",
					Status:         domain.SubscriptionActive,
				}).Return(nil)
				return svc
			},
			wantErr: assert.NoError,
		},
		{
			name: "变更失败",
			evt: TariffUpdateEvent{
				Uid:    13,
				Tariff: "gold",
			},
			mock: func(ctrl *gomock.Controller) *tariffmocks.MockService {
				svc := tariffmocks.NewMockService(ctrl)
				svc.EXPECT().ChangeTariff(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				return svc
			},
			wantErr: assert.Error,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			ctrl := gomock.NewController(t)
			q := newMQ(t)
			producer, err := NewTariffEventProducer(q)
			require.NoError(t, err)
			consumer, err := NewTariffEventConsumer(tc.mock(ctrl), q)
			require.NoError(t, err)
			defer consumer.Stop(ctx)

			require.NoError(t, producer.Produce(ctx, tc.evt))
			tc.wantErr(t, consumer.Consume(ctx))
		})
	}
}

func newMQ(t *testing.T) mq.MQ {
	q := memory.NewMQ()
	err := q.CreateTopic(context.Background(), TariffUpdateEventName, 1)
	require.NoError(t, err)
	return q
}
