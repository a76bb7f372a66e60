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

//go:build e2e

package integration

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/caselab/internal/tariff"
	"github.com/ecodeclub/caselab/internal/tariff/internal/repository/dao"
	testioc "github.com/ecodeclub/caselab/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/lithammer/shortuuid/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ReserveTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc tariff.Service
}

func (s *ReserveTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := tariff.InitModule(s.db, testioc.InitMQ())
	require.NoError(s.T(), err)
	s.svc = m.Svc
}

func (s *ReserveTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `generation_reservations`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `user_tariffs`").Error
	require.NoError(s.T(), err)
}

// 同一个用户并发生成，行锁保证不会超出周额度
func (s *ReserveTestSuite) TestConcurrentReserve() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	const uid = 2001
	require.NoError(t, s.svc.ChangeTariff(ctx, tariff.UserTariff{
		Uid:    uid,
		Tariff: tariff.Tariff{Name: "free"},
		Status: "active",
	}))

	var (
		allowed atomic.Int64
		wg      sync.WaitGroup
	)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := s.svc.Reserve(ctx, uid, shortuuid.New())
			if assert.NoError(t, err) && d.Allowed() {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(5), allowed.Load())

	var cnt int64
	err := s.db.WithContext(ctx).Model(&dao.GenerationReservation{}).
		Where("uid = ?", uid).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(5), cnt)

	d := s.svc.Check(ctx, uid)
	assert.False(t, d.Allowed())
	assert.Equal(t, int64(5), d.Usage().WeeklyUsed)
}

// 取消的预占不占额度，超时的预占会被任务取消
func (s *ReserveTestSuite) TestCancelAndCloseStale() {
	t := s.T()
	ctx := context.Background()
	const uid = 2002
	tids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		tid := shortuuid.New()
		d, err := s.svc.Reserve(ctx, uid, tid)
		require.NoError(t, err)
		require.True(t, d.Allowed())
		tids = append(tids, tid)
	}
	d, err := s.svc.Reserve(ctx, uid, shortuuid.New())
	require.NoError(t, err)
	assert.False(t, d.Allowed())

	require.NoError(t, s.svc.Cancel(ctx, uid, tids[0]))
	require.NoError(t, s.svc.Confirm(ctx, uid, tids[1]))
	assert.Equal(t, int64(4), s.svc.Check(ctx, uid).Usage().WeeklyUsed)

	// 剩下三个还停在 reserved
	cnt, err := s.svc.CloseStaleReservations(ctx, time.Now().Add(time.Minute), 100)
	require.NoError(t, err)
	assert.Equal(t, 3, cnt)
	assert.Equal(t, int64(1), s.svc.Check(ctx, uid).Usage().WeeklyUsed)
}

func TestReserve(t *testing.T) {
	suite.Run(t, new(ReserveTestSuite))
}
