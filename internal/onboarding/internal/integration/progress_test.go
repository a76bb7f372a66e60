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
	"testing"

	"github.com/ecodeclub/caselab/internal/onboarding/internal/domain"
	"github.com/ecodeclub/caselab/internal/onboarding/internal/repository/cache"
	"github.com/ecodeclub/caselab/internal/onboarding/internal/service"
	testioc "github.com/ecodeclub/caselab/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProgressTestSuite struct {
	suite.Suite
	cache cache.ProgressCache
	svc   service.Service
}

func (s *ProgressTestSuite) SetupSuite() {
	s.cache = cache.NewProgressCache(testioc.InitCache())
	s.svc = service.NewService(s.cache)
}

func (s *ProgressTestSuite) TestCache() {
	t := s.T()
	ctx := context.Background()
	_, err := s.cache.Get(ctx, 10001)
	assert.ErrorIs(t, err, cache.ErrProgressNotFound)

	p := domain.Progress{Step: 3, Selections: map[int]int{1: 1, 2: 0, 3: 2}}
	require.NoError(t, s.cache.Set(ctx, 10001, p))
	got, err := s.cache.Get(ctx, 10001)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func (s *ProgressTestSuite) TestWalkThrough() {
	t := s.T()
	ctx := context.Background()
	const uid = 10002
	for i := 0; i < domain.StepCount; i++ {
		_, err := s.svc.Select(ctx, uid, 0)
		require.NoError(t, err)
		_, err = s.svc.Next(ctx, uid)
		require.NoError(t, err)
	}
	e, err := s.svc.State(ctx, uid)
	require.NoError(t, err)
	assert.True(t, e.Completed())

	e, err = s.svc.Restart(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, domain.Progress{Step: 1, Selections: map[int]int{}}, e.Progress())
}

func TestProgress(t *testing.T) {
	suite.Run(t, new(ProgressTestSuite))
}
