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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/caselab/internal/onboarding/internal/domain"
	"github.com/ecodeclub/caselab/internal/onboarding/internal/repository/cache"
	onboardingmocks "github.com/ecodeclub/caselab/internal/onboarding/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = int64(123)

func TestService_State(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) cache.ProgressCache
		wantProg domain.Progress
	}{
		{
			name: "没有进度",
			mock: func(ctrl *gomock.Controller) cache.ProgressCache {
				c := onboardingmocks.NewMockProgressCache(ctrl)
				c.EXPECT().Get(gomock.Any(), uid).Return(domain.Progress{}, cache.ErrProgressNotFound)
				return c
			},
			wantProg: domain.Progress{Step: 1, Selections: map[int]int{}},
		},
		{
			name: "恢复进度",
			mock: func(ctrl *gomock.Controller) cache.ProgressCache {
				c := onboardingmocks.NewMockProgressCache(ctrl)
				c.EXPECT().Get(gomock.Any(), uid).Return(domain.Progress{Step: 3, Selections: map[int]int{1: 1, 2: 0}}, nil)
				return c
			},
			wantProg: domain.Progress{Step: 3, Selections: map[int]int{1: 1, 2: 0}},
		},
		{
			name: "进度不合法",
			mock: func(ctrl *gomock.Controller) cache.ProgressCache {
				c := onboardingmocks.NewMockProgressCache(ctrl)
				c.EXPECT().Get(gomock.Any(), uid).Return(domain.Progress{Step: 8}, nil)
				return c
			},
			wantProg: domain.Progress{Step: 1, Selections: map[int]int{}},
		},
		{
			name: "缓存出错",
			mock: func(ctrl *gomock.Controller) cache.ProgressCache {
				c := onboardingmocks.NewMockProgressCache(ctrl)
				c.EXPECT().Get(gomock.Any(), uid).Return(domain.Progress{}, errors.New("mock redis error"))
				return c
			},
			wantProg: domain.Progress{Step: 1, Selections: map[int]int{}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			e, err := NewService(tc.mock(ctrl)).State(context.Background(), uid)
			require.NoError(t, err)
			assert.Equal(t, tc.wantProg, e.Progress())
		})
	}
}

func TestService_Operations(t *testing.T) {
	testCases := []struct {
		name     string
		stored   domain.Progress
		setErr   error
		op       func(svc Service) (*domain.Engine, error)
		wantErr  error
		wantProg domain.Progress
		// 操作成功才会保存
		wantSave bool
	}{
		{
			name:   "选择",
			stored: domain.Progress{Step: 2, Selections: map[int]int{1: 1}},
			op: func(svc Service) (*domain.Engine, error) {
				return svc.Select(context.Background(), uid, 0)
			},
			wantProg: domain.Progress{Step: 2, Selections: map[int]int{1: 1, 2: 0}},
			wantSave: true,
		},
		{
			name:   "重复选择",
			stored: domain.Progress{Step: 2, Selections: map[int]int{1: 1, 2: 0}},
			op: func(svc Service) (*domain.Engine, error) {
				return svc.Select(context.Background(), uid, 1)
			},
			wantErr:  domain.ErrAlreadyAnswered,
			wantProg: domain.Progress{Step: 2, Selections: map[int]int{1: 1, 2: 0}},
		},
		{
			name:   "没有选择不能继续",
			stored: domain.Progress{Step: 2, Selections: map[int]int{1: 1}},
			op: func(svc Service) (*domain.Engine, error) {
				return svc.Next(context.Background(), uid)
			},
			wantErr:  domain.ErrNoSelection,
			wantProg: domain.Progress{Step: 2, Selections: map[int]int{1: 1}},
		},
		{
			name:   "第五步之后完成",
			stored: domain.Progress{Step: 5, Selections: map[int]int{5: 1}},
			op: func(svc Service) (*domain.Engine, error) {
				return svc.Next(context.Background(), uid)
			},
			wantProg: domain.Progress{Step: 5, Completed: true, Selections: map[int]int{5: 1}},
			wantSave: true,
		},
		{
			name:   "跳过没有确认",
			stored: domain.Progress{Step: 2, Selections: map[int]int{1: 1}},
			op: func(svc Service) (*domain.Engine, error) {
				return svc.Skip(context.Background(), uid, false)
			},
			wantErr:  domain.ErrSkipNotConfirmed,
			wantProg: domain.Progress{Step: 2, Selections: map[int]int{1: 1}},
		},
		{
			name:   "跳过",
			stored: domain.Progress{Step: 2, Selections: map[int]int{1: 1}},
			op: func(svc Service) (*domain.Engine, error) {
				return svc.Skip(context.Background(), uid, true)
			},
			wantProg: domain.Progress{Step: 2, Completed: true, Selections: map[int]int{1: 1}},
			wantSave: true,
		},
		{
			name:   "重新开始",
			stored: domain.Progress{Step: 5, Completed: true, Selections: map[int]int{1: 1, 5: 1}},
			op: func(svc Service) (*domain.Engine, error) {
				return svc.Restart(context.Background(), uid)
			},
			wantProg: domain.Progress{Step: 1, Selections: map[int]int{}},
			wantSave: true,
		},
		{
			name:   "保存失败不影响结果",
			stored: domain.Progress{Step: 1, Selections: map[int]int{}},
			setErr: errors.New("mock redis error"),
			op: func(svc Service) (*domain.Engine, error) {
				return svc.Select(context.Background(), uid, 1)
			},
			wantProg: domain.Progress{Step: 1, Selections: map[int]int{1: 1}},
			wantSave: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := onboardingmocks.NewMockProgressCache(ctrl)
			c.EXPECT().Get(gomock.Any(), uid).Return(tc.stored, nil)
			if tc.wantSave {
				c.EXPECT().Set(gomock.Any(), uid, tc.wantProg).Return(tc.setErr)
			}
			e, err := tc.op(NewService(c))
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantProg, e.Progress())
		})
	}
}
