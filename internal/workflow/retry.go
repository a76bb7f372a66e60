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

package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

// Strategy 和 ekit retry.Strategy 的 Next 一致，返回下一次重试前要等待的时间
type Strategy interface {
	Next() (time.Duration, bool)
}

// RetryPolicy 每次调用 Retry 都会用 NewStrategy 创建一个新的 Strategy
type RetryPolicy struct {
	NewStrategy func() Strategy
	// Retryable 返回 false 的错误直接返回，不重试
	Retryable func(err error) bool
	Sleep     func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy 最多尝试三次，分别等待 1s 和 2s
func DefaultRetryPolicy() RetryPolicy {
	return LinearRetryPolicy(3, time.Second)
}

func LinearRetryPolicy(maxAttempts int, step time.Duration) RetryPolicy {
	return RetryPolicy{
		NewStrategy: func() Strategy {
			return &linearStrategy{step: step, maxRetries: maxAttempts - 1}
		},
		Retryable: IsNetworkError,
		Sleep:     sleep,
	}
}

// ExponentialRetryPolicy 指数退避，用于需要更长等待的场景
func ExponentialRetryPolicy(initial, maxInterval time.Duration, maxRetries int32) (RetryPolicy, error) {
	// 提前校验参数
	if _, err := retry.NewExponentialBackoffRetryStrategy(initial, maxInterval, maxRetries); err != nil {
		return RetryPolicy{}, err
	}
	return RetryPolicy{
		NewStrategy: func() Strategy {
			s, _ := retry.NewExponentialBackoffRetryStrategy(initial, maxInterval, maxRetries)
			return s
		},
		Retryable: IsNetworkError,
		Sleep:     sleep,
	}, nil
}

type linearStrategy struct {
	step       time.Duration
	maxRetries int
	retries    int
}

func (s *linearStrategy) Next() (time.Duration, bool) {
	if s.retries >= s.maxRetries {
		return 0, false
	}
	s.retries++
	return time.Duration(s.retries) * s.step, true
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retry 执行 fn，遇到可以重试的错误按照 policy 等待之后再次执行。
// 重试次数用完之后返回最后一次的错误
func Retry[T any](ctx context.Context, policy RetryPolicy, fn func(ctx context.Context) (T, error)) (T, error) {
	strategy := policy.NewStrategy()
	retryable := policy.Retryable
	if retryable == nil {
		retryable = IsNetworkError
	}
	sleepFn := policy.Sleep
	if sleepFn == nil {
		sleepFn = sleep
	}
	for {
		res, err := fn(ctx)
		if err == nil || !retryable(err) {
			return res, err
		}
		interval, ok := strategy.Next()
		if !ok {
			return res, err
		}
		if er := sleepFn(ctx, interval); er != nil {
			return res, errors.Join(err, er)
		}
	}
}
