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
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidTransition = errors.New("当前状态不允许这个操作")
	ErrBusy              = errors.New("上一个请求还没有结束")
)

// NetworkError 连接失败、超时这类请求根本没有拿到响应的错误，只有它会被重试
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("网络错误: %s", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// StatusError 服务端返回了非 2xx 的响应
type StatusError struct {
	Status int
	// 服务端的业务错误码和信息
	Code int
	Msg  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("请求失败, status: %d, code: %d, msg: %s", e.Status, e.Code, e.Msg)
}

type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindQuota       ErrorKind = "quota"
	KindAuth        ErrorKind = "auth"
	KindRateLimited ErrorKind = "rate_limited"
	KindServer      ErrorKind = "server"
	KindNetwork     ErrorKind = "network"
	KindFailed      ErrorKind = "failed"
)

// UserError 可以直接展示给用户的错误，原始错误放在 Err 里面只用于日志
type UserError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func quotaError(u Usage) *UserError {
	return &UserError{
		Kind: KindQuota,
		Message: fmt.Sprintf("Case generation limit reached on the %s plan. Your quota resets on %s.",
			u.TariffName, u.ResetDate),
	}
}

// toUserError 把后端和网络错误转换成用户能看懂的信息
func toUserError(err error) *UserError {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue
	}
	if IsNetworkError(err) {
		return &UserError{Kind: KindNetwork, Message: "Network error, please check your connection.", Err: err}
	}
	var se *StatusError
	if !errors.As(err, &se) {
		return &UserError{Kind: KindFailed, Message: "Request failed, please try again.", Err: err}
	}
	switch {
	case se.Status == http.StatusTooManyRequests:
		return &UserError{Kind: KindRateLimited, Message: "Too many requests, please wait before trying again.", Err: err}
	case se.Status == http.StatusUnauthorized:
		return &UserError{Kind: KindAuth, Message: "Your session has expired, please sign in again.", Err: err}
	case se.Status >= http.StatusInternalServerError:
		return &UserError{Kind: KindServer, Message: "Server error, please try again later.", Err: err}
	default:
		return &UserError{Kind: KindFailed, Message: fmt.Sprintf("Request failed (status %d).", se.Status), Err: err}
	}
}
