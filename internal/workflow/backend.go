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
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=./backend.go -package=workflowmocks -destination=./mocks/backend.mock.go -typed=false Backend
type Backend interface {
	CheckLimit(ctx context.Context, sess Session) (Usage, error)
	GenerateCase(ctx context.Context, sess Session, caseTypeId int64) (Case, error)
	SubmitResponse(ctx context.Context, sess Session, req SubmitRequest) (ResponseRef, error)
	AssessResponse(ctx context.Context, sess Session, caseId, responseId int64) (Assessment, error)
}

const defaultRequestTimeout = 30 * time.Second

type result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// HTTPBackend 调用案例服务的 HTTP 接口
type HTTPBackend struct {
	client *resty.Client
}

func NewHTTPBackend(baseURL string) *HTTPBackend {
	return NewHTTPBackendWithClient(resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultRequestTimeout))
}

func NewHTTPBackendWithClient(client *resty.Client) *HTTPBackend {
	return &HTTPBackend{client: client}
}

func (b *HTTPBackend) CheckLimit(ctx context.Context, sess Session) (Usage, error) {
	return call[Usage](ctx, b.client.R(), sess, http.MethodGet, "/check-case-limit", nil)
}

func (b *HTTPBackend) GenerateCase(ctx context.Context, sess Session, caseTypeId int64) (Case, error) {
	return call[Case](ctx, b.client.R(), sess, http.MethodPost, "/generate-case", map[string]int64{
		"case_type_id": caseTypeId,
	})
}

func (b *HTTPBackend) SubmitResponse(ctx context.Context, sess Session, req SubmitRequest) (ResponseRef, error) {
	return call[ResponseRef](ctx, b.client.R(), sess, http.MethodPost, "/submit-response", req)
}

func (b *HTTPBackend) AssessResponse(ctx context.Context, sess Session, caseId, responseId int64) (Assessment, error) {
	return call[Assessment](ctx, b.client.R(), sess, http.MethodPost, "/assess-response", map[string]int64{
		"case_id":          caseId,
		"user_response_id": responseId,
	})
}

func call[T any](ctx context.Context, req *resty.Request, sess Session,
	method, path string, body any) (T, error) {
	var (
		res  result[T]
		fail result[any]
		zero T
	)
	req = req.SetContext(ctx).
		SetAuthToken(sess.Token).
		SetResult(&res).
		SetError(&fail)
	if body != nil {
		req = req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		// 调用方自己取消的不算网络错误，也就不会重试
		if errors.Is(err, context.Canceled) {
			return zero, err
		}
		return zero, &NetworkError{Err: err}
	}
	if resp.IsError() {
		return zero, &StatusError{Status: resp.StatusCode(), Code: fail.Code, Msg: fail.Msg}
	}
	if res.Code != 0 {
		// 200 但是带了业务错误码
		return zero, &StatusError{Status: resp.StatusCode(), Code: res.Code, Msg: res.Msg}
	}
	return res.Data, nil
}
