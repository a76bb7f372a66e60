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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		if ctx.GetHeader("Authorization") != "Bearer token-1" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
		}
	})
	server.GET("/check-case-limit", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, ginx.Result{Data: Usage{CanGenerate: true, WeeklyLimit: 5, TariffName: "free"}})
	})
	server.POST("/generate-case", func(ctx *gin.Context) {
		var req map[string]int64
		require.NoError(t, ctx.BindJSON(&req))
		if req["case_type_id"] == 99 {
			time.Sleep(200 * time.Millisecond)
		}
		ctx.JSON(http.StatusOK, ginx.Result{Data: Case{Id: 1, Title: "t", Description: "d"}})
	})
	server.POST("/submit-response", func(ctx *gin.Context) {
		ctx.JSON(http.StatusBadRequest, ginx.Result{Code: 510007, Msg: "Your response must be at least 50 characters"})
	})
	server.POST("/assess-response", func(ctx *gin.Context) {
		// 200 但是带业务错误码
		ctx.JSON(http.StatusOK, ginx.Result{Code: 510001, Msg: "System error"})
	})
	srv := httptest.NewServer(server)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPBackend(t *testing.T) {
	srv := newTestServer(t)
	b := NewHTTPBackend(srv.URL)
	ctx := context.Background()
	sess := Session{Uid: 1, Token: "token-1"}

	u, err := b.CheckLimit(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, Usage{CanGenerate: true, WeeklyLimit: 5, TariffName: "free"}, u)

	c, err := b.GenerateCase(ctx, sess, 0)
	require.NoError(t, err)
	assert.Equal(t, Case{Id: 1, Title: "t", Description: "d"}, c)

	_, err = b.SubmitResponse(ctx, sess, SubmitRequest{CaseId: 1, ResponseText: "short"})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StatusError{Status: http.StatusBadRequest, Code: 510007,
		Msg: "Your response must be at least 50 characters"}, *se)
	assert.False(t, IsNetworkError(err))

	_, err = b.AssessResponse(ctx, sess, 1, 1)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 510001, se.Code)

	_, err = b.CheckLimit(ctx, Session{Uid: 1, Token: "expired"})
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Status)
}

func TestHTTPBackend_NetworkError(t *testing.T) {
	srv := newTestServer(t)
	sess := Session{Uid: 1, Token: "token-1"}

	// 超时
	b := NewHTTPBackendWithClient(resty.New().SetBaseURL(srv.URL).SetTimeout(50 * time.Millisecond))
	_, err := b.GenerateCase(context.Background(), sess, 99)
	assert.True(t, IsNetworkError(err))

	// 连接不上
	closed := httptest.NewServer(http.NotFoundHandler())
	closed.Close()
	b = NewHTTPBackend(closed.URL)
	_, err = b.CheckLimit(context.Background(), sess)
	assert.True(t, IsNetworkError(err))

	// 调用方取消的不算
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewHTTPBackend(srv.URL).CheckLimit(ctx, sess)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsNetworkError(err))
}
