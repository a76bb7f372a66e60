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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 记录 HTTP 请求的耗时和次数，web 和 admin 两个 server 共用
type MetricsBuilder struct {
	duration *prometheus.SummaryVec
	total    *prometheus.CounterVec
}

func NewMetricsBuilder() *MetricsBuilder {
	return newMetricsBuilder(prometheus.DefaultRegisterer)
}

func newMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	factory := promauto.With(reg)
	return &MetricsBuilder{
		duration: factory.NewSummaryVec(prometheus.SummaryOpts{
			Namespace: "caselab",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		}, labels),
		total: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "caselab",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, labels),
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		// 没匹配上路由的时候 FullPath 为空，用原始路径会让 label 爆炸
		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		b.duration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		b.total.WithLabelValues(ctx.Request.Method, path, status).Inc()
	}
}
