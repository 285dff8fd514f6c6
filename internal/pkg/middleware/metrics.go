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

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
	inflight   *prometheus.GaugeVec
}

// NewMetricsBuilder server 用于区分 web 和 admin 两个 server
func NewMetricsBuilder(server string) *MetricsBuilder {
	labels := prometheus.Labels{"server": server}
	summaryVec := promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:   "mastersolis",
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		},
		[]string{"method", "path", "status_code"},
	)

	counterVec := promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   "mastersolis",
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		},
		[]string{"method", "path", "status_code"},
	)

	inflight := promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace:   "mastersolis",
			Name:        "http_requests_inflight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: labels,
		},
		[]string{"method", "path"},
	)

	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
		inflight:   inflight,
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		method := ctx.Request.Method
		// 没有匹配上路由的请求统一归类，避免 label 爆炸
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		gauge := a.inflight.WithLabelValues(method, path)
		gauge.Inc()
		defer gauge.Dec()

		ctx.Next()

		statusCode := strconv.Itoa(ctx.Writer.Status())
		a.summaryVec.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		a.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
