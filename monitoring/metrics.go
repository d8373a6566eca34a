// Package monitoring 提供Prometheus指标收集
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector 指标收集器，每个实例持有独立的注册表
type MetricsCollector struct {
	registry *prometheus.Registry

	predictions      *prometheus.CounterVec
	predictionErrors *prometheus.CounterVec
	predictLatency   prometheus.Histogram
	memoHits         prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewMetricsCollector 创建指标收集器
func NewMetricsCollector() *MetricsCollector {
	mc := &MetricsCollector{
		registry: prometheus.NewRegistry(),
		predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "phoneprice_predictions_total",
				Help: "Predictions served, by price category",
			},
			[]string{"category"},
		),
		predictionErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "phoneprice_prediction_errors_total",
				Help: "Failed prediction requests, by kind",
			},
			[]string{"kind"},
		),
		predictLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "phoneprice_prediction_duration_seconds",
			Help:    "Time spent in the scale and classify pipeline",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		}),
		memoHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "phoneprice_prediction_memo_hits_total",
			Help: "Predictions answered from the memo",
		}),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "phoneprice_http_requests_total",
				Help: "HTTP requests, by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "phoneprice_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	mc.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		mc.predictions,
		mc.predictionErrors,
		mc.predictLatency,
		mc.memoHits,
		mc.httpRequests,
		mc.httpDuration,
	)
	return mc
}

// ObservePrediction 记录一次成功预测
func (mc *MetricsCollector) ObservePrediction(category string, duration time.Duration) {
	mc.predictions.WithLabelValues(category).Inc()
	mc.predictLatency.Observe(duration.Seconds())
}

// RecordMemoHit 记录缓存命中
func (mc *MetricsCollector) RecordMemoHit(category string) {
	mc.predictions.WithLabelValues(category).Inc()
	mc.memoHits.Inc()
}

// RecordPredictionError 记录预测失败
func (mc *MetricsCollector) RecordPredictionError(kind string) {
	mc.predictionErrors.WithLabelValues(kind).Inc()
}

// ObserveRequest 记录HTTP请求
func (mc *MetricsCollector) ObserveRequest(method, route string, status int, duration time.Duration) {
	mc.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	mc.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler 返回指标导出处理器
func (mc *MetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(mc.registry, promhttp.HandlerOpts{Registry: mc.registry})
}

// Registry 返回底层注册表
func (mc *MetricsCollector) Registry() *prometheus.Registry {
	return mc.registry
}
