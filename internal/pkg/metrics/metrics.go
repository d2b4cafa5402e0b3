package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hr_hierarchy",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route, method and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	// HierarchyOperations 层级操作次数
	HierarchyOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hr_hierarchy",
		Name:      "operations_total",
		Help:      "Hierarchy operations by operation and result.",
	}, []string{"operation", "result"})

	// HierarchyEmployees 最近一次写入或巡检时的员工数
	HierarchyEmployees = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "hr_hierarchy",
		Name:      "employees",
		Help:      "Number of people in the stored hierarchy.",
	})
)

// ObserveOperation 记录一次层级操作
func ObserveOperation(operation, result string) {
	HierarchyOperations.WithLabelValues(operation, result).Inc()
}
