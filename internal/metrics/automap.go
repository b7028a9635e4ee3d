// Package metrics provides Prometheus metrics for rowmap auto-mapping.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Detection reasons used as the "reason" label.
const (
	ReasonUnknownProperty = "unknown_property"
	ReasonNoTypeHandler   = "no_type_handler"
)

var (
	// UnknownColumnTotal counts auto-mapping detections by active behavior and reason.
	UnknownColumnTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rowmap_unknown_column_total",
		Help: "Total number of unknown columns detected on auto-mapping, by behavior and reason.",
	}, []string{"behavior", "reason"})

	// AutoMappingPlanCacheTotal counts plan cache lookups by result (hit/miss).
	AutoMappingPlanCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rowmap_automapping_plan_cache_total",
		Help: "Total number of auto-mapping plan cache lookups, by result.",
	}, []string{"result"})
)

// RecordUnknownColumn increments UnknownColumnTotal.
func RecordUnknownColumn(behavior, reason string) {
	UnknownColumnTotal.WithLabelValues(behavior, reason).Inc()
}

// RecordPlanCache increments AutoMappingPlanCacheTotal.
func RecordPlanCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	AutoMappingPlanCacheTotal.WithLabelValues(result).Inc()
}
