package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Operation names used as the operation label
const (
	OperationEstimateGas      = "estimate_gas"
	OperationRequireAllowance = "require_allowance"
	OperationApprove          = "approve"
	OperationBridge           = "bridge"
)

// BridgeMetrics records the outcome and latency of bridge operations
type BridgeMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

func NewBridgeMetrics() *BridgeMetrics {
	return &BridgeMetrics{
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bridgekit",
				Subsystem: "bridge",
				Name:      "operations_total",
				Help:      "Total number of bridge operations",
			},
			[]string{"operation", "status"}, // success, error
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "bridgekit",
				Subsystem: "bridge",
				Name:      "operation_duration_seconds",
				Help:      "Time taken by a bridge operation including node round trips",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// Register adds the collectors to reg, collectors already registered are reused
func (m *BridgeMetrics) Register(reg prometheus.Registerer) {
	m.operationsTotal = registerIfNotExists(reg, m.operationsTotal, "operations_total")
	m.operationDuration = registerIfNotExists(reg, m.operationDuration, "operation_duration_seconds")
}

func registerIfNotExists[C prometheus.Collector](reg prometheus.Registerer, collector C, name string) C {
	if err := reg.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegErr) {
			zap.S().Debugf("%s already registered", name)
			if existing, ok := alreadyRegErr.ExistingCollector.(C); ok {
				return existing
			}
		} else {
			zap.S().Errorf("failed to register %s: %v", name, err)
		}
	}
	return collector
}

// Observe records one finished operation, nil receivers are a no-op
func (m *BridgeMetrics) Observe(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	m.operationsTotal.WithLabelValues(operation, status).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
