package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ServiceType 定義服務類型
type ServiceType string

const (
	ServiceTypeGoogle     ServiceType = "google"
	ServiceTypeDirections ServiceType = "directions"
	ServiceTypePlaces     ServiceType = "places"
)

// OperationType 定義操作類型
type OperationType string

const (
	OperationDirections   OperationType = "directions"
	OperationTextSearch   OperationType = "textsearch"
	OperationGetRoutes    OperationType = "get_routes"
	OperationSearchPlaces OperationType = "search_places"
)

// OperationStatus 定義操作狀態
type OperationStatus string

const (
	StatusSuccess       OperationStatus = "success"
	StatusEmpty         OperationStatus = "empty"
	StatusInvalid       OperationStatus = "invalid"
	StatusSchemaError   OperationStatus = "schema_error"
	StatusProviderError OperationStatus = "provider_error"
	StatusTimeout       OperationStatus = "timeout"
)

var (
	serviceOperationsTotal   *prometheus.CounterVec
	serviceOperationDuration *prometheus.HistogramVec
)

// InitServiceMetrics 初始化 Service 層 metrics
func InitServiceMetrics(registry *prometheus.Registry) error {
	operationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "service_operations_total",
			Help: "Total number of service layer operations",
		},
		[]string{"service", "operation", "status"},
	)

	operationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "service_operation_duration_seconds",
			Help:    "Duration of service layer operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)

	if err := registry.Register(operationsTotal); err != nil {
		return err
	}

	if err := registry.Register(operationDuration); err != nil {
		return err
	}

	serviceOperationsTotal = operationsTotal
	serviceOperationDuration = operationDuration
	return nil
}

// RecordServiceOperation 記錄 Service 層操作 metrics，未初始化時不做事
func RecordServiceOperation(service ServiceType, operation OperationType, status OperationStatus, duration time.Duration) {
	if serviceOperationsTotal != nil && serviceOperationDuration != nil {
		serviceOperationsTotal.WithLabelValues(string(service), string(operation), string(status)).Inc()
		serviceOperationDuration.WithLabelValues(string(service), string(operation)).Observe(duration.Seconds())
	}
}

// RecordGoogleCall 專門記錄 Google API 呼叫的便利函數
func RecordGoogleCall(operation OperationType, status OperationStatus, duration time.Duration) {
	RecordServiceOperation(ServiceTypeGoogle, operation, status, duration)
}
