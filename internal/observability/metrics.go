// Package observability registra las métricas Prometheus del motor de resolución.
package observability

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/facturas-graph/internal/application/graph"
	"github.com/jhoicas/facturas-graph/internal/application/relation"
	"github.com/jhoicas/facturas-graph/internal/domain/entity"
)

var (
	_ graph.Observer        = (*Metrics)(nil)
	_ relation.ScanObserver = (*Metrics)(nil)
)

// Metrics agrupa los colectores del motor.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	scans      *prometheus.CounterVec
	scanned    *prometheus.CounterVec
}

// NewMetrics crea y registra los colectores en reg (DefaultRegisterer si es nil).
// Si ya estaban registrados reutiliza los existentes.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "facturas_graph_operations_total",
			Help: "Operaciones GraphQL resueltas por tipo y estado.",
		}, []string{"type", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "facturas_graph_operation_duration_seconds",
			Help:    "Duración de la resolución completa de una operación.",
			Buckets: prometheus.DefBuckets,
		}, []string{"type"}),
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "facturas_graph_relationship_scans_total",
			Help: "Recorridos completos de colección para resolver hijos.",
		}, []string{"relationship"}),
		scanned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "facturas_graph_records_scanned_total",
			Help: "Registros examinados al resolver hijos.",
		}, []string{"relationship"}),
	}

	if err := register(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := register(reg, &m.duration); err != nil {
		return nil, err
	}
	if err := register(reg, &m.scans); err != nil {
		return nil, err
	}
	if err := register(reg, &m.scanned); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c *C) error {
	if err := reg.Register(*c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				*c = existing
				return nil
			}
		}
		return err
	}
	return nil
}

// ObserveOperation implementa graph.Observer.
func (m *Metrics) ObserveOperation(op graph.OperationType, d time.Duration, failed bool) {
	status := "ok"
	if failed {
		status = "error"
	}
	m.operations.WithLabelValues(string(op), status).Inc()
	m.duration.WithLabelValues(string(op)).Observe(d.Seconds())
}

// ObserveScan implementa relation.ScanObserver.
func (m *Metrics) ObserveScan(childKind entity.Kind, foreignKey string, scanned int) {
	label := string(childKind) + "." + foreignKey
	m.scans.WithLabelValues(label).Inc()
	m.scanned.WithLabelValues(label).Add(float64(scanned))
}
