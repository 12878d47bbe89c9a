package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineCollector exposes Prometheus metrics for the spatial index engine
// operations driven by the API layer.
type EngineCollector struct {
	gatherer prometheus.Gatherer

	FillDuration    prometheus.Histogram
	FillCells       prometheus.Histogram
	TraversalCells  prometheus.Histogram
	CompactionRatio prometheus.Histogram
	GuardrailTrips  prometheus.Counter
}

// NewEngineCollector registers engine metrics against the provided registerer.
func NewEngineCollector(reg prometheus.Registerer) (*EngineCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	fillDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hexgrid_fill_duration_seconds",
		Help:    "Duration of polygon flood fills performed by the engine.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})
	fillDuration, err := registerHistogram(reg, fillDuration, "hexgrid_fill_duration_seconds")
	if err != nil {
		return nil, err
	}

	fillCells := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hexgrid_fill_cells",
		Help:    "Number of cells returned by polygon flood fills.",
		Buckets: prometheus.ExponentialBuckets(1, 8, 8),
	})
	fillCells, err = registerHistogram(reg, fillCells, "hexgrid_fill_cells")
	if err != nil {
		return nil, err
	}

	traversalCells := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hexgrid_traversal_cells",
		Help:    "Number of cells returned by disk, ring, and path traversals.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})
	traversalCells, err = registerHistogram(reg, traversalCells, "hexgrid_traversal_cells")
	if err != nil {
		return nil, err
	}

	compactionRatio := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "hexgrid_compaction_ratio",
		Help:    "Ratio of output to input cells for compaction requests.",
		Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
	})
	compactionRatio, err = registerHistogram(reg, compactionRatio, "hexgrid_compaction_ratio")
	if err != nil {
		return nil, err
	}

	guardrails := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hexgrid_guardrail_trips_total",
		Help: "Cumulative number of requests rejected by configured size guardrails.",
	})
	guardrails, err = registerCounter(reg, guardrails, "hexgrid_guardrail_trips_total")
	if err != nil {
		return nil, err
	}

	return &EngineCollector{
		gatherer:        gatherer,
		FillDuration:    fillDuration,
		FillCells:       fillCells,
		TraversalCells:  traversalCells,
		CompactionRatio: compactionRatio,
		GuardrailTrips:  guardrails,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *EngineCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// ObserveFill records the duration and result size of a polygon flood fill.
func (c *EngineCollector) ObserveFill(d time.Duration, cells int) {
	if c == nil {
		return
	}
	if c.FillDuration != nil {
		c.FillDuration.Observe(d.Seconds())
	}
	if c.FillCells != nil {
		c.FillCells.Observe(float64(cells))
	}
}

// ObserveTraversal records the result size of a disk, ring, or path traversal.
func (c *EngineCollector) ObserveTraversal(cells int) {
	if c == nil || c.TraversalCells == nil {
		return
	}
	c.TraversalCells.Observe(float64(cells))
}

// ObserveCompaction records the output-to-input ratio of a compaction.
func (c *EngineCollector) ObserveCompaction(inputCells, outputCells int) {
	if c == nil || c.CompactionRatio == nil || inputCells <= 0 {
		return
	}
	c.CompactionRatio.Observe(float64(outputCells) / float64(inputCells))
}

// IncGuardrailTrips increments the guardrail rejection counter.
func (c *EngineCollector) IncGuardrailTrips() {
	if c == nil || c.GuardrailTrips == nil {
		return
	}
	c.GuardrailTrips.Inc()
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
