package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ytget/sort-visualizer/internal/sorter"
)

const namespace = "sortviz"

// Metrics used in monitoring service.
var (
	sortsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Number of finished sort passes",
			Name:      "sorts_total",
			Namespace: namespace,
		},
		[]string{"direction"},
	)
	swapsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Help:      "Number of swaps mirrored onto the board",
			Name:      "swaps_total",
			Namespace: namespace,
		},
	)
	comparisonsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Help:      "Number of pivot comparisons",
			Name:      "comparisons_total",
			Namespace: namespace,
		},
	)
	sortDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Help:      "Sort pass duration, including animation pacing",
			Name:      "sort_duration_seconds",
			Namespace: namespace,
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
	)
	generatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Help:      "Number of generated sequences",
			Name:      "generated_total",
			Namespace: namespace,
		},
	)
	sequenceLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Help:      "Length of the sequence currently on the board",
			Name:      "sequence_length",
			Namespace: namespace,
		},
	)
)

func init() {
	prometheus.MustRegister(
		sortsTotal,
		swapsTotal,
		comparisonsTotal,
		sortDuration,
		generatedTotal,
		sequenceLength,
	)
}

// Collector feeds sort and generation events into the registered metrics
type Collector struct{}

// NewCollector returns the collector bound to the default registry
func NewCollector() *Collector {
	return &Collector{}
}

// ObserveSort implements sorter.Recorder
func (c *Collector) ObserveSort(direction string, st sorter.Stats) {
	sortsTotal.WithLabelValues(direction).Inc()
	swapsTotal.Add(float64(st.Swaps))
	comparisonsTotal.Add(float64(st.Comparisons))
	sortDuration.Observe(st.Duration.Seconds())
}

// ObserveGenerated records a freshly generated board of the given length
func (c *Collector) ObserveGenerated(length int) {
	generatedTotal.Inc()
	sequenceLength.Set(float64(length))
}

// ObserveReset records that the board was discarded
func (c *Collector) ObserveReset() {
	sequenceLength.Set(0)
}
