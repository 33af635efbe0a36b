package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var outputCacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "output_cache",
	Name:      "lookups_total",
	Help:      "Previous-output cache lookups by result (hit, miss, error).",
}, []string{"backend", "result"})

// OutputCache tracks previous-output cache effectiveness.
type OutputCache struct {
	backend string
}

// NewOutputCache constructs an OutputCache collector for backend (redis, badger).
func NewOutputCache(backend string) *OutputCache {
	return &OutputCache{backend: orUnknown(backend)}
}

// ObserveLookup records one lookup.
func (m OutputCache) ObserveLookup(hit bool, err error) {
	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case hit:
		result = "hit"
	}
	outputCacheLookupsTotal.WithLabelValues(m.backend, result).Inc()
}
