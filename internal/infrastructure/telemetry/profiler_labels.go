package telemetry

import (
	"context"
	"sort"

	"github.com/grafana/pyroscope-go"
)

// Profiling label keys
const (
	ProfilingLabelRoute     = "route"
	ProfilingLabelMethod    = "method"
	ProfilingLabelOperation = "operation"
)

// MaxLabelValueLength caps label values
const MaxLabelValueLength = 128

// highCardinalityLabels never become profiling labels
var highCardinalityLabels = map[string]bool{
	"admin_id":   true,
	"request_id": true,
	"trace_id":   true,
	"span_id":    true,
}

// WithProfilingLabels runs fn with labels attached to the goroutine's
// profiling samples. Empty and high-cardinality labels are dropped.
func WithProfilingLabels(ctx context.Context, labels map[string]string, fn func(context.Context)) {
	pairs := labelPairs(labels)
	if len(pairs) == 0 {
		fn(ctx)
		return
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels(pairs...), fn)
}

// labelPairs flattens labels into sorted key, value pairs
func labelPairs(labels map[string]string) []string {
	keys := make([]string, 0, len(labels))
	for k, v := range labels {
		if k == "" || v == "" || highCardinalityLabels[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		v := labels[k]
		if len(v) > MaxLabelValueLength {
			v = v[:MaxLabelValueLength]
		}
		pairs = append(pairs, k, v)
	}
	return pairs
}

// HTTPRequestLabels builds the labels the profiling middleware applies
func HTTPRequestLabels(route, method string) map[string]string {
	return map[string]string{
		ProfilingLabelRoute:  route,
		ProfilingLabelMethod: method,
	}
}
