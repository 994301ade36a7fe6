package cmd

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/nightness333/check-proxmox/pkg/types"
)

// metricValue is a pflag.Value that only accepts the metrics of one scope.
type metricValue struct {
	allowed sets.Set[types.Metric]
	value   types.Metric
}

func newMetricValue(allowed sets.Set[types.Metric]) *metricValue {
	return &metricValue{allowed: allowed}
}

func (m *metricValue) String() string {
	return string(m.value)
}

func (m *metricValue) Set(s string) error {
	metric := types.Metric(s)
	if !m.allowed.Has(metric) {
		return fmt.Errorf("invalid choice %q (choose from %s)", s, m.choices())
	}
	m.value = metric
	return nil
}

func (m *metricValue) Type() string {
	return "metric"
}

func (m *metricValue) list() []string {
	metrics := sets.List(m.allowed)
	names := make([]string, 0, len(metrics))
	for _, metric := range metrics {
		names = append(names, string(metric))
	}
	return names
}

func (m *metricValue) choices() string {
	return strings.Join(m.list(), ", ")
}
