// Package check turns a raw rrddata sample into a plugin verdict.
package check

import (
	"fmt"

	"github.com/nightness333/check-proxmox/pkg/types"
	"github.com/nightness333/check-proxmox/pkg/utils"
)

const (
	kibibyte = 1024
	mebibyte = 1024 * 1024

	unknownUnit = "unknown"
)

type conversion struct {
	unit  string
	apply func(float64) float64
}

func scale(factor float64) func(float64) float64 {
	return func(v float64) float64 { return utils.Round(v*factor, 2) }
}

func divide(divisor float64) func(float64) float64 {
	return func(v float64) float64 { return utils.Round(v/divisor, 2) }
}

func identity(v float64) float64 { return v }

var conversions = map[types.Metric]conversion{
	types.MetricCPU:       {unit: "pct", apply: scale(100)},
	types.MetricIOWait:    {unit: "pct", apply: scale(100)},
	types.MetricMem:       {unit: "mebibytes", apply: divide(mebibyte)},
	types.MetricMemUsed:   {unit: "mebibytes", apply: divide(mebibyte)},
	types.MetricNetIn:     {unit: "kibibytes_in", apply: divide(kibibyte)},
	types.MetricNetOut:    {unit: "kibibytes_out", apply: divide(kibibyte)},
	types.MetricSwapUsed:  {unit: "mebibytes_used_swap", apply: divide(mebibyte)},
	types.MetricLoadAvg:   {unit: "load_avg", apply: identity},
	types.MetricRootUsed:  {unit: "mebibytes_used_root", apply: divide(mebibyte)},
	types.MetricDiskRead:  {unit: "mebibytes_read", apply: divide(mebibyte)},
	types.MetricDiskWrite: {unit: "mebibytes_write", apply: divide(mebibyte)},
}

// Convert scales a raw sample into its display unit.
func Convert(metric types.Metric, raw float64) (float64, string) {
	c, ok := conversions[metric]
	if !ok {
		return raw, unknownUnit
	}
	return c.apply(raw), c.unit
}

// Evaluate converts raw and classifies it against th. Both limits are tested
// with a strict greater-than; a critical breach replaces a warning one.
func Evaluate(metric types.Metric, raw float64, th types.Thresholds) types.Verdict {
	value, unit := Convert(metric, raw)
	status := types.StatusOK

	if th.Warning != nil && value > *th.Warning {
		status = types.StatusWarning
	}
	if th.Critical != nil && value > *th.Critical {
		status = types.StatusCritical
	}

	shown := utils.FormatValue(value)
	perfData := fmt.Sprintf("'%s'=%s%s;%s;%s", metric, shown, unit,
		utils.FormatThreshold(th.Warning), utils.FormatThreshold(th.Critical))

	return types.Verdict{
		Status:   status,
		Message:  fmt.Sprintf("%s: %s is %s", status, metric, shown),
		Unit:     unit,
		Value:    value,
		PerfData: perfData,
	}
}
