package types

import "k8s.io/apimachinery/pkg/util/sets"

type Scope string

const (
	ScopeNode       Scope = "node"
	ScopeVM         Scope = "vm"
	ScopeContainer  Scope = "container"
	ScopeDatacenter Scope = "datacenter"
)

// Segment is the rrddata path element under /nodes/{node}/ for the scope.
func (s Scope) Segment() string {
	switch s {
	case ScopeVM:
		return "qemu"
	case ScopeContainer:
		return "lxc"
	default:
		return ""
	}
}

type Metric string

const (
	MetricCPU       Metric = "cpu"
	MetricIOWait    Metric = "iowait"
	MetricMem       Metric = "mem"
	MetricMemUsed   Metric = "memused"
	MetricNetIn     Metric = "netin"
	MetricNetOut    Metric = "netout"
	MetricSwapUsed  Metric = "swapused"
	MetricLoadAvg   Metric = "loadavg"
	MetricRootUsed  Metric = "rootused"
	MetricDiskRead  Metric = "diskread"
	MetricDiskWrite Metric = "diskwrite"
)

var (
	NodeMetrics = sets.New(
		MetricCPU, MetricMemUsed, MetricNetIn, MetricNetOut,
		MetricSwapUsed, MetricIOWait, MetricLoadAvg, MetricRootUsed,
	)
	GuestMetrics = sets.New(
		MetricCPU, MetricMem, MetricDiskRead, MetricDiskWrite, MetricNetIn, MetricNetOut,
	)
)

// Metrics returns the metrics a scope can be checked for.
func (s Scope) Metrics() sets.Set[Metric] {
	switch s {
	case ScopeNode:
		return NodeMetrics
	case ScopeVM, ScopeContainer:
		return GuestMetrics
	default:
		return sets.New[Metric]()
	}
}

type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Thresholds holds optional warning and critical limits. A nil limit is not evaluated.
type Thresholds struct {
	Warning  *float64
	Critical *float64
}

type Verdict struct {
	Status   Status
	Message  string
	Unit     string
	Value    float64
	PerfData string
}

// String renders the plugin output line.
func (v Verdict) String() string {
	return v.Message + " | " + v.PerfData
}

type Sample map[string]any

// Series is the decoded body of an rrddata request.
type Series struct {
	Data []Sample `json:"data"`
}
