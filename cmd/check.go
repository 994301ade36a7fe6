package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/nightness333/check-proxmox/pkg/check"
	"github.com/nightness333/check-proxmox/pkg/parser"
	"github.com/nightness333/check-proxmox/pkg/proxmox"
	"github.com/nightness333/check-proxmox/pkg/types"
)

type target struct {
	scope      types.Scope
	node       string
	id         string
	metric     types.Metric
	thresholds types.Thresholds
}

func (o *options) endpoint() proxmox.Endpoint {
	return proxmox.Endpoint{
		Host:      o.v.GetString("host"),
		Port:      o.v.GetString("port"),
		Token:     o.v.GetString("oauthtoken"),
		TokenName: o.v.GetString("oauthname"),
		User:      o.v.GetString("user"),
	}
}

func (o *options) transport() proxmox.TransportOptions {
	return proxmox.TransportOptions{
		Insecure: o.v.GetBool("insecure"),
		CAFile:   o.v.GetString("ca-file"),
		Timeout:  o.v.GetDuration("timeout"),
	}
}

func (o *options) runCheck(ctx context.Context, t target) {
	client, err := proxmox.NewClient(o.endpoint(), o.transport())
	if err != nil {
		o.fail(err)
		return
	}

	series, err := fetchSeries(ctx, client, t)
	if err != nil {
		o.fail(err)
		return
	}

	raw, err := parser.Value(series, o.v.GetInt("sample-index"), t.metric)
	if err != nil {
		o.fail(err)
		return
	}

	verdict := check.Evaluate(t.metric, raw, t.thresholds)
	klog.V(2).Infof("%s %s: raw=%v value=%v status=%s", t.scope, t.metric, raw, verdict.Value, verdict.Status)
	fmt.Fprintln(o.out, verdict.String())
	o.status = verdict.Status
}

func fetchSeries(ctx context.Context, client *proxmox.Client, t target) (*types.Series, error) {
	switch t.scope {
	case types.ScopeVM:
		return client.FetchVMSeries(ctx, t.id, t.node)
	case types.ScopeContainer:
		return client.FetchContainerSeries(ctx, t.id, t.node)
	case types.ScopeNode:
		return client.FetchNodeSeries(ctx, t.node)
	default:
		return nil, errors.Errorf("scope %q has no rrddata endpoint", t.scope)
	}
}

// fail reports err on a single line, whatever the error text contains.
func (o *options) fail(err error) {
	klog.V(1).Infof("check failed: %+v", err)
	msg := strings.Join(strings.Fields(err.Error()), " ")
	fmt.Fprintf(o.out, "Plugin Error: %s. Setting to UNKNOWN\n", msg)
	o.status = types.StatusUnknown
}

// scopedThresholds drops thresholds for the pve and lxc scopes unless
// --enforce-thresholds is set; only vm applies them by default.
func (o *options) scopedThresholds(scope types.Scope, th types.Thresholds) types.Thresholds {
	if scope == types.ScopeVM || o.v.GetBool("enforce-thresholds") {
		return th
	}
	if th.Warning != nil || th.Critical != nil {
		klog.V(1).Infof("ignoring --warning/--critical for %s scope, pass --enforce-thresholds to apply them", scope)
	}
	return types.Thresholds{}
}

func addThresholdFlags(cmd *cobra.Command) {
	cmd.Flags().Int64P("warning", "w", 0, "The warning value threshold. If the metric exceeds this value, a warning will be thrown.")
	cmd.Flags().Int64P("critical", "c", 0, "The critical value threshold. If the metric exceeds this value, a critical will be thrown.")
}

func thresholdsFrom(flags *pflag.FlagSet) types.Thresholds {
	var th types.Thresholds
	if flags.Changed("warning") {
		w, _ := flags.GetInt64("warning")
		th.Warning = ptr.To(float64(w))
	}
	if flags.Changed("critical") {
		c, _ := flags.GetInt64("critical")
		th.Critical = ptr.To(float64(c))
	}
	return th
}

func addMetricFlag(cmd *cobra.Command, metric *metricValue, usage string) {
	cmd.Flags().VarP(metric, "metric", "m", usage+" One of: "+metric.choices()+".")
	_ = cmd.MarkFlagRequired("metric")
	_ = cmd.RegisterFlagCompletionFunc("metric", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return metric.list(), cobra.ShellCompDirectiveNoFileComp
	})
}
