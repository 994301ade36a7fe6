package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nightness333/check-proxmox/pkg/types"
)

func newPveCmd(o *options) *cobra.Command {
	metric := newMetricValue(types.ScopeNode.Metrics())

	pveCmd := &cobra.Command{
		Use:   "pve",
		Short: "Checks a metric of a Proxmox node",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			node, _ := cmd.Flags().GetString("pve")

			o.runCheck(cmd.Context(), target{
				scope:      types.ScopeNode,
				node:       node,
				metric:     metric.value,
				thresholds: o.scopedThresholds(types.ScopeNode, thresholdsFrom(cmd.Flags())),
			})
		},
	}

	pveCmd.Flags().StringP("pve", "p", "", "The name of the Proxmox server you wish to monitor.")
	addMetricFlag(pveCmd, metric, "The metric you would like to pull from the Proxmox server.")
	addThresholdFlags(pveCmd)
	_ = pveCmd.MarkFlagRequired("pve")

	return pveCmd
}
