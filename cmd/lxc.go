package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nightness333/check-proxmox/pkg/types"
)

func newLxcCmd(o *options) *cobra.Command {
	metric := newMetricValue(types.ScopeContainer.Metrics())

	lxcCmd := &cobra.Command{
		Use:   "lxc",
		Short: "Checks a metric of an LXC container",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			node, _ := cmd.Flags().GetString("pve")
			lxcid, _ := cmd.Flags().GetString("lxcid")

			o.runCheck(cmd.Context(), target{
				scope:      types.ScopeContainer,
				node:       node,
				id:         lxcid,
				metric:     metric.value,
				thresholds: o.scopedThresholds(types.ScopeContainer, thresholdsFrom(cmd.Flags())),
			})
		},
	}

	lxcCmd.Flags().StringP("pve", "p", "", "The name of the Proxmox server where the LXC is running.")
	lxcCmd.Flags().StringP("lxcid", "i", "", "The Proxmox ID of the LXC you wish to monitor. E.g. 100")
	addMetricFlag(lxcCmd, metric, "The metric you would like to pull from the LXC.")
	addThresholdFlags(lxcCmd)
	_ = lxcCmd.MarkFlagRequired("pve")
	_ = lxcCmd.MarkFlagRequired("lxcid")

	return lxcCmd
}
