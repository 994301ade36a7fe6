package cmd

import (
	"github.com/spf13/cobra"

	"github.com/nightness333/check-proxmox/pkg/types"
)

func newVMCmd(o *options) *cobra.Command {
	metric := newMetricValue(types.ScopeVM.Metrics())

	vmCmd := &cobra.Command{
		Use:   "vm",
		Short: "Checks a metric of a QEMU virtual machine",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			node, _ := cmd.Flags().GetString("pve")
			vmid, _ := cmd.Flags().GetString("vmid")

			o.runCheck(cmd.Context(), target{
				scope:      types.ScopeVM,
				node:       node,
				id:         vmid,
				metric:     metric.value,
				thresholds: o.scopedThresholds(types.ScopeVM, thresholdsFrom(cmd.Flags())),
			})
		},
	}

	vmCmd.Flags().StringP("pve", "p", "", "The name of the Proxmox server where the VM is running.")
	vmCmd.Flags().StringP("vmid", "i", "", "The Proxmox ID of the VM you wish to monitor. E.g. 100")
	addMetricFlag(vmCmd, metric, "The metric you would like to pull from the VM.")
	addThresholdFlags(vmCmd)
	_ = vmCmd.MarkFlagRequired("pve")
	_ = vmCmd.MarkFlagRequired("vmid")

	return vmCmd
}
