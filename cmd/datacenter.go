package cmd

import (
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/nightness333/check-proxmox/pkg/types"
)

// The datacenter scope is reserved; it prints nothing and reports OK.
func newDatacenterCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:    "datacenter",
		Short:  "Reserved for cluster-wide metrics",
		Hidden: true,
		Args:   cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			klog.V(1).Infof("%s scope has no checks yet", types.ScopeDatacenter)
			o.status = types.StatusOK
		},
	}
}
