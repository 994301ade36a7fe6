package cmd

import (
	goflag "flag"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/nightness333/check-proxmox/pkg/proxmox"
	"github.com/nightness333/check-proxmox/pkg/types"
)

const (
	envPrefix          = "PROXMOX"
	defaultSampleIndex = 69
)

var requiredGlobals = []string{"host", "oauthtoken", "oauthname", "user"}

type options struct {
	v      *viper.Viper
	out    io.Writer
	status types.Status
}

func newRootCmd(out io.Writer) (*cobra.Command, *options) {
	o := &options{v: viper.New(), out: out, status: types.StatusUnknown}

	rootCmd := &cobra.Command{
		Use:   "check_proxmox",
		Short: "Checks a Proxmox VE metric through the API",
		Long: `Reads the last hour of rrd data for a node, VM or container and reports
one metric as a monitoring plugin:
	- one status line on stdout: "<message> | <perfdata>"
	- exit code 0 OK, 1 WARNING, 2 CRITICAL, 3 UNKNOWN

Global flags can also be set as PROXMOX_<FLAG> environment variables,
e.g. PROXMOX_OAUTHTOKEN.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.validate()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("host", "H", "", "The Proxmox host you wish to connect to.")
	flags.String("port", proxmox.DefaultPort, "The port Proxmox is listening on.")
	flags.StringP("oauthtoken", "o", "", "API token secret for connecting to the API.")
	flags.StringP("oauthname", "O", "", "Name of the API token.")
	flags.StringP("user", "u", "", "User associated with the API token. E.g. root@pam")
	flags.Bool("insecure", true, "Skip TLS certificate verification.")
	flags.String("ca-file", "", "PEM CA bundle to verify the API certificate with (requires --insecure=false).")
	flags.Duration("timeout", proxmox.DefaultTimeout, "Timeout for the API request.")
	flags.Int("sample-index", defaultSampleIndex, "Row of the hourly rrd data to read; negative values count from the newest sample.")
	flags.Bool("enforce-thresholds", false, "Apply --warning/--critical for the pve and lxc scopes as well.")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	for _, name := range []string{"v", "vmodule"} {
		flags.AddGoFlag(klogFlags.Lookup(name))
	}

	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()
	if err := o.v.BindPFlags(flags); err != nil {
		klog.Errorf("bind flags: %v", err)
	}

	rootCmd.AddCommand(
		newPveCmd(o),
		newVMCmd(o),
		newLxcCmd(o),
		newDatacenterCmd(o),
	)
	return rootCmd, o
}

func (o *options) validate() error {
	var missing []string
	for _, name := range requiredGlobals {
		if o.v.GetString(name) == "" {
			missing = append(missing, `"`+name+`"`)
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}
	if o.v.GetBool("insecure") && o.v.GetString("ca-file") != "" {
		return errors.New("--ca-file requires --insecure=false")
	}
	return nil
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	defer klog.Flush()
	return int(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run executes one invocation. Help and usage errors go to errOut so out only
// ever carries the status line; usage errors report UNKNOWN.
func run(out, errOut io.Writer, args []string) types.Status {
	rootCmd, o := newRootCmd(out)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(errOut)
	rootCmd.SetErr(errOut)
	if err := rootCmd.Execute(); err != nil {
		return types.StatusUnknown
	}
	return o.status
}
