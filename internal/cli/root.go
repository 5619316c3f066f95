package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/weiawesome/wes-io-live/quickid/internal/config"
)

// Version is injected during build.
var Version = "dev"

// NewRootCmd builds the quickid command tree.
func NewRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "quickid",
		Short: "quickid generates short quasi-unique identifiers",
		Long: `quickid generates short, optionally prefixed text or numeric identifiers
and checks batches of values for duplicates.

Configuration is read from ./config/config.yaml, the file given by --config,
and environment variables.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to a config file")

	load := func() (*config.Config, error) {
		if configFile != "" {
			return config.LoadFile(configFile)
		}
		return config.Load()
	}

	root.AddCommand(
		newServeCmd(load),
		newGenCmd(load),
		newParseCmd(load),
		newCheckCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type configLoader func() (*config.Config, error)
