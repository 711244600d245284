// Command fleetctl is the operator CLI: schema migrations and dev tokens.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fleetctl",
		Short:         "Operate the fleet-booking service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newMigrateCmd(), newTokenCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
