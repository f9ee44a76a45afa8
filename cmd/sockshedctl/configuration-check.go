package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sockshed/sockshed/pkg/config"
)

// configurationCheckCmd represents the configuration check command
var configurationCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the node configuration without starting the server",
	Long: `Validate the node configuration without starting the server.

Runs the full load pipeline and reports the first violation. The exit
status is non-zero when the configuration would prevent the server from
starting.

Example:
  sockshedctl configuration check`,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := config.Load(loadOptions(cmd)...)
		if err != nil {
			if config.IsFatal(err) {
				fmt.Fprintf(os.Stderr, "Fatal configuration error: %v\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "Configuration check failed: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Configuration is valid: %d node(s) at %s\n", store.Len(), store.Location())
	},
}

func init() {
	configurationCmd.AddCommand(configurationCheckCmd)
}
