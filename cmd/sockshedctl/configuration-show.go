package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sockshed/sockshed/pkg/config"
)

// configurationShowCmd represents the configuration show command
var configurationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved node configuration",
	Long: `Show the resolved node configuration.

Loads the node document exactly the way the server does at startup,
including first-run template bootstrap, and prints the resulting node
registry together with the resolved location and its file URL.

Example:
  sockshedctl configuration show
  sockshedctl configuration show --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		if err := showConfiguration(cmd, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to show configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationShowCmd)
	configurationShowCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func showConfiguration(cmd *cobra.Command, output string) error {
	store, err := config.Load(loadOptions(cmd)...)
	if err != nil {
		return err
	}

	if output == "json" {
		jsonOutput, err := store.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Println(jsonOutput)
		return nil
	}

	fmt.Print(store.FormatText())
	return nil
}
