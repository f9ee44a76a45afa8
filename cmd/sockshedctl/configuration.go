package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sockshed/sockshed/pkg/config"
)

// configurationCmd represents the configuration command
var configurationCmd = &cobra.Command{
	Use:   "configuration",
	Short: "Manage sockshed node configuration",
	Long:  `Manage the sockshed node configuration document.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'configuration' requires a subcommand (show, check, init)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(configurationCmd)
	configurationCmd.PersistentFlags().String("config-dir", "", "Override the platform configuration directory")
}

// loadOptions translates the CLI surface (flag, then environment) into
// loader options. The config core itself never reads the environment.
func loadOptions(cmd *cobra.Command) []config.Option {
	dir, _ := cmd.Flags().GetString("config-dir")
	if dir == "" {
		dir = os.Getenv("SOCKSHED_CONFIG_DIR")
	}
	if dir == "" {
		return nil
	}
	return []config.Option{config.WithBaseDir(dir)}
}
