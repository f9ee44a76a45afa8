package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sockshedctl",
	Short: "Manage the sockshed proxy server",
	Long: `sockshedctl is the operator tool for the sockshed multi-node proxy server.

It resolves, bootstraps and inspects the node configuration that the
server reads at startup.`,
}

func Execute() {
	// Pick up operator overrides (e.g. SOCKSHED_CONFIG_DIR) from a local
	// .env file when one exists.
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
