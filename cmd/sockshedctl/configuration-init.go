package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sockshed/sockshed/pkg/config"
)

// configurationInitCmd represents the configuration init command
var configurationInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Bootstrap the configuration directory and template document",
	Long: `Bootstrap the configuration directory and template document.

Creates the platform configuration directory if it does not exist and
writes a single-node template document with a freshly generated password.
An existing document is never overwritten.

Example:
  sockshedctl configuration init
  sockshedctl configuration init --config-dir /tmp/sockshed`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfiguration(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationInitCmd)
}

func initConfiguration(cmd *cobra.Command) error {
	dir, _ := cmd.Flags().GetString("config-dir")
	if dir == "" {
		dir = os.Getenv("SOCKSHED_CONFIG_DIR")
	}
	if dir == "" {
		var err error
		dir, err = config.DefaultLocation(runtime.GOOS)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create config directory %s: %w", dir, err)
	}

	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	path := dir + config.ConfigFileName

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Configuration already exists at %s, leaving it untouched\n", path)
		return nil
	}

	if err := config.WriteTemplate(path); err != nil {
		return err
	}

	fmt.Printf("Wrote template configuration to %s\n", path)
	return nil
}
