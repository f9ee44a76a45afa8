package config

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locations.yml
var locationsYAML []byte

// locationTable is the platform to base-directory table shipped with the
// binary. Any platform that is not Windows or macOS uses the linux entry.
type locationTable struct {
	Windows string `yaml:"windows"`
	Darwin  string `yaml:"darwin"`
	Linux   string `yaml:"linux"`
}

// DefaultLocation returns the base configuration directory for goos from
// the embedded platform table.
func DefaultLocation(goos string) (string, error) {
	var tbl locationTable
	if err := yaml.Unmarshal(locationsYAML, &tbl); err != nil {
		return "", fmt.Errorf("parse location table: %w", err)
	}

	switch goos {
	case "windows":
		return tbl.Windows, nil
	case "darwin":
		return tbl.Darwin, nil
	default:
		return tbl.Linux, nil
	}
}

// fileURL renders the resolved location as a file-scheme URL. Windows
// paths and any path not rooted at a slash need the three-slash form.
func fileURL(location, goos string) string {
	if goos == "windows" || !strings.HasPrefix(location, "/") {
		return "file:///" + location
	}
	return "file://" + location
}
