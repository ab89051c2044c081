package config

import (
	"fmt"

	"github.com/scenewright/sceneqc/types"
)

// Config represents a sceneqc.yaml configuration file.
// All values are optional and act as defaults for sceneqc scan flags.
// CLI flags always override config values.
type Config struct {
	// Stage is the default scene document to scan.
	Stage string `yaml:"stage"`
	// Checks selects validators by name; "all" or empty enables everything.
	Checks []string `yaml:"checks"`
	// Format is the default output format: json, table, yaml.
	Format string `yaml:"format"`
	// Report configures scan report persistence.
	Report ReportConfig `yaml:"report"`
}

// ReportConfig holds report sink defaults from the config file.
type ReportConfig struct {
	// Backend selects the sink: "", "file", or "s3".
	Backend string `yaml:"backend"`
	// Path is the base directory for the file backend.
	Path string `yaml:"path"`
	// Bucket is the S3 bucket for the s3 backend.
	Bucket string `yaml:"bucket"`
	// Prefix is the S3 key prefix.
	Prefix string `yaml:"prefix"`
	// Region is the AWS region.
	Region string `yaml:"region"`
	// Endpoint is a custom S3 endpoint for S3-compatible providers.
	Endpoint string `yaml:"endpoint"`
	// S3PathStyle forces path-style addressing.
	S3PathStyle bool `yaml:"s3_path_style"`
}

// CheckSet converts the configured check names to a selection.
// An absent list means every check, matching the host dialog's
// default-checked state.
func (c *Config) CheckSet() (types.CheckSet, error) {
	if len(c.Checks) == 0 {
		return types.AllChecks(), nil
	}
	set := make(types.CheckSet)
	for _, name := range c.Checks {
		if name == "all" {
			return types.AllChecks(), nil
		}
		check, err := types.ParseCheck(name)
		if err != nil {
			return nil, fmt.Errorf("config checks: %w", err)
		}
		set[check] = true
	}
	return set, nil
}
