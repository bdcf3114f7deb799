package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Sergeydigl3/do-runner-firewall/internal/logging"
)

// Config represents the action configuration.
// Environment names follow the INPUT_<NAME> convention of workflow inputs.
type Config struct {
	Firewall   FirewallConfig   `yaml:"firewall"`
	IPResolver IPResolverConfig `yaml:"ip_resolver"`
	Logging    LoggingConfig    `yaml:"logging"`

	// Ports is the raw comma-separated list of "port" or "port/protocol" entries.
	Ports string `yaml:"ports" env:"INPUT_PORTS"`

	// DryRun logs the rules without calling the firewall API.
	DryRun bool `yaml:"dry_run" env:"INPUT_DRY-RUN" env-default:"false"`

	// SkipPortValidation passes unknown protocols and empty ports through to the API.
	SkipPortValidation bool `yaml:"skip_port_validation" env:"INPUT_SKIP-PORT-VALIDATION" env-default:"false"`
}

// FirewallConfig contains firewall API settings.
type FirewallConfig struct {
	// AccessToken is the API token. Required.
	AccessToken string `yaml:"access_token" env:"INPUT_ACCESS-TOKEN"`

	// ID is the firewall identifier. Required.
	ID string `yaml:"id" env:"INPUT_FIREWALL-ID"`

	// APIURL is the API base URL.
	APIURL string `yaml:"api_url" env:"INPUT_API-URL" env-default:"https://api.digitalocean.com/"`

	// Timeout bounds each API request.
	Timeout time.Duration `yaml:"timeout" env:"INPUT_TIMEOUT" env-default:"30s"`
}

// IPResolverConfig contains public IP lookup settings.
type IPResolverConfig struct {
	// URL returns the caller's address as plain text.
	URL string `yaml:"url" env:"INPUT_IP-URL" env-default:"https://ifconfig.me/ip"`

	// Timeout bounds the lookup request.
	Timeout time.Duration `yaml:"timeout" env:"INPUT_IP-TIMEOUT" env-default:"10s"`
}

// LoggingConfig contains logging-related configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level" env:"INPUT_LOG-LEVEL" env-default:"info"`

	// Format is the log format (actions, text, json).
	Format string `yaml:"format" env:"INPUT_LOG-FORMAT" env-default:"actions"`
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over config file values.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	// Check if config file exists
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			// ReadConfig already applied environment overrides
			return cfg, nil
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to access config file: %w", err)
		}
	}

	// Read environment variables
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment variables: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration and reports every problem found.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Firewall.AccessToken == "" {
		result = multierror.Append(result, fmt.Errorf("access-token is required"))
	}

	if c.Firewall.ID == "" {
		result = multierror.Append(result, fmt.Errorf("firewall-id is required"))
	}

	if c.Firewall.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("invalid timeout: %s (must be positive)", c.Firewall.Timeout))
	}

	if c.IPResolver.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("invalid ip-timeout: %s (must be positive)", c.IPResolver.Timeout))
	}

	if c.IPResolver.URL == "" {
		result = multierror.Append(result, fmt.Errorf("ip-url must not be empty"))
	}

	if !slices.Contains(logging.Levels, c.Logging.Level) {
		result = multierror.Append(result, fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.Logging.Level))
	}

	if !slices.Contains(logging.Formats, c.Logging.Format) {
		result = multierror.Append(result, fmt.Errorf("invalid log format: %s (must be one of: actions, text, json)", c.Logging.Format))
	}

	return result.ErrorOrNil()
}
