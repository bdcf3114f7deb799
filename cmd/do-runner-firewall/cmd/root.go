package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Sergeydigl3/do-runner-firewall/internal/config"
)

// version is set at build time.
var version = "dev"

var (
	cfgFile            string
	accessToken        string
	firewallID         string
	portSpec           string
	dryRun             bool
	skipPortValidation bool
	apiURL             string
	apiTimeout         time.Duration
	ipURL              string
	ipTimeout          time.Duration
	logLevel           string
	logFormat          string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "do-runner-firewall",
	Short: "Allow the CI runner through a DigitalOcean cloud firewall",
	Long: `do-runner-firewall adds or removes inbound rules for the runner's public IP
on a DigitalOcean cloud firewall. Inputs are read from INPUT_* environment
variables, an optional config file, and flags (flags win).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	bindFlags(rootCmd.PersistentFlags())
}

func bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&cfgFile, "config", "c", "", "config file path (yaml, json, toml, edn or .env)")
	fs.StringVar(&accessToken, "access-token", "", "API access token (overrides INPUT_ACCESS-TOKEN)")
	fs.StringVar(&firewallID, "firewall-id", "", "firewall ID (overrides INPUT_FIREWALL-ID)")
	fs.StringVarP(&portSpec, "ports", "p", "", `comma-separated ports, e.g. "22,53/udp" (overrides INPUT_PORTS)`)
	fs.BoolVar(&dryRun, "dry-run", false, "log the rules without calling the API")
	fs.BoolVar(&skipPortValidation, "skip-port-validation", false, "pass unknown protocols and empty ports to the API")
	fs.StringVar(&apiURL, "api-url", "", "firewall API base URL")
	fs.DurationVar(&apiTimeout, "timeout", 0, "firewall API request timeout")
	fs.StringVar(&ipURL, "ip-url", "", "plain text IP echo service URL")
	fs.DurationVar(&ipTimeout, "ip-timeout", 0, "IP lookup timeout")
	fs.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", "", "log format (actions, text, json)")
}

// loadConfig reads the configuration and applies explicitly set flags on top.
func loadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyFlags(fs, cfg)
	return cfg, nil
}

func applyFlags(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("access-token") {
		cfg.Firewall.AccessToken = accessToken
	}
	if fs.Changed("firewall-id") {
		cfg.Firewall.ID = firewallID
	}
	if fs.Changed("ports") {
		cfg.Ports = portSpec
	}
	if fs.Changed("dry-run") {
		cfg.DryRun = dryRun
	}
	if fs.Changed("skip-port-validation") {
		cfg.SkipPortValidation = skipPortValidation
	}
	if fs.Changed("api-url") {
		cfg.Firewall.APIURL = apiURL
	}
	if fs.Changed("timeout") {
		cfg.Firewall.Timeout = apiTimeout
	}
	if fs.Changed("ip-url") {
		cfg.IPResolver.URL = ipURL
	}
	if fs.Changed("ip-timeout") {
		cfg.IPResolver.Timeout = ipTimeout
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if fs.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
}
