package cmd

import (
	"fmt"
	"log/slog"

	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"

	"github.com/Sergeydigl3/do-runner-firewall/internal/firewall"
	"github.com/Sergeydigl3/do-runner-firewall/internal/ipresolver"
	"github.com/Sergeydigl3/do-runner-firewall/internal/logging"
	"github.com/Sergeydigl3/do-runner-firewall/internal/runner"
)

// runMode returns the command body for mode. Any error is also reported
// as a workflow error annotation before the command fails.
func runMode(mode firewall.Mode) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		action := githubactions.New(githubactions.WithWriter(cmd.OutOrStdout()))

		if err := run(cmd, action, mode); err != nil {
			action.Errorf("%s", err)
			return err
		}
		return nil
	}
}

func run(cmd *cobra.Command, action *githubactions.Action, mode firewall.Mode) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	if cfg.Firewall.AccessToken != "" {
		action.AddMask(cfg.Firewall.AccessToken)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.InitLogger(cfg.Logging.Level, cfg.Logging.Format, cmd.OutOrStdout())
	logger.Debug("starting",
		slog.String("mode", string(mode)),
		slog.String("firewall_id", cfg.Firewall.ID),
		slog.Bool("dry_run", cfg.DryRun),
	)

	fw, err := firewall.NewDigitalOcean(&firewall.Config{
		AccessToken: cfg.Firewall.AccessToken,
		FirewallID:  cfg.Firewall.ID,
		APIURL:      cfg.Firewall.APIURL,
		Timeout:     cfg.Firewall.Timeout,
		UserAgent:   "do-runner-firewall/" + version,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create firewall: %w", err)
	}

	r := runner.New(
		runner.Options{
			Ports:              cfg.Ports,
			SkipPortValidation: cfg.SkipPortValidation,
			DryRun:             cfg.DryRun,
		},
		ipresolver.New(cfg.IPResolver.URL, cfg.IPResolver.Timeout, logger),
		firewall.NewClient(fw, cfg.DryRun, logger),
		action,
		logger,
	)

	res, err := r.Run(cmd.Context(), mode)
	if err != nil {
		return err
	}

	logger.Debug("run finished",
		slog.String("runner_ip", res.RunnerIP),
		slog.Int("rules", len(res.Rules)),
		slog.Bool("dry_run", res.DryRun),
	)
	return nil
}
