package firewall

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
)

// Client logs and submits rule changes to a Firewall backend.
type Client struct {
	fw     Firewall
	dryRun bool
	logger *slog.Logger
}

// NewClient creates a firewall client. With dryRun set the backend is never called.
func NewClient(fw Firewall, dryRun bool, logger *slog.Logger) *Client {
	return &Client{
		fw:     fw,
		dryRun: dryRun,
		logger: logger,
	}
}

// Apply adds or removes rules depending on mode.
func (c *Client) Apply(ctx context.Context, mode Mode, rules []InboundRule) error {
	payload, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode rules")
	}

	c.logger.Info(fmt.Sprintf("Rules to %s:", mode))
	c.logger.Info(string(payload))

	if c.dryRun {
		c.logger.Info("Done (dry run)")
		return nil
	}

	switch mode {
	case ModeAdd:
		err = c.fw.AddRules(ctx, rules)
	case ModeRemove:
		err = c.fw.RemoveRules(ctx, rules)
	default:
		return errors.Errorf("unknown mode: %s", mode)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to %s rules", mode)
	}

	c.logger.Info("Sent")
	return nil
}
