package firewall

import (
	"context"
	"log/slog"

	"github.com/digitalocean/godo"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// DigitalOcean implements Firewall using the DigitalOcean cloud firewall API.
type DigitalOcean struct {
	client     *godo.Client
	firewallID string
	logger     *slog.Logger
}

// NewDigitalOcean creates a DigitalOcean firewall backend.
func NewDigitalOcean(cfg *Config, logger *slog.Logger) (*DigitalOcean, error) {
	if cfg.AccessToken == "" {
		return nil, errors.New("access token must be specified")
	}
	if cfg.FirewallID == "" {
		return nil, errors.New("firewall id must be specified")
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})
	httpClient := oauth2.NewClient(context.Background(), tokenSource)
	httpClient.Timeout = cfg.Timeout

	var opts []godo.ClientOpt
	if cfg.APIURL != "" {
		opts = append(opts, godo.SetBaseURL(cfg.APIURL))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, godo.SetUserAgent(cfg.UserAgent))
	}

	client, err := godo.New(httpClient, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create api client")
	}

	return &DigitalOcean{
		client:     client,
		firewallID: cfg.FirewallID,
		logger:     logger,
	}, nil
}

// AddRules adds inbound rules to the firewall.
func (d *DigitalOcean) AddRules(ctx context.Context, rules []InboundRule) error {
	resp, err := d.client.Firewalls.AddRules(ctx, d.firewallID, rulesRequest(rules))
	d.logResponse(ModeAdd, resp)
	if err != nil {
		return errors.Wrapf(err, "firewall %s", d.firewallID)
	}
	return nil
}

// RemoveRules removes inbound rules from the firewall.
func (d *DigitalOcean) RemoveRules(ctx context.Context, rules []InboundRule) error {
	resp, err := d.client.Firewalls.RemoveRules(ctx, d.firewallID, rulesRequest(rules))
	d.logResponse(ModeRemove, resp)
	if err != nil {
		return errors.Wrapf(err, "firewall %s", d.firewallID)
	}
	return nil
}

func (d *DigitalOcean) logResponse(mode Mode, resp *godo.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	d.logger.Debug("firewall api response",
		slog.String("method", mode.HTTPMethod()),
		slog.String("firewall_id", d.firewallID),
		slog.Int("status", resp.StatusCode),
	)
}

// rulesRequest converts rules into the API request body.
func rulesRequest(rules []InboundRule) *godo.FirewallRulesRequest {
	inbound := make([]godo.InboundRule, 0, len(rules))
	for _, rule := range rules {
		inbound = append(inbound, godo.InboundRule{
			Protocol:  rule.Protocol,
			PortRange: rule.Ports,
			Sources: &godo.Sources{
				Addresses: rule.Sources.Addresses,
			},
		})
	}

	return &godo.FirewallRulesRequest{InboundRules: inbound}
}
