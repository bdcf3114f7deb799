package firewall

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Firewall is the interface for remote firewall backends.
type Firewall interface {
	// AddRules adds inbound rules to the firewall
	AddRules(ctx context.Context, rules []InboundRule) error

	// RemoveRules removes inbound rules from the firewall
	RemoveRules(ctx context.Context, rules []InboundRule) error
}

// InboundRule represents a firewall inbound rule.
type InboundRule struct {
	// Protocol is the protocol ("tcp" or "udp")
	Protocol string `json:"protocol"`

	// Ports is a port or port range, kept in its original form
	Ports string `json:"ports"`

	// Sources are the addresses allowed to connect
	Sources Sources `json:"sources"`
}

// Sources lists rule source addresses.
type Sources struct {
	Addresses []string `json:"addresses"`
}

// Mode selects whether rules are added or removed.
type Mode string

const (
	ModeAdd    Mode = "add"
	ModeRemove Mode = "remove"
)

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAdd, ModeRemove:
		return Mode(s), nil
	default:
		return "", errors.Errorf("unknown mode: %s (must be 'add' or 'remove')", s)
	}
}

// HTTPMethod returns the API verb used for the mode.
func (m Mode) HTTPMethod() string {
	if m == ModeAdd {
		return http.MethodPost
	}
	return http.MethodDelete
}

// Config contains firewall backend configuration.
type Config struct {
	// AccessToken authenticates API calls
	AccessToken string

	// FirewallID identifies the firewall resource
	FirewallID string

	// APIURL is the API base URL ("" for the public endpoint)
	APIURL string

	// Timeout bounds each API request
	Timeout time.Duration

	// UserAgent is sent with every API request
	UserAgent string
}
