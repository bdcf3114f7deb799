package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Sergeydigl3/do-runner-firewall/internal/firewall"
	"github.com/Sergeydigl3/do-runner-firewall/internal/ports"
)

// RunnerIPOutput is the name of the output holding the resolved address.
const RunnerIPOutput = "runner-ip"

// IPResolver looks up the public address of the runner.
type IPResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// RuleApplier submits inbound rules for a mode.
type RuleApplier interface {
	Apply(ctx context.Context, mode firewall.Mode, rules []firewall.InboundRule) error
}

// OutputSetter publishes named step outputs.
type OutputSetter interface {
	SetOutput(name, value string)
}

// Options configures a Runner.
type Options struct {
	// Ports is the raw port specification
	Ports string

	// SkipPortValidation disables the protocol and empty port checks
	SkipPortValidation bool

	// DryRun is reported back in the Result
	DryRun bool
}

// Runner orchestrates a single add or remove run.
type Runner struct {
	opts     Options
	resolver IPResolver
	applier  RuleApplier
	outputs  OutputSetter
	logger   *slog.Logger
}

// Result describes a successful run.
type Result struct {
	Mode     firewall.Mode
	DryRun   bool
	RunnerIP string
	Rules    []firewall.InboundRule
}

// New creates a new runner.
func New(opts Options, resolver IPResolver, applier RuleApplier, outputs OutputSetter, logger *slog.Logger) *Runner {
	return &Runner{
		opts:     opts,
		resolver: resolver,
		applier:  applier,
		outputs:  outputs,
		logger:   logger,
	}
}

// Run parses ports, resolves the runner IP, builds the rules and applies them.
// It stops at the first failing step; earlier effects are not undone.
func (r *Runner) Run(ctx context.Context, mode firewall.Mode) (*Result, error) {
	// 1. Parse ports
	entries := ports.Parse(r.opts.Ports)
	if !r.opts.SkipPortValidation {
		if err := ports.Validate(entries); err != nil {
			return nil, &StepError{Step: StepParsePorts, Err: err}
		}
	}
	r.logger.Debug("parsed ports", slog.Any("ports", entries))

	// 2. Resolve IP
	ip, err := r.resolver.Resolve(ctx)
	if err != nil {
		return nil, &StepError{Step: StepResolveIP, Err: err}
	}
	r.logger.Info(fmt.Sprintf("Current IP: %s", ip))
	r.outputs.SetOutput(RunnerIPOutput, ip)

	// 3. Build rules
	rules := firewall.BuildInboundRules(entries, ip)

	// 4. Apply
	if err := r.applier.Apply(ctx, mode, rules); err != nil {
		return nil, &StepError{Step: StepUpdateFirewall, Err: err}
	}

	return &Result{
		Mode:     mode,
		DryRun:   r.opts.DryRun,
		RunnerIP: ip,
		Rules:    rules,
	}, nil
}
