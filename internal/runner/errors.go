package runner

// Step names a phase of a run.
type Step string

const (
	StepParsePorts     Step = "parse-ports"
	StepResolveIP      Step = "resolve-ip"
	StepUpdateFirewall Step = "update-firewall"
)

// StepError is returned by Run and records which step failed.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return string(e.Step) + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}
