package entities

type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeSuccess
	OutcomeAlreadySatisfied
	OutcomeTimeout
	OutcomeServiceError
)

const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitServiceError = 2
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeAlreadySatisfied:
		return "already satisfied"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeServiceError:
		return "service error"
	}

	return "unknown"
}

// ExitCode maps the outcome to the process exit status.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeSuccess, OutcomeAlreadySatisfied:
		return ExitSuccess
	case OutcomeTimeout:
		return ExitFailure
	}

	return ExitServiceError
}
