package profile

// Outcome classifies how a single lookup step ended
type Outcome int

const (
	// Found means the step produced a usable value
	Found Outcome = iota

	// Empty means the service answered but had nothing to offer
	Empty

	// Failed means the step hit a transport, status or parse error
	Failed
)

// String returns the outcome name used in log fields
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepResult carries the value or the failure of one lookup step
type StepResult[T any] struct {
	Value   T
	Outcome Outcome
	Err     error
}

func found[T any](value T) StepResult[T] {
	return StepResult[T]{Value: value, Outcome: Found}
}

func empty[T any]() StepResult[T] {
	return StepResult[T]{Outcome: Empty}
}

func failed[T any](err error) StepResult[T] {
	return StepResult[T]{Outcome: Failed, Err: err}
}
