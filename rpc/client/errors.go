package client

import "fmt"

// ErrUnsupportedCommand is returned for a method the Registry does not know.
// Nothing is sent.
type ErrUnsupportedCommand struct {
	Name string
}

func (e ErrUnsupportedCommand) Error() string {
	return fmt.Sprintf("unsupported command %q", e.Name)
}

// ErrInvalidArity is returned when a command is given too few or too many
// arguments. Nothing is sent.
type ErrInvalidArity struct {
	Name string
	Min  int
	Max  int
	Got  int
}

func (e ErrInvalidArity) Error() string {
	switch {
	case e.Max == Variadic:
		return fmt.Sprintf("%s takes at least %d argument(s), got %d", e.Name, e.Min, e.Got)
	case e.Min == e.Max:
		return fmt.Sprintf("%s takes %d argument(s), got %d", e.Name, e.Min, e.Got)
	default:
		return fmt.Sprintf("%s takes %d to %d arguments, got %d", e.Name, e.Min, e.Max, e.Got)
	}
}

type ErrWaitThreshold struct {
	Got      int64
	Expected int64
}

func (e ErrWaitThreshold) Error() string {
	return fmt.Sprintf("waiting for %d blocks exceeded the threshold %d", e.Got, e.Expected)
}
