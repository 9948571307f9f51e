package stream

type State int32

const (
	Idle State = iota
	Connecting
	Open
	Closed
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Connecting:
		return "connecting"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Error:
		return "error"
	}
	return "unknown"
}

// Loading reports whether the viewer should show its loading indicator.
func (s State) Loading() bool {
	return s == Connecting
}
