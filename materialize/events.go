package materialize

import "fmt"

// EventKind tells what happened.
type EventKind int

const (
	// EventMkdir reports a new container. Path is its final location.
	EventMkdir EventKind = iota
	// EventMove reports an entry moved from Path to Target.
	EventMove
	// EventDone is the last event of a run.
	EventDone
)

// Event is published for every change made to the directory.
type Event struct {
	Kind   EventKind
	Path   string
	Target string
	DryRun bool
}

func (e Event) String() string {
	prefix := ""
	if e.DryRun {
		prefix = "(dry run) "
	}
	switch e.Kind {
	case EventMkdir:
		return fmt.Sprintf("%smkdir %s", prefix, e.Path)
	case EventMove:
		return fmt.Sprintf("%smove %s -> %s", prefix, e.Path, e.Target)
	case EventDone:
		return prefix + "done"
	default:
		return fmt.Sprintf("%sevent(%d)", prefix, int(e.Kind))
	}
}
