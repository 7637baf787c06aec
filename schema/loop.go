package schema

// Loop declares one node of a transaction set's loop hierarchy: which
// segment introduces it, which segment identifiers are permitted as direct
// members, whether it can repeat, and its nested child loops. Loop
// schemas are transaction-set-specific (see the transactions package) and
// are consulted by dispatch and loopctx to decide where an incoming
// segment belongs.
type Loop struct {
	ID         string // loop identifier, e.g. "2100C" (spec's loop naming)
	TriggerID  string // the segment ID that starts a new instance of this loop
	Members    []string
	Repeatable bool
	Children   []*Loop
}

// NewLoop declares a loop.
func NewLoop(id, trigger string, repeatable bool, members ...string) *Loop {
	return &Loop{ID: id, TriggerID: trigger, Members: members, Repeatable: repeatable}
}

// WithChildren attaches nested loops and returns the receiver for chaining.
func (l *Loop) WithChildren(children ...*Loop) *Loop {
	l.Children = append(l.Children, children...)
	return l
}

// Accepts reports whether segID is a direct member of this loop (not its
// children).
func (l *Loop) Accepts(segID string) bool {
	for _, m := range l.Members {
		if m == segID {
			return true
		}
	}
	return false
}

// Find walks the loop tree depth-first and returns the node with the given
// ID, if any.
func (l *Loop) Find(id string) *Loop {
	if l.ID == id {
		return l
	}
	for _, c := range l.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}
