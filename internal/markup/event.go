package markup

// Event is a single discrete activation of an affordance
type Event struct {
	defaultPrevented bool
}

// NewEvent creates an event whose default action is still pending
func NewEvent() *Event {
	return &Event{}
}

// PreventDefault suppresses the platform's default action (e.g. link navigation)
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}
