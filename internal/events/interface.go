package events

// Notifier receives outcome notifications from the services. Rendering them
// (toasts, terminal output) is up to the implementation.
type Notifier interface {
	Notify(event Event) error
}

// Compile-time verification that *Bus implements Notifier
var _ Notifier = (*Bus)(nil)
