package tracker

type (
	// Action describes a user action that can be performed on the model, which
	// can be initiated by calling the Do() method. It is usually initiated by a
	// key press or a button. Action advertises whether it is enabled, so the UI
	// can e.g. gray out buttons when the underlying action is not allowed. The
	// underlying Doer can optionally implement the Enabler interface to decide
	// if the action is enabled or not; if it does not implement the Enabler
	// interface, the action is always allowed.
	Action struct {
		doer Doer
	}

	// Doer is an interface that defines a single Do() method, which is called
	// when an action is performed.
	Doer interface {
		Do()
	}

	// Enabler is an interface that defines a single Enabled() method, which
	// is used by the UI to check if UI Action/Bool etc. is enabled or not.
	Enabler interface {
		Enabled() bool
	}
)

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

// Do performs the action if it is enabled. It returns false if nothing was
// done.
func (a Action) Do() bool {
	if !a.Enabled() {
		return false
	}
	a.doer.Do()
	return true
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false // no doer, not allowed
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true // not enabler, always allowed
	}
	return e.Enabled()
}
