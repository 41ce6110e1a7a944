package alarm

// Actor identifies who last changed a persisted configuration.
type Actor struct {
	// Hostname is the machine name where the change was made.
	Hostname string
	// Username is the system user who made the change.
	Username string
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// String formats the actor as username@hostname.
func (a *Actor) String() string {
	if a == nil {
		return "<unknown>"
	}

	return a.Username + "@" + a.Hostname
}
