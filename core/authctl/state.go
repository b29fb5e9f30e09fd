package authctl

// State is the controller's three-way belief about its own login status.
type State int

const (
	// StateUnknown is the initial value, set once at construction. After
	// the first Initialize resolves it never recurs.
	StateUnknown State = iota
	// StateAnonymous means no authenticated session exists.
	StateAnonymous
	// StateAuthenticated means the backend confirmed a user for this
	// session.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
