package entity

// DoorPhase is the explicit unlock state machine. Exactly one phase is
// active at a time; the transient phases exist so the UI cannot reach
// contradictory flag combinations such as two credential prompts at once.
type DoorPhase int

const (
	// DoorClosed is the resting state of a closed door.
	DoorClosed DoorPhase = iota
	// DoorAwaitingMethodChoice means an open was requested and the user must
	// pick biometric or PIN verification.
	DoorAwaitingMethodChoice
	// DoorAwaitingBiometric means the platform biometric prompt is active.
	DoorAwaitingBiometric
	// DoorAwaitingPinEntry means the PIN pad is active.
	DoorAwaitingPinEntry
	// DoorBusy means a store write is in flight; re-entrant triggers are
	// rejected until it settles.
	DoorBusy
	// DoorOpen is the resting state of an open door.
	DoorOpen
)

// String implements fmt.Stringer.
func (p DoorPhase) String() string {
	switch p {
	case DoorClosed:
		return "closed"
	case DoorAwaitingMethodChoice:
		return "awaiting_method_choice"
	case DoorAwaitingBiometric:
		return "awaiting_biometric"
	case DoorAwaitingPinEntry:
		return "awaiting_pin_entry"
	case DoorBusy:
		return "busy"
	case DoorOpen:
		return "open"
	}

	return "unknown"
}

// UnlockMethod is the chosen second factor for opening the door.
type UnlockMethod string

const (
	// MethodBiometric verifies through the platform biometric capability.
	MethodBiometric UnlockMethod = "biometric"
	// MethodPin verifies against the user's stored PIN collection.
	MethodPin UnlockMethod = "pin"
)

// UnlockSession is the ephemeral, in-memory state of one unlock attempt.
// It is created when the user requests an open while the door is closed and
// destroyed on success, cancellation or dismissal. Never persisted.
type UnlockSession struct {
	Method   UnlockMethod
	Pins     []*Pin // Referenced for comparison, not owned.
	Buffer   string // Pending PIN input, cleared after every mismatch.
	Failures int    // Consecutive failed PIN entries in this session.
	Message  string // User-facing error message, cleared on transition.
}
