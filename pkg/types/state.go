package types

// State is a stage of a packaging run
type State int

const (
	StateResolving State = iota
	StatePlanBuilt
	StatePrepackaging
	StateAssembling
	StateCleaningUp
	StateDone
	StateFailed
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StatePlanBuilt:
		return "plan-built"
	case StatePrepackaging:
		return "prepackaging"
	case StateAssembling:
		return "assembling"
	case StateCleaningUp:
		return "cleaning-up"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CanFail reports whether an unrecoverable error may occur while in this state
func (s State) CanFail() bool {
	return s == StateResolving || s == StatePrepackaging || s == StateAssembling
}

// Terminal reports whether no further transitions happen after this state
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
